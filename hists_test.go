package shmsplot

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"
)

func TestBatteryLayout(t *testing.T) {
	if got, want := len(Hist1DDefs), 8; got != want {
		t.Fatalf("got %d 1-dim histograms, want %d", got, want)
	}
	if got, want := len(Hist2DDefs), 9; got != want {
		t.Fatalf("got %d 2-dim histograms, want %d", got, want)
	}

	seen := make(map[string]bool)
	for _, def := range Hist1DDefs {
		if seen[def.Name] {
			t.Errorf("duplicate histogram %q", def.Name)
		}
		seen[def.Name] = true
	}
	for _, def := range Hist2DDefs {
		if seen[def.Name] {
			t.Errorf("duplicate histogram %q", def.Name)
		}
		seen[def.Name] = true
	}

	h := NewHistogrammer(nil)
	for _, tc := range []struct {
		name   string
		nbins  int
		lo, hi float64
	}{
		{"h_xFocalMCRaw", 160, -40, 40},
		{"h_xpFocalMCRaw", 60, -60, 60},
		{"h_yTarMCRaw", 100, -5, 5},
		{"h_deltaMCRaw", 80, -40, 40},
	} {
		h1 := h.H1D(tc.name)
		if h1 == nil {
			t.Fatalf("no histogram %q", tc.name)
		}
		if h1.Len() != tc.nbins || h1.XMin() != tc.lo || h1.XMax() != tc.hi {
			t.Errorf("%s: got %d x [%v, %v], want %d x [%v, %v]",
				tc.name, h1.Len(), h1.XMin(), h1.XMax(), tc.nbins, tc.lo, tc.hi,
			)
		}
		if got := h1.Name(); got != tc.name {
			t.Errorf("%s: annotated name is %q", tc.name, got)
		}
	}
	if h.H1D("h_nope") != nil || h.H2D("h2_nope") != nil {
		t.Errorf("lookup of unknown histogram should return nil")
	}
}

func TestFillCountsEveryEvent(t *testing.T) {
	h := NewHistogrammer(nil)
	evts := []Event{
		{},
		{XFocal: 12, XpFocal: 0.01, YFocal: -3, YpFocal: -0.02, YTar: 1, XpTar: 0.03, YpTar: -0.04, Delta: 5},
		// out of every range
		{XFocal: 100, XpFocal: 1, YFocal: -100, YpFocal: -1, YTar: 9, XpTar: 1, YpTar: -1, Delta: -50},
	}
	for _, evt := range evts {
		h.Fill(evt)
	}

	if got, want := h.Processed(), int64(len(evts)); got != want {
		t.Fatalf("processed %d events, want %d", got, want)
	}
	for i, h1 := range h.H1 {
		if got, want := h1.Entries(), int64(len(evts)); got != want {
			t.Errorf("%s: got %d entries, want %d", Hist1DDefs[i].Name, got, want)
		}
	}
	for i, h2 := range h.H2 {
		if got, want := h2.Entries(), int64(len(evts)); got != want {
			t.Errorf("%s: got %d entries, want %d", Hist2DDefs[i].Name, got, want)
		}
	}
}

func TestMilliradianScale(t *testing.T) {
	evt := Event{XpFocal: 0.0125, YpFocal: -0.033, XpTar: 0.0421, YpTar: -0.0007}
	for _, tc := range []struct {
		name string
		raw  float32
		got  float64
	}{
		{"xpfp", evt.XpFocal, evt.XpFocalMrad()},
		{"ypfp", evt.YpFocal, evt.YpFocalMrad()},
		{"xptar", evt.XpTar, evt.XpTarMrad()},
		{"yptar", evt.YpTar, evt.YpTarMrad()},
	} {
		want := float64(tc.raw) * 1000
		if math.Abs(tc.got-want) > 1e-9 {
			t.Errorf("%s: got %v mrad, want %v", tc.name, tc.got, want)
		}
	}

	h := NewHistogrammer(nil)
	h.Fill(Event{XpFocal: 0.0125})
	// 2 mrad bins from -60 mrad: 12.5 mrad lands in bin 36.
	if got := h.H1D("h_xpFocalMCRaw").Value(36); got != 1 {
		t.Errorf("12.5 mrad not filled in bin 36 (got %v)", got)
	}
}

func TestBinEdges(t *testing.T) {
	h := NewHistogrammer(nil)
	for _, d := range []float32{-40, 3, 3.5, 39.999, 40, -40.5} {
		h.Fill(Event{Delta: d})
	}

	h1 := h.H1D("h_deltaMCRaw")
	for _, tc := range []struct {
		bin  int
		want float64
	}{
		{0, 1},
		{42, 0},
		{43, 2},
		{79, 1},
	} {
		if got := h1.Value(tc.bin); got != tc.want {
			t.Errorf("bin %d: got %v entries, want %v", tc.bin, got, tc.want)
		}
	}
	if got := h1.Binning.Underflow().Entries(); got != 1 {
		t.Errorf("underflow: got %d, want 1", got)
	}
	if got := h1.Binning.Overflow().Entries(); got != 1 {
		t.Errorf("overflow: got %d, want 1", got)
	}
}

func TestFill2DAxisOrder(t *testing.T) {
	h := NewHistogrammer(nil)
	h.Fill(Event{XFocal: 10, YpFocal: -0.049})

	h2 := h.H2D("h2_xVypFocalMCRaw")
	xbins := Hist2DDefs[2].NBinsX
	// y'fp = -49 mrad on x (bin 5 of 60), xfp = 10 cm on y (bin 100 of 160).
	bin := h2.Binning.Bins[100*xbins+5]
	if got := bin.Entries(); got != 1 {
		t.Errorf("got %d entries in (x=5, y=100), want 1", got)
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	h := NewHistogrammer(log.New(&buf, "", 0))
	for i := 0; i < 2*ProgressInterval+1; i++ {
		h.Fill(Event{})
	}

	want := "10000 Input Monte-Carlo events have been processed...\n" +
		"20000 Input Monte-Carlo events have been processed...\n"
	if got := buf.String(); got != want {
		t.Errorf("progress output:\ngot:\n%s\nwant:\n%s", got, want)
	}

	buf.Reset()
	h = NewHistogrammer(log.New(&buf, "", 0))
	for i := 0; i < ProgressInterval; i++ {
		h.Fill(Event{})
	}
	if strings.Contains(buf.String(), "processed") {
		t.Errorf("unexpected progress output after %d events: %q", ProgressInterval, buf.String())
	}
}
