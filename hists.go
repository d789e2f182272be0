package shmsplot

import (
	"fmt"
	"io"
	"log"

	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
)

// ProgressInterval is the number of events between progress messages.
const ProgressInterval = 10000

// Hist1DDef describes a 1-dim histogram of one event variable.
// Title follows the ROOT "title; x label; y label" convention.
type Hist1DDef struct {
	Name   string
	Title  string
	NBins  int
	Lo, Hi float64
	X      func(Event) float64
}

// Hist2DDef describes a 2-dim histogram of two event variables.
type Hist2DDef struct {
	Name     string
	Title    string
	NBinsX   int
	XLo, XHi float64
	NBinsY   int
	YLo, YHi float64
	X, Y     func(Event) float64
}

var Hist1DDefs = []Hist1DDef{
	{"h_xFocalMCRaw", "Input Monte-Carlo: X_{fp}; X_{fp} (cm); Number of Entries / 5 mm", 160, -40, 40, Event.XFocalCm},
	{"h_xpFocalMCRaw", "Input Monte-Carlo: X'_{fp}; X'_{fp} (mrad); Number of Entries / 2 mrad", 60, -60, 60, Event.XpFocalMrad},
	{"h_yFocalMCRaw", "Input Monte-Carlo: Y_{fp}; Y_{fp} (cm); Number of Entries / 5 mm", 160, -40, 40, Event.YFocalCm},
	{"h_ypFocalMCRaw", "Input Monte-Carlo: Y'_{fp}; Y'_{fp} (mrad); Number of Entries / 2 mrad", 60, -60, 60, Event.YpFocalMrad},
	{"h_yTarMCRaw", "Input Monte-Carlo: Y_{tar}; Y_{tar} (cm); Number of Entries / 1 mm", 100, -5, 5, Event.YTarCm},
	{"h_xpTarMCRaw", "Input Monte-Carlo: X'_{tar}; X'_{tar} (mrad); Number of Entries / 2 mrad", 60, -60, 60, Event.XpTarMrad},
	{"h_ypTarMCRaw", "Input Monte-Carlo: Y'_{tar}; Y'_{tar} (mrad); Number of Entries / 2 mrad", 60, -60, 60, Event.YpTarMrad},
	{"h_deltaMCRaw", "Input Monte-Carlo: #delta; #delta (%); Number of Entries", 80, -40, 40, Event.DeltaPct},
}

var Hist2DDefs = []Hist2DDef{
	{"h2_xVxpFocalMCRaw", "Input Monte-Carlo: X_{fp} vs. X'_{fp}; X'_{fp} (mrad) / 2 mrad; X_{fp} (cm) / 5 mm",
		100, -100, 100, 160, -40, 40, Event.XpFocalMrad, Event.XFocalCm},
	{"h2_xVyFocalMCRaw", "Input Monte-Carlo: X_{fp} vs. Y_{fp}; Y_{fp} (cm) / 5 mm; X_{fp} (cm) / 5 mm",
		160, -40, 40, 160, -40, 40, Event.YFocalCm, Event.XFocalCm},
	{"h2_xVypFocalMCRaw", "Input Monte-Carlo: X_{fp} vs. Y'_{fp}; Y'_{fp} (mrad) / 2 mrad; X_{fp} (cm) / 5 mm",
		60, -60, 60, 160, -40, 40, Event.YpFocalMrad, Event.XFocalCm},
	{"h2_xpVyFocalMCRaw", "Input Monte-Carlo: X'_{fp} vs. Y_{fp}; Y_{fp} (cm) / 5 mm; X'_{fp} (mrad) / 2 mrad",
		160, -40, 40, 100, -100, 100, Event.YFocalCm, Event.XpFocalMrad},
	{"h2_xpVypFocalMCRaw", "Input Monte-Carlo: X'_{fp} vs. Y'_{fp}; Y'_{fp} (mrad) / 2 mrad; X'_{fp} (mrad) / 2 mrad",
		60, -60, 60, 100, -100, 100, Event.YpFocalMrad, Event.XpFocalMrad},
	{"h2_yVypFocalMCRaw", "Input Monte-Carlo: Y_{fp} vs. Y'_{fp}; Y'_{fp} (mrad) / 2 mrad; Y_{fp} (cm) / 5 mm",
		60, -60, 60, 160, -40, 40, Event.YpFocalMrad, Event.YFocalCm},
	{"h2_yVxpTarMCRaw", "Input Monte-Carlo: Y_{tar} vs. X'_{tar}; X'_{tar} (mrad) / 1 mrad; Y_{tar} (cm) / 1 mm",
		200, -100, 100, 100, -5, 5, Event.XpTarMrad, Event.YTarCm},
	{"h2_yVypTarMCRaw", "Input Monte-Carlo: Y_{tar} vs. Y'_{tar}; Y'_{tar} (mrad) / 1 mrad; Y_{tar} (cm) / 1 mm",
		200, -100, 100, 100, -5, 5, Event.YpTarMrad, Event.YTarCm},
	{"h2_xpVypTarMCRaw", "Input Monte-Carlo: X'_{tar} vs. Y'_{tar}; Y'_{tar} (mrad) / 2 mrad; X'_{tar} (mrad) / 2 mrad",
		60, -60, 60, 100, -100, 100, Event.YpTarMrad, Event.XpTarMrad},
}

// Histogrammer holds the histograms booked from Hist1DDefs and Hist2DDefs,
// in the same order.
type Histogrammer struct {
	H1 []*hbook.H1D
	H2 []*hbook.H2D

	n   int64
	msg *log.Logger
}

// NewHistogrammer books every histogram. Progress messages go to msg;
// a nil msg discards them.
func NewHistogrammer(msg *log.Logger) *Histogrammer {
	if msg == nil {
		msg = log.New(io.Discard, "", 0)
	}

	h := &Histogrammer{
		H1:  make([]*hbook.H1D, len(Hist1DDefs)),
		H2:  make([]*hbook.H2D, len(Hist2DDefs)),
		msg: msg,
	}
	for i, def := range Hist1DDefs {
		h.H1[i] = hbook.NewH1D(def.NBins, def.Lo, def.Hi)
		h.H1[i].Annotation()["name"] = def.Name
		h.H1[i].Annotation()["title"] = def.Title
	}
	for i, def := range Hist2DDefs {
		h.H2[i] = hbook.NewH2D(def.NBinsX, def.XLo, def.XHi, def.NBinsY, def.YLo, def.YHi)
		h.H2[i].Annotation()["name"] = def.Name
		h.H2[i].Annotation()["title"] = def.Title
	}
	return h
}

// Fill adds one unweighted entry per histogram for evt.
func (h *Histogrammer) Fill(evt Event) {
	if h.n%ProgressInterval == 0 && h.n != 0 {
		h.msg.Printf("%d Input Monte-Carlo events have been processed...", h.n)
	}
	h.n++

	for i, def := range Hist1DDefs {
		h.H1[i].Fill(def.X(evt), 1)
	}
	for i, def := range Hist2DDefs {
		h.H2[i].Fill(def.X(evt), def.Y(evt), 1)
	}
}

// Processed returns the number of events filled so far.
func (h *Histogrammer) Processed() int64 {
	return h.n
}

func (h *Histogrammer) H1D(name string) *hbook.H1D {
	for i, def := range Hist1DDefs {
		if def.Name == name {
			return h.H1[i]
		}
	}
	return nil
}

func (h *Histogrammer) H2D(name string) *hbook.H2D {
	for i, def := range Hist2DDefs {
		if def.Name == name {
			return h.H2[i]
		}
	}
	return nil
}

// Write stores every histogram into dir as TH1F/TH2F. It refuses to add a
// second cycle for a name dir already holds.
func (h *Histogrammer) Write(dir riofs.Directory) error {
	existing := make(map[string]bool)
	for _, k := range dir.Keys() {
		existing[k.Name()] = true
	}

	put := func(name string, obj root.Object) error {
		if existing[name] {
			return fmt.Errorf("shmsplot: directory already holds %q", name)
		}
		if err := dir.Put(name, obj); err != nil {
			return fmt.Errorf("shmsplot: could not write %q: %w", name, err)
		}
		return nil
	}

	for i, def := range Hist1DDefs {
		if err := put(def.Name, rhist.NewH1FFrom(h.H1[i])); err != nil {
			return err
		}
	}
	for i, def := range Hist2DDefs {
		if err := put(def.Name, rhist.NewH2FFrom(h.H2[i])); err != nil {
			return err
		}
	}
	return nil
}
