package shmsplot

import (
	"fmt"
	"path/filepath"
	"strings"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// splitTitle splits a ROOT "title; x label; y label" string.
func splitTitle(s string) (title, xlabel, ylabel string) {
	parts := strings.SplitN(s, ";", 3)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	parts = append(parts, "", "")
	return parts[0], parts[1], parts[2]
}

func newPlot(ann hbook.Annotation) *hplot.Plot {
	title, _ := ann["title"].(string)
	p := hplot.New()
	p.Title.Text, p.X.Label.Text, p.Y.Label.Text = splitTitle(title)
	p.X.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	p.Y.Tick.Marker = PreciseTicks{NSuggestedTicks: 5}
	return p
}

// PlotH1D saves h as a line histogram with its summary statistics.
func PlotH1D(h *hbook.H1D, fname string) error {
	p := newPlot(h.Annotation())

	hh := hplot.NewH1D(h)
	hh.FillColor = nil
	hh.Infos.Style = hplot.HInfoSummary
	p.Add(hh)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, fname); err != nil {
		return fmt.Errorf("shmsplot: could not save %q: %w", fname, err)
	}
	return nil
}

// PlotH2D saves h as a heat map.
func PlotH2D(h *hbook.H2D, fname string) error {
	p := newPlot(h.Annotation())

	pal := moreland.ExtendedBlackBody().Palette(255)
	p.Add(hplot.NewH2D(h, pal))

	if err := p.Save(6*vg.Inch, 6*vg.Inch, fname); err != nil {
		return fmt.Errorf("shmsplot: could not save %q: %w", fname, err)
	}
	return nil
}

// SavePlots writes one image per histogram of g into dir, named after the
// histogram with the given extension (e.g. ".png").
func SavePlots(g Group, dir, ext string) ([]string, error) {
	var files []string
	for _, name := range g.Names() {
		fname := filepath.Join(dir, name+ext)
		var err error
		if h, ok := g.H1[name]; ok {
			err = PlotH1D(h, fname)
		} else {
			err = PlotH2D(g.H2[name], fname)
		}
		if err != nil {
			return files, err
		}
		files = append(files, fname)
	}
	return files, nil
}
