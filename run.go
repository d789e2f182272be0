package shmsplot

import (
	"log"
)

const (
	DefaultInput  = "../input/kpp_shms_488.root"
	DefaultTree   = "h1411"
	DefaultOutput = "../output/mc_488.root"
	DefaultGroup  = "mcRawDir"
)

type config struct {
	tree  string
	group string
	msg   *log.Logger
}

type Option func(*config)

// WithTree sets the name of the input tree.
func WithTree(name string) Option {
	return func(cfg *config) { cfg.tree = name }
}

// WithGroup sets the name of the output directory holding the histograms.
func WithGroup(name string) Option {
	return func(cfg *config) { cfg.group = name }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(msg *log.Logger) Option {
	return func(cfg *config) { cfg.msg = msg }
}

// Run fills every histogram from the events of input and writes them to a
// freshly created output file.
func Run(input, output string, opts ...Option) (*Histogrammer, error) {
	cfg := config{
		tree:  DefaultTree,
		group: DefaultGroup,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := OpenEvents(input, cfg.tree)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	h := NewHistogrammer(cfg.msg)
	err = r.Scan(func(_ int64, evt Event) error {
		h.Fill(evt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cfg.msg != nil {
		cfg.msg.Printf("processed %d of %d Input Monte-Carlo events", h.Processed(), r.Len())
	}

	if err := WriteFile(output, cfg.group, h); err != nil {
		return nil, err
	}
	return h, nil
}
