package shmsplot

import (
	"errors"
	"fmt"
	"strings"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
)

var (
	ErrNoTree        = errors.New("no such tree")
	ErrMissingBranch = errors.New("missing branch")
)

// Event is one record of the spectrometer Monte-Carlo ntuple.
// Positions are in cm, angles in radians and Delta in percent.
type Event struct {
	XFocal  float32
	XpFocal float32
	YFocal  float32
	YpFocal float32
	YTar    float32
	XpTar   float32
	YpTar   float32
	Delta   float32
}

// eventBranches maps ntuple branch names onto Event fields.
var eventBranches = []struct {
	name  string
	field func(*Event) *float32
}{
	{"hsxfp", func(e *Event) *float32 { return &e.XFocal }},
	{"hsxpfp", func(e *Event) *float32 { return &e.XpFocal }},
	{"hsyfp", func(e *Event) *float32 { return &e.YFocal }},
	{"hsypfp", func(e *Event) *float32 { return &e.YpFocal }},
	{"hsytar", func(e *Event) *float32 { return &e.YTar }},
	{"hsxptar", func(e *Event) *float32 { return &e.XpTar }},
	{"hsyptar", func(e *Event) *float32 { return &e.YpTar }},
	{"hsdelta", func(e *Event) *float32 { return &e.Delta }},
}

// Branches returns the names of the branches an input tree must provide.
func Branches() []string {
	names := make([]string, len(eventBranches))
	for i, b := range eventBranches {
		names[i] = b.name
	}
	return names
}

func (e *Event) readVars() []rtree.ReadVar {
	rvars := make([]rtree.ReadVar, len(eventBranches))
	for i, b := range eventBranches {
		rvars[i] = rtree.ReadVar{Name: b.name, Value: b.field(e)}
	}
	return rvars
}

func (e Event) XFocalCm() float64    { return float64(e.XFocal) }
func (e Event) XpFocalMrad() float64 { return float64(e.XpFocal) * Rad2Mrad }
func (e Event) YFocalCm() float64    { return float64(e.YFocal) }
func (e Event) YpFocalMrad() float64 { return float64(e.YpFocal) * Rad2Mrad }
func (e Event) YTarCm() float64      { return float64(e.YTar) }
func (e Event) XpTarMrad() float64   { return float64(e.XpTar) * Rad2Mrad }
func (e Event) YpTarMrad() float64   { return float64(e.YpTar) * Rad2Mrad }
func (e Event) DeltaPct() float64    { return float64(e.Delta) }

// EventReader iterates over the events of a tree in a ROOT file.
type EventReader struct {
	f    *riofs.File
	tree rtree.Tree
	evt  Event
}

// OpenEvents opens the named tree of a ROOT file and checks that every
// branch listed by Branches is present.
func OpenEvents(fname, treeName string) (*EventReader, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("shmsplot: could not open input file %q: %w", fname, err)
	}

	obj, err := f.Get(treeName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("shmsplot: %w %q in %q: %w", ErrNoTree, treeName, fname, err)
	}

	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("shmsplot: %w %q in %q: object is a %s", ErrNoTree, treeName, fname, obj.Class())
	}

	var missing []string
	for _, name := range Branches() {
		if tree.Branch(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		f.Close()
		return nil, fmt.Errorf("shmsplot: %w in tree %q: %s", ErrMissingBranch, treeName, strings.Join(missing, ", "))
	}

	return &EventReader{f: f, tree: tree}, nil
}

// Len returns the number of events in the tree.
func (r *EventReader) Len() int64 {
	return r.tree.Entries()
}

// Scan calls fn for each event in entry order. The Event passed to fn is a
// copy and remains valid after fn returns.
func (r *EventReader) Scan(fn func(i int64, evt Event) error) error {
	rr, err := rtree.NewReader(r.tree, r.evt.readVars())
	if err != nil {
		return fmt.Errorf("shmsplot: could not bind branches: %w", err)
	}
	defer rr.Close()

	err = rr.Read(func(ctx rtree.RCtx) error {
		return fn(ctx.Entry, r.evt)
	})
	if err != nil {
		return fmt.Errorf("shmsplot: could not read events: %w", err)
	}
	return nil
}

func (r *EventReader) Close() error {
	return r.f.Close()
}
