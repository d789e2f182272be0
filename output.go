package shmsplot

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hbook/rootcnv"
)

// EnsureGroup returns the sub-directory name of dir, creating it if absent.
func EnsureGroup(dir riofs.Directory, name string) (riofs.Directory, error) {
	for _, k := range dir.Keys() {
		if k.Name() != name {
			continue
		}
		obj, err := dir.Get(name)
		if err != nil {
			return nil, fmt.Errorf("shmsplot: could not load %q: %w", name, err)
		}
		sub, ok := obj.(riofs.Directory)
		if !ok {
			return nil, fmt.Errorf("shmsplot: %q is a %s, not a directory", name, k.ClassName())
		}
		return sub, nil
	}

	sub, err := dir.Mkdir(name)
	if err != nil {
		return nil, fmt.Errorf("shmsplot: could not create directory %q: %w", name, err)
	}
	return sub, nil
}

// WriteFile creates a fresh ROOT file at fname holding the histograms of h
// under the group directory. The file is first written next to fname and
// renamed into place once complete, so a failed write never leaves a
// truncated file at fname.
func WriteFile(fname, group string, h *Histogrammer) error {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return fmt.Errorf("shmsplot: could not create output file %q: %w", fname, err)
	}
	tmpName := tmp.Name()
	tmp.Close()

	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	f, err := groot.Create(tmpName)
	if err != nil {
		return fmt.Errorf("shmsplot: could not create output file %q: %w", fname, err)
	}

	dir, err := EnsureGroup(f, group)
	if err != nil {
		f.Close()
		return err
	}

	if err := h.Write(dir); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("shmsplot: could not close output file %q: %w", fname, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("shmsplot: could not set mode of %q: %w", fname, err)
	}
	if err := os.Rename(tmpName, fname); err != nil {
		return fmt.Errorf("shmsplot: could not move output into %q: %w", fname, err)
	}
	committed = true
	return nil
}

// Group is the set of histograms read back from a directory of a ROOT file.
type Group struct {
	H1 map[string]*hbook.H1D
	H2 map[string]*hbook.H2D
}

// Names returns the names of all histograms in g, sorted.
func (g Group) Names() []string {
	names := make([]string, 0, len(g.H1)+len(g.H2))
	for name := range g.H1 {
		names = append(names, name)
	}
	for name := range g.H2 {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadGroup loads every 1- and 2-dim histogram of the group directory of
// the ROOT file fname.
func ReadGroup(fname, group string) (Group, error) {
	g := Group{
		H1: make(map[string]*hbook.H1D),
		H2: make(map[string]*hbook.H2D),
	}

	f, err := groot.Open(fname)
	if err != nil {
		return g, fmt.Errorf("shmsplot: could not open %q: %w", fname, err)
	}
	defer f.Close()

	obj, err := riofs.Dir(f).Get(group)
	if err != nil {
		return g, fmt.Errorf("shmsplot: could not find %q in %q: %w", group, fname, err)
	}
	dir, ok := obj.(riofs.Directory)
	if !ok {
		return g, fmt.Errorf("shmsplot: %q in %q is a %s, not a directory", group, fname, obj.Class())
	}

	for _, k := range dir.Keys() {
		obj, err := dir.Get(k.Name())
		if err != nil {
			return g, fmt.Errorf("shmsplot: could not load %q: %w", k.Name(), err)
		}
		switch h := obj.(type) {
		case rhist.H2:
			g.H2[k.Name()] = rootcnv.H2D(h)
		case rhist.H1:
			g.H1[k.Name()] = rootcnv.H1D(h)
		}
	}
	return g, nil
}
