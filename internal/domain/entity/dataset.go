package entity

import (
	"fmt"
	"math"
	"slices"
)

// Dataset is a named (x, y) series.
type Dataset struct {
	Name string
	X    []float64
	Y    []float64
}

// Validate checks the dataset has a name and at least one point, that the
// series lengths match, and that every value is finite.
func (d *Dataset) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDataset)
	}
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: %s: len(x)=%d len(y)=%d", ErrInvalidDataset, d.Name, len(d.X), len(d.Y))
	}
	if len(d.X) == 0 {
		return fmt.Errorf("%w: %s: no points", ErrInvalidDataset, d.Name)
	}
	for i := range d.X {
		if !IsFinite(d.X[i]) || !IsFinite(d.Y[i]) {
			return fmt.Errorf("%w: %s: point %d (%g, %g) is not finite", ErrInvalidDataset, d.Name, i, d.X[i], d.Y[i])
		}
	}
	return nil
}

// IsFinite reports whether v is neither NaN nor an infinity.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// DataFrame is an ordered collection of named datasets.
type DataFrame struct {
	names []string
	sets  map[string]*Dataset
}

// NewDataFrame creates an empty frame.
func NewDataFrame() *DataFrame {
	return &DataFrame{sets: make(map[string]*Dataset)}
}

// Add inserts or replaces a dataset. Replacing keeps the original position.
func (f *DataFrame) Add(ds *Dataset) error {
	if err := ds.Validate(); err != nil {
		return err
	}
	if _, ok := f.sets[ds.Name]; !ok {
		f.names = append(f.names, ds.Name)
	}
	f.sets[ds.Name] = ds
	return nil
}

// Get returns the dataset with the given name.
func (f *DataFrame) Get(name string) (*Dataset, error) {
	ds, ok := f.sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}
	return ds, nil
}

// Names returns the dataset names in insertion order.
func (f *DataFrame) Names() []string {
	return slices.Clone(f.names)
}

// Len returns the number of datasets.
func (f *DataFrame) Len() int {
	return len(f.names)
}
