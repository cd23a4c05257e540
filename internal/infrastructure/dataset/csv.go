package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bnema/datagrid/internal/domain/entity"
)

// ReadCSV reads two columns of a headed CSV into a dataset. An empty
// xColumn uses the row index as x.
func ReadCSV(r io.Reader, name, xColumn, yColumn string) (*entity.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read header: %v", entity.ErrInvalidDataset, name, err)
	}
	index := func(col string) int {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	yi := index(yColumn)
	if yi < 0 {
		return nil, fmt.Errorf("%w: %s: no column %q", entity.ErrInvalidDataset, name, yColumn)
	}
	xi := -1
	if xColumn != "" {
		if xi = index(xColumn); xi < 0 {
			return nil, fmt.Errorf("%w: %s: no column %q", entity.ErrInvalidDataset, name, xColumn)
		}
	}

	ds := &entity.Dataset{Name: name}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", entity.ErrInvalidDataset, name, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[yi]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", entity.ErrInvalidDataset, name, line, err)
		}
		x := float64(len(ds.X))
		if xi >= 0 {
			if x, err = strconv.ParseFloat(strings.TrimSpace(rec[xi]), 64); err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", entity.ErrInvalidDataset, name, line, err)
			}
		}
		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, y)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadCSV reads a dataset from a CSV file.
func LoadCSV(path, name, xColumn, yColumn string) (*entity.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", name, err)
	}
	defer f.Close()
	return ReadCSV(f, name, xColumn, yColumn)
}
