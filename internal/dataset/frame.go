package dataset

import (
	"fmt"

	"github.com/formarank/formarank/internal/apperr"
)

// Frame is an in-memory table of named columns over a fixed row count.
// Numeric columns hold metric targets, masks and the composite score;
// categorical columns hold grouping keys.
type Frame struct {
	rows int
	nums map[string][]float64
	cats map[string][]string
}

func NewFrame(rows int) *Frame {
	return &Frame{
		rows: rows,
		nums: make(map[string][]float64),
		cats: make(map[string][]string),
	}
}

func (f *Frame) Len() int {
	return f.rows
}

func (f *Frame) SetNumeric(name string, values []float64) error {
	if len(values) != f.rows {
		return fmt.Errorf("column %q has %d values, frame has %d rows", name, len(values), f.rows)
	}
	f.nums[name] = values
	return nil
}

func (f *Frame) SetCategorical(name string, values []string) error {
	if len(values) != f.rows {
		return fmt.Errorf("column %q has %d values, frame has %d rows", name, len(values), f.rows)
	}
	f.cats[name] = values
	return nil
}

func (f *Frame) Numeric(name string) ([]float64, error) {
	col, ok := f.nums[name]
	if !ok {
		return nil, apperr.NewDataShape(name, fmt.Sprintf("numeric column %q not found", name))
	}
	return col, nil
}

func (f *Frame) Categorical(name string) ([]string, error) {
	col, ok := f.cats[name]
	if !ok {
		return nil, apperr.NewDataShape(name, fmt.Sprintf("categorical column %q not found", name))
	}
	return col, nil
}

func (f *Frame) HasNumeric(name string) bool {
	_, ok := f.nums[name]
	return ok
}

func (f *Frame) HasCategorical(name string) bool {
	_, ok := f.cats[name]
	return ok
}

// clone returns a shallow copy: column slices are shared, the column
// maps are not. Callers install replacement columns on the copy without
// touching the original.
func (f *Frame) clone() *Frame {
	c := NewFrame(f.rows)
	for name, col := range f.nums {
		c.nums[name] = col
	}
	for name, col := range f.cats {
		c.cats[name] = col
	}
	return c
}
