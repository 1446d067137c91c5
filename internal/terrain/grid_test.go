package terrain

import (
	"errors"
	"testing"
)

func TestNewGridFillsInitialValue(t *testing.T) {
	cases := []struct {
		res     Resolution
		initial float64
	}{
		{Resolution{Rows: 1, Cols: 1}, 0},
		{Resolution{Rows: 3, Cols: 4}, 0},
		{Resolution{Rows: 4, Cols: 3}, 5.5},
		{Resolution{Rows: 16, Cols: 16}, -2},
	}
	for _, tc := range cases {
		g, err := NewGrid(tc.res, tc.initial)
		if err != nil {
			t.Fatalf("NewGrid(%dx%d) failed: %v", tc.res.Rows, tc.res.Cols, err)
		}
		for row := 0; row < tc.res.Rows; row++ {
			for col := 0; col < tc.res.Cols; col++ {
				if h := g.At(row, col); h != tc.initial {
					t.Errorf("grid %dx%d cell (%d,%d) = %v, expected %v",
						tc.res.Rows, tc.res.Cols, row, col, h, tc.initial)
				}
			}
		}
	}
}

func TestNewGridInvalidResolution(t *testing.T) {
	invalid := []Resolution{
		{Rows: 0, Cols: 5},
		{Rows: 5, Cols: 0},
		{Rows: -1, Cols: 5},
		{Rows: 5, Cols: -3},
		{Rows: 0, Cols: 0},
	}
	for _, res := range invalid {
		if _, err := NewGrid(res, 0); !errors.Is(err, ErrInvalidResolution) {
			t.Errorf("NewGrid(%dx%d) error = %v, expected ErrInvalidResolution", res.Rows, res.Cols, err)
		}
	}
}

func TestGridSetAt(t *testing.T) {
	g, err := NewGrid(Resolution{Rows: 2, Cols: 3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(1, 2, 7.25)
	if h := g.At(1, 2); h != 7.25 {
		t.Errorf("At(1,2) = %v, expected 7.25", h)
	}
	if h := g.At(0, 0); h != 0 {
		t.Errorf("At(0,0) = %v, expected 0", h)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(Resolution{Rows: 2, Cols: 2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal its source")
	}
	c.Set(0, 0, 42)
	if g.At(0, 0) != 1 {
		t.Error("mutating a clone must not affect the source grid")
	}
}

func TestGridMinMax(t *testing.T) {
	g, err := NewGrid(Resolution{Rows: 2, Cols: 2}, 0)
	if err != nil {
		t.Fatal(err)
	}
	g.Set(0, 0, -3)
	g.Set(0, 1, 10)
	g.Set(1, 0, 5)
	g.Set(1, 1, 1.5)
	min, max := g.MinMax()
	if min != -3 || max != 10 {
		t.Errorf("MinMax() = (%v, %v), expected (-3, 10)", min, max)
	}
}
