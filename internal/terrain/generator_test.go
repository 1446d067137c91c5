package terrain

import (
	"errors"
	"testing"
)

func TestNewGeneratorInvalidResolution(t *testing.T) {
	_, err := NewGenerator(Resolution{Rows: -1, Cols: 10}, NewPerlinSampler(1))
	if !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("error = %v, expected ErrInvalidResolution", err)
	}
}

func TestGeneratorChainingReturnsSameHandle(t *testing.T) {
	gen, err := NewGenerator(Resolution{Rows: 8, Cols: 8}, NewPerlinSampler(1))
	if err != nil {
		t.Fatal(err)
	}
	if gen.Reset() != gen || gen.Perturbate(testLayers) != gen || gen.Cutoff(testLayers[:1]) != gen {
		t.Error("mutating calls must return the same generator handle")
	}
}

func TestGeneratorResetFlattens(t *testing.T) {
	gen, err := NewGenerator(Resolution{Rows: 8, Cols: 8}, NewPerlinSampler(5))
	if err != nil {
		t.Fatal(err)
	}
	gen.Perturbate(testLayers).Reset()
	grid := gen.Grid()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if h := grid.At(row, col); h != 0 {
				t.Fatalf("cell (%d,%d) = %v after Reset, expected 0", row, col, h)
			}
		}
	}
}

// TestGeneratorResetPerturbateIdempotent verifies reset + perturbate yields
// the same grid every time.
func TestGeneratorResetPerturbateIdempotent(t *testing.T) {
	gen, err := NewGenerator(Resolution{Rows: 24, Cols: 24}, NewPerlinSampler(777))
	if err != nil {
		t.Fatal(err)
	}

	first := gen.Reset().Perturbate(testLayers).Grid().Clone()
	second := gen.Reset().Perturbate(testLayers).Grid().Clone()

	if !first.Equal(second) {
		t.Error("reset + perturbate should be idempotent, grids differ")
	}
}

// TestGeneratorPerturbateAccumulates verifies successive perturbate calls add
// onto the current grid rather than replacing it.
func TestGeneratorPerturbateAccumulates(t *testing.T) {
	gen, err := NewGenerator(Resolution{Rows: 12, Cols: 12}, NewValueSampler(321))
	if err != nil {
		t.Fatal(err)
	}

	once := gen.Reset().Perturbate(testLayers).Grid().Clone()
	twice := gen.Reset().Perturbate(testLayers).Perturbate(testLayers).Grid()

	for row := 0; row < 12; row++ {
		for col := 0; col < 12; col++ {
			if got, want := twice.At(row, col), 2*once.At(row, col); got != want {
				t.Fatalf("cell (%d,%d) = %v after two perturbates, expected %v", row, col, got, want)
			}
		}
	}
}
