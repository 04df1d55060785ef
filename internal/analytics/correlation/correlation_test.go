package correlation

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPearsonPerfectPositive(t *testing.T) {
	a := []float64{0.01, 0.02, -0.01, 0.03}
	b := []float64{0.02, 0.04, -0.02, 0.06}

	if got := Pearson(a, b); !almost(got, 1) {
		t.Fatalf("expected correlation 1, got %v", got)
	}
}

func TestPearsonPerfectNegative(t *testing.T) {
	a := []float64{0.01, 0.02, -0.01, 0.03}
	b := []float64{-0.01, -0.02, 0.01, -0.03}

	if got := Pearson(a, b); !almost(got, -1) {
		t.Fatalf("expected correlation -1, got %v", got)
	}
}

func TestPearsonConstantSeries(t *testing.T) {
	a := []float64{0, 0, 0, 0}
	b := []float64{0.01, -0.02, 0.03, 0.01}

	if got := Pearson(a, b); got != 0 {
		t.Fatalf("constant series should correlate at 0, got %v", got)
	}
}

func TestPearsonTooFewObservations(t *testing.T) {
	if got := Pearson([]float64{0.01}, []float64{0.02}); got != 0 {
		t.Fatalf("single observation should yield 0, got %v", got)
	}
	if got := Pearson(nil, nil); got != 0 {
		t.Fatalf("empty input should yield 0, got %v", got)
	}
}

func TestPearsonUsesOverlapOnly(t *testing.T) {
	a := []float64{0.01, 0.02, -0.01, 0.03, 0.05, -0.04}
	b := []float64{0.02, 0.04, -0.02, 0.06}

	if got := Pearson(a, b); !almost(got, 1) {
		t.Fatalf("overlap of proportional series should yield 1, got %v", got)
	}
}

func TestReturns(t *testing.T) {
	got := Returns([]float64{100, 110, 99})
	if len(got) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(got))
	}
	if !almost(got[0], 0.10) {
		t.Fatalf("first return = %v, want 0.10", got[0])
	}
	if !almost(got[1], -0.10) {
		t.Fatalf("second return = %v, want -0.10", got[1])
	}

	if Returns([]float64{100}) != nil {
		t.Fatal("single price should produce no returns")
	}
}

func TestMatrixShapeAndSymmetry(t *testing.T) {
	symbols := []string{"GC=F", "GLD", "SPY"}
	closes := [][]float64{
		{100, 102, 101, 105, 104},
		{50, 51, 50.5, 52.5, 52},
		{400, 398, 405, 401, 410},
	}

	m := Matrix(symbols, closes)
	if len(m.Matrix) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(m.Matrix))
	}
	for i := range m.Matrix {
		if len(m.Matrix[i]) != 3 {
			t.Fatalf("row %d has %d columns", i, len(m.Matrix[i]))
		}
		if !almost(m.Matrix[i][i], 1) {
			t.Fatalf("diagonal [%d][%d] = %v, want 1", i, i, m.Matrix[i][i])
		}
		for j := range m.Matrix[i] {
			if m.Matrix[i][j] != m.Matrix[j][i] {
				t.Fatalf("matrix not symmetric at (%d,%d)", i, j)
			}
			if m.Matrix[i][j] < -1-1e-9 || m.Matrix[i][j] > 1+1e-9 {
				t.Fatalf("coefficient out of range at (%d,%d): %v", i, j, m.Matrix[i][j])
			}
		}
	}
}

func TestMatrixProportionalSeries(t *testing.T) {
	symbols := []string{"GLD", "IAU"}
	closes := [][]float64{
		{100, 110, 99, 120},
		{10, 11, 9.9, 12},
	}

	m := Matrix(symbols, closes)
	if !almost(m.Matrix[0][1], 1) {
		t.Fatalf("proportional series should correlate at 1, got %v", m.Matrix[0][1])
	}
}
