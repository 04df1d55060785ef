// Package correlation computes pairwise Pearson correlation of daily
// returns across a set of assets.
package correlation

import (
	"math"

	"GoldPulse/internal/domain/models"
)

// Pearson computes the correlation coefficient of two return series over
// their overlapping length. Degenerate inputs (fewer than two overlapping
// observations, or zero variance on either side) yield 0, never NaN.
func Pearson(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}

	var meanA, meanB float64
	for i := 0; i < n; i++ {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= float64(n)
	meanB /= float64(n)

	var cov, varA, varB float64
	for i := 0; i < n; i++ {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	denom := math.Sqrt(varA * varB)
	if denom == 0 {
		return 0
	}
	return cov / denom
}

// Returns converts a close-price series into simple daily returns.
func Returns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	out := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		out[i-1] = (closes[i] - closes[i-1]) / closes[i-1]
	}
	return out
}

// Matrix computes the full symmetric correlation matrix of the given
// assets' close-price series. A symbol whose series failed to fetch may
// simply be omitted by the caller; the matrix covers whatever arrived.
func Matrix(symbols []string, closes [][]float64) models.CorrelationMatrix {
	returns := make([][]float64, len(closes))
	for i, c := range closes {
		returns[i] = Returns(c)
	}

	m := make([][]float64, len(symbols))
	for i := range symbols {
		m[i] = make([]float64, len(symbols))
		for j := range symbols {
			if j < i {
				m[i][j] = m[j][i]
				continue
			}
			m[i][j] = Pearson(returns[i], returns[j])
		}
	}

	return models.CorrelationMatrix{Symbols: symbols, Matrix: m}
}
