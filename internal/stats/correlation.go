package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Matrix is a pairwise Pearson correlation matrix. Data[i][j] is the
// correlation between column i and column j; the matrix is symmetric with
// 1.0 on the diagonal for columns with nonzero variance, and NaN where a
// column has zero variance (or too few paired observations) in the
// current subset.
type Matrix struct {
	Labels []string
	Data   [][]float64
}

// At returns the correlation between the i-th and j-th columns.
func (m Matrix) At(i, j int) float64 {
	return m.Data[i][j]
}

// CorrelationMatrix computes the pairwise Pearson correlation of the
// given columns. Rows where either side of a pair is null are excluded
// pairwise, the way a tabular library computes .corr() over nullable
// columns. All columns must have equal length.
func CorrelationMatrix(labels []string, columns [][]float64) Matrix {
	n := len(columns)
	data := make([][]float64, n)
	for i := range data {
		data[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			r := pairwiseCorrelation(columns[i], columns[j])
			data[i][j] = r
			data[j][i] = r
		}
	}

	return Matrix{Labels: labels, Data: data}
}

// pairwiseCorrelation computes Pearson's r over the rows where both
// columns have a value. Fewer than two paired rows, or zero variance on
// either side, yields NaN.
func pairwiseCorrelation(xs, ys []float64) float64 {
	px := make([]float64, 0, len(xs))
	py := make([]float64, 0, len(ys))
	for k := range xs {
		if math.IsNaN(xs[k]) || math.IsNaN(ys[k]) {
			continue
		}
		px = append(px, xs[k])
		py = append(py, ys[k])
	}
	if len(px) < 2 {
		return math.NaN()
	}
	return stat.Correlation(px, py, nil)
}
