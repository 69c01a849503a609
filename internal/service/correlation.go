package service

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sulieman-Albuaeshi/survey-application/internal/model"
)

const (
	// identityColumns is the respondent + timestamp prefix every table carries.
	identityColumns = 2
	// largeMatrixThreshold switches the plotting layout hint to "large".
	largeMatrixThreshold = 12
)

// BuildCorrelationMatrix cleans a numeric-format table and computes the
// pairwise Pearson correlation over its question columns. Cleaning: drop the
// two identity columns, coerce cells to numbers treating failures as missing,
// drop columns with no numeric cell at all, and zero-fill the remaining
// gaps. Returns nil when fewer than two usable columns survive — a "no
// result", not an error. Matrix cells that are undefined (a surviving column
// with zero variance) come back as 0.
func BuildCorrelationMatrix(table *model.ResponseTable) *model.CorrelationMatrix {
	if table == nil || len(table.Header) <= identityColumns {
		return nil
	}

	labels := table.Header[identityColumns:]
	cols := len(labels)

	values := make([][]float64, len(table.Rows))
	missing := make([][]bool, len(table.Rows))
	seen := make([]bool, cols)
	for i, row := range table.Rows {
		values[i] = make([]float64, cols)
		missing[i] = make([]bool, cols)
		for j := 0; j < cols; j++ {
			cell := ""
			if idx := j + identityColumns; idx < len(row) {
				cell = row[idx]
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				missing[i][j] = true
				continue
			}
			values[i][j] = v
			seen[j] = true
		}
	}

	// Keep only columns with at least one numeric cell.
	var keep []int
	for j := 0; j < cols; j++ {
		if seen[j] {
			keep = append(keep, j)
		}
	}
	if len(keep) < 2 {
		return nil
	}

	data := mat.NewDense(len(table.Rows), len(keep), nil)
	for i := range values {
		for k, j := range keep {
			if missing[i][j] {
				data.Set(i, k, 0) // missing cells are zero-filled
			} else {
				data.Set(i, k, values[i][j])
			}
		}
	}

	corr := mat.NewSymDense(len(keep), nil)
	stat.CorrelationMatrix(corr, data, nil)

	out := &model.CorrelationMatrix{
		Labels: make([]string, 0, len(keep)),
		Values: make([][]float64, len(keep)),
		Layout: "compact",
	}
	if len(keep) > largeMatrixThreshold {
		out.Layout = "large"
	}
	for _, j := range keep {
		out.Labels = append(out.Labels, labels[j])
	}
	for i := range out.Values {
		out.Values[i] = make([]float64, len(keep))
		for j := 0; j < len(keep); j++ {
			v := corr.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			out.Values[i][j] = round4(v)
		}
	}
	return out
}
