// Package model fits a joint Gaussian to the seed's modeled columns and
// samples synthetic vectors from it in batches.
package model

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/veldt-labs/synthgen/pkg/codec"
	"github.com/veldt-labs/synthgen/pkg/dataset"
	"github.com/veldt-labs/synthgen/pkg/schema"
)

// Joint is the fitted model: a mean vector and sample covariance over the
// modeled columns (time-independent hours, other numerics, encoded
// categoricals). It is fit once per run and never updated.
type Joint struct {
	Columns []string
	Mean    []float64
	Cov     *mat.SymDense
	Rows    int
}

// Dim returns the number of modeled columns.
func (j *Joint) Dim() int {
	return len(j.Columns)
}

// Fit estimates the joint Gaussian from the seed. Categorical columns are
// encoded through the codec before the moments are computed. A seed with a
// single row (or any constant column) yields a zero covariance in that
// direction; the sampler treats that as a degenerate distribution, not an
// error.
func Fit(t *dataset.Table, roles *schema.Roles, cdc *codec.Codec) (*Joint, error) {
	cols := roles.Modeled()
	n := t.NumRows()
	d := len(cols)

	categorical := make(map[string]bool, len(roles.Categorical))
	for _, name := range roles.Categorical {
		categorical[name] = true
	}

	data := make([]float64, n*d)
	for jcol, name := range cols {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("modeled column %s not in seed", name)
		}
		for i, row := range t.Rows {
			var v float64
			if categorical[name] {
				code, err := cdc.Encode(name, row[idx])
				if err != nil {
					return nil, fmt.Errorf("encode seed: %w", err)
				}
				v = float64(code)
			} else {
				parsed, err := strconv.ParseFloat(row[idx], 64)
				if err != nil {
					return nil, fmt.Errorf("column %s row %d: parse %q: %w", name, i, row[idx], err)
				}
				v = parsed
			}
			data[i*d+jcol] = v
		}
	}

	x := mat.NewDense(n, d, data)

	mean := make([]float64, d)
	for jcol := 0; jcol < d; jcol++ {
		mean[jcol] = stat.Mean(mat.Col(nil, jcol, x), nil)
	}

	// Sample covariance needs at least two rows; with one row every
	// direction is degenerate and the zero matrix is the honest estimate.
	cov := mat.NewSymDense(d, nil)
	if n >= 2 {
		stat.CovarianceMatrix(cov, x, nil)
	}

	return &Joint{
		Columns: cols,
		Mean:    mean,
		Cov:     cov,
		Rows:    n,
	}, nil
}
