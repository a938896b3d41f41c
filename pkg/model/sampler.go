package model

import (
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Sampler draws vectors from the fitted joint Gaussian. When the
// covariance is positive definite it samples through the Cholesky-backed
// distmv.Normal. A singular or near-singular covariance (seed smaller
// than the modeled dimension, constant columns) falls back to an
// eigendecomposition with negative eigenvalues clamped at zero, so
// sampling always works and degenerates toward the mean instead of
// failing.
type Sampler struct {
	mean      []float64
	normal    *distmv.Normal
	transform *mat.Dense // eigen fallback: V * sqrt(max(eigenvalue, 0))
	rnd       *rand.Rand
	logger    *zap.Logger
}

// NewSampler builds a sampler for the fitted model. Pass nil logger to
// disable logging.
func NewSampler(j *Joint, seed uint64, logger *zap.Logger) *Sampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("sampler")

	s := &Sampler{
		mean: j.Mean,
		rnd:  rand.New(rand.NewSource(seed)),
	}

	if normal, ok := distmv.NewNormal(j.Mean, j.Cov, rand.NewSource(seed)); ok {
		s.normal = normal
		return s
	}

	logger.Warn("covariance is not positive definite, sampling via eigendecomposition",
		zap.Int("dim", j.Dim()),
		zap.Int("seed_rows", j.Rows))

	var eig mat.EigenSym
	if !eig.Factorize(j.Cov, true) {
		// Factorization of a symmetric matrix essentially never fails;
		// if it does, every draw collapses to the mean.
		logger.Warn("eigendecomposition failed, sampling the mean vector only")
		return s
	}

	d := j.Dim()
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	transform := mat.NewDense(d, d, nil)
	for col := 0; col < d; col++ {
		scale := 0.0
		if values[col] > 0 {
			scale = math.Sqrt(values[col])
		}
		for row := 0; row < d; row++ {
			transform.Set(row, col, vectors.At(row, col)*scale)
		}
	}
	s.transform = transform
	return s
}

// SampleBatch draws n independent vectors, one component per modeled
// column, in the model's column order.
func (s *Sampler) SampleBatch(n int) [][]float64 {
	d := len(s.mean)
	out := make([][]float64, n)

	for i := 0; i < n; i++ {
		row := make([]float64, d)
		switch {
		case s.normal != nil:
			s.normal.Rand(row)
		case s.transform != nil:
			z := make([]float64, d)
			for k := range z {
				z[k] = s.rnd.NormFloat64()
			}
			for a := 0; a < d; a++ {
				sum := s.mean[a]
				for k := 0; k < d; k++ {
					sum += s.transform.At(a, k) * z[k]
				}
				row[a] = sum
			}
		default:
			copy(row, s.mean)
		}
		out[i] = row
	}
	return out
}
