package library

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// GaussLegendre returns the n point Gauss-Legendre rule on [-1,1], exact
// for polynomials up to degree 2n-1. Points are ascending.
//
// Golub-Welsch: the points are the eigenvalues of the symmetric
// tridiagonal Jacobi matrix of the Legendre recurrence, with off diagonal
// k/√(4k²-1); each weight is 2·v₀², v₀ the first component of the
// normalized eigenvector.
func GaussLegendre(n int) (X, W []float64) {
	if n < 1 {
		panic("GaussLegendre needs at least one point")
	}
	if n == 1 {
		return []float64{0}, []float64{2}
	}
	J := mat.NewSymDense(n, nil)
	for k := 1; k < n; k++ {
		kf := float64(k)
		J.SetSym(k-1, k, kf/math.Sqrt(4*kf*kf-1))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(J, true); !ok {
		panic("Gauss-Legendre eigen decomposition failed")
	}
	X = eig.Values(nil)
	var V mat.Dense
	eig.VectorsTo(&V)
	W = make([]float64, n)
	for i := range W {
		v := V.At(0, i)
		W[i] = 2 * v * v
	}

	// the diagonal is zero, so the rule is symmetric about 0; snap the
	// round-off of the middle point
	if n%2 == 1 {
		X[n/2] = 0
	}
	sort.Sort(byPoint{X, W})
	return X, W
}

type byPoint struct{ x, w []float64 }

func (p byPoint) Len() int           { return len(p.x) }
func (p byPoint) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p byPoint) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.w[i], p.w[j] = p.w[j], p.w[i]
}
