package element

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Congruent returns Tᵀ·k·T
func Congruent(T, k mat.Matrix) *mat.Dense {
	var kT, res mat.Dense
	kT.Mul(k, T)
	res.Mul(T.T(), &kT)
	return &res
}

// Identity returns the n×n identity as a Dense so callers may modify it
func Identity(n int) *mat.Dense {
	I := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		I.Set(i, i, 1)
	}
	return I
}

// IsSymmetric compares m against its transpose entrywise, relative to the
// largest magnitude in m
func IsSymmetric(m mat.Matrix, tol float64) bool {
	r, c := m.Dims()
	if r != c {
		return false
	}
	scale := math.Max(mat.Norm(m, math.Inf(1)), 1)
	for i := 0; i < r; i++ {
		for j := i + 1; j < c; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > tol*scale {
				return false
			}
		}
	}
	return true
}

// IsOrthonormalRows checks T·Tᵀ = I
func IsOrthonormalRows(T mat.Matrix, tol float64) bool {
	r, _ := T.Dims()
	var TTt mat.Dense
	TTt.Mul(T, T.T())
	return mat.EqualApprox(&TTt, Identity(r), tol)
}

// DirectionCosines is the unit vector from i to j in the space of the
// nodes (2 or 3 components)
func DirectionCosines(i, j *node.Node) []float64 {
	ci, cj := i.Coords(), j.Coords()
	L := i.Distance(j)
	n := len(ci)
	if len(cj) < n {
		n = len(cj)
	}
	dc := make([]float64, n)
	for k := 0; k < n; k++ {
		dc[k] = (cj[k] - ci[k]) / L
	}
	return dc
}

// FrameRotation builds the 3×3 rotation whose rows are the local x, y, z
// axes expressed in global coordinates. Local x runs from i to j. The
// auxiliary vector is global Z, or global Y when the member is parallel
// to Z, so the cross products never degenerate.
func FrameRotation(i, j *node.Node) *mat.Dense {
	dc := DirectionCosines(i, j)
	ex := mgl64.Vec3{dc[0], dc[1], dc[2]}
	aux := mgl64.Vec3{0, 0, 1}
	if aux.Cross(ex).Len() < 1.e-9 {
		aux = mgl64.Vec3{0, 1, 0}
	}
	ey := aux.Cross(ex).Normalize()
	ez := ex.Cross(ey).Normalize()

	R := mat.NewDense(3, 3, nil)
	for r, v := range []mgl64.Vec3{ex, ey, ez} {
		R.SetRow(r, v[:])
	}
	return R
}

// BlockDiagonal repeats block n times along the diagonal
func BlockDiagonal(block mat.Matrix, n int) *mat.Dense {
	br, bc := block.Dims()
	B := mat.NewDense(n*br, n*bc, nil)
	for k := 0; k < n; k++ {
		for i := 0; i < br; i++ {
			for j := 0; j < bc; j++ {
				B.Set(k*br+i, k*bc+j, block.At(i, j))
			}
		}
	}
	return B
}
