package model

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Modes holds the free vibration solution sorted by ascending eigenvalue
type Modes struct {
	Eigenvalues []float64  // ω²
	Frequencies []float64  // Hz
	Shapes      *mat.Dense // columns in global DOF order
	Mass        MassKind
}

func (md *Modes) Len() int { return len(md.Eigenvalues) }

// Shape returns mode i
func (md *Modes) Shape(i int) []float64 {
	return mat.Col(nil, i, md.Shapes)
}

// SolveModal solves the eigenproblem of M⁻¹K with the supports applied to
// K and the mass kind from the configuration. A penalized DOF is decoupled
// from the rest of the system and only contributes an eigenvalue of
// penalty/mass, so those DOFs are dropped: the problem is solved on the
// free DOFs and the shapes are zero at the supports.
func (m *Model) SolveModal() (*Modes, error) {
	Kc, _, err := m.ApplyConstraints(m.Stiffness(), nil)
	if err != nil {
		return nil, err
	}
	constrained, err := m.ConstrainedDOFs()
	if err != nil {
		return nil, err
	}
	free := m.freeDOFs(constrained)
	nf := len(free)
	if nf == 0 {
		return nil, fmt.Errorf("%w: every DOF is constrained", ErrEigenFailed)
	}
	M := m.Mass(m.cfg.Mass)
	Kf, Mf := submatrix(Kc, free), submatrix(M, free)
	for i, g := range free {
		if !(Mf.At(i, i) > 0) {
			return nil, fmt.Errorf("%w: DOF %d has mass %g", ErrSingularMass, g, Mf.At(i, i))
		}
	}

	var A mat.Dense
	switch m.cfg.Mass {
	case Lumped:
		A.CloneFrom(Kf)
		for i := 0; i < nf; i++ {
			mi := Mf.At(i, i)
			for j := 0; j < nf; j++ {
				A.Set(i, j, A.At(i, j)/mi)
			}
		}
	default:
		if err = A.Solve(Mf, Kf); err != nil {
			var cond mat.Condition
			if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
				return nil, fmt.Errorf("%w: %v", ErrSingularMass, err)
			}
			m.logf("mass matrix condition number %.3e", float64(cond))
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(&A, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	order := make([]int, nf)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return real(vals[order[a]]) < real(vals[order[b]])
	})
	var lmax float64
	for _, v := range vals {
		lmax = math.Max(lmax, math.Abs(real(v)))
	}

	md := &Modes{
		Eigenvalues: make([]float64, nf),
		Frequencies: make([]float64, nf),
		Shapes:      mat.NewDense(m.ndof, nf, nil),
		Mass:        m.cfg.Mass,
	}
	for j, k := range order {
		lambda := real(vals[k])
		if im := imag(vals[k]); math.Abs(im) > 1e-8*lmax {
			m.logf("mode %d has imaginary part %.3e, kept real part", j, im)
		}
		if lambda < 0 {
			m.logf("mode %d eigenvalue %.3e clamped to zero", j, lambda)
			lambda = 0
		}
		md.Eigenvalues[j] = lambda
		md.Frequencies[j] = math.Sqrt(lambda) / (2 * math.Pi)

		shape := make([]float64, nf)
		for i := range shape {
			shape[i] = real(vecs.At(i, k))
		}
		normalizeShape(shape)
		for i, g := range free {
			md.Shapes.Set(g, j, shape[i])
		}
	}
	if len(constrained) != 0 {
		m.logf("modal solve on %d free DOFs, %d penalized DOFs decoupled", nf, m.ndof-nf)
	}
	return md, nil
}

func (m *Model) freeDOFs(constrained []int) []int {
	fixed := make(map[int]bool, len(constrained))
	for _, g := range constrained {
		fixed[g] = true
	}
	free := make([]int, 0, m.ndof-len(fixed))
	for g := 0; g < m.ndof; g++ {
		if !fixed[g] {
			free = append(free, g)
		}
	}
	return free
}

func submatrix(a mat.Matrix, idx []int) *mat.Dense {
	s := mat.NewDense(len(idx), len(idx), nil)
	for i, gi := range idx {
		for j, gj := range idx {
			s.Set(i, j, a.At(gi, gj))
		}
	}
	return s
}

// normalizeShape scales to unit max norm with the largest entry positive
func normalizeShape(v []float64) {
	var big float64
	for _, x := range v {
		if math.Abs(x) > math.Abs(big) {
			big = x
		}
	}
	if big == 0 {
		return
	}
	floats.Scale(1/big, v)
}
