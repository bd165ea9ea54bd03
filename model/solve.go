package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solution holds the nodal results of a static solve in global DOF order
type Solution struct {
	Displacements *mat.VecDense
	Reactions     *mat.VecDense
	dofPerNode    int
}

// Node returns the displacements and reactions of one node
func (s *Solution) Node(id int) (u, r []float64) {
	u = make([]float64, s.dofPerNode)
	r = make([]float64, s.dofPerNode)
	for k := range u {
		u[k] = s.Displacements.AtVec(s.dofPerNode*id + k)
		r[k] = s.Reactions.AtVec(s.dofPerNode*id + k)
	}
	return
}

// Solve computes the displacements under F and the support reactions.
// F is not modified.
func (m *Model) Solve(F *mat.VecDense) (*Solution, error) {
	if F == nil || F.Len() != m.ndof {
		return nil, fmt.Errorf("%w: load vector must have %d entries", ErrShape, m.ndof)
	}
	K := m.Stiffness()
	Kc, Fc, err := m.ApplyConstraints(K, F)
	if err != nil {
		return nil, err
	}

	var lu mat.LU
	lu.Factorize(Kc)
	if err = m.checkPivots(&lu, K); err != nil {
		return nil, err
	}
	u := mat.NewVecDense(m.ndof, nil)
	if err = lu.SolveVecTo(u, false, Fc); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		// the penalty diagonal makes a large condition number the norm
		m.logf("constrained stiffness condition number %.3e", float64(cond))
	}
	for i := 0; i < m.ndof; i++ {
		if v := u.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: displacement %d is %g", ErrSingularSystem, i, v)
		}
	}
	return &Solution{
		Displacements: u,
		Reactions:     m.reactions(K, u, F),
		dofPerNode:    m.dofPerNode,
	}, nil
}

// checkPivots rejects a factorization with a pivot that is negligible
// compared to the largest unconstrained stiffness entry
func (m *Model) checkPivots(lu *mat.LU, K *mat.Dense) error {
	if math.IsInf(lu.Cond(), 1) {
		return fmt.Errorf("%w: exactly singular factorization", ErrSingularSystem)
	}
	kmax := floats.Norm(K.RawMatrix().Data, math.Inf(1))
	if kmax == 0 {
		return fmt.Errorf("%w: stiffness is zero", ErrSingularSystem)
	}
	var U mat.TriDense
	lu.UTo(&U)
	tol := m.cfg.PivotTolerance * kmax
	for i := 0; i < m.ndof; i++ {
		if p := U.At(i, i); !(math.Abs(p) > tol) {
			return fmt.Errorf("%w: pivot %d is %.3e, limit %.3e (is the structure a mechanism?)",
				ErrSingularSystem, i, p, tol)
		}
	}
	return nil
}

// Reactions computes R = K·u − F with the unconstrained stiffness
func (m *Model) Reactions(u, F mat.Vector) (*mat.VecDense, error) {
	if u.Len() != m.ndof || F.Len() != m.ndof {
		return nil, fmt.Errorf("%w: vectors must have %d entries", ErrShape, m.ndof)
	}
	return m.reactions(m.sparseStiffness(), u, F), nil
}

func (m *Model) reactions(K mat.Matrix, u, F mat.Vector) *mat.VecDense {
	R := mat.NewVecDense(m.ndof, nil)
	R.MulVec(K, u)
	R.SubVec(R, F)
	return R
}

// CheckEquilibrium sums applied loads and reactions of local DOF dir over
// all nodes. The result is zero for a solved translational direction.
func (m *Model) CheckEquilibrium(F, R mat.Vector, dir int) (float64, error) {
	if dir < 0 || dir >= m.dofPerNode {
		return 0, fmt.Errorf("%w: direction %d", ErrDOFOutOfRange, dir)
	}
	if F.Len() != m.ndof || R.Len() != m.ndof {
		return 0, fmt.Errorf("%w: vectors must have %d entries", ErrShape, m.ndof)
	}
	var sum float64
	for id := range m.nodes {
		g := m.dofPerNode*id + dir
		sum += F.AtVec(g) + R.AtVec(g)
	}
	return sum, nil
}
