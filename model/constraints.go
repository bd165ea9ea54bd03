package model

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ConstrainedDOFs lists the global indices of the supported DOFs in
// ascending order
func (m *Model) ConstrainedDOFs() ([]int, error) {
	var idx []int
	for _, id := range sortedKeys(m.supports) {
		dofs := append([]int(nil), m.supports[id]...)
		sort.Ints(dofs)
		for _, d := range dofs {
			g, err := m.GlobalDOF(id, d)
			if err != nil {
				return nil, fmt.Errorf("support: %w", err)
			}
			idx = append(idx, g)
		}
	}
	return idx, nil
}

// ApplyConstraints applies the supports with the penalty method to copies
// of K and F: the row and column of each constrained DOF are zeroed, the
// diagonal set to the penalty and the load entry zeroed. F may be nil, in
// which case the returned vector is nil too.
func (m *Model) ApplyConstraints(K *mat.Dense, F *mat.VecDense) (*mat.Dense, *mat.VecDense, error) {
	if r, c := K.Dims(); r != m.ndof || c != m.ndof {
		return nil, nil, fmt.Errorf("%w: stiffness is %d×%d, model has %d DOF", ErrShape, r, c, m.ndof)
	}
	if F != nil && F.Len() != m.ndof {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrShape, F.Len(), m.ndof)
	}
	idx, err := m.ConstrainedDOFs()
	if err != nil {
		return nil, nil, err
	}
	Kc := mat.DenseCopyOf(K)
	var Fc *mat.VecDense
	if F != nil {
		Fc = mat.VecDenseCopyOf(F)
	}
	for _, g := range idx {
		for k := 0; k < m.ndof; k++ {
			Kc.Set(g, k, 0)
			Kc.Set(k, g, 0)
		}
		Kc.Set(g, g, m.cfg.Penalty)
		if Fc != nil {
			Fc.SetVec(g, 0)
		}
	}
	return Kc, Fc, nil
}
