package model

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// sparseStiffness assembles the unconstrained stiffness on first use
func (m *Model) sparseStiffness() *sparse.CSR {
	if m.stiffness == nil {
		K := sparse.NewDOK(m.ndof, m.ndof)
		for e, el := range m.elements {
			m.conn.ScatterAddMatrix(K, e, el.GlobalStiffness())
		}
		m.stiffness = K.ToCSR()
	}
	return m.stiffness
}

// Stiffness returns a dense copy of the unconstrained global stiffness
func (m *Model) Stiffness() *mat.Dense {
	return m.sparseStiffness().ToDense()
}

// StiffnessNNZ is the number of stored entries of the global stiffness
func (m *Model) StiffnessNNZ() int {
	return m.sparseStiffness().NNZ()
}

// LumpedMass scatters only the diagonal of each element mass matrix
func (m *Model) LumpedMass() *mat.Dense {
	M := mat.NewDense(m.ndof, m.ndof, nil)
	for e, el := range m.elements {
		m.conn.ScatterAddDiagonal(M, e, el.GlobalMass())
	}
	return M
}

func (m *Model) ConsistentMass() *mat.Dense {
	M := mat.NewDense(m.ndof, m.ndof, nil)
	for e, el := range m.elements {
		m.conn.ScatterAddMatrix(M, e, el.GlobalMass())
	}
	return M
}

func (m *Model) Mass(kind MassKind) *mat.Dense {
	switch kind {
	case Lumped:
		return m.LumpedMass()
	case Consistent:
		return m.ConsistentMass()
	}
	panic(fmt.Sprintf("model: unknown mass kind %d", kind))
}
