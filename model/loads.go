package model

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"gonum.org/v1/gonum/mat"
)

// NewLoadVector returns a zero load vector sized for the model
func (m *Model) NewLoadVector() *mat.VecDense {
	return mat.NewVecDense(m.ndof, nil)
}

// AddNodalLoad adds a force or moment on local DOF dof of a node
func (m *Model) AddNodalLoad(F *mat.VecDense, nodeID, dof int, value float64) error {
	if F.Len() != m.ndof {
		return fmt.Errorf("%w: got %d, want %d", ErrShape, F.Len(), m.ndof)
	}
	g, err := m.GlobalDOF(nodeID, dof)
	if err != nil {
		return err
	}
	F.SetVec(g, F.AtVec(g)+value)
	return nil
}

// AddElementLoad adds Tᵀ·f of the element's consistent local load vector
func (m *Model) AddElementLoad(F *mat.VecDense, elementID int, ld element.Load) error {
	if F.Len() != m.ndof {
		return fmt.Errorf("%w: got %d, want %d", ErrShape, F.Len(), m.ndof)
	}
	el, ok := m.Element(elementID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownElement, elementID)
	}
	f, err := el.LoadVector(ld)
	if err != nil {
		return fmt.Errorf("element %d: %w", elementID, err)
	}
	T := el.Transformation()
	_, c := T.Dims()
	g := mat.NewVecDense(c, nil)
	g.MulVec(T.T(), f)
	m.conn.ScatterAdd(F, elementID, g)
	return nil
}
