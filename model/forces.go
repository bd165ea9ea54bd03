package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

type ForceState uint8

const (
	NotAxial ForceState = iota // beams and plates
	NoForce
	Tension
	Compression
)

func (s ForceState) String() string {
	switch s {
	case NotAxial:
		return "not axial"
	case NoForce:
		return "no force"
	case Tension:
		return "tension"
	case Compression:
		return "compression"
	}
	return "unknown"
}

// MemberForce holds the local end forces of one element. Axial is the
// axial force at the second node, tension positive.
type MemberForce struct {
	ElementID int
	EndForces []float64
	Axial     float64
	State     ForceState
}

func (mf MemberForce) String() string {
	if mf.State == NotAxial {
		return fmt.Sprintf("element %d: %.6g", mf.ElementID, mf.EndForces)
	}
	return fmt.Sprintf("element %d: %s %.6g", mf.ElementID, mf.State, mf.Axial)
}

// MemberForces recovers f = k·T·uₑ for every element from the global
// displacements
func (m *Model) MemberForces(u mat.Vector) ([]MemberForce, error) {
	if u.Len() != m.ndof {
		return nil, fmt.Errorf("%w: displacements must have %d entries", ErrShape, m.ndof)
	}
	out := make([]MemberForce, len(m.elements))
	for e, el := range m.elements {
		ue := m.conn.Gather(u, e)
		T := el.Transformation()
		r, _ := T.Dims()
		d := mat.NewVecDense(r, nil)
		d.MulVec(T, ue)
		f := mat.NewVecDense(r, nil)
		f.MulVec(el.LocalStiffness(), d)

		mf := MemberForce{
			ElementID: el.ID(),
			EndForces: append([]float64(nil), f.RawVector().Data...),
			State:     NotAxial,
		}
		if k := el.AxialDOF(); k >= 0 {
			mf.Axial = f.AtVec(k)
			switch {
			case math.Abs(mf.Axial) <= m.cfg.ZeroForceTolerance:
				mf.State = NoForce
			case mf.Axial > 0:
				mf.State = Tension
			default:
				mf.State = Compression
			}
		}
		out[e] = mf
	}
	return out, nil
}
