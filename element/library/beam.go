package library

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Beam is the plane Euler-Bernoulli element with DOFs (v, θ) per node.
// It is formulated in global axes, so both nodes must be 2D, share the
// same y coordinate and run in +x from i to j. Displacements are exact for
// nodal loads; internal actions between nodes are poorly approximated.
type Beam struct {
	element.Base
	A, I, E, Rho float64
}

func NewBeam(id int, i, j *node.Node, A, I, E, rho float64) (*Beam, error) {
	base, err := newBeamBase(id, element.Properties{
		Name:            "Euler-Bernoulli Plane Beam",
		ShortName:       "Beam2",
		Family:          element.Beam,
		NodesPerElement: 2,
		DOFPerNode:      2,
		Dimensions:      element.D1,
	}, i, j, A, I, E, rho)
	if err != nil {
		return nil, err
	}
	return &Beam{Base: base, A: A, I: I, E: E, Rho: rho}, nil
}

func newBeamBase(id int, props element.Properties, i, j *node.Node, A, I, E, rho float64) (element.Base, error) {
	if i.Is3D() || j.Is3D() {
		return element.Base{}, fmt.Errorf("%w: %s %d needs nodes in the x-y plane without z",
			element.ErrDimensionMismatch, props.ShortName, id)
	}
	if i.Y() != j.Y() {
		return element.Base{}, fmt.Errorf("%w: %s %d nodes must share y (%g != %g)",
			element.ErrNotAligned, props.ShortName, id, i.Y(), j.Y())
	}
	if j.X() < i.X() {
		return element.Base{}, fmt.Errorf("%w: %s %d must run in +x from node %d to node %d",
			element.ErrNotAligned, props.ShortName, id, i.ID(), j.ID())
	}
	if err := element.Positive("A", A, "I", I, "E", E, "rho", rho); err != nil {
		return element.Base{}, fmt.Errorf("%s %d: %w", props.ShortName, id, err)
	}
	base, err := element.NewBase(id, props, i, j)
	if err != nil {
		return element.Base{}, fmt.Errorf("%s %d: %w", props.ShortName, id, err)
	}
	return base, nil
}

// HalfLength is a = L/2, the scale of the natural coordinate ξ ∈ [-1,1]
func (b *Beam) HalfLength() float64 { return b.Length() / 2 }

// ShapeFunctions returns the Hermite cubics N1..N4 at ξ
func (b *Beam) ShapeFunctions(ksi float64) ([]float64, error) {
	if ksi < -1 || ksi > 1 {
		return nil, fmt.Errorf("%w: ξ=%g", element.ErrOutOfDomain, ksi)
	}
	return hermite(b.HalfLength(), ksi), nil
}

// ShapeDerivatives returns dN/dξ and d²N/dξ² at ξ
func (b *Beam) ShapeDerivatives(ksi float64) (d1, d2 []float64) {
	a := b.HalfLength()
	d1 = []float64{
		3. / 4 * (-1 + ksi*ksi),
		a / 4 * (-1 - 2*ksi + 3*ksi*ksi),
		3. / 4 * (1 - ksi*ksi),
		a / 4 * (-1 + 2*ksi + 3*ksi*ksi),
	}
	d2 = []float64{
		3. / 2 * ksi,
		a / 2 * (-1 + 3*ksi),
		-3. / 2 * ksi,
		a / 2 * (1 + 3*ksi),
	}
	return
}

// B is the strain operator at ξ for a fibre at distance y from the
// neutral axis
func (b *Beam) B(ksi, y float64) []float64 {
	a := b.HalfLength()
	_, d2 := b.ShapeDerivatives(ksi)
	for k := range d2 {
		d2[k] *= -y / (a * a)
	}
	return d2
}

// Deflection interpolates the transverse displacement at ξ from the
// element DOF values ue = (v1, θ1, v2, θ2)
func (b *Beam) Deflection(ksi float64, ue []float64) (float64, error) {
	N, err := b.ShapeFunctions(ksi)
	if err != nil {
		return 0, err
	}
	var v float64
	for k := range N {
		v += N[k] * ue[k]
	}
	return v, nil
}

func (b *Beam) LocalStiffness() *mat.Dense {
	a := b.HalfLength()
	k := mat.NewDense(4, 4, []float64{
		3, 3 * a, -3, 3 * a,
		3 * a, 4 * a * a, -3 * a, 2 * a * a,
		-3, -3 * a, 3, -3 * a,
		3 * a, 2 * a * a, -3 * a, 4 * a * a,
	})
	k.Scale(b.E*b.I/(2*a*a*a), k)
	return k
}

// LocalMass is the consistent mass
func (b *Beam) LocalMass() *mat.Dense {
	return beamMass(b.HalfLength(), b.Rho, b.A)
}

// Transformation is the identity, the element is formulated in global axes
func (b *Beam) Transformation() *mat.Dense  { return element.Identity(4) }
func (b *Beam) GlobalStiffness() *mat.Dense { return b.LocalStiffness() }
func (b *Beam) GlobalMass() *mat.Dense      { return b.LocalMass() }
func (b *Beam) AxialDOF() int               { return -1 }

// LoadVector adds a uniform transverse load q (consistent), nodal forces
// and moments (F1, M1, F2, M2) and self weight ρ·A·g treated as a uniform
// load
func (b *Beam) LoadVector(ld element.Load) (*mat.VecDense, error) {
	return beamLoad(ld, b.Length(), b.Rho*b.A)
}

func hermite(a, ksi float64) []float64 {
	return []float64{
		1. / 4 * (2 - 3*ksi + ksi*ksi*ksi),
		a / 4 * (1 - ksi - ksi*ksi + ksi*ksi*ksi),
		1. / 4 * (2 + 3*ksi - ksi*ksi*ksi),
		a / 4 * (-1 - ksi + ksi*ksi + ksi*ksi*ksi),
	}
}

func beamMass(a, rho, A float64) *mat.Dense {
	m := mat.NewDense(4, 4, []float64{
		78, 22 * a, 27, -13 * a,
		22 * a, 8 * a * a, 13 * a, -6 * a * a,
		27, 13 * a, 78, -22 * a,
		-13 * a, -6 * a * a, -22 * a, 8 * a * a,
	})
	m.Scale(rho*A*a/105, m)
	return m
}

// beamLoad builds the consistent vector shared by the plane beams. The
// fixed end actions of a uniform load do not depend on shear flexibility.
func beamLoad(ld element.Load, L, massPerLength float64) (*mat.VecDense, error) {
	if ld.Axial != nil {
		return nil, fmt.Errorf("%w: plane beams carry no axial DOF", element.ErrUnsupportedLoad)
	}
	if err := ld.CheckNodal(4); err != nil {
		return nil, err
	}
	f := mat.NewVecDense(4, nil)
	uniform := func(q float64) {
		fe := mat.NewVecDense(4, []float64{
			q * L / 2,
			q * L * L / 12,
			q * L / 2,
			-q * L * L / 12,
		})
		f.AddVec(f, fe)
	}
	if ld.Distributed != nil {
		uniform(*ld.Distributed)
	}
	if ld.Nodal != nil {
		f.AddVec(f, mat.NewVecDense(4, append([]float64(nil), ld.Nodal...)))
	}
	if ld.Gravity != nil {
		uniform(massPerLength * *ld.Gravity)
	}
	return f, nil
}
