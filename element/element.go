package element

import (
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Dimensionality represents the spatial dimension an element lives in
type Dimensionality uint8

const (
	D1 Dimensionality = iota + 1 // axis aligned line elements
	D2                           // plane elements and plane frames
	D3                           // spatial trusses and frames
)

func (d Dimensionality) String() string {
	switch d {
	case D1:
		return "1D"
	case D2:
		return "2D"
	case D3:
		return "3D"
	}
	return "unknown"
}

type Family uint8

const (
	Truss Family = iota
	Beam
	TimoshenkoBeam
	SpatialFrame
	Plate
)

func (f Family) String() string {
	switch f {
	case Truss:
		return "Truss"
	case Beam:
		return "Beam"
	case TimoshenkoBeam:
		return "TimoshenkoBeam"
	case SpatialFrame:
		return "SpatialFrame"
	case Plate:
		return "Plate"
	}
	return "unknown"
}

// Properties contains metadata describing an element type
type Properties struct {
	Name            string // Full descriptive name (e.g., "Euler-Bernoulli Plane Beam")
	ShortName       string // Abbreviated name (e.g., "Beam2")
	Family          Family
	NodesPerElement int
	DOFPerNode      int
	Dimensions      Dimensionality
}

// NDOF is the size of the element matrices
func (p Properties) NDOF() int {
	return p.NodesPerElement * p.DOFPerNode
}

// Element is the capability set every element family implements. The model
// is written against this interface only and never inspects the family.
type Element interface {
	ID() int
	Properties() Properties
	Nodes() []*node.Node

	// Length is the distance between the first two nodes, computed once at
	// construction
	Length() float64

	// Local matrices in element aligned coordinates, both symmetric
	LocalStiffness() *mat.Dense
	LocalMass() *mat.Dense

	// Transformation maps global DOF values to local ones: d = T·D.
	// Families formulated in global axes return the identity.
	Transformation() *mat.Dense

	// Tᵀ·k·T and Tᵀ·m·T
	GlobalStiffness() *mat.Dense
	GlobalMass() *mat.Dense

	// DOFIndices is nil until the model assigns it through SetDOFIndices,
	// which succeeds exactly once.
	DOFIndices() []int
	SetDOFIndices(idx []int) error

	// LoadVector returns the consistent local load vector for the
	// requested load kinds
	LoadVector(ld Load) (*mat.VecDense, error)

	// AxialDOF is the local index of the axial end force at the second
	// node, or -1 when the family carries no axial force
	AxialDOF() int
}
