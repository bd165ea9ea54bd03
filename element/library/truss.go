package library

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Truss is a two node axial member in 2D or 3D. The number of DOFs per
// node equals the dimension of the space its nodes live in. Local
// matrices act on the two axial displacements only.
type Truss struct {
	element.Base
	A, E, Rho float64
	nd        int
}

func NewTruss(id int, i, j *node.Node, A, E, rho float64) (*Truss, error) {
	if err := element.Positive("A", A, "E", E, "rho", rho); err != nil {
		return nil, fmt.Errorf("truss %d: %w", id, err)
	}
	nd := i.Dim()
	dims := element.D2
	if nd == 3 {
		dims = element.D3
	}
	props := element.Properties{
		Name:            fmt.Sprintf("Truss %s", dims),
		ShortName:       fmt.Sprintf("Truss%d", nd),
		Family:          element.Truss,
		NodesPerElement: 2,
		DOFPerNode:      nd,
		Dimensions:      dims,
	}
	base, err := element.NewBase(id, props, i, j)
	if err != nil {
		return nil, fmt.Errorf("truss %d: %w", id, err)
	}
	return &Truss{Base: base, A: A, E: E, Rho: rho, nd: nd}, nil
}

// ShapeFunctions evaluates N1 = 1 - x/L and N2 = x/L for 0 <= x <= L
func (tr *Truss) ShapeFunctions(x float64) ([]float64, error) {
	L := tr.Length()
	if x < 0 || x > L {
		return nil, fmt.Errorf("%w: x=%g not in [0, %g]", element.ErrOutOfDomain, x, L)
	}
	return []float64{1 - x/L, x / L}, nil
}

// B is the constant strain operator dN/dx
func (tr *Truss) B() []float64 {
	L := tr.Length()
	return []float64{-1 / L, 1 / L}
}

func (tr *Truss) LocalStiffness() *mat.Dense {
	c := tr.A * tr.E / tr.Length()
	return mat.NewDense(2, 2, []float64{
		c, -c,
		-c, c,
	})
}

// LocalMass is the consistent axial mass
func (tr *Truss) LocalMass() *mat.Dense {
	c := tr.A * tr.Rho * tr.Length() / 6
	return mat.NewDense(2, 2, []float64{
		2 * c, c,
		c, 2 * c,
	})
}

// Transformation is 2×(2·nd): each row holds the direction cosines of the
// member in the block of one node
func (tr *Truss) Transformation() *mat.Dense {
	nodes := tr.Nodes()
	dc := element.DirectionCosines(nodes[0], nodes[1])
	T := mat.NewDense(2, 2*tr.nd, nil)
	for k := 0; k < tr.nd; k++ {
		T.Set(0, k, dc[k])
		T.Set(1, tr.nd+k, dc[k])
	}
	return T
}

func (tr *Truss) GlobalStiffness() *mat.Dense {
	return element.Congruent(tr.Transformation(), tr.LocalStiffness())
}

func (tr *Truss) GlobalMass() *mat.Dense {
	return element.Congruent(tr.Transformation(), tr.LocalMass())
}

// LoadVector supports a uniform axial body load, split in halves between
// the nodes, and explicit axial nodal forces
func (tr *Truss) LoadVector(ld element.Load) (*mat.VecDense, error) {
	if ld.Distributed != nil || ld.Gravity != nil {
		return nil, fmt.Errorf("%w: truss takes axial and nodal loads only", element.ErrUnsupportedLoad)
	}
	if err := ld.CheckNodal(2); err != nil {
		return nil, err
	}
	f := mat.NewVecDense(2, nil)
	if ld.Axial != nil {
		half := *ld.Axial * tr.Length() / 2
		f.SetVec(0, half)
		f.SetVec(1, half)
	}
	if ld.Nodal != nil {
		f.AddVec(f, mat.NewVecDense(2, append([]float64(nil), ld.Nodal...)))
	}
	return f, nil
}

func (tr *Truss) AxialDOF() int { return 1 }
