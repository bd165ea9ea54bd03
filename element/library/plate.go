package library

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Local DOF order per node of the plate
const (
	PlateW = iota
	PlateRx
	PlateRy
)

// MindlinPlate is the 4 node isoparametric Reissner-Mindlin plate in the
// x-y plane with DOFs (w, θx, θy) per node. Transverse shear strains are
// γxz = ∂w/∂x + θx and γyz = ∂w/∂y + θy; curvatures are ∂θx/∂x, ∂θy/∂y and
// ∂θx/∂y + ∂θy/∂x. Bending is integrated with 2×2 Gauss points, shear with
// a single point to avoid locking. Nodes are ordered counterclockwise.
type MindlinPlate struct {
	element.Base
	Thickness float64
	Material  element.Material
	Kappa     float64
	xy        [4][2]float64
}

func NewMindlinPlate(id int, nodes [4]*node.Node, t float64, m element.Material) (*MindlinPlate, error) {
	if err := element.Positive("t", t, "E", m.E, "rho", m.Rho); err != nil {
		return nil, fmt.Errorf("Plate4 %d: %w", id, err)
	}
	if err := element.ValidatePoisson(m.Nu); err != nil {
		return nil, fmt.Errorf("Plate4 %d: %w", id, err)
	}
	base, err := element.NewBase(id, element.Properties{
		Name:            "Reissner-Mindlin Quadrilateral Plate",
		ShortName:       "Plate4",
		Family:          element.Plate,
		NodesPerElement: 4,
		DOFPerNode:      3,
		Dimensions:      element.D2,
	}, nodes[:]...)
	if err != nil {
		return nil, fmt.Errorf("Plate4 %d: %w", id, err)
	}
	z0, _ := nodes[0].Z()
	for _, n := range nodes[1:] {
		if z, _ := n.Z(); z != z0 {
			return nil, fmt.Errorf("%w: Plate4 %d nodes must lie in a plane parallel to x-y",
				element.ErrNotAligned, id)
		}
	}
	pl := &MindlinPlate{
		Base:      base,
		Thickness: t,
		Material:  m,
		Kappa:     DefaultShearCorrection,
	}
	for a, n := range nodes {
		pl.xy[a] = [2]float64{n.X(), n.Y()}
	}
	gx, _ := GaussLegendre(2)
	for _, xi := range gx {
		for _, eta := range gx {
			if _, _, detJ := pl.cartesianDerivatives(xi, eta); detJ <= 0 {
				return nil, fmt.Errorf("%w: Plate4 %d", element.ErrBadGeometry, id)
			}
		}
	}
	return pl, nil
}

// corner signs of the bilinear shape functions
var plateCorners = [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// ShapeFunctions returns the bilinear functions at (ξ, η) ∈ [-1,1]²
func (pl *MindlinPlate) ShapeFunctions(xi, eta float64) ([]float64, error) {
	if xi < -1 || xi > 1 || eta < -1 || eta > 1 {
		return nil, fmt.Errorf("%w: (ξ, η)=(%g, %g)", element.ErrOutOfDomain, xi, eta)
	}
	return bilinear(xi, eta), nil
}

func bilinear(xi, eta float64) []float64 {
	N := make([]float64, 4)
	for a, c := range plateCorners {
		N[a] = 0.25 * (1 + c[0]*xi) * (1 + c[1]*eta)
	}
	return N
}

// cartesianDerivatives returns dN/dx, dN/dy and det J at (ξ, η)
func (pl *MindlinPlate) cartesianDerivatives(xi, eta float64) (dNdx, dNdy []float64, detJ float64) {
	dNdxi := make([]float64, 4)
	dNdeta := make([]float64, 4)
	for a, c := range plateCorners {
		dNdxi[a] = 0.25 * c[0] * (1 + c[1]*eta)
		dNdeta[a] = 0.25 * c[1] * (1 + c[0]*xi)
	}
	var j11, j12, j21, j22 float64
	for a := 0; a < 4; a++ {
		j11 += dNdxi[a] * pl.xy[a][0]
		j12 += dNdxi[a] * pl.xy[a][1]
		j21 += dNdeta[a] * pl.xy[a][0]
		j22 += dNdeta[a] * pl.xy[a][1]
	}
	detJ = j11*j22 - j12*j21
	dNdx = make([]float64, 4)
	dNdy = make([]float64, 4)
	for a := 0; a < 4; a++ {
		dNdx[a] = (j22*dNdxi[a] - j12*dNdeta[a]) / detJ
		dNdy[a] = (-j21*dNdxi[a] + j11*dNdeta[a]) / detJ
	}
	return
}

func (pl *MindlinPlate) bendingRigidity() *mat.Dense {
	var (
		E, nu = pl.Material.E, pl.Material.Nu
		t     = pl.Thickness
		D     = E * t * t * t / (12 * (1 - nu*nu))
	)
	return mat.NewDense(3, 3, []float64{
		D, nu * D, 0,
		nu * D, D, 0,
		0, 0, D * (1 - nu) / 2,
	})
}

func (pl *MindlinPlate) LocalStiffness() *mat.Dense {
	var (
		k  = mat.NewDense(12, 12, nil)
		Db = pl.bendingRigidity()
		Ds = pl.Kappa * pl.Material.ShearModulus() * pl.Thickness
	)
	gx, gw := GaussLegendre(2)
	for p, xi := range gx {
		for q, eta := range gx {
			dNdx, dNdy, detJ := pl.cartesianDerivatives(xi, eta)
			Bb := mat.NewDense(3, 12, nil)
			for a := 0; a < 4; a++ {
				Bb.Set(0, 3*a+PlateRx, dNdx[a])
				Bb.Set(1, 3*a+PlateRy, dNdy[a])
				Bb.Set(2, 3*a+PlateRx, dNdy[a])
				Bb.Set(2, 3*a+PlateRy, dNdx[a])
			}
			addTriple(k, Bb, Db, gw[p]*gw[q]*detJ)
		}
	}

	sx, sw := GaussLegendre(1)
	dNdx, dNdy, detJ := pl.cartesianDerivatives(sx[0], sx[0])
	N := bilinear(sx[0], sx[0])
	Bs := mat.NewDense(2, 12, nil)
	for a := 0; a < 4; a++ {
		Bs.Set(0, 3*a+PlateW, dNdx[a])
		Bs.Set(0, 3*a+PlateRx, N[a])
		Bs.Set(1, 3*a+PlateW, dNdy[a])
		Bs.Set(1, 3*a+PlateRy, N[a])
	}
	DsM := mat.NewDense(2, 2, []float64{Ds, 0, 0, Ds})
	addTriple(k, Bs, DsM, sw[0]*sw[0]*detJ)
	return k
}

// LocalMass is consistent: ρt on w and ρt³/12 on the rotations
func (pl *MindlinPlate) LocalMass() *mat.Dense {
	var (
		m   = mat.NewDense(12, 12, nil)
		rho = pl.Material.Rho
		t   = pl.Thickness
		I   = mat.NewDense(3, 3, []float64{
			rho * t, 0, 0,
			0, rho * t * t * t / 12, 0,
			0, 0, rho * t * t * t / 12,
		})
	)
	gx, gw := GaussLegendre(2)
	for p, xi := range gx {
		for q, eta := range gx {
			_, _, detJ := pl.cartesianDerivatives(xi, eta)
			N := bilinear(xi, eta)
			Nm := mat.NewDense(3, 12, nil)
			for a := 0; a < 4; a++ {
				for d := 0; d < 3; d++ {
					Nm.Set(d, 3*a+d, N[a])
				}
			}
			addTriple(m, Nm, I, gw[p]*gw[q]*detJ)
		}
	}
	return m
}

// Area integrates det J over the element
func (pl *MindlinPlate) Area() float64 {
	var area float64
	gx, gw := GaussLegendre(2)
	for p, xi := range gx {
		for q, eta := range gx {
			_, _, detJ := pl.cartesianDerivatives(xi, eta)
			area += gw[p] * gw[q] * detJ
		}
	}
	return area
}

func (pl *MindlinPlate) Transformation() *mat.Dense  { return element.Identity(12) }
func (pl *MindlinPlate) GlobalStiffness() *mat.Dense { return pl.LocalStiffness() }
func (pl *MindlinPlate) GlobalMass() *mat.Dense      { return pl.LocalMass() }
func (pl *MindlinPlate) AxialDOF() int               { return -1 }

// LoadVector supports a uniform pressure (Distributed), self weight ρ·t·g
// and explicit nodal actions, all acting on w
func (pl *MindlinPlate) LoadVector(ld element.Load) (*mat.VecDense, error) {
	if ld.Axial != nil {
		return nil, fmt.Errorf("%w: plates carry no in-plane DOFs", element.ErrUnsupportedLoad)
	}
	if err := ld.CheckNodal(12); err != nil {
		return nil, err
	}
	var q float64
	if ld.Distributed != nil {
		q += *ld.Distributed
	}
	if ld.Gravity != nil {
		q += pl.Material.Rho * pl.Thickness * *ld.Gravity
	}
	f := mat.NewVecDense(12, nil)
	if q != 0 {
		gx, gw := GaussLegendre(2)
		for p, xi := range gx {
			for r, eta := range gx {
				_, _, detJ := pl.cartesianDerivatives(xi, eta)
				N := bilinear(xi, eta)
				for a := 0; a < 4; a++ {
					f.SetVec(3*a+PlateW, f.AtVec(3*a+PlateW)+q*N[a]*gw[p]*gw[r]*detJ)
				}
			}
		}
	}
	if ld.Nodal != nil {
		f.AddVec(f, mat.NewVecDense(12, append([]float64(nil), ld.Nodal...)))
	}
	return f, nil
}

// addTriple accumulates w·Bᵀ·D·B into k
func addTriple(k, B, D *mat.Dense, w float64) {
	var DB, BtDB mat.Dense
	DB.Mul(D, B)
	BtDB.Mul(B.T(), &DB)
	BtDB.Scale(w, &BtDB)
	k.Add(k, &BtDB)
}
