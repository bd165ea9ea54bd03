package library

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// DefaultShearCorrection is κ for rectangular sections
const DefaultShearCorrection = 5. / 6.

// TimoshenkoBeam is the plane beam with shear deformation. DOFs per node
// stay (v, θ); mass and shape functions are those of the Euler-Bernoulli
// beam.
type TimoshenkoBeam struct {
	Beam
	Nu    float64 // Poisson ratio, for the shear modulus
	Kappa float64 // shear correction factor
}

// NewTimoshenkoBeam uses DefaultShearCorrection when kappa is zero
func NewTimoshenkoBeam(id int, i, j *node.Node, A, I, E, rho, nu, kappa float64) (*TimoshenkoBeam, error) {
	if kappa == 0 {
		kappa = DefaultShearCorrection
	}
	base, err := newBeamBase(id, element.Properties{
		Name:            "Timoshenko Plane Beam",
		ShortName:       "Timo2",
		Family:          element.TimoshenkoBeam,
		NodesPerElement: 2,
		DOFPerNode:      2,
		Dimensions:      element.D1,
	}, i, j, A, I, E, rho)
	if err != nil {
		return nil, err
	}
	if err = element.ValidatePoisson(nu); err != nil {
		return nil, fmt.Errorf("Timo2 %d: %w", id, err)
	}
	if err = element.Positive("kappa", kappa); err != nil {
		return nil, fmt.Errorf("Timo2 %d: %w", id, err)
	}
	return &TimoshenkoBeam{
		Beam:  Beam{Base: base, A: A, I: I, E: E, Rho: rho},
		Nu:    nu,
		Kappa: kappa,
	}, nil
}

func (tb *TimoshenkoBeam) ShearModulus() float64 {
	return element.Material{E: tb.E, Nu: tb.Nu}.ShearModulus()
}

// Phi is the shear deformation parameter 12EI/(κGAL²)
func (tb *TimoshenkoBeam) Phi() float64 {
	L := tb.Length()
	return 12 * tb.E * tb.I / (tb.Kappa * tb.ShearModulus() * tb.A * L * L)
}

func (tb *TimoshenkoBeam) LocalStiffness() *mat.Dense {
	L, phi := tb.Length(), tb.Phi()
	k := mat.NewDense(4, 4, []float64{
		12, 6 * L, -12, 6 * L,
		6 * L, (4 + phi) * L * L, -6 * L, (2 - phi) * L * L,
		-12, -6 * L, 12, -6 * L,
		6 * L, (2 - phi) * L * L, -6 * L, (4 + phi) * L * L,
	})
	k.Scale(tb.E*tb.I/(L*L*L*(1+phi)), k)
	return k
}

func (tb *TimoshenkoBeam) GlobalStiffness() *mat.Dense { return tb.LocalStiffness() }
