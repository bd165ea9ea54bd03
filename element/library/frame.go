package library

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Local DOF order per node of the spatial frame
const (
	FrameU = iota
	FrameV
	FrameW
	FrameRx
	FrameRy
	FrameRz
)

// SpatialFrame is the 3D Euler-Bernoulli beam-column with 6 DOFs per node
// (u, v, w, θx, θy, θz). Bending about local z uses Iz, about local y Iy.
type SpatialFrame struct {
	element.Base
	Section  element.Section
	Material element.Material
	R        *mat.Dense // 3×3 local triad, rows are the local axes
}

func NewSpatialFrame(id int, i, j *node.Node, sec element.Section, m element.Material) (*SpatialFrame, error) {
	if !i.Is3D() || !j.Is3D() {
		return nil, fmt.Errorf("%w: Frame3 %d needs 3D nodes", element.ErrDimensionMismatch, id)
	}
	if err := element.Positive("A", sec.A, "Iy", sec.Iy, "Iz", sec.Iz, "J", sec.J,
		"E", m.E, "rho", m.Rho); err != nil {
		return nil, fmt.Errorf("Frame3 %d: %w", id, err)
	}
	if err := element.ValidatePoisson(m.Nu); err != nil {
		return nil, fmt.Errorf("Frame3 %d: %w", id, err)
	}
	base, err := element.NewBase(id, element.Properties{
		Name:            "Euler-Bernoulli Spatial Frame",
		ShortName:       "Frame3",
		Family:          element.SpatialFrame,
		NodesPerElement: 2,
		DOFPerNode:      6,
		Dimensions:      element.D3,
	}, i, j)
	if err != nil {
		return nil, fmt.Errorf("Frame3 %d: %w", id, err)
	}
	return &SpatialFrame{
		Base:     base,
		Section:  sec,
		Material: m,
		R:        element.FrameRotation(i, j),
	}, nil
}

func (sf *SpatialFrame) LocalStiffness() *mat.Dense {
	var (
		L   = sf.Length()
		E   = sf.Material.E
		G   = sf.Material.ShearModulus()
		sec = sf.Section
		k   = mat.NewDense(12, 12, nil)
	)
	axial := E * sec.A / L
	torsion := G * sec.J / L
	stamp2(k, FrameU, FrameU+6, axial)
	stamp2(k, FrameRx, FrameRx+6, torsion)

	// bending in the local x-y plane: v and θz
	EIz := E * sec.Iz
	stampBending(k, [4]int{FrameV, FrameRz, FrameV + 6, FrameRz + 6}, [4][4]float64{
		{12 / (L * L * L), 6 / (L * L), -12 / (L * L * L), 6 / (L * L)},
		{6 / (L * L), 4 / L, -6 / (L * L), 2 / L},
		{-12 / (L * L * L), -6 / (L * L), 12 / (L * L * L), -6 / (L * L)},
		{6 / (L * L), 2 / L, -6 / (L * L), 4 / L},
	}, EIz)

	// bending in the local x-z plane: w and θy, θy = -dw/dx
	EIy := E * sec.Iy
	stampBending(k, [4]int{FrameW, FrameRy, FrameW + 6, FrameRy + 6}, [4][4]float64{
		{12 / (L * L * L), -6 / (L * L), -12 / (L * L * L), -6 / (L * L)},
		{-6 / (L * L), 4 / L, 6 / (L * L), 2 / L},
		{-12 / (L * L * L), 6 / (L * L), 12 / (L * L * L), 6 / (L * L)},
		{-6 / (L * L), 2 / L, 6 / (L * L), 4 / L},
	}, EIy)
	return k
}

// LocalMass is the consistent mass. Rotary inertia of the torsional DOFs
// uses the polar moment Iy+Iz.
func (sf *SpatialFrame) LocalMass() *mat.Dense {
	var (
		L   = sf.Length()
		rho = sf.Material.Rho
		sec = sf.Section
		m   = mat.NewDense(12, 12, nil)
	)
	mAxial := rho * sec.A * L / 6
	m.Set(FrameU, FrameU, 2*mAxial)
	m.Set(FrameU+6, FrameU+6, 2*mAxial)
	stampOff(m, FrameU, FrameU+6, mAxial)

	mTorsion := rho * (sec.Iy + sec.Iz) * L / 6
	m.Set(FrameRx, FrameRx, 2*mTorsion)
	m.Set(FrameRx+6, FrameRx+6, 2*mTorsion)
	stampOff(m, FrameRx, FrameRx+6, mTorsion)

	c := rho * sec.A * L / 420
	stampBending(m, [4]int{FrameV, FrameRz, FrameV + 6, FrameRz + 6}, [4][4]float64{
		{156, 22 * L, 54, -13 * L},
		{22 * L, 4 * L * L, 13 * L, -3 * L * L},
		{54, 13 * L, 156, -22 * L},
		{-13 * L, -3 * L * L, -22 * L, 4 * L * L},
	}, c)
	stampBending(m, [4]int{FrameW, FrameRy, FrameW + 6, FrameRy + 6}, [4][4]float64{
		{156, -22 * L, 54, 13 * L},
		{-22 * L, 4 * L * L, -13 * L, -3 * L * L},
		{54, -13 * L, 156, 22 * L},
		{13 * L, -3 * L * L, 22 * L, 4 * L * L},
	}, c)
	return m
}

// Transformation places the 3×3 triad once per translational and
// rotational triple of each node
func (sf *SpatialFrame) Transformation() *mat.Dense {
	return element.BlockDiagonal(sf.R, 4)
}

func (sf *SpatialFrame) GlobalStiffness() *mat.Dense {
	return element.Congruent(sf.Transformation(), sf.LocalStiffness())
}

func (sf *SpatialFrame) GlobalMass() *mat.Dense {
	return element.Congruent(sf.Transformation(), sf.LocalMass())
}

func (sf *SpatialFrame) AxialDOF() int { return FrameU + 6 }

// LoadVector supports a uniform load along local y, a uniform axial load,
// nodal actions in local ordering and self weight. Gravity acts along
// global Z with the signed acceleration given; it is resolved into local
// components through the triad.
func (sf *SpatialFrame) LoadVector(ld element.Load) (*mat.VecDense, error) {
	if err := ld.CheckNodal(12); err != nil {
		return nil, err
	}
	var (
		L = sf.Length()
		f = mat.NewVecDense(12, nil)
	)
	var qx, qy, qz float64
	if ld.Distributed != nil {
		qy += *ld.Distributed
	}
	if ld.Axial != nil {
		qx += *ld.Axial
	}
	if ld.Gravity != nil {
		w := sf.Material.Rho * sf.Section.A * *ld.Gravity
		qx += sf.R.At(0, 2) * w
		qy += sf.R.At(1, 2) * w
		qz += sf.R.At(2, 2) * w
	}
	f.SetVec(FrameU, qx*L/2)
	f.SetVec(FrameU+6, qx*L/2)

	f.SetVec(FrameV, qy*L/2)
	f.SetVec(FrameRz, qy*L*L/12)
	f.SetVec(FrameV+6, qy*L/2)
	f.SetVec(FrameRz+6, -qy*L*L/12)

	f.SetVec(FrameW, qz*L/2)
	f.SetVec(FrameRy, -qz*L*L/12)
	f.SetVec(FrameW+6, qz*L/2)
	f.SetVec(FrameRy+6, qz*L*L/12)

	if ld.Nodal != nil {
		f.AddVec(f, mat.NewVecDense(12, append([]float64(nil), ld.Nodal...)))
	}
	return f, nil
}

// stamp2 writes the 2×2 pattern c·[[1,-1],[-1,1]] on DOFs a and b
func stamp2(k *mat.Dense, a, b int, c float64) {
	k.Set(a, a, c)
	k.Set(b, b, c)
	stampOff(k, a, b, -c)
}

func stampOff(k *mat.Dense, a, b int, c float64) {
	k.Set(a, b, c)
	k.Set(b, a, c)
}

func stampBending(k *mat.Dense, idx [4]int, blk [4][4]float64, scale float64) {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			k.Set(idx[r], idx[c], scale*blk[r][c])
		}
	}
}
