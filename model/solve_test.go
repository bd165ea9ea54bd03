package model

import (
	"math"
	"testing"

	"github.com/notargets/DSMKernel/ana"
	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxialTruss(t *testing.T) {
	m := singleTruss(t, map[int][]int{0: {0, 1}, 1: {1}})
	F := m.NewLoadVector()
	require.NoError(t, m.AddNodalLoad(F, 1, 0, -1000))

	sol, err := m.Solve(F)
	require.NoError(t, err)
	bar := ana.AxialBar{P: -1000, L: 1, E: 7e10, A: 0.1}
	u, r := sol.Node(1)
	assert.InDelta(t, -1000*1/(0.1*7e10), u[0], 1e-20)
	assert.InDelta(t, bar.Elongation(), u[0], 1e-20)
	assert.InDelta(t, 0, u[1], 1e-20)
	assert.InDelta(t, 0, r[0], 1e-9)

	_, r0 := sol.Node(0)
	assert.InDelta(t, 1000, r0[0], 1e-9)

	forces, err := m.MemberForces(sol.Displacements)
	require.NoError(t, err)
	require.Len(t, forces, 1)
	assert.InDelta(t, -1000, forces[0].Axial, 1e-9)
	assert.Equal(t, Compression, forces[0].State)
	assert.Contains(t, forces[0].String(), "compression")

	for dir := 0; dir < 2; dir++ {
		sum, err := m.CheckEquilibrium(F, sol.Reactions, dir)
		require.NoError(t, err)
		assert.InDelta(t, 0, sum, 1e-9)
	}

	// tension when the load is reversed, nothing when it is removed
	F.ScaleVec(-1, F)
	sol, err = m.Solve(F)
	require.NoError(t, err)
	forces, _ = m.MemberForces(sol.Displacements)
	assert.Equal(t, Tension, forces[0].State)
	sol, err = m.Solve(m.NewLoadVector())
	require.NoError(t, err)
	forces, _ = m.MemberForces(sol.Displacements)
	assert.Equal(t, NoForce, forces[0].State)
}

func TestClampedBeamPointLoad(t *testing.T) {
	L := 2.5
	m := lineBeam(t, 4, L, map[int][]int{0: {0, 1}, 4: {0, 1}})
	F := m.NewLoadVector()
	require.NoError(t, m.AddNodalLoad(F, 2, 0, -1000))
	sol, err := m.Solve(F)
	require.NoError(t, err)

	ref := ana.ClampedPointLoad{P: -1000, L: L, E: beamE, I: beamI}
	_, r0 := sol.Node(0)
	_, r4 := sol.Node(4)
	assert.InDelta(t, 500, r0[0], 1e-6)
	assert.InDelta(t, 500, r4[0], 1e-6)
	assert.InDelta(t, 1000*L/8, r0[1], 1e-6)
	assert.InDelta(t, -1000*L/8, r4[1], 1e-6)
	assert.InDelta(t, ref.EndMoment(), r0[1], 1e-6)

	u2, _ := sol.Node(2)
	assert.InEpsilon(t, ref.MidspanDeflection(), u2[0], 1e-8)
	assert.InDelta(t, 0, u2[1], 1e-18)

	forces, err := m.MemberForces(sol.Displacements)
	require.NoError(t, err)
	for _, f := range forces {
		assert.Equal(t, NotAxial, f.State)
		assert.Len(t, f.EndForces, 4)
	}
	// end shear of the first element balances the support reaction
	assert.InDelta(t, 500, forces[0].EndForces[0], 1e-6)
}

func TestClampedBeamUniformLoad(t *testing.T) {
	L := 2.5
	m := lineBeam(t, 4, L, map[int][]int{0: {0, 1}, 4: {0, 1}})
	F := m.NewLoadVector()
	for _, el := range m.Elements() {
		require.NoError(t, m.AddElementLoad(F, el.ID(), element.Load{Distributed: element.Value(-1000)}))
	}
	sol, err := m.Solve(F)
	require.NoError(t, err)

	ref := ana.ClampedUniform{Q: -1000, L: L, E: beamE, I: beamI}
	u2, _ := sol.Node(2)
	assert.InEpsilon(t, -1000*math.Pow(L, 4)/(384*beamE*beamI), u2[0], 1e-8)
	assert.InEpsilon(t, ref.MidspanDeflection(), u2[0], 1e-8)
	assert.InDelta(t, 0, u2[1], 1e-18)

	_, r0 := sol.Node(0)
	_, r4 := sol.Node(4)
	assert.InDelta(t, ref.Reaction(), r0[0], 1e-6)
	assert.InDelta(t, ref.Reaction(), r4[0], 1e-6)
	assert.InDelta(t, ref.EndMoment(), r0[1], 1e-6)
	assert.InDelta(t, -ref.EndMoment(), r4[1], 1e-6)

	sum, err := m.CheckEquilibrium(F, sol.Reactions, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, sum, 1e-6)
}

// cantilever returns tip deflection and root reaction and moment of an n
// element cantilever under a tip load and a uniform load
func cantilever(t *testing.T, n int) (tip, reaction, moment float64) {
	m := lineBeam(t, n, 10, map[int][]int{0: {0, 1}})
	F := m.NewLoadVector()
	require.NoError(t, m.AddNodalLoad(F, n, 0, -1000))
	for e := 0; e < n; e++ {
		require.NoError(t, m.AddElementLoad(F, e, element.Load{Distributed: element.Value(-100)}))
	}
	sol, err := m.Solve(F)
	require.NoError(t, err)
	u, _ := sol.Node(n)
	_, r := sol.Node(0)
	return u[0], r[0], r[1]
}

func TestCantileverRefinement(t *testing.T) {
	ref := ana.Cantilever{P: -1000, Q: -100, L: 10, E: beamE, I: beamI}
	tip10, r10, m10 := cantilever(t, 10)
	tip11, r11, m11 := cantilever(t, 11)

	assert.InEpsilon(t, tip10, tip11, 1e-8)
	assert.InEpsilon(t, r10, r11, 1e-8)
	assert.InEpsilon(t, m10, m11, 1e-8)

	assert.InEpsilon(t, ref.TipDeflection(), tip10, 1e-8)
	assert.InEpsilon(t, ref.RootReaction(), r10, 1e-8)
	assert.InEpsilon(t, ref.RootMoment(), m10, 1e-8)
}

func TestTimoshenkoCantilever(t *testing.T) {
	// a slender member approaches the Euler-Bernoulli tip deflection
	alloc := node.NewAllocator()
	n := 8
	nodes := make([]*node.Node, n+1)
	for i := range nodes {
		nodes[i] = alloc.New2D(float64(i)*10/float64(n), 0)
	}
	defs := make([]Definition, n)
	for e := range defs {
		defs[e] = TimoshenkoDef{Nodes: [2]int{e, e + 1}, A: 0.01, I: 1e-6, E: 2e11, Rho: 7850, Nu: 0.3}
	}
	m, err := New(nodes, defs, map[int][]int{0: {0, 1}}, Config{})
	require.NoError(t, err)
	F := m.NewLoadVector()
	require.NoError(t, m.AddNodalLoad(F, n, 0, -100))
	sol, err := m.Solve(F)
	require.NoError(t, err)

	u, _ := sol.Node(n)
	bending := ana.Cantilever{P: -100, L: 10, E: 2e11, I: 1e-6}.TipDeflection()
	shear := -100 * 10 / (5. / 6 * 2e11 / 2.6 * 0.01)
	assert.InEpsilon(t, bending+shear, u[0], 1e-8)
}

func TestUnconstrainedIsSingular(t *testing.T) {
	t.Run("truss", func(t *testing.T) {
		m := singleTruss(t, nil)
		F := m.NewLoadVector()
		require.NoError(t, m.AddNodalLoad(F, 1, 0, -1000))
		_, err := m.Solve(F)
		assert.ErrorIs(t, err, ErrSingularSystem)
	})
	t.Run("beam", func(t *testing.T) {
		m := lineBeam(t, 4, 2.5, nil)
		F := m.NewLoadVector()
		require.NoError(t, m.AddNodalLoad(F, 2, 0, -1000))
		_, err := m.Solve(F)
		assert.ErrorIs(t, err, ErrSingularSystem)
	})
	t.Run("beam pinned at one node", func(t *testing.T) {
		m := lineBeam(t, 4, 2.5, map[int][]int{0: {0}})
		_, err := m.Solve(m.NewLoadVector())
		assert.ErrorIs(t, err, ErrSingularSystem)
	})
	t.Run("truss rolling", func(t *testing.T) {
		m := singleTruss(t, map[int][]int{0: {1}, 1: {1}})
		_, err := m.Solve(m.NewLoadVector())
		assert.ErrorIs(t, err, ErrSingularSystem)
	})
	t.Run("frame", func(t *testing.T) {
		m := frameCantilever(t, 2, nil)
		_, err := m.Solve(m.NewLoadVector())
		assert.ErrorIs(t, err, ErrSingularSystem)
	})
}

func TestPyramidTruss(t *testing.T) {
	alloc := node.NewAllocator()
	nodes := []*node.Node{
		alloc.New3D(-1, -1, 0),
		alloc.New3D(1, -1, 0),
		alloc.New3D(1, 1, 0),
		alloc.New3D(-1, 1, 0),
		alloc.New3D(0, 0, 1),
	}
	var defs []Definition
	supports := make(map[int][]int)
	for i := 0; i < 4; i++ {
		defs = append(defs, TrussDef{Nodes: [2]int{i, 4}, A: 0.01, E: 2e11, Rho: 7850})
		supports[i] = []int{0, 1, 2}
	}
	m, err := New(nodes, defs, supports, Config{})
	require.NoError(t, err)
	assert.Equal(t, 3, m.DOFPerNode())

	F := m.NewLoadVector()
	require.NoError(t, m.AddNodalLoad(F, 4, 2, -1000))
	sol, err := m.Solve(F)
	require.NoError(t, err)

	forces, err := m.MemberForces(sol.Displacements)
	require.NoError(t, err)
	want := -250 * math.Sqrt(3)
	for _, f := range forces {
		assert.InDelta(t, want, f.Axial, 1e-6)
		assert.Equal(t, Compression, f.State)
	}
	u, _ := sol.Node(4)
	assert.InDelta(t, 0, u[0], 1e-18)
	assert.InDelta(t, 0, u[1], 1e-18)

	for dir := 0; dir < 3; dir++ {
		sum, err := m.CheckEquilibrium(F, sol.Reactions, dir)
		require.NoError(t, err)
		assert.InDelta(t, 0, sum, 1e-6)
	}
}

var (
	frameSection  = element.Section{A: 0.01, Iy: 2e-5, Iz: 8e-6, J: 1e-5}
	frameMaterial = element.Material{E: 2.1e11, Nu: 0.3, Rho: 7850}
)

// frameCantilever meshes a 2 m spatial frame along global x
func frameCantilever(t *testing.T, n int, supports map[int][]int) *Model {
	t.Helper()
	alloc := node.NewAllocator()
	nodes := make([]*node.Node, n+1)
	for i := range nodes {
		nodes[i] = alloc.New3D(2*float64(i)/float64(n), 0, 0)
	}
	defs := make([]Definition, n)
	for e := range defs {
		defs[e] = FrameDef{Nodes: [2]int{e, e + 1}, Section: frameSection, Material: frameMaterial}
	}
	m, err := New(nodes, defs, supports, Config{})
	require.NoError(t, err)
	return m
}

func TestFrameCantilever(t *testing.T) {
	n := 4
	m := frameCantilever(t, n, map[int][]int{0: {0, 1, 2, 3, 4, 5}})
	assert.Equal(t, 6, m.DOFPerNode())
	F := m.NewLoadVector()
	require.NoError(t, m.AddNodalLoad(F, n, 0, 2000))
	require.NoError(t, m.AddNodalLoad(F, n, 1, 500))
	require.NoError(t, m.AddNodalLoad(F, n, 2, -1000))
	sol, err := m.Solve(F)
	require.NoError(t, err)

	E, sec := frameMaterial.E, frameSection
	u, _ := sol.Node(n)
	assert.InEpsilon(t, ana.AxialBar{P: 2000, L: 2, E: E, A: sec.A}.Elongation(), u[0], 1e-8)
	assert.InEpsilon(t, ana.Cantilever{P: 500, L: 2, E: E, I: sec.Iz}.TipDeflection(), u[1], 1e-8)
	assert.InEpsilon(t, ana.Cantilever{P: -1000, L: 2, E: E, I: sec.Iy}.TipDeflection(), u[2], 1e-8)
	// positive w with θy = -dw/dx
	assert.InEpsilon(t, -ana.Cantilever{P: -1000, L: 2, E: E, I: sec.Iy}.TipRotation(), u[4], 1e-8)
	assert.InEpsilon(t, ana.Cantilever{P: 500, L: 2, E: E, I: sec.Iz}.TipRotation(), u[5], 1e-8)

	forces, err := m.MemberForces(sol.Displacements)
	require.NoError(t, err)
	for _, f := range forces {
		assert.InDelta(t, 2000, f.Axial, 1e-6)
		assert.Equal(t, Tension, f.State)
	}
	for dir := 0; dir < 3; dir++ {
		sum, err := m.CheckEquilibrium(F, sol.Reactions, dir)
		require.NoError(t, err)
		assert.InDelta(t, 0, sum, 1e-6)
	}
}

func TestFrameGravity(t *testing.T) {
	// self weight of an inclined member equals its weight in the reactions
	alloc := node.NewAllocator()
	nodes := []*node.Node{alloc.New3D(0, 0, 0), alloc.New3D(3, 0, 4)}
	m, err := New(nodes, []Definition{FrameDef{Nodes: [2]int{0, 1}, Section: frameSection, Material: frameMaterial}},
		map[int][]int{0: {0, 1, 2, 3, 4, 5}, 1: {0, 1, 2, 3, 4, 5}}, Config{})
	require.NoError(t, err)
	F := m.NewLoadVector()
	require.NoError(t, m.AddElementLoad(F, 0, element.Load{Gravity: element.Value(-9.81)}))

	weight := frameMaterial.Rho * frameSection.A * 5 * 9.81
	var fz float64
	for id := 0; id < 2; id++ {
		fz += F.AtVec(6*id + 2)
		assert.InDelta(t, 0, F.AtVec(6*id), 1e-9)
	}
	assert.InDelta(t, -weight, fz, 1e-9)

	sol, err := m.Solve(F)
	require.NoError(t, err)
	sum, err := m.CheckEquilibrium(F, sol.Reactions, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0, sum, 1e-6)
}

func TestClampedPlate(t *testing.T) {
	// 2×2 plates on a 2 m square, every edge node clamped
	alloc := node.NewAllocator()
	var nodes []*node.Node
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			nodes = append(nodes, alloc.New2D(float64(i), float64(j)))
		}
	}
	id := func(i, j int) int { return 3*j + i }
	var defs []Definition
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			defs = append(defs, PlateDef{
				Nodes:     [4]int{id(i, j), id(i+1, j), id(i+1, j+1), id(i, j+1)},
				Thickness: 0.05,
				Material:  element.Material{E: 2e11, Nu: 0.3, Rho: 7850},
			})
		}
	}
	supports := make(map[int][]int)
	for n := range nodes {
		if n != id(1, 1) {
			supports[n] = []int{0, 1, 2}
		}
	}
	m, err := New(nodes, defs, supports, Config{})
	require.NoError(t, err)
	assert.Equal(t, 3, m.DOFPerNode())

	F := m.NewLoadVector()
	for e := range defs {
		require.NoError(t, m.AddElementLoad(F, e, element.Load{Distributed: element.Value(-1000)}))
	}
	sol, err := m.Solve(F)
	require.NoError(t, err)

	u, _ := sol.Node(id(1, 1))
	assert.Less(t, u[0], 0.)
	assert.InDelta(t, 0, u[1], 1e-15)
	assert.InDelta(t, 0, u[2], 1e-15)

	sum, err := m.CheckEquilibrium(F, sol.Reactions, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0, sum, 1e-6)
	var reaction float64
	for n := range nodes {
		_, r := sol.Node(n)
		reaction += r[0]
	}
	assert.InDelta(t, 4000, reaction, 1e-6)
}
