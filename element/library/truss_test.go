package library

import (
	"math"
	"testing"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTrussMatrices(t *testing.T) {
	ids := node.NewAllocator()
	n1, n2 := ids.New3D(0, 0, 0), ids.New3D(1, 0, 0)
	tr, err := NewTruss(0, n1, n2, 1, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 1., tr.Length())
	assert.Equal(t, 3, tr.Properties().DOFPerNode)
	assert.Equal(t, element.D3, tr.Properties().Dimensions)

	assert.InDeltaSlicef(t, []float64{1, -1, -1, 1}, tr.LocalStiffness().RawMatrix().Data, 1.e-14, "")
	assert.InDeltaSlicef(t, []float64{2. / 6, 1. / 6, 1. / 6, 2. / 6}, tr.LocalMass().RawMatrix().Data, 1.e-14, "")

	T := tr.Transformation()
	assert.True(t, element.IsOrthonormalRows(T, 1.e-14))
	r, c := tr.GlobalStiffness().Dims()
	assert.Equal(t, []int{6, 6}, []int{r, c})
}

func TestTrussShapeFunctions(t *testing.T) {
	ids := node.NewAllocator()
	tr, err := NewTruss(0, ids.New2D(0, 0), ids.New2D(2, 0), 1, 1, 1)
	require.NoError(t, err)

	N, err := tr.ShapeFunctions(0)
	require.NoError(t, err)
	assert.InDeltaSlicef(t, []float64{1, 0}, N, 1.e-14, "")
	N, _ = tr.ShapeFunctions(2)
	assert.InDeltaSlicef(t, []float64{0, 1}, N, 1.e-14, "")
	for _, x := range []float64{0.1, 0.5, 1.3, 1.99} {
		N, _ = tr.ShapeFunctions(x)
		assert.InDelta(t, 1., N[0]+N[1], 1.e-14)
	}
	_, err = tr.ShapeFunctions(-0.1)
	assert.ErrorIs(t, err, element.ErrOutOfDomain)

	assert.InDeltaSlicef(t, []float64{-0.5, 0.5}, tr.B(), 1.e-14, "")
}

func TestTrussOblique(t *testing.T) {
	ids := node.NewAllocator()
	tr, err := NewTruss(0, ids.New3D(1, 1, 0), ids.New3D(0, 0, 1), 0.1, 7.e10, 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3), tr.Length(), 1.e-14)

	T := tr.Transformation()
	assert.True(t, element.IsOrthonormalRows(T, 1.e-12))
	assert.True(t, element.IsSymmetric(tr.GlobalStiffness(), 1.e-12))
	assert.True(t, element.IsSymmetric(tr.GlobalMass(), 1.e-12))

	// a rigid translation produces no force
	K := tr.GlobalStiffness()
	u := mat.NewVecDense(6, []float64{0.3, -0.2, 0.7, 0.3, -0.2, 0.7})
	var f mat.VecDense
	f.MulVec(K, u)
	assert.InDelta(t, 0., mat.Norm(&f, math.Inf(1)), 1.e-3)
}

func TestTrussLoadVector(t *testing.T) {
	ids := node.NewAllocator()
	tr, err := NewTruss(0, ids.New2D(0, 0), ids.New2D(2, 0), 1, 1, 1)
	require.NoError(t, err)

	f, err := tr.LoadVector(element.Load{Axial: element.Value(3), Nodal: []float64{1, 2}})
	require.NoError(t, err)
	assert.InDeltaSlicef(t, []float64{4, 5}, f.RawVector().Data, 1.e-14, "")

	_, err = tr.LoadVector(element.Load{Gravity: element.Value(-9.81)})
	assert.ErrorIs(t, err, element.ErrUnsupportedLoad)
	_, err = tr.LoadVector(element.Load{Nodal: []float64{1}})
	assert.ErrorIs(t, err, element.ErrLoadShape)
}

func TestTrussConstruction(t *testing.T) {
	ids := node.NewAllocator()
	p, q := ids.New2D(0, 0), ids.New2D(0, 0)
	_, err := NewTruss(0, p, q, 1, 1, 1)
	assert.ErrorIs(t, err, element.ErrCoincidentNodes)

	_, err = NewTruss(0, p, ids.New3D(1, 0, 0), 1, 1, 1)
	assert.ErrorIs(t, err, element.ErrDimensionMismatch)

	_, err = NewTruss(0, p, ids.New2D(1, 0), -1, 1, 1)
	assert.ErrorIs(t, err, element.ErrNonPositive)
	_, err = NewTruss(0, p, ids.New2D(1, 0), 1, 0, 1)
	assert.ErrorIs(t, err, element.ErrNonPositive)
}

func TestTrussDOFIndices(t *testing.T) {
	ids := node.NewAllocator()
	tr, err := NewTruss(0, ids.New2D(0, 0), ids.New2D(1, 0), 1, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, tr.DOFIndices())

	assert.ErrorIs(t, tr.SetDOFIndices([]int{0, 1}), element.ErrDOFCount)
	require.NoError(t, tr.SetDOFIndices([]int{0, 1, 2, 3}))
	assert.Equal(t, []int{0, 1, 2, 3}, tr.DOFIndices())
	assert.ErrorIs(t, tr.SetDOFIndices([]int{4, 5, 6, 7}), element.ErrDOFAlreadySet)
}
