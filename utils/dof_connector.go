package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DOFConnector manages the gather and scatter indices between element
// local DOF numbering and the global system
type DOFConnector struct {
	NDOF int // Global DOF count
	K    int // Number of elements

	// Place indices: [element][localDOF] → global DOF
	ElementDOF [][]int

	// Pick buffers: [globalDOF] → every (element, localDOF) touching it
	Incidence [][]Slot
}

// Accumulator is a matrix written entry by entry, a *mat.Dense or a
// *sparse.DOK
type Accumulator interface {
	At(i, j int) float64
	Set(i, j int, v float64)
}

// Slot addresses one local DOF of one element
type Slot struct {
	Element int
	Local   int
}

// NewDOFConnector creates a connector from per-element DOF maps
func NewDOFConnector(ndof int, maps [][]int) (*DOFConnector, error) {
	if ndof <= 0 {
		return nil, fmt.Errorf("invalid dimensions: NDOF=%d", ndof)
	}
	dc := &DOFConnector{
		NDOF:       ndof,
		K:          len(maps),
		ElementDOF: make([][]int, len(maps)),
	}
	for e, m := range maps {
		if len(m) == 0 {
			return nil, fmt.Errorf("element %d has no DOF indices", e)
		}
		dc.ElementDOF[e] = append([]int(nil), m...)
	}
	if err := dc.buildIncidence(); err != nil {
		return nil, err
	}
	return dc, nil
}

func (dc *DOFConnector) buildIncidence() error {
	dc.Incidence = make([][]Slot, dc.NDOF)
	for e, m := range dc.ElementDOF {
		for l, g := range m {
			if g < 0 || g >= dc.NDOF {
				return fmt.Errorf("invalid global DOF %d for element %d local %d (max %d)",
					g, e, l, dc.NDOF-1)
			}
			dc.Incidence[g] = append(dc.Incidence[g], Slot{Element: e, Local: l})
		}
	}
	return nil
}

// Gather picks the values of element e out of a global vector
func (dc *DOFConnector) Gather(global mat.Vector, e int) *mat.VecDense {
	m := dc.ElementDOF[e]
	local := mat.NewVecDense(len(m), nil)
	for l, g := range m {
		local.SetVec(l, global.AtVec(g))
	}
	return local
}

// ScatterAdd accumulates an element vector into the global vector
func (dc *DOFConnector) ScatterAdd(dst *mat.VecDense, e int, local mat.Vector) {
	m := dc.ElementDOF[e]
	if local.Len() != len(m) {
		panic(fmt.Sprintf("element %d: local vector length %d, want %d", e, local.Len(), len(m)))
	}
	for l, g := range m {
		dst.SetVec(g, dst.AtVec(g)+local.AtVec(l))
	}
}

// ScatterAddMatrix accumulates a full element matrix
func (dc *DOFConnector) ScatterAddMatrix(dst Accumulator, e int, local mat.Matrix) {
	m := dc.ElementDOF[e]
	dc.checkSquare(e, local)
	for i, gi := range m {
		for j, gj := range m {
			dst.Set(gi, gj, dst.At(gi, gj)+local.At(i, j))
		}
	}
}

// ScatterAddDiagonal accumulates only the diagonal of an element matrix
func (dc *DOFConnector) ScatterAddDiagonal(dst Accumulator, e int, local mat.Matrix) {
	m := dc.ElementDOF[e]
	dc.checkSquare(e, local)
	for i, gi := range m {
		dst.Set(gi, gi, dst.At(gi, gi)+local.At(i, i))
	}
}

func (dc *DOFConnector) checkSquare(e int, local mat.Matrix) {
	r, c := local.Dims()
	if n := len(dc.ElementDOF[e]); r != n || c != n {
		panic(fmt.Sprintf("element %d: local matrix %d×%d, want %d×%d", e, r, c, n, n))
	}
}

// Unreferenced lists global DOFs no element touches
func (dc *DOFConnector) Unreferenced() (idx []int) {
	for g, slots := range dc.Incidence {
		if len(slots) == 0 {
			idx = append(idx, g)
		}
	}
	return
}

// Verify checks index validity and conservation: every local DOF appears
// exactly once in the incidence lists
func (dc *DOFConnector) Verify() error {
	total := 0
	for _, m := range dc.ElementDOF {
		total += len(m)
	}
	count := 0
	for g, slots := range dc.Incidence {
		for _, s := range slots {
			if dc.ElementDOF[s.Element][s.Local] != g {
				return fmt.Errorf("incidence mismatch: DOF %d listed for element %d local %d",
					g, s.Element, s.Local)
			}
		}
		count += len(slots)
	}
	if count != total {
		return fmt.Errorf("conservation error: total incidences %d != total local DOFs %d",
			count, total)
	}
	return nil
}
