package element

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrices collects the element matrices under names suffixed with the
// family short name and the element id, e.g. "K_Truss3_4".
func Matrices(el Element) (mats map[string]mat.Matrix) {
	var (
		props = el.Properties()
	)
	sn := fmt.Sprintf("%s_%d", props.ShortName, el.ID())
	mats = map[string]mat.Matrix{
		"k_" + sn: el.LocalStiffness(),
		"m_" + sn: el.LocalMass(),
		"T_" + sn: el.Transformation(),
		"K_" + sn: el.GlobalStiffness(),
		"M_" + sn: el.GlobalMass(),
	}
	return
}

// FormatMatrix renders a matrix one row per line
func FormatMatrix(name string, m mat.Matrix) string {
	rows, cols := m.Dims()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s [%d×%d] = {\n", name, rows, cols))
	for i := 0; i < rows; i++ {
		sb.WriteString("    {")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(fmt.Sprintf("%12.5e", m.At(i, j)))
		}
		sb.WriteString("}")
		if i < rows-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")

	return sb.String()
}

// Dump formats every matrix of the element in name order
func Dump(el Element) string {
	var sb strings.Builder
	mats := Matrices(el)
	names := make([]string, 0, len(mats))
	for name := range mats {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(FormatMatrix(name, mats[name]))
	}
	return sb.String()
}
