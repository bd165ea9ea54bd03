package element

import (
	"fmt"
	"math"
)

// Section holds cross-section data. Families read only the fields they
// need and validate those.
type Section struct {
	A         float64 // area
	I         float64 // second moment of area for plane bending
	Iy, Iz    float64 // second moments about the local y and z axes
	J         float64 // torsional constant
	Thickness float64 // plates
}

// Material is an isotropic linear elastic material
type Material struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson ratio
	Rho float64 // density
}

// ShearModulus assumes isotropy
func (m Material) ShearModulus() float64 {
	return m.E / (2 * (1 + m.Nu))
}

// Positive checks name/value pairs and reports the first one that is not
// strictly positive.
func Positive(pairs ...any) error {
	if len(pairs)%2 != 0 {
		panic("element.Positive needs name/value pairs")
	}
	for i := 0; i < len(pairs); i += 2 {
		name := pairs[i].(string)
		val := pairs[i+1].(float64)
		if !(val > 0) || math.IsInf(val, 0) {
			return fmt.Errorf("%w: %s=%g", ErrNonPositive, name, val)
		}
	}
	return nil
}

// ValidatePoisson accepts 0 <= nu < 0.5
func ValidatePoisson(nu float64) error {
	if nu < 0 || nu >= 0.5 || math.IsNaN(nu) {
		return fmt.Errorf("%w: nu=%g must lie in [0, 0.5)", ErrNonPositive, nu)
	}
	return nil
}
