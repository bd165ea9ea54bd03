package element

import "fmt"

// Load selects the load kinds applied to one element. Every kind is
// optional and contributions add up.
type Load struct {
	// Uniform transverse load per unit length (plates: pressure per area)
	Distributed *float64
	// Uniform axial body load per unit length
	Axial *float64
	// Explicit end forces/moments in local DOF ordering
	Nodal []float64
	// Gravitational acceleration producing self weight
	Gravity *float64
}

// Value is a convenience for filling the optional Load fields
func Value(v float64) *float64 {
	return &v
}

// IsZero reports whether no load kind is set
func (ld Load) IsZero() bool {
	return ld.Distributed == nil && ld.Axial == nil && ld.Nodal == nil && ld.Gravity == nil
}

// CheckNodal validates the nodal part of a load against a local vector of
// length n
func (ld Load) CheckNodal(n int) error {
	if ld.Nodal != nil && len(ld.Nodal) != n {
		return fmt.Errorf("%w: want %d values, got %d", ErrLoadShape, n, len(ld.Nodal))
	}
	return nil
}
