// Package ana implements closed-form solutions for bars and beams. Loads
// are signed: positive acts along +y (or +x for bars), so a downward load
// is negative. Reactions and end moments follow the same convention,
// moments counterclockwise positive.
package ana

import "math"

// AxialBar is a prismatic bar fixed at one end and loaded axially at the
// other
//
//	▷o=========o→ P
//	      L
type AxialBar struct {
	P float64 // end load, tension positive
	L float64 // length
	E float64 // Young's modulus
	A float64 // area
}

func (b AxialBar) Stiffness() float64  { return b.E * b.A / b.L }
func (b AxialBar) Elongation() float64 { return b.P * b.L / (b.E * b.A) }

// Cantilever is clamped at x=0 and free at x=L
//
//	|▷
//	|▷================o ↓ P
//	|▷ ↓ ↓ ↓ ↓ ↓ ↓ ↓ ↓  Q
type Cantilever struct {
	P float64 // tip load
	Q float64 // uniform load per length
	L float64
	E float64
	I float64
}

func (c Cantilever) TipDeflection() float64 {
	L := c.L
	return c.P*L*L*L/(3*c.E*c.I) + c.Q*L*L*L*L/(8*c.E*c.I)
}

func (c Cantilever) TipRotation() float64 {
	L := c.L
	return c.P*L*L/(2*c.E*c.I) + c.Q*L*L*L/(6*c.E*c.I)
}

// RootReaction is the transverse force at the clamp
func (c Cantilever) RootReaction() float64 { return -(c.P + c.Q*c.L) }

// RootMoment is the reaction moment at the clamp
func (c Cantilever) RootMoment() float64 { return -(c.P*c.L + c.Q*c.L*c.L/2) }

// ClampedPointLoad is a beam clamped at both ends with P at midspan
type ClampedPointLoad struct {
	P, L, E, I float64
}

func (c ClampedPointLoad) Reaction() float64 { return -c.P / 2 }

// EndMoment is the reaction moment at x=0; the one at x=L has the
// opposite sign
func (c ClampedPointLoad) EndMoment() float64 { return -c.P * c.L / 8 }

func (c ClampedPointLoad) MidspanDeflection() float64 {
	return c.P * c.L * c.L * c.L / (192 * c.E * c.I)
}

// ClampedUniform is a beam clamped at both ends under a uniform load Q
type ClampedUniform struct {
	Q, L, E, I float64
}

func (c ClampedUniform) Reaction() float64  { return -c.Q * c.L / 2 }
func (c ClampedUniform) EndMoment() float64 { return -c.Q * c.L * c.L / 12 }

func (c ClampedUniform) MidspanDeflection() float64 {
	L := c.L
	return c.Q * L * L * L * L / (384 * c.E * c.I)
}

// SpringMass returns the natural frequency in Hz of a single DOF system
func SpringMass(k, m float64) float64 {
	return math.Sqrt(k/m) / (2 * math.Pi)
}

// cantileverRoots are the first roots of cos(βL)cosh(βL) = -1
var cantileverRoots = []float64{1.8751040687, 4.6940911330, 7.8547574382, 10.9955407349}

// CantileverFrequency gives the n-th (1-based, n ≤ 4) bending frequency in
// Hz of a uniform Euler-Bernoulli cantilever
func CantileverFrequency(n int, L, E, I, rho, A float64) float64 {
	b := cantileverRoots[n-1] / L
	return b * b * math.Sqrt(E*I/(rho*A)) / (2 * math.Pi)
}
