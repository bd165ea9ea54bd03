package model

import (
	"fmt"
	"log"
	"strings"
)

type MassKind uint8

const (
	Lumped MassKind = iota // diagonal of the element mass matrices
	Consistent
)

func (k MassKind) String() string {
	switch k {
	case Lumped:
		return "lumped"
	case Consistent:
		return "consistent"
	}
	return "unknown"
}

// ParseMassKind accepts the names printed by String, case insensitive. The
// empty string selects Lumped.
func ParseMassKind(s string) (MassKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lumped":
		return Lumped, nil
	case "consistent":
		return Consistent, nil
	}
	return Lumped, fmt.Errorf("%w: unknown mass kind %q", ErrConfig, s)
}

const (
	DefaultPenalty            = 1e20
	DefaultPivotTolerance     = 1e-12
	DefaultZeroForceTolerance = 1e-9
)

// Config holds the analysis settings of a Model. Zero values are replaced
// by the defaults.
type Config struct {
	// Penalty is the diagonal value written for a constrained DOF. It must
	// be several orders of magnitude above the largest stiffness entry.
	Penalty float64
	// Mass selects the matrix used by SolveModal
	Mass MassKind
	// PivotTolerance is the smallest |pivot| of the constrained stiffness,
	// relative to its largest unconstrained entry, accepted by Solve
	PivotTolerance float64
	// ZeroForceTolerance classifies axial member forces as NoForce
	ZeroForceTolerance float64
	// Logger receives diagnostics. Nil keeps the model silent.
	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Penalty:            DefaultPenalty,
		Mass:               Lumped,
		PivotTolerance:     DefaultPivotTolerance,
		ZeroForceTolerance: DefaultZeroForceTolerance,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Penalty == 0 {
		c.Penalty = d.Penalty
	}
	if c.PivotTolerance == 0 {
		c.PivotTolerance = d.PivotTolerance
	}
	if c.ZeroForceTolerance == 0 {
		c.ZeroForceTolerance = d.ZeroForceTolerance
	}
	return c
}

func (c Config) validate() error {
	if !(c.Penalty > 0) {
		return fmt.Errorf("%w: penalty %g must be positive", ErrConfig, c.Penalty)
	}
	if c.PivotTolerance < 0 || c.ZeroForceTolerance < 0 {
		return fmt.Errorf("%w: negative tolerance", ErrConfig)
	}
	if c.Mass > Consistent {
		return fmt.Errorf("%w: mass kind %d", ErrConfig, c.Mass)
	}
	return nil
}
