package element

import "errors"

// Construction errors are reported immediately and are fatal to the
// offending element. Callers match them with errors.Is.
var (
	ErrNonPositive       = errors.New("element: physical property must be strictly positive")
	ErrCoincidentNodes   = errors.New("element: coincident nodes, zero length")
	ErrDimensionMismatch = errors.New("element: node dimensionality does not fit the element family")
	ErrNotAligned        = errors.New("element: nodes violate the alignment the family is formulated for")
	ErrNodeCount         = errors.New("element: wrong number of nodes")
	ErrDOFAlreadySet     = errors.New("element: DOF indices already assigned")
	ErrDOFCount          = errors.New("element: wrong number of DOF indices")
	ErrUnsupportedLoad   = errors.New("element: load kind not supported by this family")
	ErrLoadShape         = errors.New("element: nodal load has the wrong length")
	ErrOutOfDomain       = errors.New("element: evaluation point outside the element")
	ErrBadGeometry       = errors.New("element: non-positive Jacobian, check node ordering")
)
