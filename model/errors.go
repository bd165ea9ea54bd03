package model

import "errors"

var (
	ErrNoElements     = errors.New("model: no elements")
	ErrUnknownNode    = errors.New("model: unknown node")
	ErrUnknownElement = errors.New("model: unknown element")
	ErrDOFOutOfRange  = errors.New("model: local DOF out of range")
	ErrShape          = errors.New("model: size mismatch")
	ErrConfig         = errors.New("model: invalid configuration")
	ErrSingularSystem = errors.New("model: singular system")
	ErrSingularMass   = errors.New("model: singular mass matrix")
	ErrEigenFailed    = errors.New("model: eigen decomposition failed")
)
