// Package inp reads model definitions written in YAML
//
//	kind: beam
//	analysis: {penalty: 1e20, mass: consistent}
//	nodes: [[0, 0], [1.25, 0], [2.5, 0]]
//	elements:
//	  - {nodes: [0, 1], A: 0.1, I: 0.2, E: 7e10, rho: 2700}
//	  - {nodes: [1, 2], A: 0.1, I: 0.2, E: 7e10, rho: 2700}
//	supports: {0: [0, 1], 2: [0, 1]}
//	loads:
//	  nodal: [{node: 1, dof: 0, value: -1000}]
//	  elements: [{element: 0, q: -500}]
//
// Node and element ids are given by their position in the lists.
package inp

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind = errors.New("inp: unknown element kind")
	ErrInput       = errors.New("inp: invalid input")
)

// Element kinds
const (
	KindTruss      = "truss"
	KindBeam       = "beam"
	KindTimoshenko = "timoshenko"
	KindFrame      = "frame"
	KindPlate      = "plate"
)

type Input struct {
	Kind     string        `yaml:"kind"`
	Analysis Analysis      `yaml:"analysis,omitempty"`
	Nodes    [][]float64   `yaml:"nodes"`
	Elements []ElementData `yaml:"elements"`
	Supports map[int][]int `yaml:"supports,omitempty"`
	Loads    Loads         `yaml:"loads,omitempty"`

	// Logger is handed to the model configuration
	Logger *log.Logger `yaml:"-"`
}

// Analysis maps onto model.Config; zero values keep the defaults
type Analysis struct {
	Penalty            float64 `yaml:"penalty,omitempty"`
	Mass               string  `yaml:"mass,omitempty"`
	PivotTolerance     float64 `yaml:"pivot_tolerance,omitempty"`
	ZeroForceTolerance float64 `yaml:"zero_force_tolerance,omitempty"`
}

// ElementData carries the union of the properties of every kind. Each kind
// reads the fields it needs.
type ElementData struct {
	Nodes []int   `yaml:"nodes"`
	A     float64 `yaml:"A,omitempty"`
	E     float64 `yaml:"E,omitempty"`
	Rho   float64 `yaml:"rho,omitempty"`
	I     float64 `yaml:"I,omitempty"`
	Iy    float64 `yaml:"Iy,omitempty"`
	Iz    float64 `yaml:"Iz,omitempty"`
	J     float64 `yaml:"J,omitempty"`
	Nu    float64 `yaml:"nu,omitempty"`
	Kappa float64 `yaml:"kappa,omitempty"`
	T     float64 `yaml:"t,omitempty"`
}

type Loads struct {
	Nodal    []NodalLoad   `yaml:"nodal,omitempty"`
	Elements []ElementLoad `yaml:"elements,omitempty"`
}

type NodalLoad struct {
	Node  int     `yaml:"node"`
	DOF   int     `yaml:"dof"`
	Value float64 `yaml:"value"`
}

// ElementLoad selects the element load kinds: q transverse, fx axial, g
// gravity and explicit local end actions
type ElementLoad struct {
	Element int       `yaml:"element"`
	Q       *float64  `yaml:"q,omitempty"`
	Fx      *float64  `yaml:"fx,omitempty"`
	G       *float64  `yaml:"g,omitempty"`
	Nodal   []float64 `yaml:"nodal,omitempty"`
}

// Parse decodes one YAML document. Unknown keys are rejected.
func Parse(r io.Reader) (*Input, error) {
	var in Input
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&in); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(in.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrInput)
	}
	return &in, nil
}

func ReadFile(path string) (*Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	in, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// Encode writes the input back as YAML
func (in *Input) Encode(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(in); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
