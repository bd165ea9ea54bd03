package inp

import (
	"fmt"
	"strings"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/model"
	"github.com/notargets/DSMKernel/node"
	"gonum.org/v1/gonum/mat"
)

// Config translates the analysis section
func (in *Input) Config() (model.Config, error) {
	kind, err := model.ParseMassKind(in.Analysis.Mass)
	if err != nil {
		return model.Config{}, err
	}
	return model.Config{
		Penalty:            in.Analysis.Penalty,
		Mass:               kind,
		PivotTolerance:     in.Analysis.PivotTolerance,
		ZeroForceTolerance: in.Analysis.ZeroForceTolerance,
		Logger:             in.Logger,
	}, nil
}

// Build creates the model and assembles the load vector
func (in *Input) Build() (*model.Model, *mat.VecDense, error) {
	if _, ok := nodeCount[strings.ToLower(in.Kind)]; !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
	cfg, err := in.Config()
	if err != nil {
		return nil, nil, err
	}
	alloc := node.NewAllocator()
	nodes := make([]*node.Node, len(in.Nodes))
	for i, c := range in.Nodes {
		if nodes[i], err = alloc.New(c...); err != nil {
			return nil, nil, fmt.Errorf("node %d: %w", i, err)
		}
	}
	defs := make([]model.Definition, len(in.Elements))
	for i, ed := range in.Elements {
		if defs[i], err = in.definition(ed); err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	m, err := model.New(nodes, defs, in.Supports, cfg)
	if err != nil {
		return nil, nil, err
	}

	F := m.NewLoadVector()
	for _, nl := range in.Loads.Nodal {
		if err = m.AddNodalLoad(F, nl.Node, nl.DOF, nl.Value); err != nil {
			return nil, nil, fmt.Errorf("nodal load: %w", err)
		}
	}
	for _, el := range in.Loads.Elements {
		ld := element.Load{Distributed: el.Q, Axial: el.Fx, Gravity: el.G, Nodal: el.Nodal}
		if err = m.AddElementLoad(F, el.Element, ld); err != nil {
			return nil, nil, fmt.Errorf("element load: %w", err)
		}
	}
	return m, F, nil
}

// nodes per element of each kind
var nodeCount = map[string]int{
	KindTruss:      2,
	KindBeam:       2,
	KindTimoshenko: 2,
	KindFrame:      2,
	KindPlate:      4,
}

func (in *Input) definition(ed ElementData) (model.Definition, error) {
	kind := strings.ToLower(in.Kind)
	want, ok := nodeCount[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, in.Kind)
	}
	if len(ed.Nodes) != want {
		return nil, fmt.Errorf("%w: %s needs %d nodes, got %d", ErrInput, kind, want, len(ed.Nodes))
	}
	var pair [2]int
	copy(pair[:], ed.Nodes)
	material := element.Material{E: ed.E, Nu: ed.Nu, Rho: ed.Rho}

	switch kind {
	case KindTruss:
		return model.TrussDef{Nodes: pair, A: ed.A, E: ed.E, Rho: ed.Rho}, nil
	case KindBeam:
		return model.BeamDef{Nodes: pair, A: ed.A, I: ed.I, E: ed.E, Rho: ed.Rho}, nil
	case KindTimoshenko:
		return model.TimoshenkoDef{Nodes: pair, A: ed.A, I: ed.I, E: ed.E, Rho: ed.Rho,
			Nu: ed.Nu, Kappa: ed.Kappa}, nil
	case KindFrame:
		return model.FrameDef{
			Nodes:    pair,
			Section:  element.Section{A: ed.A, Iy: ed.Iy, Iz: ed.Iz, J: ed.J},
			Material: material,
		}, nil
	case KindPlate:
		var quad [4]int
		copy(quad[:], ed.Nodes)
		return model.PlateDef{Nodes: quad, Thickness: ed.T, Material: material}, nil
	}
	panic("inp: unhandled kind " + kind)
}
