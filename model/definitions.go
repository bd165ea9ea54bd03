package model

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/element/library"
	"github.com/notargets/DSMKernel/node"
)

// NodeLookup resolves a node id
type NodeLookup func(id int) (*node.Node, bool)

// Definition is a raw element record: node ids plus the family specific
// properties. Build is called once by New with the id allocated for the
// element.
type Definition interface {
	Build(id int, lookup NodeLookup) (element.Element, error)
}

type TrussDef struct {
	Nodes     [2]int
	A, E, Rho float64
}

type BeamDef struct {
	Nodes        [2]int
	A, I, E, Rho float64
}

// TimoshenkoDef uses the default shear correction when Kappa is zero
type TimoshenkoDef struct {
	Nodes                   [2]int
	A, I, E, Rho, Nu, Kappa float64
}

type FrameDef struct {
	Nodes    [2]int
	Section  element.Section
	Material element.Material
}

// PlateDef lists the corners counterclockwise
type PlateDef struct {
	Nodes     [4]int
	Thickness float64
	Material  element.Material
}

func (d TrussDef) Build(id int, lookup NodeLookup) (element.Element, error) {
	n, err := resolve(id, lookup, d.Nodes[:]...)
	if err != nil {
		return nil, err
	}
	el, err := library.NewTruss(id, n[0], n[1], d.A, d.E, d.Rho)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (d BeamDef) Build(id int, lookup NodeLookup) (element.Element, error) {
	n, err := resolve(id, lookup, d.Nodes[:]...)
	if err != nil {
		return nil, err
	}
	el, err := library.NewBeam(id, n[0], n[1], d.A, d.I, d.E, d.Rho)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (d TimoshenkoDef) Build(id int, lookup NodeLookup) (element.Element, error) {
	n, err := resolve(id, lookup, d.Nodes[:]...)
	if err != nil {
		return nil, err
	}
	el, err := library.NewTimoshenkoBeam(id, n[0], n[1], d.A, d.I, d.E, d.Rho, d.Nu, d.Kappa)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (d FrameDef) Build(id int, lookup NodeLookup) (element.Element, error) {
	n, err := resolve(id, lookup, d.Nodes[:]...)
	if err != nil {
		return nil, err
	}
	el, err := library.NewSpatialFrame(id, n[0], n[1], d.Section, d.Material)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func (d PlateDef) Build(id int, lookup NodeLookup) (element.Element, error) {
	n, err := resolve(id, lookup, d.Nodes[:]...)
	if err != nil {
		return nil, err
	}
	el, err := library.NewMindlinPlate(id, [4]*node.Node{n[0], n[1], n[2], n[3]}, d.Thickness, d.Material)
	if err != nil {
		return nil, err
	}
	return el, nil
}

func resolve(elementID int, lookup NodeLookup, ids ...int) ([]*node.Node, error) {
	nodes := make([]*node.Node, len(ids))
	for i, id := range ids {
		n, ok := lookup(id)
		if !ok {
			return nil, fmt.Errorf("%w: element %d references node %d", ErrUnknownNode, elementID, id)
		}
		nodes[i] = n
	}
	return nodes, nil
}
