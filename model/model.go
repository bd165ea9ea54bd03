// Package model assembles elements into a global system and solves it with
// the direct stiffness method.
package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"
	"github.com/notargets/DSMKernel/element"
	"github.com/notargets/DSMKernel/node"
	"github.com/notargets/DSMKernel/utils"
)

type Model struct {
	cfg        Config
	nodes      []*node.Node // indexed by id
	elements   []element.Element
	supports   map[int][]int
	dofPerNode int
	ndof       int
	conn       *utils.DOFConnector
	stiffness  *sparse.CSR // unconstrained, assembled on first use
}

// New resolves the element definitions against the nodes and assigns the
// global DOF indices. Node ids must be dense, 0..len(nodes)-1, in any
// order. Supports map a node id to its constrained local DOFs; they are
// validated when constraints are applied.
func New(nodes []*node.Node, defs []Definition, supports map[int][]int, cfg Config) (*Model, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, ErrNoElements
	}
	m := &Model{
		cfg:      cfg,
		nodes:    make([]*node.Node, len(nodes)),
		supports: make(map[int][]int, len(supports)),
	}

	// Index resolution
	for _, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("%w: nil node", ErrUnknownNode)
		}
		id := n.ID()
		if id < 0 || id >= len(nodes) {
			return nil, fmt.Errorf("%w: node id %d outside 0..%d", ErrUnknownNode, id, len(nodes)-1)
		}
		if m.nodes[id] != nil {
			return nil, fmt.Errorf("%w: duplicate node id %d", ErrUnknownNode, id)
		}
		m.nodes[id] = n
	}
	ids := node.NewAllocator()
	for _, d := range defs {
		el, err := d.Build(ids.Next(), m.lookup)
		if err != nil {
			return nil, err
		}
		m.elements = append(m.elements, el)
	}

	// DOF index assignment
	m.dofPerNode = m.elements[0].Properties().DOFPerNode
	m.ndof = m.dofPerNode * len(m.nodes)
	maps := make([][]int, len(m.elements))
	for e, el := range m.elements {
		dpn := el.Properties().DOFPerNode
		if dpn > m.dofPerNode {
			return nil, fmt.Errorf("%w: element %d has %d DOFs per node, model has %d",
				ErrDOFOutOfRange, el.ID(), dpn, m.dofPerNode)
		}
		var idx []int
		for _, n := range el.Nodes() {
			for k := 0; k < dpn; k++ {
				idx = append(idx, m.dofPerNode*n.ID()+k)
			}
		}
		if err := el.SetDOFIndices(idx); err != nil {
			return nil, fmt.Errorf("element %d: %w", el.ID(), err)
		}
		maps[e] = idx
	}
	var err error
	if m.conn, err = utils.NewDOFConnector(m.ndof, maps); err != nil {
		return nil, err
	}
	if free := m.conn.Unreferenced(); len(free) != 0 {
		m.logf("%d DOFs are not connected to any element: %v", len(free), free)
	}

	for id, dofs := range supports {
		m.supports[id] = append([]int(nil), dofs...)
	}
	return m, nil
}

func (m *Model) lookup(id int) (*node.Node, bool) {
	if id < 0 || id >= len(m.nodes) {
		return nil, false
	}
	return m.nodes[id], true
}

func (m *Model) logf(format string, args ...any) {
	if m.cfg.Logger != nil {
		m.cfg.Logger.Printf(format, args...)
	}
}

func (m *Model) Config() Config                 { return m.cfg }
func (m *Model) NDOF() int                      { return m.ndof }
func (m *Model) DOFPerNode() int                { return m.dofPerNode }
func (m *Model) NumNodes() int                  { return len(m.nodes) }
func (m *Model) NumElements() int               { return len(m.elements) }
func (m *Model) Node(id int) (*node.Node, bool) { return m.lookup(id) }

func (m *Model) Element(id int) (element.Element, bool) {
	if id < 0 || id >= len(m.elements) {
		return nil, false
	}
	return m.elements[id], true
}

// Elements returns the elements in definition order
func (m *Model) Elements() []element.Element {
	return append([]element.Element(nil), m.elements...)
}

// GlobalDOF maps a node id and a local DOF to the global index
func (m *Model) GlobalDOF(nodeID, dof int) (int, error) {
	if _, ok := m.lookup(nodeID); !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, nodeID)
	}
	if dof < 0 || dof >= m.dofPerNode {
		return 0, fmt.Errorf("%w: node %d DOF %d, model has %d per node",
			ErrDOFOutOfRange, nodeID, dof, m.dofPerNode)
	}
	return m.dofPerNode*nodeID + dof, nil
}

func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Model: %d nodes, %d elements, %d DOF/node, %d DOF\n",
		len(m.nodes), len(m.elements), m.dofPerNode, m.ndof))

	counts := make(map[string]int)
	for _, el := range m.elements {
		counts[el.Properties().ShortName]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	sb.WriteString("  Elements:")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf(" %s×%d", name, counts[name]))
	}
	sb.WriteString("\n")

	sb.WriteString("  Supports:")
	for _, id := range sortedKeys(m.supports) {
		sb.WriteString(fmt.Sprintf(" node %d %v", id, m.supports[id]))
	}
	sb.WriteString("\n")
	nnz := m.StiffnessNNZ()
	sb.WriteString(fmt.Sprintf("  Stiffness: %d stored entries (%.1f%% of %d×%d)\n",
		nnz, 100*float64(nnz)/float64(m.ndof*m.ndof), m.ndof, m.ndof))
	sb.WriteString(fmt.Sprintf("  Penalty: %g, mass: %s\n", m.cfg.Penalty, m.cfg.Mass))
	return sb.String()
}

func sortedKeys(mp map[int][]int) []int {
	keys := make([]int, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
