package element

import (
	"fmt"

	"github.com/notargets/DSMKernel/node"
)

// Base carries the bookkeeping shared by every family: identity, node
// references, the frozen length and the DOF map. Families embed it.
type Base struct {
	id         int
	props      Properties
	nodes      []*node.Node
	length     float64
	dofIndices []int
}

// NewBase validates node count, dimensional consistency and non-zero length.
// The nodes must all be 2D or all be 3D.
func NewBase(id int, props Properties, nodes ...*node.Node) (Base, error) {
	if len(nodes) != props.NodesPerElement {
		return Base{}, fmt.Errorf("%w: %s wants %d, got %d",
			ErrNodeCount, props.ShortName, props.NodesPerElement, len(nodes))
	}
	for _, n := range nodes[1:] {
		if n.Is3D() != nodes[0].Is3D() {
			return Base{}, fmt.Errorf("%w: %s mixes 2D and 3D nodes %d and %d",
				ErrDimensionMismatch, props.ShortName, nodes[0].ID(), n.ID())
		}
	}
	for a := 0; a < len(nodes); a++ {
		for b := a + 1; b < len(nodes); b++ {
			if nodes[a].Distance(nodes[b]) == 0 {
				return Base{}, fmt.Errorf("%w: nodes %d and %d",
					ErrCoincidentNodes, nodes[a].ID(), nodes[b].ID())
			}
		}
	}
	return Base{
		id:     id,
		props:  props,
		nodes:  nodes,
		length: nodes[0].Distance(nodes[1]),
	}, nil
}

func (b *Base) ID() int                { return b.id }
func (b *Base) Properties() Properties { return b.props }
func (b *Base) Length() float64        { return b.length }

func (b *Base) Nodes() []*node.Node {
	return append([]*node.Node(nil), b.nodes...)
}

func (b *Base) DOFIndices() []int {
	if b.dofIndices == nil {
		return nil
	}
	return append([]int(nil), b.dofIndices...)
}

func (b *Base) SetDOFIndices(idx []int) error {
	if b.dofIndices != nil {
		return fmt.Errorf("%w: element %d", ErrDOFAlreadySet, b.id)
	}
	if len(idx) != b.props.NDOF() {
		return fmt.Errorf("%w: element %d wants %d, got %d",
			ErrDOFCount, b.id, b.props.NDOF(), len(idx))
	}
	b.dofIndices = append([]int(nil), idx...)
	return nil
}
