package node

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrBadCoordinates = errors.New("node: a node needs 2 or 3 coordinates")
	ErrNaNInf         = errors.New("node: NaN or Inf coordinate")
)

// Allocator hands out monotonically increasing identifiers. Each model
// construction episode owns one; there is no package level counter.
type Allocator struct {
	next int
}

func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next identifier and advances the counter.
func (a *Allocator) Next() (id int) {
	id = a.next
	a.next++
	return
}

// Peek returns the identifier the next call to Next will hand out.
func (a *Allocator) Peek() int {
	return a.next
}

// Reset restarts numbering at zero. Only useful inside test fixtures.
func (a *Allocator) Reset() {
	a.next = 0
}

// Node is a labeled point in 2D or 3D space. A 2D node has no z coordinate
// at all, which is different from a 3D node located at z=0.
type Node struct {
	id   int
	x, y float64
	z    float64
	is3D bool
}

// New creates a node from 2 or 3 coordinates
func (a *Allocator) New(coords ...float64) (*Node, error) {
	if len(coords) != 2 && len(coords) != 3 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCoordinates, len(coords))
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, ErrNaNInf
		}
	}
	n := &Node{id: a.Next(), x: coords[0], y: coords[1]}
	if len(coords) == 3 {
		n.z, n.is3D = coords[2], true
	}
	return n, nil
}

func (a *Allocator) New2D(x, y float64) *Node {
	return &Node{id: a.Next(), x: x, y: y}
}

func (a *Allocator) New3D(x, y, z float64) *Node {
	return &Node{id: a.Next(), x: x, y: y, z: z, is3D: true}
}

func (n *Node) ID() int    { return n.id }
func (n *Node) X() float64 { return n.x }
func (n *Node) Y() float64 { return n.y }
func (n *Node) Is3D() bool { return n.is3D }
func (n *Node) Dim() int   { return 2 + btoi(n.is3D) }
func (n *Node) Z() (float64, bool) {
	return n.z, n.is3D
}

// Coords returns a fresh slice of length 2 or 3
func (n *Node) Coords() []float64 {
	if n.is3D {
		return []float64{n.x, n.y, n.z}
	}
	return []float64{n.x, n.y}
}

// Distance is the Euclidean distance to other. If either node is 2D the
// z component is ignored.
func (n *Node) Distance(other *Node) float64 {
	dx, dy := n.x-other.x, n.y-other.y
	if !n.is3D || !other.is3D {
		return math.Sqrt(dx*dx + dy*dy)
	}
	dz := n.z - other.z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Equal reports whether the nodes share an identifier or a location.
func (n *Node) Equal(other *Node) bool {
	if other == nil {
		return false
	}
	if n.id == other.id {
		return true
	}
	return n.x == other.x && n.y == other.y &&
		n.is3D == other.is3D && n.z == other.z
}

func (n *Node) String() string {
	if n.is3D {
		return fmt.Sprintf("Node %d (%g, %g, %g)", n.id, n.x, n.y, n.z)
	}
	return fmt.Sprintf("Node %d (%g, %g)", n.id, n.x, n.y)
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
