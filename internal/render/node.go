package render

import "github.com/vovakirdan/flappy-arcade/internal/core"

// Node is a display-tree element: a sprite when Texture is set, otherwise a
// container. Positions are relative to the parent. Containers translate and
// fade their children; rotation applies to the node's own texture only.
type Node struct {
	X, Y           float64
	Width, Height  float64
	Rotation       float64 // radians, clockwise, about the pivot
	Alpha          float64
	PivotX, PivotY float64
	Visible        bool
	Texture        *Texture

	parent   *Node
	children []*Node
}

// NewContainer creates an empty, visible container.
func NewContainer() *Node {
	return &Node{Alpha: 1, Visible: true}
}

// NewSprite creates a visible sprite sized to its texture.
func NewSprite(tex *Texture) *Node {
	n := NewContainer()
	n.SetTexture(tex)
	return n
}

// SetTexture swaps the texture and resizes the node to match.
func (n *Node) SetTexture(tex *Texture) {
	n.Texture = tex
	if tex != nil {
		n.Width = tex.Width
		n.Height = tex.Height
	}
}

// SetPivot sets the local point that X/Y refer to and rotation turns around.
func (n *Node) SetPivot(x, y float64) {
	n.PivotX, n.PivotY = x, y
}

// Parent returns the containing node, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list in draw order (first is drawn first).
func (n *Node) Children() []*Node {
	return n.children
}

// AddChild appends c on top of the existing children, detaching it from any
// previous parent.
func (n *Node) AddChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// RemoveChild detaches c. It reports whether c was a child of n.
func (n *Node) RemoveChild(c *Node) bool {
	i := n.ChildIndex(c)
	if i < 0 {
		return false
	}
	n.children = append(n.children[:i], n.children[i+1:]...)
	c.parent = nil
	return true
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

// ChildIndex returns the draw-order index of c, or -1.
func (n *Node) ChildIndex(c *Node) int {
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}

// SetChildIndex moves c to index i, clamped to the child range.
func (n *Node) SetChildIndex(c *Node, i int) {
	from := n.ChildIndex(c)
	if from < 0 {
		return
	}
	i = core.Clamp(i, 0, len(n.children)-1)
	n.children = append(n.children[:from], n.children[from+1:]...)
	n.children = append(n.children[:i], append([]*Node{c}, n.children[i:]...)...)
}

// BringToFront moves c to the top of n's children.
func (n *Node) BringToFront(c *Node) {
	n.SetChildIndex(c, len(n.children)-1)
}

// DrawOp is a sprite resolved to world space.
type DrawOp struct {
	Texture        *Texture
	X, Y           float64 // world position of the pivot
	PivotX, PivotY float64
	Width, Height  float64
	Rotation       float64
	Alpha          float64
}

// Bounds returns the unrotated world-space box of the sprite.
func (op DrawOp) Bounds() core.Box {
	left := op.X - op.PivotX
	top := op.Y - op.PivotY
	return core.Box{Left: left, Top: top, Right: left + op.Width, Bottom: top + op.Height}
}

// Flatten walks the tree back to front and returns the visible sprites.
func Flatten(root *Node) []DrawOp {
	var ops []DrawOp
	flatten(root, 0, 0, 1, &ops)
	return ops
}

func flatten(n *Node, ox, oy, alpha float64, ops *[]DrawOp) {
	if n == nil || !n.Visible {
		return
	}
	x := ox + n.X
	y := oy + n.Y
	a := alpha * n.Alpha
	if a <= 0 {
		return
	}
	if n.Texture != nil {
		*ops = append(*ops, DrawOp{
			Texture:  n.Texture,
			X:        x,
			Y:        y,
			PivotX:   n.PivotX,
			PivotY:   n.PivotY,
			Width:    n.Width,
			Height:   n.Height,
			Rotation: n.Rotation,
			Alpha:    a,
		})
	}
	for _, c := range n.children {
		flatten(c, x, y, a, ops)
	}
}
