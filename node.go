package dropdown

// Node is an element in a Surface's tree. Widgets build their visible parts
// out of nodes so the surface can hit-test, focus and route events to them.
//
// Nodes are created by Surface.NewNode and are detached until appended to an
// attached parent.
type Node struct {
	ID        ID
	Name      string
	Bounds    Rect
	Focusable bool
	// Floating nodes are drawn above the regular tree and win hit tests,
	// even when they lie outside their parent's bounds.
	Floating bool

	// OnClick runs when a pointer press and release land on this node,
	// or when Enter is pressed while it has focus.
	OnClick func()
	// OnKeyUp runs for key releases while this node has focus.
	OnKeyUp func(ev *KeyEvent)

	surface  *Surface
	parent   *Node
	children []*Node
}

// Surface returns the surface that created the node.
func (n *Node) Surface() *Surface { return n.surface }

// Parent returns the node's parent, or nil when detached or root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the node's child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildIndex returns the position of child among n's children, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// AppendChild attaches child as the last child of n. A child that already
// has a parent is moved. Children from another surface are ignored.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n || child.surface != n.surface || child.Contains(n) {
		return
	}
	if child.parent != nil {
		child.Remove()
	}
	child.parent = n
	n.children = append(n.children, child)
}

// Remove detaches the node (and its subtree) from its parent.
// If focus or a pending press was inside the subtree it is dropped.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.ChildIndex(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil

	s := n.surface
	if s == nil {
		return
	}
	if s.focused != nil && n.Contains(s.focused) {
		s.focused = nil
	}
	if s.pressTarget != nil && n.Contains(s.pressTarget) {
		s.pressTarget = nil
	}
}

// RemoveChildren detaches every child of n.
func (n *Node) RemoveChildren() {
	for len(n.children) > 0 {
		n.children[len(n.children)-1].Remove()
	}
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// Attached reports whether the node is reachable from its surface's root.
func (n *Node) Attached() bool {
	if n.surface == nil {
		return false
	}
	return n.surface.root.Contains(n)
}

// IsFocused reports whether the node is the surface's active element.
func (n *Node) IsFocused() bool {
	return n.surface != nil && n.surface.focused == n
}

// Focus makes the node the surface's active element.
func (n *Node) Focus() {
	if n.surface != nil {
		n.surface.Focus(n)
	}
}

// walk visits n and its descendants in pre-order (document order).
// Returning false from fn skips the subtree.
func (n *Node) walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.walk(fn)
	}
}

// hit returns the deepest node under p. Later children are on top.
func (n *Node) hit(p Vec2, skipFloating bool) *Node {
	for i := len(n.children) - 1; i >= 0; i-- {
		c := n.children[i]
		if skipFloating && c.Floating {
			continue
		}
		if h := c.hit(p, skipFloating); h != nil {
			return h
		}
	}
	if n.Bounds.Contains(p) {
		return n
	}
	return nil
}
