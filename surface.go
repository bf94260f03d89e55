package dropdown

// Surface is the top-level input surface: it owns the node tree, tracks the
// focused node and fans out process-wide key and pointer listeners.
//
// A Surface is not safe for concurrent use. Create nodes, dispatch events
// and mutate widgets from the UI goroutine only.
type Surface struct {
	root    *Node
	focused *Node

	// pressTarget is the node under the last pointer-down, used to pair
	// press and release into a click.
	pressTarget *Node

	pointer    Vec2
	hasPointer bool

	keyListeners     []*Listener
	pointerListeners []*Listener
	resizeListeners  []*Listener

	idCounter uint64
}

// Listener is a registration handle returned by OnKeyDown, OnPointerDown
// and OnResize.
type Listener struct {
	surface *Surface
	key     KeyListener
	pointer PointerListener
	resize  ResizeListener
	removed bool
}

// Remove deregisters the listener. Calling it more than once is a no-op.
func (l *Listener) Remove() {
	if l == nil || l.removed {
		return
	}
	l.removed = true
	s := l.surface
	s.keyListeners = removeListener(s.keyListeners, l)
	s.pointerListeners = removeListener(s.pointerListeners, l)
	s.resizeListeners = removeListener(s.resizeListeners, l)
}

// Active reports whether the listener is still registered.
func (l *Listener) Active() bool { return l != nil && !l.removed }

func removeListener(list []*Listener, l *Listener) []*Listener {
	for i, cur := range list {
		if cur == l {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// NewSurface creates a surface whose root node covers size.
func NewSurface(size Vec2) *Surface {
	s := &Surface{}
	s.root = s.NewNode("root")
	s.root.Bounds = Rect{W: size.X, H: size.Y}
	return s
}

// NewNode creates a detached node owned by this surface.
func (s *Surface) NewNode(name string) *Node {
	return &Node{ID: s.nextID(name), Name: name, surface: s}
}

// Root returns the document root node.
func (s *Surface) Root() *Node { return s.root }

// Size returns the surface (viewport) size.
func (s *Surface) Size() Vec2 { return Vec2{X: s.root.Bounds.W, Y: s.root.Bounds.H} }

// Viewport returns the visible area as a rectangle.
func (s *Surface) Viewport() Rect { return s.root.Bounds }

// Resize updates the viewport size and notifies resize listeners.
func (s *Surface) Resize(size Vec2) {
	s.root.Bounds.W = size.X
	s.root.Bounds.H = size.Y

	for _, l := range append([]*Listener(nil), s.resizeListeners...) {
		if l.Active() {
			l.resize(s.Viewport())
		}
	}
}

// OnKeyDown registers fn for every key press on the surface.
func (s *Surface) OnKeyDown(fn KeyListener) *Listener {
	l := &Listener{surface: s, key: fn}
	s.keyListeners = append(s.keyListeners, l)
	return l
}

// OnPointerDown registers fn for every pointer press on the surface.
func (s *Surface) OnPointerDown(fn PointerListener) *Listener {
	l := &Listener{surface: s, pointer: fn}
	s.pointerListeners = append(s.pointerListeners, l)
	return l
}

// OnResize registers fn for every viewport change.
func (s *Surface) OnResize(fn ResizeListener) *Listener {
	l := &Listener{surface: s, resize: fn}
	s.resizeListeners = append(s.resizeListeners, l)
	return l
}

// ListenerCount returns the number of registered key and pointer listeners.
func (s *Surface) ListenerCount() (keys, pointers int) {
	return len(s.keyListeners), len(s.pointerListeners)
}

// ActiveElement returns the focused node, or nil.
func (s *Surface) ActiveElement() *Node {
	if s.focused != nil && !s.focused.Attached() {
		s.focused = nil
	}
	return s.focused
}

// Focus moves focus to n. Detached or non-focusable nodes are ignored.
func (s *Surface) Focus(n *Node) {
	if n == nil || n.surface != s || !n.Focusable || !n.Attached() {
		return
	}
	s.focused = n
}

// Blur clears focus.
func (s *Surface) Blur() { s.focused = nil }

// FocusOrder returns the attached focusable nodes in tab order.
func (s *Surface) FocusOrder() []*Node {
	var order []*Node
	s.root.walk(func(n *Node) bool {
		if n.Focusable {
			order = append(order, n)
		}
		return true
	})
	return order
}

// FocusNext moves focus to the next (or previous, when reverse is set)
// focusable node in tab order, wrapping at the ends.
// Returns the newly focused node, or nil when nothing is focusable.
func (s *Surface) FocusNext(reverse bool) *Node {
	order := s.FocusOrder()
	if len(order) == 0 {
		s.focused = nil
		return nil
	}

	cur := -1
	active := s.ActiveElement()
	for i, n := range order {
		if n == active {
			cur = i
			break
		}
	}

	var next int
	switch {
	case cur < 0 && reverse:
		next = len(order) - 1
	case cur < 0:
		next = 0
	case reverse:
		next = (cur - 1 + len(order)) % len(order)
	default:
		next = (cur + 1) % len(order)
	}
	s.focused = order[next]
	return s.focused
}

// ElementAt returns the deepest attached node under p. Floating subtrees are
// tested first, last attached on top. The root is returned for empty space
// inside the viewport; nil outside it.
func (s *Surface) ElementAt(p Vec2) *Node {
	var floating []*Node
	s.root.walk(func(n *Node) bool {
		if n.Floating {
			floating = append(floating, n)
			return false
		}
		return true
	})
	for i := len(floating) - 1; i >= 0; i-- {
		if h := floating[i].hit(p, false); h != nil {
			return h
		}
	}
	return s.root.hit(p, true)
}

// DispatchKey delivers a key event. Presses go to every key-down listener,
// then run the default action unless prevented: Tab moves focus through the
// tab order and Enter clicks the focused node. Releases go to the focused
// node's OnKeyUp. Returns whether the default action was prevented.
func (s *Surface) DispatchKey(ev KeyEvent) bool {
	if ev.Action == KeyRelease {
		if n := s.ActiveElement(); n != nil && n.OnKeyUp != nil {
			n.OnKeyUp(&ev)
		}
		return ev.DefaultPrevented()
	}

	for _, l := range snapshot(s.keyListeners) {
		if l.Active() && l.key != nil {
			l.key(&ev)
		}
	}
	if ev.DefaultPrevented() {
		return true
	}

	switch ev.Key {
	case KeyTab:
		s.FocusNext(ev.Shift)
	case KeyEnter:
		if n := s.ActiveElement(); n != nil && n.OnClick != nil {
			n.OnClick()
		}
	}
	return false
}

// DispatchPointerDown delivers a pointer press. Listeners run first; then a
// left press focuses the node under the pointer (or clears focus when that
// node is not focusable).
func (s *Surface) DispatchPointerDown(p Vec2, button MouseButton) {
	s.DispatchPointerMove(p)
	target := s.ElementAt(p)
	s.pressTarget = target

	ev := PointerEvent{Pos: p, Button: button}
	for _, l := range snapshot(s.pointerListeners) {
		if l.Active() && l.pointer != nil {
			l.pointer(ev)
		}
	}

	if button != MouseButtonLeft {
		return
	}
	if target != nil && target.Focusable && target.Attached() {
		s.focused = target
	} else {
		s.focused = nil
	}
}

// DispatchPointerUp delivers a pointer release. A left release on the same
// node that received the press clicks it.
func (s *Surface) DispatchPointerUp(p Vec2, button MouseButton) {
	pressed := s.pressTarget
	s.pressTarget = nil
	if button != MouseButtonLeft || pressed == nil {
		return
	}
	if target := s.ElementAt(p); target == pressed && target.Attached() && target.OnClick != nil {
		target.OnClick()
	}
}

// DispatchPointerMove records the pointer position for hover tracking.
func (s *Surface) DispatchPointerMove(p Vec2) {
	s.pointer = p
	s.hasPointer = true
}

// PointerLeave forgets the pointer position.
func (s *Surface) PointerLeave() { s.hasPointer = false }

// Hovered returns the node under the last known pointer position, or nil.
func (s *Surface) Hovered() *Node {
	if !s.hasPointer {
		return nil
	}
	return s.ElementAt(s.pointer)
}

// Click performs a full left press and release at p.
func (s *Surface) Click(p Vec2) {
	s.DispatchPointerDown(p, MouseButtonLeft)
	s.DispatchPointerUp(p, MouseButtonLeft)
}

// Press delivers a key press followed by its release.
func (s *Surface) Press(k Key) {
	s.DispatchKey(KeyEvent{Key: k, Action: KeyPress})
	s.DispatchKey(KeyEvent{Key: k, Action: KeyRelease})
}

// snapshot copies a listener list so handlers may register or remove
// listeners during dispatch.
func snapshot(list []*Listener) []*Listener {
	if len(list) == 0 {
		return nil
	}
	out := make([]*Listener, len(list))
	copy(out, list)
	return out
}
