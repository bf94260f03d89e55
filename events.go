package dropdown

// KeyAction distinguishes key presses from releases.
type KeyAction uint8

const (
	KeyPress KeyAction = iota
	KeyRelease
)

// String returns "press" or "release".
func (a KeyAction) String() string {
	if a == KeyRelease {
		return "release"
	}
	return "press"
}

// KeyEvent is a single keyboard event delivered by a Surface.
type KeyEvent struct {
	Key    Key
	Action KeyAction
	Shift  bool

	prevented bool
}

// PreventDefault suppresses the surface's default action for this event
// (Tab traversal, Enter activating the focused node).
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// PointerEvent is a pointer press or release at a surface position.
type PointerEvent struct {
	Pos    Vec2
	Button MouseButton
}

// KeyListener receives key-down events from a Surface.
type KeyListener func(ev *KeyEvent)

// PointerListener receives pointer-down events from a Surface.
type PointerListener func(ev PointerEvent)

// ResizeListener receives the new viewport after a Surface resize.
type ResizeListener func(viewport Rect)
