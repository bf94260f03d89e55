package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/dropdown"
)

// GLFWInputAdapter forwards GLFW window callbacks to a dropdown.Surface.
type GLFWInputAdapter struct {
	window  *glfw.Window
	surface *dropdown.Surface

	// OnScroll, if set, receives wheel offsets in pixels (positive is down).
	OnScroll func(dx, dy float32)
}

// ScrollStep is the number of pixels one wheel notch scrolls.
const ScrollStep = 20

// NewGLFWInputAdapter installs callbacks on window that drive surface.
func NewGLFWInputAdapter(window *glfw.Window, surface *dropdown.Surface) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window, surface: surface}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetCursorEnterCallback(a.cursorEnterCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetSizeCallback(a.sizeCallback)

	w, h := window.GetSize()
	surface.Resize(dropdown.Vec2{X: float32(w), Y: float32(h)})
	return a
}

// Surface returns the surface events are delivered to.
func (a *GLFWInputAdapter) Surface() *dropdown.Surface { return a.surface }

func (a *GLFWInputAdapter) cursor() dropdown.Vec2 {
	x, y := a.window.GetCursorPos()
	return dropdown.Vec2{X: float32(x), Y: float32(y)}
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKey(key)
	if k == dropdown.KeyNone {
		return
	}
	ev := dropdown.KeyEvent{Key: k, Action: dropdown.KeyPress, Shift: mods&glfw.ModShift != 0}
	if action == glfw.Release {
		ev.Action = dropdown.KeyRelease
	}
	a.surface.DispatchKey(ev)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := glfwMouseButton(button)
	if !ok {
		return
	}
	switch action {
	case glfw.Press:
		a.surface.DispatchPointerDown(a.cursor(), b)
	case glfw.Release:
		a.surface.DispatchPointerUp(a.cursor(), b)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	a.surface.DispatchPointerMove(dropdown.Vec2{X: float32(x), Y: float32(y)})
}

func (a *GLFWInputAdapter) cursorEnterCallback(_ *glfw.Window, entered bool) {
	if !entered {
		a.surface.PointerLeave()
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	if a.OnScroll != nil {
		a.OnScroll(float32(-xoff)*ScrollStep, float32(-yoff)*ScrollStep)
	}
}

func (a *GLFWInputAdapter) sizeCallback(_ *glfw.Window, w, h int) {
	a.surface.Resize(dropdown.Vec2{X: float32(w), Y: float32(h)})
}

var glfwKeys = map[glfw.Key]dropdown.Key{
	glfw.KeyTab:       dropdown.KeyTab,
	glfw.KeyLeft:      dropdown.KeyLeft,
	glfw.KeyRight:     dropdown.KeyRight,
	glfw.KeyUp:        dropdown.KeyUp,
	glfw.KeyDown:      dropdown.KeyDown,
	glfw.KeyPageUp:    dropdown.KeyPageUp,
	glfw.KeyPageDown:  dropdown.KeyPageDown,
	glfw.KeyHome:      dropdown.KeyHome,
	glfw.KeyEnd:       dropdown.KeyEnd,
	glfw.KeyInsert:    dropdown.KeyInsert,
	glfw.KeyDelete:    dropdown.KeyDelete,
	glfw.KeyBackspace: dropdown.KeyBackspace,
	glfw.KeySpace:     dropdown.KeySpace,
	glfw.KeyEnter:     dropdown.KeyEnter,
	glfw.KeyKPEnter:   dropdown.KeyEnter,
	glfw.KeyEscape:    dropdown.KeyEscape,
}

// glfwKey maps a GLFW key. Unhandled keys map to KeyNone.
func glfwKey(key glfw.Key) dropdown.Key {
	return glfwKeys[key]
}

func glfwMouseButton(button glfw.MouseButton) (dropdown.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return dropdown.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return dropdown.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return dropdown.MouseButtonMiddle, true
	}
	return 0, false
}
