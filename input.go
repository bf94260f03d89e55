package dropdown

// handleKey is the widget's surface-wide key-down listener. It only acts
// while the menu is open.
func (d *Dropdown[T]) handleKey(ev *KeyEvent) {
	if !d.IsOpen() {
		return
	}

	switch ev.Key {
	case KeyTab:
		// Focus returns to the trigger first so the surface's own Tab
		// handling moves on to whatever follows the widget.
		d.closeMenu("tab", true)
	case KeyEscape:
		d.closeMenu("escape", true)
	case KeyDown:
		ev.PreventDefault()
		d.moveFocus(+1)
	case KeyUp:
		ev.PreventDefault()
		d.moveFocus(-1)
	case KeySpace, KeyEnter:
		ev.PreventDefault()
		if d.selectFocused() && ev.Key == KeySpace {
			d.spaceConsumed = true
		}
	case KeyPageUp, KeyPageDown:
		// Reserved.
	}
}

// handlePointer is the widget's surface-wide pointer-down listener. A press
// outside the widget closes the menu and leaves the selection alone.
func (d *Dropdown[T]) handlePointer(ev PointerEvent) {
	if !d.IsOpen() {
		return
	}
	target := d.refs.surface.ElementAt(ev.Pos)
	if d.refs.root.Contains(target) {
		return
	}
	d.closeMenu("outside", false)
}

func (d *Dropdown[T]) onTriggerClick() {
	d.spaceConsumed = false
	d.Toggle()
}

func (d *Dropdown[T]) onTriggerKeyUp(ev *KeyEvent) {
	if ev.Key != KeySpace {
		return
	}
	if d.spaceConsumed {
		d.spaceConsumed = false
		return
	}
	ev.PreventDefault()
	d.Toggle()
}

// Scroll moves the open menu's list by dy pixels, clamped to its content.
func (d *Dropdown[T]) Scroll(dy float32) {
	if !d.IsOpen() {
		return
	}
	d.scroll = clampf(d.scroll+dy, 0, d.maxScroll())
	d.layoutItems()
}

// ScrollOffset returns the open menu's scroll position.
func (d *Dropdown[T]) ScrollOffset() float32 { return d.scroll }
