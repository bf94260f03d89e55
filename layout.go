package dropdown

// minTriggerWidth is the narrowest auto-sized trigger.
const minTriggerWidth = 120

// triggerSize returns the trigger's size: the configured bounds, with zero
// dimensions sized to fit the longest label.
func (d *Dropdown[T]) triggerSize() Vec2 {
	s := d.cfg.Style
	size := Vec2{X: d.bounds.W, Y: d.bounds.H}
	if size.X <= 0 {
		size.X = minTriggerWidth
		chrome := s.ButtonPadding*3 + s.ArrowSize
		if w := MeasureText(d.cfg.Placeholder, s).X + chrome; w > size.X {
			size.X = w
		}
		for _, opt := range d.cfg.Options {
			if w := MeasureText(d.Label(opt), s).X + chrome; w > size.X {
				size.X = w
			}
		}
	}
	if size.Y <= 0 {
		size.Y = s.lineHeight() + s.ButtonPadding*2
	}
	return size
}

// itemHeight is the height of one menu entry.
func (d *Dropdown[T]) itemHeight() float32 {
	s := d.cfg.Style
	return s.lineHeight() + s.ItemPadding*2
}

// contentHeight is the unclipped height of all menu entries.
func (d *Dropdown[T]) contentHeight() float32 {
	return float32(len(d.cfg.Options)) * d.itemHeight()
}

// listRect is the area inside the menu border where entries are shown.
func (d *Dropdown[T]) listRect() Rect {
	if d.refs.menu == nil {
		return Rect{}
	}
	m := d.refs.menu.Bounds
	b := d.cfg.Style.BorderSize
	return Rect{X: m.X + b, Y: m.Y + b, W: maxf(m.W-2*b, 0), H: maxf(m.H-2*b, 0)}
}

func (d *Dropdown[T]) clipper() listClipper {
	return newListClipper(len(d.cfg.Options), d.itemHeight(), d.listRect(), d.scroll)
}

func (d *Dropdown[T]) maxScroll() float32 { return d.clipper().maxScroll() }

// layout positions the trigger and, while open, the menu and its entries.
func (d *Dropdown[T]) layout() {
	if !d.mounted {
		return
	}
	size := d.triggerSize()
	r := Rect{X: d.bounds.X, Y: d.bounds.Y, W: size.X, H: size.Y}
	d.refs.root.Bounds = r
	d.refs.trigger.Bounds = r

	if !d.IsOpen() {
		return
	}
	s := d.cfg.Style
	h := d.contentHeight() + 2*s.BorderSize
	if s.MaxMenuHeight > 0 {
		h = minf(h, s.MaxMenuHeight)
	}
	d.refs.floating.Update(Vec2{X: size.X, Y: h}, d.refs.surface.Viewport())
	d.scroll = clampf(d.scroll, 0, d.maxScroll())
	d.layoutItems()
}

// handleResize re-places the trigger and any open menu in the new viewport.
func (d *Dropdown[T]) handleResize(Rect) {
	d.layout()
}

// layoutItems sets each entry's hit box, clipped to the visible list.
// Entries scrolled out of view get an empty box.
func (d *Dropdown[T]) layoutItems() {
	c := d.clipper()
	for i, item := range d.refs.items {
		item.Bounds = c.hitRow(i)
	}
}

// scrollIntoView adjusts the scroll offset so entry i is fully visible.
func (d *Dropdown[T]) scrollIntoView(i int) {
	d.scroll = d.clipper().reveal(i)
	d.layoutItems()
}
