package dropdown

// Draw adds the trigger button to dl.
func (d *Dropdown[T]) Draw(dl *DrawList) {
	if !d.mounted {
		return
	}
	s := d.cfg.Style
	r := d.refs.trigger.Bounds
	hovered := d.refs.surface.Hovered() == d.refs.trigger

	bg := s.ButtonColor
	switch {
	case d.IsOpen():
		bg = s.ButtonOpenColor
	case hovered:
		bg = s.ButtonHoveredColor
	}
	dl.AddRect(r.X, r.Y, r.W, r.H, bg)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, s.BorderColor, s.BorderSize)

	text, color := d.TriggerLabel(), s.TextColor
	if _, _, ok := d.Selected(); !ok {
		color = s.PlaceholderColor
	}
	textW := r.W - s.ButtonPadding*3 - s.ArrowSize
	text = TruncateText(text, textW, s)
	dl.AddText(r.X+s.ButtonPadding, r.Y+(r.H-s.lineHeight())/2, text, color, s)

	d.drawArrow(dl, r)

	if d.refs.trigger.IsFocused() {
		dl.AddRectOutline(r.X-1, r.Y-1, r.W+2, r.H+2, s.FocusColor, s.BorderSize)
	}
}

// drawArrow points down while closed and up while open.
func (d *Dropdown[T]) drawArrow(dl *DrawList, r Rect) {
	s := d.cfg.Style
	size := s.ArrowSize
	x := r.Right() - s.ButtonPadding - size
	y := r.Y + r.H/2
	if d.IsOpen() {
		dl.AddTriangle(x+size/2, y-size/4, x, y+size/4, x+size, y+size/4, s.ArrowColor)
		return
	}
	dl.AddTriangle(x+size/2, y+size/4, x, y-size/4, x+size, y-size/4, s.ArrowColor)
}

// DrawOverlay adds the open menu to dl. Call it after every widget's Draw
// so the menu ends up on top.
func (d *Dropdown[T]) DrawOverlay(dl *DrawList) {
	if !d.IsOpen() {
		return
	}
	s := d.cfg.Style
	m := d.refs.menu.Bounds
	if m.Empty() {
		return
	}
	dl.AddRect(m.X, m.Y, m.W, m.H, s.MenuBgColor)
	dl.AddRectOutline(m.X, m.Y, m.W, m.H, s.MenuBorderColor, s.BorderSize)

	list := d.listRect()
	dl.PushClipRect(list.X, list.Y, list.Right(), list.Bottom())
	defer dl.PopClipRect()

	c := d.clipper()
	focused := d.FocusedIndex()
	hovered := d.refs.surface.Hovered()
	start, end := c.visible()
	for i := start; i < end; i++ {
		row := c.row(i)
		top, ih := row.Y, row.H

		color := s.TextColor
		switch {
		case i == d.selected:
			dl.AddRect(list.X, top, list.W, ih, s.SelectedBgColor)
			color = s.SelectedTextColor
		case i == focused || (i < len(d.refs.items) && hovered == d.refs.items[i]):
			dl.AddRect(list.X, top, list.W, ih, s.FocusedBgColor)
		}
		if i == focused {
			dl.AddRectOutline(list.X, top, list.W, ih, s.FocusColor, s.BorderSize)
		}

		text := TruncateText(d.Label(d.cfg.Options[i]), list.W-s.ItemPadding*2, s)
		dl.AddText(list.X+s.ItemPadding, top+s.ItemPadding, text, color, s)
	}
}
