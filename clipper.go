package dropdown

// listClipper maps a scrolled list of fixed-height rows onto a view
// rectangle, so only the rows that intersect the view are laid out and drawn.
type listClipper struct {
	count  int
	rowH   float32
	view   Rect
	scroll float32
}

func newListClipper(count int, rowH float32, view Rect, scroll float32) listClipper {
	return listClipper{count: count, rowH: rowH, view: view, scroll: scroll}
}

// visible returns the half-open index range of rows intersecting the view.
func (c listClipper) visible() (start, end int) {
	if c.count == 0 || c.rowH <= 0 || c.view.H <= 0 {
		return 0, 0
	}
	start = int(c.scroll / c.rowH)
	end = int((c.scroll+c.view.H)/c.rowH) + 1
	if start < 0 {
		start = 0
	}
	if end > c.count {
		end = c.count
	}
	if start > end {
		start = end
	}
	return start, end
}

// row returns row i's rectangle in surface coordinates, ignoring the view.
func (c listClipper) row(i int) Rect {
	return Rect{X: c.view.X, Y: c.view.Y + float32(i)*c.rowH - c.scroll, W: c.view.W, H: c.rowH}
}

// hitRow is row i clipped to the view. Rows outside the view are empty.
func (c listClipper) hitRow(i int) Rect {
	r := c.row(i)
	y1 := maxf(r.Y, c.view.Y)
	y2 := minf(r.Bottom(), c.view.Bottom())
	if y2 <= y1 {
		return Rect{}
	}
	return Rect{X: r.X, Y: y1, W: r.W, H: y2 - y1}
}

func (c listClipper) contentHeight() float32 { return float32(c.count) * c.rowH }

func (c listClipper) maxScroll() float32 { return maxf(0, c.contentHeight()-c.view.H) }

// reveal returns the smallest scroll change that shows row i completely.
func (c listClipper) reveal(i int) float32 {
	if i < 0 || i >= c.count {
		return c.scroll
	}
	top := float32(i) * c.rowH
	switch {
	case top < c.scroll:
		return top
	case top+c.rowH > c.scroll+c.view.H:
		return clampf(top+c.rowH-c.view.H, 0, c.maxScroll())
	}
	return c.scroll
}
