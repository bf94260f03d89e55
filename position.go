package dropdown

// PositionStrategy decides where floating content goes relative to a target.
type PositionStrategy interface {
	// Place returns bounds for content of the given size, anchored to
	// target and kept within viewport where possible.
	Place(target Rect, content Vec2, viewport Rect) Rect
}

// PositionFunc adapts a function to PositionStrategy.
type PositionFunc func(target Rect, content Vec2, viewport Rect) Rect

// Place implements PositionStrategy.
func (f PositionFunc) Place(target Rect, content Vec2, viewport Rect) Rect {
	return f(target, content, viewport)
}

// MenuPosition places a menu directly below its target, left aligned and at
// least as wide as the target. When there is more room above than below and
// the content does not fit below, it flips above. The result is clamped to
// the viewport.
type MenuPosition struct {
	// Gap is the vertical distance between target and menu.
	Gap float32
}

// Place implements PositionStrategy.
func (p MenuPosition) Place(target Rect, content Vec2, viewport Rect) Rect {
	w := maxf(content.X, target.W)
	h := content.Y

	if viewport.Empty() {
		return Rect{X: target.X, Y: target.Bottom() + p.Gap, W: w, H: h}
	}

	spaceBelow := viewport.Bottom() - target.Bottom() - p.Gap
	spaceAbove := target.Y - viewport.Y - p.Gap

	y := target.Bottom() + p.Gap
	if h > spaceBelow && spaceAbove > spaceBelow {
		y = target.Y - p.Gap - h
		if h > spaceAbove {
			h = maxf(spaceAbove, 0)
			y = viewport.Y
		}
	} else if h > spaceBelow {
		h = maxf(spaceBelow, 0)
	}

	if w > viewport.W {
		w = viewport.W
	}
	x := clampf(target.X, viewport.X, viewport.Right()-w)

	return Rect{X: x, Y: y, W: w, H: h}
}

// Floating keeps a content node positioned next to a target node.
type Floating struct {
	Target   *Node
	Content  *Node
	Strategy PositionStrategy
}

// NewFloating marks content as floating and binds it to target. A nil
// strategy means MenuPosition{}.
func NewFloating(target, content *Node, strategy PositionStrategy) *Floating {
	if strategy == nil {
		strategy = MenuPosition{}
	}
	content.Floating = true
	return &Floating{Target: target, Content: content, Strategy: strategy}
}

// Update recomputes the content bounds for a content size and viewport.
func (f *Floating) Update(size Vec2, viewport Rect) Rect {
	if f == nil || f.Target == nil || f.Content == nil {
		return Rect{}
	}
	f.Content.Bounds = f.Strategy.Place(f.Target.Bounds, size, viewport)
	return f.Content.Bounds
}
