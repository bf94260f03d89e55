package dropdown

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// State is the open/closed state of a Dropdown.
type State uint8

const (
	Closed State = iota
	Open
)

// String returns "closed" or "open".
func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Errors returned by Mount.
var (
	ErrAlreadyMounted = errors.New("dropdown: already mounted")
	ErrDetachedParent = errors.New("dropdown: parent node is not attached to a surface")
)

// refs are the widget's handles into the surface tree. They are only set
// while mounted; menu and items only while open.
type refs struct {
	surface  *Surface
	root     *Node
	trigger  *Node
	menu     *Node
	items    []*Node
	floating *Floating

	keyListener     *Listener
	pointerListener *Listener
	resizeListener  *Listener
}

// Dropdown is a trigger button that reveals a floating list of options.
//
// Usage:
//
//	colors := dropdown.New(
//	    dropdown.WithOptions("Red", "Green", "Blue"),
//	    dropdown.WithOnChange(func(c string, i int) { apply(c) }),
//	)
//	if err := colors.Mount(surface.Root()); err != nil {
//	    return err
//	}
//	defer colors.Unmount()
//
// All methods must be called from the goroutine that dispatches the
// surface's events.
type Dropdown[T any] struct {
	cfg   Config[T]
	state State

	selected int // index into cfg.Options, -1 when nothing is selected
	bounds   Rect
	scroll   float32

	// spaceConsumed marks a Space press used by the open menu, so its
	// release on the trigger does not reopen it.
	spaceConsumed bool

	mounted bool
	refs    refs
	log     *logrus.Entry
}

// New creates a closed dropdown. A default option that is present in the
// options becomes the initial selection.
func New[T any](opts ...Option[T]) *Dropdown[T] {
	d := &Dropdown[T]{selected: -1}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	d.cfg.applyDefaults()
	d.log = d.cfg.Logger

	if d.cfg.DefaultOption != nil {
		if i := d.indexOf(*d.cfg.DefaultOption); i >= 0 {
			d.selected = i
		} else {
			d.log.Warn("default option is not among the options, ignoring")
		}
	}
	return d
}

// NewFromConfig creates a dropdown from a prepared Config. The options
// slice is copied.
func NewFromConfig[T any](cfg Config[T]) *Dropdown[T] {
	cfg.Options = append([]T(nil), cfg.Options...)
	return New(func(c *Config[T]) { *c = cfg })
}

// Mount builds the widget's nodes under parent and registers its key and
// pointer listeners on the parent's surface.
func (d *Dropdown[T]) Mount(parent *Node) error {
	if d.mounted {
		return ErrAlreadyMounted
	}
	if parent == nil || !parent.Attached() {
		return ErrDetachedParent
	}
	s := parent.Surface()

	root := s.NewNode("dropdown")
	trigger := s.NewNode("dropdown-button")
	trigger.Focusable = true
	trigger.OnClick = d.onTriggerClick
	trigger.OnKeyUp = d.onTriggerKeyUp
	root.AppendChild(trigger)
	parent.AppendChild(root)

	d.refs = refs{surface: s, root: root, trigger: trigger}
	d.refs.keyListener = s.OnKeyDown(d.handleKey)
	d.refs.pointerListener = s.OnPointerDown(d.handlePointer)
	d.refs.resizeListener = s.OnResize(d.handleResize)
	d.mounted = true
	d.log = d.cfg.Logger.WithField("node", root.ID)

	d.layout()
	d.log.Trace("mounted")
	return nil
}

// Unmount removes the listeners and nodes. It is safe to call repeatedly.
func (d *Dropdown[T]) Unmount() {
	if !d.mounted {
		return
	}
	d.refs.keyListener.Remove()
	d.refs.pointerListener.Remove()
	d.refs.resizeListener.Remove()
	d.closeMenu("unmount", false)
	d.refs.root.Remove()
	d.refs = refs{}
	d.mounted = false
	d.spaceConsumed = false
	d.log.Trace("unmounted")
}

// Mounted reports whether the widget is attached to a surface.
func (d *Dropdown[T]) Mounted() bool { return d.mounted }

// Root returns the widget's root node while mounted.
func (d *Dropdown[T]) Root() (*Node, bool) { return d.refs.root, d.refs.root != nil }

// Trigger returns the trigger button node while mounted.
func (d *Dropdown[T]) Trigger() (*Node, bool) { return d.refs.trigger, d.refs.trigger != nil }

// Menu returns the floating list node while open.
func (d *Dropdown[T]) Menu() (*Node, bool) { return d.refs.menu, d.refs.menu != nil }

// Item returns the list entry node for option i while open.
func (d *Dropdown[T]) Item(i int) (*Node, bool) {
	if i < 0 || i >= len(d.refs.items) {
		return nil, false
	}
	return d.refs.items[i], true
}

// State returns the current state.
func (d *Dropdown[T]) State() State { return d.state }

// IsOpen reports whether the menu is shown.
func (d *Dropdown[T]) IsOpen() bool { return d.state == Open }

// Options returns the current options.
func (d *Dropdown[T]) Options() []T { return d.cfg.Options }

// Selected returns the selected option and its index.
func (d *Dropdown[T]) Selected() (T, int, bool) {
	if d.selected < 0 || d.selected >= len(d.cfg.Options) {
		var zero T
		return zero, -1, false
	}
	return d.cfg.Options[d.selected], d.selected, true
}

// FocusedIndex returns the index of the focused list entry, or -1.
func (d *Dropdown[T]) FocusedIndex() int {
	if !d.IsOpen() {
		return -1
	}
	active := d.refs.surface.ActiveElement()
	for i, n := range d.refs.items {
		if n == active {
			return i
		}
	}
	return -1
}

// Label returns the display text for opt.
func (d *Dropdown[T]) Label(opt T) string {
	return ResolveLabelStrategy(&d.cfg).Label(opt)
}

// TriggerLabel returns the text shown on the trigger: the selected
// option's label or the placeholder.
func (d *Dropdown[T]) TriggerLabel() string {
	if opt, _, ok := d.Selected(); ok {
		return d.Label(opt)
	}
	return d.cfg.Placeholder
}

// ClassNames returns the widget's class list for host styling.
func (d *Dropdown[T]) ClassNames() []string {
	names := []string{"Dropdown", "Dropdown-menu-closed"}
	if d.IsOpen() {
		names[1] = "Dropdown-menu-open"
	}
	if d.cfg.ClassName != "" {
		names = append(names, d.cfg.ClassName)
	}
	return names
}

// Style returns the effective style.
func (d *Dropdown[T]) Style() Style { return d.cfg.Style }

// SetBounds places the trigger. A zero width or height is sized from the
// option labels.
func (d *Dropdown[T]) SetBounds(r Rect) {
	d.bounds = r
	d.layout()
}

// SetOptions replaces the options. The selection is kept when an equal
// option is still present and cleared otherwise.
func (d *Dropdown[T]) SetOptions(opts []T) {
	var prev *T
	if opt, _, ok := d.Selected(); ok {
		prev = &opt
	}
	focused := d.FocusedIndex()

	d.cfg.Options = append([]T(nil), opts...)
	d.selected = -1
	if prev != nil {
		d.selected = d.indexOf(*prev)
		if d.selected < 0 {
			d.log.Debug("selection no longer among the options, cleared")
		}
	}

	if d.IsOpen() {
		d.buildItems()
		if focused >= 0 {
			if i := clampIndex(focused, len(d.refs.items)); i >= 0 {
				d.focusItem(i)
			} else {
				d.refs.trigger.Focus()
			}
		}
	}
	d.layout()
}

// Toggle opens a closed menu and closes an open one.
func (d *Dropdown[T]) Toggle() {
	if d.IsOpen() {
		d.Close()
	} else {
		d.Open()
	}
}

// Open shows the menu and focuses the selected entry, or the first entry
// when nothing is selected. It does nothing while unmounted.
func (d *Dropdown[T]) Open() {
	if !d.mounted || d.IsOpen() {
		return
	}
	s := d.refs.surface

	menu := s.NewNode("dropdown-menu")
	d.refs.menu = menu
	d.refs.floating = NewFloating(d.refs.trigger, menu, d.cfg.Position)
	d.refs.root.AppendChild(menu)
	d.state = Open
	d.scroll = 0
	d.buildItems()
	d.layout()

	d.log.WithField("options", len(d.cfg.Options)).Trace("menu opened")
	d.setInitialFocus()
}

// Close hides the menu without changing the selection.
func (d *Dropdown[T]) Close() {
	d.closeMenu("close", true)
}

// closeMenu detaches the menu. With restoreFocus set, focus inside the
// menu moves back to the trigger.
func (d *Dropdown[T]) closeMenu(reason string, restoreFocus bool) {
	if !d.IsOpen() {
		return
	}
	menu := d.refs.menu
	hadFocus := menu.Contains(d.refs.surface.ActiveElement())

	menu.Remove()
	d.refs.menu = nil
	d.refs.items = nil
	d.refs.floating = nil
	d.state = Closed

	if restoreFocus && hadFocus && d.refs.trigger != nil {
		d.refs.trigger.Focus()
	}
	d.log.WithField("reason", reason).Trace("menu closed")
}

func (d *Dropdown[T]) buildItems() {
	menu := d.refs.menu
	if menu == nil {
		return
	}
	menu.RemoveChildren()
	s := d.refs.surface

	items := make([]*Node, len(d.cfg.Options))
	for i := range d.cfg.Options {
		item := s.NewNode("dropdown-item")
		item.Focusable = true
		index := i
		item.OnClick = func() { d.selectIndex(index, "pointer") }
		menu.AppendChild(item)
		items[i] = item
	}
	d.refs.items = items
}

func (d *Dropdown[T]) setInitialFocus() {
	if d.selected >= 0 && d.selected < len(d.refs.items) {
		d.focusItem(d.selected)
		return
	}
	d.moveFocus(0)
}

// moveFocus shifts focus by delta entries, clamped to the list. A zero
// delta, or focus outside the list, focuses the first entry.
func (d *Dropdown[T]) moveFocus(delta int) {
	n := len(d.refs.items)
	if n == 0 {
		return
	}
	cur := d.FocusedIndex()
	if delta == 0 || cur < 0 {
		d.focusItem(0)
		return
	}
	next := cur + delta
	if next < 0 || next > n-1 {
		return
	}
	d.focusItem(next)
}

func (d *Dropdown[T]) focusItem(i int) {
	item, ok := d.Item(i)
	if !ok {
		return
	}
	item.Focus()
	d.scrollIntoView(i)
	d.log.WithField("index", i).Trace("focus moved")
}

// selectFocused selects the focused entry. Returns false when focus is not
// inside the list.
func (d *Dropdown[T]) selectFocused() bool {
	i := d.FocusedIndex()
	if i < 0 {
		return false
	}
	d.selectIndex(i, "keyboard")
	return true
}

func (d *Dropdown[T]) selectIndex(i int, source string) {
	if i < 0 || i >= len(d.cfg.Options) {
		return
	}
	d.selected = i
	d.closeMenu("select", true)

	d.log.WithFields(logrus.Fields{"index": i, "source": source}).Trace("option selected")
	if d.cfg.OnChange != nil {
		d.cfg.OnChange(d.cfg.Options[i], i)
	}
}

func (d *Dropdown[T]) indexOf(opt T) int {
	for i, o := range d.cfg.Options {
		if d.cfg.Equal(o, opt) {
			return i
		}
	}
	return -1
}
