package dropdown_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/dropdown"
)

type change struct {
	opt   string
	index int
}

// harness mounts one string dropdown on an 800x600 surface and records
// every OnChange call.
type harness struct {
	t       *testing.T
	surface *dropdown.Surface
	d       *dropdown.Dropdown[string]
	changes []change
}

func newHarness(t *testing.T, opts ...dropdown.Option[string]) *harness {
	t.Helper()
	h := &harness{t: t, surface: dropdown.NewSurface(dropdown.Vec2{X: 800, Y: 600})}
	opts = append(opts, dropdown.WithOnChange(func(opt string, index int) {
		h.changes = append(h.changes, change{opt, index})
	}))
	h.d = dropdown.New(opts...)
	require.NoError(t, h.d.Mount(h.surface.Root()))
	h.d.SetBounds(dropdown.Rect{X: 10, Y: 10})
	return h
}

func center(r dropdown.Rect) dropdown.Vec2 {
	return dropdown.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (h *harness) trigger() *dropdown.Node {
	h.t.Helper()
	n, ok := h.d.Trigger()
	require.True(h.t, ok)
	return n
}

func (h *harness) clickTrigger() {
	h.surface.Click(center(h.trigger().Bounds))
}

func (h *harness) clickItem(i int) {
	h.t.Helper()
	n, ok := h.d.Item(i)
	require.True(h.t, ok, "item %d", i)
	h.surface.Click(center(n.Bounds))
}

func (h *harness) press(keys ...dropdown.Key) {
	for _, k := range keys {
		h.surface.Press(k)
	}
}

var rgb = []string{"Red", "Green", "Blue"}

func TestNewStartsClosed(t *testing.T) {
	d := dropdown.New(dropdown.WithOptions(rgb...))

	assert.Equal(t, dropdown.Closed, d.State())
	assert.False(t, d.IsOpen())
	assert.Equal(t, -1, d.FocusedIndex())
	_, idx, ok := d.Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	assert.Equal(t, "-Select-", d.TriggerLabel())
}

func TestKeyboardSelection(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))

	h.clickTrigger()
	require.True(t, h.d.IsOpen())
	assert.Equal(t, 0, h.d.FocusedIndex())

	h.press(dropdown.KeyDown, dropdown.KeyDown, dropdown.KeyEnter)

	assert.False(t, h.d.IsOpen())
	assert.Equal(t, []change{{"Blue", 2}}, h.changes)
	opt, idx, ok := h.d.Selected()
	require.True(t, ok)
	assert.Equal(t, "Blue", opt)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "Blue", h.d.TriggerLabel())
	assert.True(t, h.trigger().IsFocused())
}

func TestPointerSelection(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))

	h.clickTrigger()
	h.clickItem(2)

	assert.False(t, h.d.IsOpen())
	assert.Equal(t, []change{{"Blue", 2}}, h.changes)
	assert.Equal(t, "Blue", h.d.TriggerLabel())
}

func TestOpenFocusesSelectedOption(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions("A", "B", "C"), dropdown.WithDefault("B"))

	h.d.Open()
	assert.Equal(t, 1, h.d.FocusedIndex())
}

func TestEscapeClosesAndReopenRestoresFocus(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions("A", "B", "C"), dropdown.WithDefault("B"))

	h.clickTrigger()
	h.press(dropdown.KeyDown)
	assert.Equal(t, 2, h.d.FocusedIndex())

	h.press(dropdown.KeyEscape)
	assert.False(t, h.d.IsOpen())
	assert.Empty(t, h.changes)
	assert.True(t, h.trigger().IsFocused())

	h.clickTrigger()
	assert.Equal(t, 1, h.d.FocusedIndex())
}

func TestOutsideClickClosesWithoutChange(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...), dropdown.WithDefault("Green"))

	h.clickTrigger()
	h.press(dropdown.KeyDown)
	h.surface.Click(dropdown.Vec2{X: 700, Y: 500})

	assert.False(t, h.d.IsOpen())
	assert.Empty(t, h.changes)
	opt, _, _ := h.d.Selected()
	assert.Equal(t, "Green", opt)
	assert.Nil(t, h.surface.ActiveElement())
}

func TestClickInsideMenuKeepsItOpen(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))

	h.clickTrigger()
	menu, ok := h.d.Menu()
	require.True(t, ok)
	// The border row above the first item.
	h.surface.Click(dropdown.Vec2{X: menu.Bounds.X + 5, Y: menu.Bounds.Y + 0.5})

	assert.True(t, h.d.IsOpen())
	assert.Empty(t, h.changes)
}

func TestTriggerClickToggles(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))

	h.clickTrigger()
	assert.True(t, h.d.IsOpen())
	h.clickTrigger()
	assert.False(t, h.d.IsOpen())
	assert.Empty(t, h.changes)
}

func TestToggleIsRoundTrip(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))

	h.d.Toggle()
	h.d.Toggle()
	assert.Equal(t, dropdown.Closed, h.d.State())

	h.d.Open()
	h.d.Open()
	root, _ := h.d.Root()
	assert.Len(t, root.Children(), 2, "trigger and one menu")

	h.d.Close()
	h.d.Close()
	assert.Len(t, root.Children(), 1)
}

func TestArrowKeysClampWithoutWrap(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.d.Open()

	prevented := h.surface.DispatchKey(dropdown.KeyEvent{Key: dropdown.KeyUp})
	assert.True(t, prevented)
	assert.Equal(t, 0, h.d.FocusedIndex())

	h.press(dropdown.KeyDown, dropdown.KeyDown, dropdown.KeyDown, dropdown.KeyDown)
	assert.Equal(t, 2, h.d.FocusedIndex())
}

func TestPageKeysDoNothing(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.d.Open()
	h.press(dropdown.KeyDown)

	for _, k := range []dropdown.Key{dropdown.KeyPageUp, dropdown.KeyPageDown} {
		prevented := h.surface.DispatchKey(dropdown.KeyEvent{Key: k})
		assert.False(t, prevented, k.String())
		assert.Equal(t, 1, h.d.FocusedIndex())
		assert.True(t, h.d.IsOpen())
	}
}

func TestKeysIgnoredWhileClosed(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))

	for _, k := range []dropdown.Key{dropdown.KeyDown, dropdown.KeyUp, dropdown.KeyEscape} {
		prevented := h.surface.DispatchKey(dropdown.KeyEvent{Key: k})
		assert.False(t, prevented)
	}
	assert.False(t, h.d.IsOpen())
}

func TestSpaceOpensAndSelectsWithoutReopening(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.trigger().Focus()

	h.press(dropdown.KeySpace)
	require.True(t, h.d.IsOpen())

	h.press(dropdown.KeyDown, dropdown.KeySpace)
	assert.False(t, h.d.IsOpen(), "release of the selecting Space must not reopen")
	assert.Equal(t, []change{{"Green", 1}}, h.changes)

	h.press(dropdown.KeySpace)
	assert.True(t, h.d.IsOpen())
	assert.Equal(t, 1, h.d.FocusedIndex())
}

func TestEnterOnTriggerOpens(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.trigger().Focus()

	h.press(dropdown.KeyEnter)
	assert.True(t, h.d.IsOpen())
	assert.Equal(t, 0, h.d.FocusedIndex())
}

func TestTabClosesAndMovesFocusOn(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	next := dropdown.New(dropdown.WithOptions("x", "y"))
	require.NoError(t, next.Mount(h.surface.Root()))
	next.SetBounds(dropdown.Rect{X: 10, Y: 300})

	h.clickTrigger()
	h.press(dropdown.KeyDown)
	h.press(dropdown.KeyTab)

	assert.False(t, h.d.IsOpen())
	assert.Empty(t, h.changes)
	nextTrigger, _ := next.Trigger()
	assert.Same(t, nextTrigger, h.surface.ActiveElement())
}

func TestEmptyOptions(t *testing.T) {
	h := newHarness(t)

	h.clickTrigger()
	require.True(t, h.d.IsOpen())
	assert.Equal(t, -1, h.d.FocusedIndex())

	h.press(dropdown.KeyDown, dropdown.KeyUp, dropdown.KeyEnter)
	assert.True(t, h.d.IsOpen())
	assert.Empty(t, h.changes)

	h.press(dropdown.KeyEscape)
	assert.False(t, h.d.IsOpen())
	assert.Equal(t, "-Select-", h.d.TriggerLabel())
}

func TestDefaultNotAmongOptionsIsIgnored(t *testing.T) {
	d := dropdown.New(dropdown.WithOptions(rgb...), dropdown.WithDefault("Purple"))

	_, _, ok := d.Selected()
	assert.False(t, ok)
}

func TestSetOptionsKeepsOrClearsSelection(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...), dropdown.WithDefault("Green"))

	h.d.SetOptions([]string{"Blue", "Green"})
	opt, idx, ok := h.d.Selected()
	require.True(t, ok)
	assert.Equal(t, "Green", opt)
	assert.Equal(t, 1, idx)

	h.d.SetOptions([]string{"Cyan"})
	_, _, ok = h.d.Selected()
	assert.False(t, ok)
	assert.Equal(t, "-Select-", h.d.TriggerLabel())
}

func TestSetOptionsWhileOpenClampsFocus(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.d.Open()
	h.press(dropdown.KeyDown, dropdown.KeyDown)

	h.d.SetOptions([]string{"One", "Two"})
	assert.True(t, h.d.IsOpen())
	assert.Equal(t, 1, h.d.FocusedIndex())

	h.press(dropdown.KeyEnter)
	assert.Equal(t, []change{{"Two", 1}}, h.changes)
}

func TestSetOptionsEmptiedWhileOpenFocusesTrigger(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.clickTrigger()
	require.Equal(t, 0, h.d.FocusedIndex())

	h.d.SetOptions(nil)
	assert.True(t, h.d.IsOpen())
	assert.True(t, h.trigger().IsFocused())

	h.press(dropdown.KeyEscape)
	assert.False(t, h.d.IsOpen())
	assert.True(t, h.trigger().IsFocused())
}

func TestNewFromConfigCopiesOptions(t *testing.T) {
	opts := []string{"Red", "Green"}
	d := dropdown.NewFromConfig(dropdown.Config[string]{Options: opts, Placeholder: "pick"})
	opts[0] = "Purple"

	assert.Equal(t, []string{"Red", "Green"}, d.Options())
	assert.Equal(t, "pick", d.TriggerLabel())
}

func TestMountErrors(t *testing.T) {
	s := dropdown.NewSurface(dropdown.Vec2{X: 100, Y: 100})
	d := dropdown.New(dropdown.WithOptions(rgb...))

	assert.ErrorIs(t, d.Mount(nil), dropdown.ErrDetachedParent)
	assert.ErrorIs(t, d.Mount(s.NewNode("detached")), dropdown.ErrDetachedParent)

	require.NoError(t, d.Mount(s.Root()))
	assert.ErrorIs(t, d.Mount(s.Root()), dropdown.ErrAlreadyMounted)
}

func TestUnmountRemovesListenersAndNodes(t *testing.T) {
	s := dropdown.NewSurface(dropdown.Vec2{X: 100, Y: 100})
	d := dropdown.New(dropdown.WithOptions(rgb...))

	keys, pointers := s.ListenerCount()
	assert.Zero(t, keys+pointers)

	require.NoError(t, d.Mount(s.Root()))
	keys, pointers = s.ListenerCount()
	assert.Equal(t, 1, keys)
	assert.Equal(t, 1, pointers)

	d.Open()
	d.Unmount()
	keys, pointers = s.ListenerCount()
	assert.Zero(t, keys+pointers)
	assert.Empty(t, s.Root().Children())
	assert.False(t, d.IsOpen())
	assert.False(t, d.Mounted())

	_, ok := d.Root()
	assert.False(t, ok)
	_, ok = d.Trigger()
	assert.False(t, ok)
	_, ok = d.Menu()
	assert.False(t, ok)

	d.Unmount()
	require.NoError(t, d.Mount(s.Root()), "remount after unmount")
}

func TestOpenWhileUnmountedIsNoop(t *testing.T) {
	d := dropdown.New(dropdown.WithOptions(rgb...))
	d.Open()
	assert.False(t, d.IsOpen())
}

func TestOnBlurNeverCalled(t *testing.T) {
	h := newHarness(t,
		dropdown.WithOptions(rgb...),
		dropdown.WithOnBlur[string](func() { t.Error("OnBlur called") }),
	)
	h.clickTrigger()
	h.press(dropdown.KeyTab)
	h.clickTrigger()
	h.surface.Click(dropdown.Vec2{X: 700, Y: 500})
	h.clickTrigger()
	h.press(dropdown.KeyEscape)
}

func TestClassNames(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...), dropdown.WithClassName[string]("colors"))

	assert.Equal(t, []string{"Dropdown", "Dropdown-menu-closed", "colors"}, h.d.ClassNames())
	h.d.Open()
	assert.Equal(t, []string{"Dropdown", "Dropdown-menu-open", "colors"}, h.d.ClassNames())

	plain := dropdown.New[string]()
	assert.Equal(t, []string{"Dropdown", "Dropdown-menu-closed"}, plain.ClassNames())
}

func TestPlaceholder(t *testing.T) {
	custom := dropdown.New(dropdown.WithPlaceholder[string]("Pick one"))
	assert.Equal(t, "Pick one", custom.TriggerLabel())

	german := dropdown.New(dropdown.WithLanguage[string](language.German))
	assert.Equal(t, "-Auswählen-", german.TriggerLabel())
}

type color struct {
	Name string
	Hex  string
}

func TestStructOptionsWithLabelField(t *testing.T) {
	s := dropdown.NewSurface(dropdown.Vec2{X: 800, Y: 600})
	var got []color
	d := dropdown.New(
		dropdown.WithOptions(color{"Red", "#f00"}, color{"Blue", "#00f"}),
		dropdown.WithLabelField[color]("Name"),
		dropdown.WithLabelFunc(func(c color) string { return c.Hex }),
		dropdown.WithDefault(color{"Blue", "#00f"}),
		dropdown.WithOnChange(func(c color, _ int) { got = append(got, c) }),
	)
	require.NoError(t, d.Mount(s.Root()))

	assert.Equal(t, "Blue", d.TriggerLabel(), "field wins over function")

	d.Open()
	s.Press(dropdown.KeyUp)
	s.Press(dropdown.KeyEnter)
	assert.Equal(t, []color{{"Red", "#f00"}}, got)
}

func TestMenuFlipsAboveNearBottom(t *testing.T) {
	s := dropdown.NewSurface(dropdown.Vec2{X: 300, Y: 200})
	d := dropdown.New(dropdown.WithOptions(rgb...))
	require.NoError(t, d.Mount(s.Root()))
	d.SetBounds(dropdown.Rect{X: 10, Y: 170})

	d.Open()
	menu, _ := d.Menu()
	trigger, _ := d.Trigger()
	assert.LessOrEqual(t, menu.Bounds.Bottom(), trigger.Bounds.Y)
	assert.GreaterOrEqual(t, menu.Bounds.W, trigger.Bounds.W)
}

func TestResizeRepositionsOpenMenu(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	h.d.SetBounds(dropdown.Rect{X: 10, Y: 250})
	h.clickTrigger()

	menu, ok := h.d.Menu()
	require.True(t, ok)
	trigger := h.trigger()
	require.GreaterOrEqual(t, menu.Bounds.Y, trigger.Bounds.Bottom(), "opens below")

	h.surface.Resize(dropdown.Vec2{X: 800, Y: 300})
	assert.LessOrEqual(t, menu.Bounds.Bottom(), float32(300))
	assert.GreaterOrEqual(t, menu.Bounds.Y, float32(0))
	assert.LessOrEqual(t, menu.Bounds.Bottom(), trigger.Bounds.Y, "flipped above")

	h.clickItem(0)
	assert.Equal(t, []change{{"Red", 0}}, h.changes)
}

func TestLongListScrollsFocusedIntoView(t *testing.T) {
	months := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	h := newHarness(t, dropdown.WithOptions(months...), dropdown.WithDefault("October"))

	h.d.Open()
	menu, _ := h.d.Menu()
	assert.Equal(t, float32(200), menu.Bounds.H)
	assert.Greater(t, h.d.ScrollOffset(), float32(0))

	item, _ := h.d.Item(9)
	assert.Equal(t, float32(21), item.Bounds.H, "focused row fully visible")
	last, _ := h.d.Item(11)
	assert.True(t, last.Bounds.Empty(), "rows below the view are not hittable")

	h.d.Scroll(1000)
	assert.Equal(t, float32(54), h.d.ScrollOffset())
	h.clickItem(11)
	assert.Equal(t, []change{{"December", 11}}, h.changes)
}

func TestWithLoggerTracesEvents(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	h := newHarness(t, dropdown.WithOptions(rgb...), dropdown.WithLogger[string](logrus.NewEntry(logger)))
	h.d.Open()
	h.press(dropdown.KeyEnter)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "menu opened")
	assert.Contains(t, msgs, "option selected")
	assert.Contains(t, msgs, "menu closed")

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "option selected", last.Message)
	assert.Equal(t, 0, last.Data["index"])
	assert.Equal(t, "keyboard", last.Data["source"])
}

type mockRenderer struct {
	renderCalls int
	lastVerts   int
}

func (m *mockRenderer) Render(dl *dropdown.DrawList) error {
	m.renderCalls++
	m.lastVerts = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 { return 1 }

func (m *mockRenderer) Resize(width, height int) {}

func TestRenderFrame(t *testing.T) {
	h := newHarness(t, dropdown.WithOptions(rgb...))
	r := &mockRenderer{}

	require.NoError(t, dropdown.RenderFrame(r, h.d))
	closed := r.lastVerts
	assert.Equal(t, 1, r.renderCalls)
	assert.Positive(t, closed)

	h.d.Open()
	require.NoError(t, dropdown.RenderFrame(r, h.d))
	assert.Greater(t, r.lastVerts, closed)
}

func TestDrawUnmountedIsEmpty(t *testing.T) {
	d := dropdown.New(dropdown.WithOptions(rgb...))
	dl := dropdown.AcquireDrawList()
	defer dropdown.ReleaseDrawList(dl)

	d.Draw(dl)
	d.DrawOverlay(dl)
	assert.Empty(t, dl.VtxBuffer)
}
