package dropdown

import (
	"reflect"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/go-theft-auto/dropdown/internal/locale"
)

// Config holds the host-supplied configuration of a Dropdown.
// Only Options is normally needed; everything else has a default.
type Config[T any] struct {
	// ClassName is appended to the widget's class list.
	ClassName string
	// Placeholder is shown on the trigger while nothing is selected.
	// Empty means the localised "-Select-" for Language.
	Placeholder string
	// Options in host order.
	Options []T
	// DefaultOption pre-selects an option at construction. It is ignored
	// when it is not one of Options.
	DefaultOption *T
	// LabelField names the field to read from each option.
	LabelField string
	// LabelFunc maps an option to its text. LabelField takes priority.
	LabelFunc func(T) string
	// OnChange is called with the option and its index after a selection.
	OnChange func(opt T, index int)
	// OnBlur is accepted for API compatibility and reserved; the widget
	// never calls it.
	OnBlur func()
	// Equal compares options. Nil means == for comparable types and
	// reflect.DeepEqual otherwise.
	Equal func(a, b T) bool

	Language language.Tag
	Style    Style
	Position PositionStrategy
	Logger   *logrus.Entry
}

// Option configures a Dropdown.
type Option[T any] func(*Config[T])

// WithClassName sets an extra class name.
func WithClassName[T any](name string) Option[T] {
	return func(c *Config[T]) { c.ClassName = name }
}

// WithPlaceholder sets the trigger text shown without a selection.
func WithPlaceholder[T any](text string) Option[T] {
	return func(c *Config[T]) { c.Placeholder = text }
}

// WithOptions sets the selectable options.
func WithOptions[T any](opts ...T) Option[T] {
	return func(c *Config[T]) { c.Options = append([]T(nil), opts...) }
}

// WithDefault pre-selects opt.
func WithDefault[T any](opt T) Option[T] {
	return func(c *Config[T]) { c.DefaultOption = &opt }
}

// WithLabelField reads option labels from the named field.
func WithLabelField[T any](name string) Option[T] {
	return func(c *Config[T]) { c.LabelField = name }
}

// WithLabelFunc derives option labels with fn.
func WithLabelFunc[T any](fn func(T) string) Option[T] {
	return func(c *Config[T]) { c.LabelFunc = fn }
}

// WithOnChange sets the selection callback.
func WithOnChange[T any](fn func(opt T, index int)) Option[T] {
	return func(c *Config[T]) { c.OnChange = fn }
}

// WithOnBlur sets the (reserved) blur callback.
func WithOnBlur[T any](fn func()) Option[T] {
	return func(c *Config[T]) { c.OnBlur = fn }
}

// WithEqual sets the option equality function.
func WithEqual[T any](fn func(a, b T) bool) Option[T] {
	return func(c *Config[T]) { c.Equal = fn }
}

// WithLanguage selects the placeholder language.
func WithLanguage[T any](tag language.Tag) Option[T] {
	return func(c *Config[T]) { c.Language = tag }
}

// WithStyle sets the widget style. Zero fields fall back to DefaultStyle.
func WithStyle[T any](s Style) Option[T] {
	return func(c *Config[T]) { c.Style = s }
}

// WithPosition sets the menu positioning strategy.
func WithPosition[T any](p PositionStrategy) Option[T] {
	return func(c *Config[T]) { c.Position = p }
}

// WithLogger sets the trace logger for this widget.
func WithLogger[T any](l *logrus.Entry) Option[T] {
	return func(c *Config[T]) { c.Logger = l }
}

// applyDefaults fills unset fields.
func (c *Config[T]) applyDefaults() {
	if c.Language == language.Und {
		c.Language = locale.DefaultLanguage
	}
	if c.Placeholder == "" {
		c.Placeholder = locale.Placeholder(c.Language)
	}
	c.Style = MergeStyle(c.Style)
	if c.Position == nil {
		c.Position = MenuPosition{Gap: c.Style.MenuGap}
	}
	if c.Equal == nil {
		c.Equal = defaultEqual[T]
	}
	if c.Logger == nil {
		c.Logger = logrus.NewEntry(traceLog)
	}
}

func defaultEqual[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	va, vb := reflect.ValueOf(av), reflect.ValueOf(bv)
	if va.Type() == vb.Type() && va.Comparable() && vb.Comparable() {
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}
