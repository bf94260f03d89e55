package dropdown

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// LabelStrategy derives the display text of an option.
// It is one of FieldLabel, FuncLabel or DefaultLabel.
type LabelStrategy[T any] interface {
	Label(opt T) string
	labelStrategy()
}

// FieldLabel reads a named field (struct field, mapstructure tag or map key)
// from the option.
type FieldLabel[T any] struct {
	Name string
}

// FuncLabel calls a host function for each option.
type FuncLabel[T any] struct {
	Fn func(T) string
}

// DefaultLabel uses the option's default string form (fmt.Sprint).
type DefaultLabel[T any] struct{}

func (FieldLabel[T]) labelStrategy()   {}
func (FuncLabel[T]) labelStrategy()    {}
func (DefaultLabel[T]) labelStrategy() {}

// Label implements LabelStrategy.
func (l FieldLabel[T]) Label(opt T) string {
	v, ok := lookupField(opt, l.Name)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Label implements LabelStrategy.
func (l FuncLabel[T]) Label(opt T) string {
	if l.Fn == nil {
		return DefaultLabel[T]{}.Label(opt)
	}
	return l.Fn(opt)
}

// Label implements LabelStrategy.
func (DefaultLabel[T]) Label(opt T) string {
	return fmt.Sprint(opt)
}

// ResolveLabelStrategy picks the strategy for a configuration: a field name
// wins over a label function, which wins over the default.
func ResolveLabelStrategy[T any](cfg *Config[T]) LabelStrategy[T] {
	switch {
	case cfg.LabelField != "":
		return FieldLabel[T]{Name: cfg.LabelField}
	case cfg.LabelFunc != nil:
		return FuncLabel[T]{Fn: cfg.LabelFunc}
	default:
		return DefaultLabel[T]{}
	}
}

// lookupField decodes maps and structs into a generic map and reads name,
// first exactly, then case-insensitively.
func lookupField(opt any, name string) (any, bool) {
	if opt == nil {
		return nil, false
	}
	rv := reflect.Indirect(reflect.ValueOf(opt))
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct:
	default:
		return nil, false
	}

	fields := map[string]any{}
	if err := mapstructure.Decode(rv.Interface(), &fields); err != nil {
		traceLog.WithError(err).WithField("field", name).Debug("label field lookup failed")
		return nil, false
	}
	if v, ok := fields[name]; ok {
		return v, true
	}
	for k, v := range fields {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
