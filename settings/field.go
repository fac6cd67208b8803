package settings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidField is returned when a dialog action needs the value of a
// field whose text does not parse.
var ErrInvalidField = errors.New("settings: invalid field")

// A Parser converts the text of a field into its value.
type Parser[T any] func(text string) (T, error)

// A Field is a text field holding a typed value. Every change of the text
// is validated; the value is only taken over while the text is valid, so
// an invalid edit keeps the last valid value.
type Field[T any] struct {
	Name string

	parse  Parser[T]
	format func(T) string

	text     string
	shown    string // text of the last Set
	value    T
	valid    bool
	disabled bool
}

// NewField returns a field named name showing initial.
func NewField[T any](name string, parse Parser[T], format func(T) string, initial T) *Field[T] {
	f := &Field[T]{Name: name, parse: parse, format: format}
	f.Set(initial)
	return f
}

// SetText validates text and, if it is valid, takes over its value.
// It reports whether text is valid.
func (f *Field[T]) SetText(text string) bool {
	f.text = text
	v, err := f.parse(text)
	if err != nil {
		f.valid = false
		return false
	}
	f.value, f.valid = v, true
	return true
}

// Set shows v formatted.
func (f *Field[T]) Set(v T) {
	f.text = f.format(v)
	f.shown = f.text
	f.value, f.valid = v, true
}

// Modified reports whether the text was edited since the last Set.
func (f *Field[T]) Modified() bool { return f.text != f.shown }

// Text returns the text as typed.
func (f *Field[T]) Text() string { return f.text }

// Value returns the last valid value.
func (f *Field[T]) Value() T { return f.value }

// Valid reports whether the current text parses.
func (f *Field[T]) Valid() bool { return f.valid }

// Get returns the value or an ErrInvalidField naming f.
func (f *Field[T]) Get() (T, error) {
	if !f.valid {
		var zero T
		return zero, fmt.Errorf("%w: %s: %q", ErrInvalidField, f.Name, f.text)
	}
	return f.value, nil
}

// Enable and Disable control whether the user may edit f.
func (f *Field[T]) Enable()  { f.disabled = false }
func (f *Field[T]) Disable() { f.disabled = true }

// Enabled reports whether the user may edit f.
func (f *Field[T]) Enabled() bool { return !f.disabled }

// ----------------------------------------------------------------------------
// Parsers

// Number accepts any finite floating point number.
func Number(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not finite", text)
	}
	return v, nil
}

// Int accepts a decimal integer.
func Int(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}

// PositiveInt accepts integers > 0, e.g. pixel sizes.
func PositiveInt(text string) (int, error) {
	v, err := Int(text)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%d is not positive", v)
	}
	return v, nil
}

// PositiveNumber accepts finite numbers > 0, e.g. physical sizes.
func PositiveNumber(text string) (float64, error) {
	v, err := Number(text)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%g is not positive", v)
	}
	return v, nil
}

// String accepts everything.
func String(text string) (string, error) { return text, nil }

// NumberOrNone accepts a number or the empty string or "None", which
// yield nil.
func NumberOrNone(text string) (*float64, error) {
	t := strings.TrimSpace(text)
	if t == "" || t == "None" {
		return nil, nil
	}
	v, err := Number(t)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ----------------------------------------------------------------------------
// Formatters

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

func formatInt(v int) string { return strconv.Itoa(v) }

func formatString(s string) string { return s }

func formatNumberOrNone(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}

// NumberField returns a field for finite numbers.
func NumberField(name string, initial float64) *Field[float64] {
	return NewField(name, Number, formatNumber, initial)
}

// StringField returns a field accepting any text.
func StringField(name, initial string) *Field[string] {
	return NewField(name, String, formatString, initial)
}

// NumberOrNoneField returns a field for an optional number.
func NumberOrNoneField(name string, initial *float64) *Field[*float64] {
	return NewField(name, NumberOrNone, formatNumberOrNone, initial)
}
