package graph

import (
	"fmt"
	"math"
	"strconv"
)

// Default is the value holder behind an unconnected input socket. It is a
// closed set of variants mirroring the widget kinds of the visual layer:
// Empty (plain label), Text (free entry), Range (bounded slider) and
// Choice (enumerated list). A socket with no edges contributes the bucket
// produced by its default; Empty contributes no value at all, every other
// variant contributes exactly one.
type Default interface {
	defaultValue() // marker method restricting implementations to this package

	// Bucket returns the values the default contributes to fan-in.
	Bucket() Bucket
}

// widgetCoder is implemented by defaults that carry a serializable widget
// value. Empty does not; it is skipped during node serialization.
type widgetCoder interface {
	// encode returns the widget value as a string.
	encode() string
	// decode returns a copy of the default with the widget value restored.
	decode(s string) (Default, error)
}

// ---------------------------------------------------------------------------
// Empty
// ---------------------------------------------------------------------------

// Empty is a default that contributes no value. Nodes use the resulting
// empty input bucket as a branch condition to select built-in fallbacks.
type Empty struct{}

func (Empty) defaultValue() {}

// Bucket returns nil: an unconnected socket with an Empty default reads as
// zero values.
func (Empty) Bucket() Bucket { return nil }

// ---------------------------------------------------------------------------
// Text
// ---------------------------------------------------------------------------

// Text is a free-entry default. Numeric text produces a float64 value,
// anything else produces the string itself.
type Text struct {
	Value string
}

func (Text) defaultValue() {}

// Bucket returns exactly one value: the parsed number when the text is
// numeric, the raw string otherwise.
func (d Text) Bucket() Bucket {
	if f, err := strconv.ParseFloat(d.Value, 64); err == nil {
		return Bucket{f}
	}
	return Bucket{d.Value}
}

func (d Text) encode() string { return d.Value }

func (d Text) decode(s string) (Default, error) {
	return Text{Value: s}, nil
}

// ---------------------------------------------------------------------------
// Range
// ---------------------------------------------------------------------------

// Range is a bounded slider default with a (min, max, current) triple.
type Range struct {
	Min     float64
	Max     float64
	Current float64
}

func (Range) defaultValue() {}

// Bucket returns exactly one value: the current position floored to an int
// and clamped to the slider bounds.
func (d Range) Bucket() Bucket {
	v := int(math.Floor(d.Current))
	if lo := int(math.Floor(d.Min)); v < lo {
		v = lo
	}
	if hi := int(math.Floor(d.Max)); v > hi {
		v = hi
	}
	return Bucket{v}
}

func (d Range) encode() string {
	return strconv.Itoa(int(math.Floor(d.Current)))
}

func (d Range) decode(s string) (Default, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("range widget value %q: %w", s, err)
	}
	d.Current = float64(v)
	return d, nil
}

// ---------------------------------------------------------------------------
// Choice
// ---------------------------------------------------------------------------

// Choice is an enumerated-list default. The selected index is the value.
type Choice struct {
	Index   int
	Options []string
}

func (Choice) defaultValue() {}

// Bucket returns exactly one value: the selected index.
func (d Choice) Bucket() Bucket { return Bucket{d.Index} }

func (d Choice) encode() string { return strconv.Itoa(d.Index) }

func (d Choice) decode(s string) (Default, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("choice widget value %q: %w", s, err)
	}
	if v < 0 || v >= len(d.Options) {
		return nil, fmt.Errorf("choice widget value %d out of range [0,%d)", v, len(d.Options))
	}
	d.Index = v
	return d, nil
}
