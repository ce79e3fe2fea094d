package menu

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/atomicstack/slotgrid/internal/label"
	"github.com/atomicstack/slotgrid/internal/session"
)

var (
	// ErrInvalidBounds is returned when an upper bound is below its lower bound.
	ErrInvalidBounds = errors.New("upper bound must be greater than or equal to lower bound")
	// ErrNaN is returned when a bound or initial value is NaN where NaN is not allowed.
	ErrNaN = errors.New("value must not be NaN")
)

// String prompts for free text.
func String(sess *session.Session, title string, additional *label.Label, start string, predicate func(string) bool, cb Callback[string]) {
	DefaultPrompter.Prompt(sess, TextRequest{
		Title:      title,
		Start:      start,
		Additional: additional,
		Predicate:  predicate,
	}, cb)
}

// Integer prompts for any integer.
func Integer(sess *session.Session, title string, additional *label.Label, initial int, cb Callback[int]) {
	String(sess, title, additional, strconv.Itoa(initial), func(s string) bool {
		_, err := strconv.Atoi(s)
		return err == nil
	}, intCallback(math.MinInt, math.MaxInt, cb))
}

// BoundedInteger prompts for an integer in [lo, hi]. The initial value is
// clamped into range. When additional is nil and a bound is set, the bounds
// are shown in the additional slot.
func BoundedInteger(sess *session.Session, title string, additional *label.Label, initial, lo, hi int, cb Callback[int]) error {
	if hi < lo {
		return fmt.Errorf("bounded integer %q [%d, %d]: %w", title, lo, hi, ErrInvalidBounds)
	}
	if additional == nil && (lo != math.MinInt || hi != math.MaxInt) {
		info := boundsLabel(lo != math.MinInt, strconv.Itoa(lo), hi != math.MaxInt, strconv.Itoa(hi))
		additional = &info
	}
	initial = min(max(initial, lo), hi)
	String(sess, title, additional, strconv.Itoa(initial), func(s string) bool {
		v, err := strconv.Atoi(s)
		return err == nil && lo <= v && v <= hi
	}, intCallback(lo, hi, cb))
	return nil
}

// Float prompts for any number except NaN.
func Float(sess *session.Session, title string, additional *label.Label, initial float64, cb Callback[float64]) error {
	if math.IsNaN(initial) {
		return fmt.Errorf("float %q initial value: %w", title, ErrNaN)
	}
	String(sess, title, additional, formatFloat(initial), func(s string) bool {
		v, err := parseFloat(s)
		return err == nil && !math.IsNaN(v)
	}, floatCallback(math.Inf(-1), math.Inf(1), false, cb))
	return nil
}

// BoundedFloat prompts for a number in [lo, hi]. NaN is rejected everywhere.
func BoundedFloat(sess *session.Session, title string, additional *label.Label, initial, lo, hi float64, cb Callback[float64]) error {
	switch {
	case math.IsNaN(initial):
		return fmt.Errorf("bounded float %q initial value: %w", title, ErrNaN)
	case math.IsNaN(lo), math.IsNaN(hi):
		return fmt.Errorf("bounded float %q bounds: %w", title, ErrNaN)
	case hi < lo:
		return fmt.Errorf("bounded float %q [%s, %s]: %w", title, formatFloat(lo), formatFloat(hi), ErrInvalidBounds)
	}
	if additional == nil && (!math.IsInf(lo, -1) || !math.IsInf(hi, 1)) {
		info := boundsLabel(!math.IsInf(lo, -1), formatFloat(lo), !math.IsInf(hi, 1), formatFloat(hi))
		additional = &info
	}
	initial = math.Min(math.Max(initial, lo), hi)
	String(sess, title, additional, formatFloat(initial), func(s string) bool {
		v, err := parseFloat(s)
		return err == nil && !math.IsNaN(v) && lo <= v && v <= hi
	}, floatCallback(lo, hi, false, cb))
	return nil
}

// FloatAllowingNaN prompts for any number, NaN included.
func FloatAllowingNaN(sess *session.Session, title string, additional *label.Label, initial float64, cb Callback[float64]) {
	String(sess, title, additional, formatFloat(initial), func(s string) bool {
		_, err := parseFloat(s)
		return err == nil
	}, floatCallback(math.Inf(-1), math.Inf(1), true, cb))
}

// intCallback parses the entered text; anything unparseable or out of range
// is reported as a cancel.
func intCallback(lo, hi int, cb Callback[int]) Callback[string] {
	return NewCallback(func(s string) {
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			cb.Cancel()
			return
		}
		cb.Complete(v)
	}, cb.Cancel)
}

func floatCallback(lo, hi float64, allowNaN bool, cb Callback[float64]) Callback[string] {
	return NewCallback(func(s string) {
		v, err := parseFloat(s)
		switch {
		case err != nil:
			cb.Cancel()
		case math.IsNaN(v):
			if allowNaN {
				cb.Complete(v)
			} else {
				cb.Cancel()
			}
		case v < lo || v > hi:
			cb.Cancel()
		default:
			cb.Complete(v)
		}
	}, cb.Cancel)
}

func boundsLabel(hasLo bool, lo string, hasHi bool, hi string) label.Label {
	text := "x"
	if hasLo {
		text = lo + " ≤ " + text
	}
	if hasHi {
		text = text + " ≤ " + hi
	}
	return label.NewBuilder().Item("paper").Title("Additional Info").Hint(text).Build()
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
