package prompt

import (
	"errors"
	"fmt"
	"math"
	"net/netip"
	"strconv"
	"strings"
)

// ErrParse marks input text that does not match the expected shape.
var ErrParse = errors.New("parse error")

// Scalar describes how to parse one value of type T from a trimmed line.
type Scalar[T any] struct {
	// Name is shown to the operator when parsing fails.
	Name  string
	Parse func(s string) (T, error)
	// ShowErrors reports the parse error itself instead of the generic
	// message naming the expected value.
	ShowErrors bool
}

// Provided scalars.
var (
	Bool    = Scalar[bool]{Name: "boolean (true/false)", Parse: parseBool}
	Int32   = Scalar[int32]{Name: "integer", Parse: parseInt32}
	Float64 = Scalar[float64]{Name: "number", Parse: parseFloat64}
	IP      = Scalar[netip.Addr]{Name: "IP address", Parse: parseIP}
	String  = Scalar[string]{Name: "string", Parse: func(s string) (string, error) { return s, nil }}
)

// parseBool accepts exactly "true" or "false".
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q is not true or false", ErrParse, s)
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a 32-bit integer", ErrParse, s)
	}
	return int32(n), nil
}

// parseFloat64 accepts decimal notation only: digit separators and hex
// floats, which strconv allows, are rejected.
func parseFloat64(s string) (float64, error) {
	if strings.ContainsRune(s, '_') || isHexFloat(s) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", ErrParse, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrParse, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrParse, s)
	}
	return f, nil
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// parseIP accepts IPv4 and IPv6 addresses without a zone.
func parseIP(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil || addr.Zone() != "" {
		return netip.Addr{}, fmt.Errorf("%w: %q is not an IP address", ErrParse, s)
	}
	return addr, nil
}

// ParseTuple parses "a, b" into a pair. The text must contain exactly one
// comma; each side is trimmed and parsed with s.
func ParseTuple[T any](raw string, s Scalar[T]) ([2]T, error) {
	var out [2]T

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return out, fmt.Errorf("%w: invalid tuple: expected two comma-separated values, got %q", ErrParse, raw)
	}

	first, err := s.Parse(strings.TrimSpace(parts[0]))
	if err != nil {
		return out, fmt.Errorf("error parsing first value: %w", err)
	}
	second, err := s.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		return out, fmt.Errorf("error parsing second value: %w", err)
	}

	out[0], out[1] = first, second
	return out, nil
}

// TupleOf lifts s to a Scalar that parses comma-separated pairs.
func TupleOf[T any](s Scalar[T]) Scalar[[2]T] {
	return Scalar[[2]T]{
		Name: fmt.Sprintf("pair of %s values (a, b)", s.Name),
		Parse: func(raw string) ([2]T, error) {
			return ParseTuple(raw, s)
		},
		ShowErrors: true,
	}
}
