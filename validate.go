package kindval

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/kindval/kindval/i18n"
)

// Validator checks a single decoded value and returns it narrowed to T.
// Validators are pure: same input, same result, no shared state. The root
// path "/" is used for every issue; callers embedding a validator in a larger
// walk re-annotate paths themselves.
type Validator[T any] func(v any) (T, error)

// String accepts text and nothing else.
func String(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", TypeMismatch("/", KindString, v)
}

// Bool accepts exactly the two boolean literals. Numeric 0/1 never qualify.
func Bool(v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, TypeMismatch("/", KindBool, v)
}

// Int accepts integer-kind values and returns them as int64. Booleans are
// rejected before any numeric interpretation, and real numbers with a
// fraction or exponent lexeme are rejected even when their value is whole.
// Integer lexemes outside the int64 range fail with CodeOverflow.
func Int(v any) (int64, error) {
	if _, ok := v.(bool); ok {
		return 0, TypeMismatch("/", KindInt, v)
	}
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, overflowIssue("/", v)
		}
		return int64(t), nil
	case json.Number:
		if !isIntLexeme(string(t)) {
			return 0, TypeMismatch("/", KindInt, v)
		}
		i, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return 0, overflowIssue("/", v)
		}
		return i, nil
	case float64:
		return intFromFloat(t, v)
	case float32:
		return intFromFloat(float64(t), v)
	}
	return 0, TypeMismatch("/", KindInt, v)
}

func intFromFloat(f float64, orig any) (int64, error) {
	if floatKind(f) != KindInt {
		return 0, TypeMismatch("/", KindInt, orig)
	}
	// The upper bound is exclusive: 2^63 is exactly representable as a
	// float64 while MaxInt64 is not, so a <= MaxInt64 guard would round up
	// and let 2^63 wrap through the conversion.
	if f < math.MinInt64 || f >= 1<<63 {
		return 0, overflowIssue("/", orig)
	}
	return int64(f), nil
}

// Number accepts any numeric kind, integer or real, and returns a canonical
// json.Number. Booleans are rejected first; a bool is never a number here
// even though other runtimes model it as one.
func Number(v any) (json.Number, error) {
	if _, ok := v.(bool); ok {
		return "", TypeMismatch("/", KindNumber, v)
	}
	switch t := v.(type) {
	case json.Number:
		return t, nil
	case float64:
		return json.Number(formatFloat(t)), nil
	case float32:
		return json.Number(formatFloat(float64(t))), nil
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int8:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int16:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int32:
		return json.Number(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint8:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint16:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return json.Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	}
	return "", TypeMismatch("/", KindNumber, v)
}

// Array accepts an ordered sequence. Element kinds are the schema engine's
// business, not this validator's.
func Array(v any) ([]any, error) {
	if a, ok := v.([]any); ok {
		return a, nil
	}
	return nil, TypeMismatch("/", KindArray, v)
}

// Object accepts a string-keyed mapping. Per-key checks are the schema
// engine's business, not this validator's.
func Object(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return nil, TypeMismatch("/", KindObject, v)
}

// Enum checks membership in a closed literal set. Candidates are tried in
// declared order, never deduplicated, and the first match wins. Matching is
// identity-style: kinds must agree before payloads are compared, so true
// never matches 1 and 1 never matches 1.0.
func Enum(v any, allowed []any) (any, error) {
	for _, lit := range allowed {
		if scalarEqual(lit, v) {
			return v, nil
		}
	}
	return nil, EnumMismatch("/", allowed)
}

// EnumOf adapts Enum to the Validator contract so it composes with Nullable
// and any other wrapper taking a Validator.
func EnumOf(allowed []any) Validator[any] {
	return func(v any) (any, error) {
		return Enum(v, allowed)
	}
}

// Nullable wraps inner so the null value passes through as a typed nil
// without invoking inner. Any other value is delegated entirely; inner's
// result or error propagates unchanged apart from the pointer wrapping.
func Nullable[T any](inner Validator[T]) Validator[*T] {
	return func(v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		t, err := inner(v)
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
}

// scalarEqual is the typed-equality predicate behind Enum: compare the kind
// tag first, then the payload exactly. Cross-kind numeric coercion can never
// produce a match.
func scalarEqual(lit, v any) bool {
	lk := KindOf(lit)
	if lk != KindOf(v) {
		return false
	}
	switch lk {
	case KindNull:
		return true
	case KindBool:
		return lit.(bool) == v.(bool)
	case KindString:
		return lit.(string) == v.(string)
	case KindInt:
		li, lok := asInt64(lit)
		vi, vok := asInt64(v)
		return lok && vok && li == vi
	case KindNumber:
		lf, lok := asFloat64(lit)
		vf, vok := asFloat64(v)
		return lok && vok && lf == vf
	default:
		return false
	}
}

func asInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		if t > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		i, err := strconv.ParseInt(string(t), 10, 64)
		return i, err == nil
	case float64:
		// Exclusive upper bound; see intFromFloat.
		if floatKind(t) == KindInt && t >= math.MinInt64 && t < 1<<63 {
			return int64(t), true
		}
	case float32:
		return asInt64(float64(t))
	}
	return 0, false
}

func asFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case json.Number:
		f, err := strconv.ParseFloat(string(t), 64)
		return f, err == nil
	}
	return 0, false
}

func overflowIssue(path string, v any) Issues {
	return Issues{{
		Path:    path,
		Code:    CodeOverflow,
		Message: i18n.T(CodeOverflow, nil),
		Params:  map[string]any{"value": v},
	}}
}

// formatFloat renders a float64 using the shortest JSON-compatible representation.
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
