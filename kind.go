package kindval

import (
	"encoding/json"
	"math"
	"strings"
)

// Kind identifies the primitive category of a decoded value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindNumber
	KindString
	KindArray
	KindObject
)

// String renders the kind the way schema documents spell it.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// KindOf classifies a decoded value by its dynamic tag. Booleans are inspected
// before any numeric interpretation, so a bool can never come back as an
// integer or number kind.
func KindOf(v any) Kind {
	switch t := v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case json.Number:
		if isIntLexeme(string(t)) {
			return KindInt
		}
		return KindNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float64:
		return floatKind(t)
	case float32:
		return floatKind(float64(t))
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// floatKind decides integer vs number for a float whose original lexeme is
// gone. A finite whole float counts as an integer; anything fractional, NaN
// or infinite is a plain number.
func floatKind(f float64) Kind {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return KindNumber
	}
	if math.Trunc(f) == f {
		return KindInt
	}
	return KindNumber
}

// isIntLexeme reports whether a JSON number lexeme denotes an integer.
// A fraction or exponent marks a real number even when the value is whole,
// preserving the wire-level distinction between 5 and 5.0.
func isIntLexeme(s string) bool {
	return !strings.ContainsAny(s, ".eE")
}
