package kindval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kindval/kindval/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType   = "invalid_type"
	CodeInvalidEnum   = "invalid_enum"
	CodeRequired      = "required"
	CodeUnknownKey    = "unknown_key"
	CodeParseError    = "parse_error"
	CodeInvalidSchema = "invalid_schema"
	CodeOverflow      = "overflow"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"expected":"integer",
	// "got":"boolean"}) so consumers branch on data, never on Message.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// TypeMismatch builds the issue for a value whose runtime kind does not match
// the kind a validator enforces. Params carry the expected kind, the kind
// actually found, and the offending value when it is a scalar.
func TypeMismatch(path string, expected Kind, got any) Issues {
	params := map[string]any{
		"expected": expected.String(),
		"got":      KindOf(got).String(),
	}
	switch KindOf(got) {
	case KindString, KindBool, KindInt, KindNumber:
		params["value"] = got
	}
	return Issues{{
		Path:    path,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"expected": expected.String()}),
		Params:  params,
	}}
}

// EnumMismatch builds the issue for a value outside the permitted literal set.
// The full allowed sequence travels in Params, in its declared order.
func EnumMismatch(path string, allowed []any) Issues {
	return Issues{{
		Path:    path,
		Code:    CodeInvalidEnum,
		Message: i18n.T(CodeInvalidEnum, nil),
		Params:  map[string]any{"allowed": allowed},
	}}
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
