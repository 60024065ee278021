package schema

import (
	"strconv"
	"strings"

	kindval "github.com/kindval/kindval"
	"github.com/kindval/kindval/i18n"
)

// Validate walks the decoded value against the compiled tree and returns
// every issue found, path-annotated, as kindval.Issues. Nil means valid.
func (s *Schema) Validate(v any) error {
	iss := s.root.check("", v, nil)
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// ValidateJSON decodes a JSON document and validates it in one step.
func (s *Schema) ValidateJSON(b []byte) error {
	v, err := kindval.DecodeJSON(b)
	if err != nil {
		return err
	}
	return s.Validate(v)
}

func (n *node) check(path string, v any, iss kindval.Issues) kindval.Issues {
	// Enum nodes and scalar type nodes go through the uniform Validator
	// contract so nullable composes via the kindval combinator.
	if n.enum != nil || isScalarKind(n.kind) {
		check := n.scalar()
		if n.nullable {
			if _, err := kindval.Nullable(check)(v); err != nil {
				iss = append(iss, at(path, err)...)
			}
			return iss
		}
		if _, err := check(v); err != nil {
			iss = append(iss, at(path, err)...)
		}
		return iss
	}

	if v == nil && n.nullable {
		return iss
	}

	switch n.kind {
	case kindval.KindArray:
		arr, err := kindval.Array(v)
		if err != nil {
			return append(iss, at(path, err)...)
		}
		if n.items != nil {
			for i, el := range arr {
				iss = n.items.check(path+"/"+strconv.Itoa(i), el, iss)
			}
		}
	case kindval.KindObject:
		obj, err := kindval.Object(v)
		if err != nil {
			return append(iss, at(path, err)...)
		}
		for _, req := range n.required {
			if _, ok := obj[req]; !ok {
				iss = append(iss, kindval.Issue{
					Path:    pointer(path + "/" + escapeToken(req)),
					Code:    kindval.CodeRequired,
					Message: i18n.T(kindval.CodeRequired, nil),
				})
			}
		}
		for _, k := range sortedKeys(obj) {
			child, declared := n.props[k]
			if !declared {
				if !n.additional {
					iss = append(iss, kindval.Issue{
						Path:    pointer(path + "/" + escapeToken(k)),
						Code:    kindval.CodeUnknownKey,
						Message: i18n.T(kindval.CodeUnknownKey, nil),
					})
				}
				continue
			}
			iss = child.check(path+"/"+escapeToken(k), obj[k], iss)
		}
	}
	return iss
}

// scalar selects the kindval validator for a non-container node. Enum wins
// over type: a node declaring both validates membership, and the literal set
// already pins the acceptable kinds.
func (n *node) scalar() kindval.Validator[any] {
	if n.enum != nil {
		return kindval.EnumOf(n.enum)
	}
	switch n.kind {
	case kindval.KindString:
		return asAny(kindval.String)
	case kindval.KindBool:
		return asAny(kindval.Bool)
	case kindval.KindInt:
		return asAny(kindval.Int)
	default:
		return asAny(kindval.Number)
	}
}

func isScalarKind(k kindval.Kind) bool {
	switch k {
	case kindval.KindString, kindval.KindBool, kindval.KindInt, kindval.KindNumber:
		return true
	}
	return false
}

func asAny[T any](inner kindval.Validator[T]) kindval.Validator[any] {
	return func(v any) (any, error) {
		t, err := inner(v)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
}

// at re-annotates validator issues with the walk position. The kindval
// validators report at "/" since they see a single value in isolation.
func at(path string, err error) kindval.Issues {
	iss, ok := kindval.AsIssues(err)
	if !ok {
		return kindval.Issues{{Path: pointer(path), Code: kindval.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(kindval.Issues, len(iss))
	for i, it := range iss {
		it.Path = pointer(path)
		out[i] = it
	}
	return out
}

func pointer(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

var tokenEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// escapeToken applies RFC 6901 escaping to a property name.
func escapeToken(s string) string { return tokenEscaper.Replace(s) }

func itoa(i int) string { return strconv.Itoa(i) }
