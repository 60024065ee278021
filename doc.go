package kindval

// Package kindval provides:
//
// - Pure, side-effect-free validators over already-decoded JSON values
//   (String/Bool/Int/Number/Array/Object, Enum, Nullable)
// - A stable error model via Issues (JSON Pointer, code, structured params)
// - A decode layer that preserves json.Number so integers and reals stay
//   distinct kinds
//
// Design policy:
// - Keep only public APIs in the root package; the schema engine lives under
//   schema/ and the CLI under cmd/kindval.
// - Validators dispatch on the value's kind tag, never on a numeric type
//   hierarchy: a bool is never an integer, an integer is never a real.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := kindval.DecodeJSON(data)
//	s, err := kindval.String(v)
//	opt := kindval.Nullable(kindval.EnumOf([]any{"a", "b"}))
//	got, err := opt(v)
//
