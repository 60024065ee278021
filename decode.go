package kindval

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON document into the value representation the
// validators consume: string, bool, json.Number, []any, map[string]any, nil.
// Numbers are preserved as json.Number so the integer/real lexical
// distinction survives into validation.
func DecodeJSON(b []byte) (any, error) {
	return DecodeJSONReader(bytes.NewReader(b))
}

// DecodeJSONReader is DecodeJSON over a stream.
func DecodeJSONReader(r io.Reader) (any, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	if dec.More() {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "unexpected trailing content"}}
	}
	return v, nil
}
