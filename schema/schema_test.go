package schema_test

import (
	"testing"

	kindval "github.com/kindval/kindval"
	"github.com/kindval/kindval/schema"
)

func mustCompile(t *testing.T, doc map[string]any) *schema.Schema {
	t.Helper()
	s, err := schema.Compile(doc)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return s
}

func issuesOf(t *testing.T, err error) kindval.Issues {
	t.Helper()
	if err == nil {
		t.Fatalf("expected issues, got nil")
	}
	iss, ok := kindval.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %T: %v", err, err)
	}
	return iss
}

func userSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"age":   map[string]any{"type": "integer"},
			"score": map[string]any{"type": "number", "nullable": true},
			"role":  map[string]any{"enum": []any{"admin", "user"}},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"name", "age"},
	}
}

func TestSchema_ValidDocumentPasses(t *testing.T) {
	s := mustCompile(t, userSchema())
	err := s.ValidateJSON([]byte(`{
		"name": "ann",
		"age": 41,
		"score": null,
		"role": "admin",
		"tags": ["a", "b"]
	}`))
	if err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestSchema_AggregatesIssuesWithPaths(t *testing.T) {
	s := mustCompile(t, userSchema())
	err := s.ValidateJSON([]byte(`{
		"age": true,
		"score": "high",
		"role": "root",
		"tags": ["ok", 7]
	}`))
	iss := issuesOf(t, err)

	want := map[string]string{
		"/name":   kindval.CodeRequired,
		"/age":    kindval.CodeInvalidType,
		"/score":  kindval.CodeInvalidType,
		"/role":   kindval.CodeInvalidEnum,
		"/tags/1": kindval.CodeInvalidType,
	}
	got := map[string]string{}
	for _, it := range iss {
		got[it.Path] = it.Code
	}
	for path, code := range want {
		if got[path] != code {
			t.Fatalf("missing %s at %s; issues: %v", code, path, iss)
		}
	}
	if len(iss) != len(want) {
		t.Fatalf("issue count = %d, want %d: %v", len(iss), len(want), iss)
	}
}

// A boolean age is an invalid_type, not a surprising integer: the engine
// inherits the validators' boolean exclusion.
func TestSchema_BooleanNeverSatisfiesIntegerNode(t *testing.T) {
	s := mustCompile(t, map[string]any{"type": "integer"})
	iss := issuesOf(t, s.ValidateJSON([]byte(`true`)))
	if iss[0].Code != kindval.CodeInvalidType || iss[0].Params["got"] != "boolean" {
		t.Fatalf("issue = %+v", iss[0])
	}
	if iss[0].Path != "/" {
		t.Fatalf("root path = %q", iss[0].Path)
	}
}

func TestSchema_UnknownKeysRejectedWhenClosed(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"type":                 "object",
		"properties":           map[string]any{"a": map[string]any{"type": "string"}},
		"additionalProperties": false,
	})
	iss := issuesOf(t, s.ValidateJSON([]byte(`{"a":"x","b":1}`)))
	if len(iss) != 1 || iss[0].Code != kindval.CodeUnknownKey || iss[0].Path != "/b" {
		t.Fatalf("issues = %v", iss)
	}

	open := mustCompile(t, map[string]any{
		"type":       "object",
		"properties": map[string]any{"a": map[string]any{"type": "string"}},
	})
	if err := open.ValidateJSON([]byte(`{"a":"x","b":1}`)); err != nil {
		t.Fatalf("open object rejected unknown key: %v", err)
	}
}

func TestSchema_NullableEnumComposes(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"enum":     []any{"on", "off"},
		"nullable": true,
	})
	if err := s.ValidateJSON([]byte(`null`)); err != nil {
		t.Fatalf("null rejected by nullable enum: %v", err)
	}
	if err := s.ValidateJSON([]byte(`"on"`)); err != nil {
		t.Fatalf("member rejected: %v", err)
	}
	iss := issuesOf(t, s.ValidateJSON([]byte(`"dim"`)))
	if iss[0].Code != kindval.CodeInvalidEnum {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestSchema_NullableContainer(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"type":     "array",
		"nullable": true,
		"items":    map[string]any{"type": "integer"},
	})
	if err := s.ValidateJSON([]byte(`null`)); err != nil {
		t.Fatalf("null rejected by nullable array: %v", err)
	}
	if err := s.ValidateJSON([]byte(`[1, 2]`)); err != nil {
		t.Fatalf("array rejected: %v", err)
	}
	iss := issuesOf(t, s.ValidateJSON([]byte(`[1, 2.5]`)))
	if iss[0].Path != "/1" || iss[0].Code != kindval.CodeInvalidType {
		t.Fatalf("issues = %v", iss)
	}
}

func TestSchema_NestedObjectPaths(t *testing.T) {
	s := mustCompile(t, map[string]any{
		"type": "object",
		"properties": map[string]any{
			"order": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"items": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"price": map[string]any{"type": "number"},
							},
							"required": []any{"price"},
						},
					},
				},
			},
		},
	})
	iss := issuesOf(t, s.ValidateJSON([]byte(`{"order":{"items":[{"price":1.5},{"price":"x"},{}]}}`)))
	got := map[string]string{}
	for _, it := range iss {
		got[it.Path] = it.Code
	}
	if got["/order/items/1/price"] != kindval.CodeInvalidType {
		t.Fatalf("issues = %v", iss)
	}
	if got["/order/items/2/price"] != kindval.CodeRequired {
		t.Fatalf("issues = %v", iss)
	}
}

func TestCompileYAML(t *testing.T) {
	src := []byte(`
type: object
properties:
  name:
    type: string
  level:
    enum: [1, 2, 3]
required: [name]
`)
	s, err := schema.CompileYAML(src)
	if err != nil {
		t.Fatalf("compile yaml: %v", err)
	}
	if err := s.ValidateJSON([]byte(`{"name":"n","level":2}`)); err != nil {
		t.Fatalf("valid doc rejected: %v", err)
	}
	iss := issuesOf(t, s.ValidateJSON([]byte(`{"name":"n","level":true}`)))
	if iss[0].Code != kindval.CodeInvalidEnum || iss[0].Path != "/level" {
		t.Fatalf("issues = %v", iss)
	}
}

func TestCompile_RejectsMalformedSchemas(t *testing.T) {
	cases := []struct {
		name string
		doc  map[string]any
	}{
		{"unknown type", map[string]any{"type": "decimal"}},
		{"non-string type", map[string]any{"type": 3}},
		{"empty enum", map[string]any{"enum": []any{}}},
		{"non-scalar enum literal", map[string]any{"enum": []any{map[string]any{}}}},
		{"items without array", map[string]any{"type": "string", "items": map[string]any{"type": "string"}}},
		{"bare node", map[string]any{"nullable": true}},
		{"bad required entry", map[string]any{"type": "object", "required": []any{1}}},
	}
	for _, c := range cases {
		_, err := schema.Compile(c.doc)
		iss := issuesOf(t, err)
		if iss[0].Code != kindval.CodeInvalidSchema {
			t.Fatalf("%s: code = %s", c.name, iss[0].Code)
		}
	}
}

func TestCompileJSON_NonObjectDocument(t *testing.T) {
	_, err := schema.CompileJSON([]byte(`[1,2]`))
	iss := issuesOf(t, err)
	if iss[0].Code != kindval.CodeInvalidSchema {
		t.Fatalf("issues = %v", iss)
	}
}
