package schema

import (
	"sort"

	"gopkg.in/yaml.v3"

	kindval "github.com/kindval/kindval"
)

// Schema is a compiled validator tree. Compile once, validate many times;
// the tree is immutable after Compile and safe for concurrent use.
type Schema struct {
	root *node
}

// node is one compiled schema position. A node carries either a primitive
// kind or an enum literal set, optionally wrapped as nullable; container
// kinds additionally carry their element/property subtrees.
type node struct {
	kind       kindval.Kind
	enum       []any
	nullable   bool
	items      *node
	props      map[string]*node
	required   []string
	additional bool
}

var kindNames = map[string]kindval.Kind{
	"string":  kindval.KindString,
	"boolean": kindval.KindBool,
	"integer": kindval.KindInt,
	"number":  kindval.KindNumber,
	"array":   kindval.KindArray,
	"object":  kindval.KindObject,
}

// Compile builds a Schema from an already-decoded schema document.
func Compile(doc map[string]any) (*Schema, error) {
	n, iss := compileNode("", doc, nil)
	if len(iss) > 0 {
		return nil, iss
	}
	return &Schema{root: n}, nil
}

// CompileJSON decodes a JSON schema document and compiles it.
func CompileJSON(b []byte) (*Schema, error) {
	v, err := kindval.DecodeJSON(b)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, kindval.Issues{invalidSchema("", "schema document must be an object")}
	}
	return Compile(doc)
}

// CompileYAML decodes a YAML schema document and compiles it.
func CompileYAML(b []byte) (*Schema, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, kindval.Issues{{Path: "/", Code: kindval.CodeParseError, Message: err.Error(), Cause: err}}
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, kindval.Issues{invalidSchema("", "schema document must be a mapping")}
	}
	return Compile(doc)
}

func compileNode(path string, doc map[string]any, iss kindval.Issues) (*node, kindval.Issues) {
	n := &node{additional: true}

	if raw, ok := doc["type"]; ok {
		name, sok := raw.(string)
		if !sok {
			return nil, append(iss, invalidSchema(path+"/type", "type must be a string"))
		}
		k, known := kindNames[name]
		if !known {
			return nil, append(iss, invalidSchema(path+"/type", "unknown type "+name))
		}
		n.kind = k
	}

	if raw, ok := doc["enum"]; ok {
		lits, sok := raw.([]any)
		if !sok || len(lits) == 0 {
			return nil, append(iss, invalidSchema(path+"/enum", "enum must be a non-empty sequence"))
		}
		for i, lit := range lits {
			switch kindval.KindOf(lit) {
			case kindval.KindNull, kindval.KindBool, kindval.KindInt, kindval.KindNumber, kindval.KindString:
			default:
				return nil, append(iss, invalidSchema(path+"/enum/"+itoa(i), "enum literals must be scalars"))
			}
		}
		n.enum = lits
	}

	if raw, ok := doc["nullable"]; ok {
		b, sok := raw.(bool)
		if !sok {
			return nil, append(iss, invalidSchema(path+"/nullable", "nullable must be a boolean"))
		}
		n.nullable = b
	}

	if raw, ok := doc["items"]; ok {
		if n.kind != kindval.KindArray {
			return nil, append(iss, invalidSchema(path+"/items", "items requires type array"))
		}
		sub, sok := raw.(map[string]any)
		if !sok {
			return nil, append(iss, invalidSchema(path+"/items", "items must be a schema object"))
		}
		child, ciss := compileNode(path+"/items", sub, iss)
		if len(ciss) > 0 {
			return nil, ciss
		}
		n.items = child
	}

	if raw, ok := doc["properties"]; ok {
		if n.kind != kindval.KindObject {
			return nil, append(iss, invalidSchema(path+"/properties", "properties requires type object"))
		}
		props, sok := raw.(map[string]any)
		if !sok {
			return nil, append(iss, invalidSchema(path+"/properties", "properties must be a mapping"))
		}
		n.props = make(map[string]*node, len(props))
		for _, key := range sortedKeys(props) {
			sub, pok := props[key].(map[string]any)
			if !pok {
				return nil, append(iss, invalidSchema(path+"/properties/"+escapeToken(key), "property schema must be an object"))
			}
			child, ciss := compileNode(path+"/properties/"+escapeToken(key), sub, iss)
			if len(ciss) > 0 {
				return nil, ciss
			}
			n.props[key] = child
		}
	}

	if raw, ok := doc["required"]; ok {
		names, sok := raw.([]any)
		if !sok {
			return nil, append(iss, invalidSchema(path+"/required", "required must be a sequence of strings"))
		}
		n.required = make([]string, 0, len(names))
		for i, nv := range names {
			s, nok := nv.(string)
			if !nok {
				return nil, append(iss, invalidSchema(path+"/required/"+itoa(i), "required entries must be strings"))
			}
			n.required = append(n.required, s)
		}
	}

	if raw, ok := doc["additionalProperties"]; ok {
		b, sok := raw.(bool)
		if !sok {
			return nil, append(iss, invalidSchema(path+"/additionalProperties", "additionalProperties must be a boolean"))
		}
		n.additional = b
	}

	if n.kind == kindval.KindInvalid && n.enum == nil {
		return nil, append(iss, invalidSchema(path, "node needs a type or an enum"))
	}
	return n, iss
}

func invalidSchema(path, msg string) kindval.Issue {
	return kindval.Issue{Path: pointer(path), Code: kindval.CodeInvalidSchema, Message: msg}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
