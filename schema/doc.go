// Package schema compiles schema documents into validator trees and walks
// decoded values against them.
//
// A schema document is itself a decoded mapping (from JSON or YAML) using a
// small vocabulary: type, enum, nullable, items, properties, required,
// additionalProperties. Compilation resolves the vocabulary once; validation
// dispatches each node to the kindval validators and aggregates every issue
// with its JSON Pointer path instead of stopping at the first failure.
package schema
