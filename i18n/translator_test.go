package i18n_test

import (
	"testing"

	"github.com/kindval/kindval/i18n"
)

func TestDefaultMessages(t *testing.T) {
	if got := i18n.T("invalid_type", nil); got != "invalid type" {
		t.Fatalf("invalid_type = %q", got)
	}
	if got := i18n.T("invalid_type", map[string]string{"expected": "integer"}); got != "expected integer" {
		t.Fatalf("invalid_type with expected = %q", got)
	}
	if got := i18n.T("invalid_enum", nil); got == "" {
		t.Fatalf("invalid_enum produced empty message")
	}
	// Unknown codes fall back to the code itself.
	if got := i18n.T("something_else", nil); got != "something_else" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestSetLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")
	if got := i18n.T("invalid_type", nil); got != "型が不正です" {
		t.Fatalf("ja invalid_type = %q", got)
	}
	if got := i18n.T("something_else", nil); got != "something_else" {
		t.Fatalf("ja fallback = %q", got)
	}
	// Unknown languages fall back to English.
	i18n.SetLanguage("fr")
	if got := i18n.T("unknown_key", nil); got != "unknown key" {
		t.Fatalf("language fallback = %q", got)
	}
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "!" + code }

func TestSetTranslator(t *testing.T) {
	i18n.SetTranslator(upperTranslator{})
	defer i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "!required" {
		t.Fatalf("custom translator not applied: %q", got)
	}
	i18n.SetTranslator(nil)
	if got := i18n.T("required", nil); got != "required property missing" {
		t.Fatalf("reset failed: %q", got)
	}
}
