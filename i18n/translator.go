package i18n

// Translator retrieves messages for issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_type":
			return "型が不正です"
		case "invalid_enum":
			return "許可されていない値です"
		case "required":
			return "必須プロパティが不足しています"
		case "unknown_key":
			return "未知のキーです"
		case "parse_error":
			return "解析エラー"
		case "invalid_schema":
			return "スキーマが不正です"
		case "overflow":
			return "数値が範囲外です"
		}
	default: // "en"
		switch code {
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return "expected " + exp
			}
			return "invalid type"
		case "invalid_enum":
			return "value not in enum"
		case "required":
			return "required property missing"
		case "unknown_key":
			return "unknown key"
		case "parse_error":
			return "parse error"
		case "invalid_schema":
			return "invalid schema"
		case "overflow":
			return "number out of range"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version); nil restores the built-in English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
