package i18n

// Translator retrieves localized messages for issue and error codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "op").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "name_collision":
			return "予約名と衝突しています"
		case "reserved_property":
			return "予約済みプロパティです"
		case "unknown_property":
			return "未知のプロパティです"
		case "strict_mode":
			return "strict モードでは許可されていません"
		case "validation_failed":
			return "モデル検証に失敗しました"
		case "no_validation":
			return "スキーマも検証関数も設定されていません"
		case "schema_violation":
			return "スキーマ違反です"
		case "custom_rule":
			return "カスタム検証に失敗しました"
		case "invalid_schema":
			return "スキーマドキュメントが不正です"
		}
	default: // "en"
		switch code {
		case "name_collision":
			return "key collides with a reserved name"
		case "reserved_property":
			return "reserved property"
		case "unknown_property":
			return "unknown property"
		case "strict_mode":
			return "not allowed in strict mode"
		case "validation_failed":
			return "model validation failed"
		case "no_validation":
			return "no schema and no validate function configured"
		case "schema_violation":
			return "schema violation"
		case "custom_rule":
			return "custom rule failed"
		case "invalid_schema":
			return "invalid schema document"
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
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
