package i18n

import "strings"

// Translator retrieves localized messages for diagnostic codes.
// data provides optional values substituted for {key} placeholders (for
// example, "ref" or "keyword").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"unresolved_ref":      "unresolved reference {ref}",
		"unsupported_keyword": "keyword {keyword} is not representable and was ignored",
		"enum_widened":        "non-string enum values widened to {type}",
		"name_collision":      "declaration name {name} is already used",
		"unsupported_type":    "type {type} is not supported",
	},
	"ja": {
		"unresolved_ref":      "参照 {ref} を解決できません",
		"unsupported_keyword": "キーワード {keyword} は表現できないため無視しました",
		"enum_widened":        "文字列以外の列挙値を {type} に拡張しました",
		"name_collision":      "宣言名 {name} は既に使われています",
		"unsupported_type":    "型 {type} はサポートされていません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
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
