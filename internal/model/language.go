package model

type LanguageCode string

const (
	CodeEnglish   LanguageCode = "en"
	CodeMalayalam LanguageCode = "ml"
)

// Text is a language-tagged string pair. All catalog content carries both an
// English and a Malayalam rendering.
type Text struct {
	EN string `json:"en"`
	ML string `json:"ml"`
}

// In resolves the text for a language code, falling back to English when the
// Malayalam rendering is absent.
func (t Text) In(code LanguageCode) string {
	if code == CodeMalayalam && t.ML != "" {
		return t.ML
	}
	return t.EN
}

type Language struct {
	Code       LanguageCode `json:"code"`
	Name       string       `json:"name"`
	NativeName string       `json:"nativeName"`
}

var (
	English   = Language{Code: CodeEnglish, Name: "English", NativeName: "English"}
	Malayalam = Language{Code: CodeMalayalam, Name: "Malayalam", NativeName: "മലയാളം"}
)

// LanguageByCode returns the language for a stored code, defaulting to English
// for anything unrecognized.
func LanguageByCode(code LanguageCode) Language {
	if code == CodeMalayalam {
		return Malayalam
	}
	return English
}
