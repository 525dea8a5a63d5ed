package domain

// Language selects the presentation language of locale-dependent strings.
type Language string

// Supported languages.
const (
	// LanguageChinese renders weekday labels as 星期一..星期日.
	LanguageChinese Language = "zh"

	// LanguageEnglish renders weekday labels as Mon..Sun.
	LanguageEnglish Language = "en"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = LanguageChinese

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	return l == LanguageChinese || l == LanguageEnglish
}

// String returns the string representation.
func (l Language) String() string {
	return string(l)
}
