// Package locale provides the weekday localizer and language matching.
package locale

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
)

// Ensure Localizer implements the interface.
var _ driven.Localizer = (*Localizer)(nil)

// weekdayPrefix precedes the Chinese weekday in gregorian dates.
const weekdayPrefix = "星期"

var weekdays = map[domain.Language][7]string{
	domain.LanguageEnglish: {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
	domain.LanguageChinese: {"一", "二", "三", "四", "五", "六", "日"},
}

// The first supported tag is the fallback for unmatched requests.
var (
	supportedTags = []language.Tag{language.Chinese, language.English}
	supportedLang = []domain.Language{domain.LanguageChinese, domain.LanguageEnglish}
)

// Localizer formats weekday labels in Chinese or English.
// It is immutable and safe for concurrent use.
type Localizer struct {
	matcher language.Matcher
}

// New creates a new localizer.
func New() *Localizer {
	return &Localizer{matcher: language.NewMatcher(supportedTags)}
}

// Language matches a BCP 47 tag such as "en-GB" or "zh-Hant-TW".
// Empty, malformed or unsupported tags resolve to Chinese.
func (l *Localizer) Language(tag string) domain.Language {
	if tag == "" {
		return domain.DefaultLanguage
	}
	t, err := language.Parse(tag)
	if err != nil {
		return domain.DefaultLanguage
	}
	_, index, confidence := l.matcher.Match(t)
	if confidence == language.No {
		return domain.DefaultLanguage
	}
	return supportedLang[index]
}

// WeekdayLabel returns the bare weekday label for index 1=Monday..7=Sunday.
func (l *Localizer) WeekdayLabel(index int, lang domain.Language) (string, error) {
	if index < 1 || index > 7 {
		return "", fmt.Errorf("%w: %d not in 1..7", domain.ErrInvalidWeekday, index)
	}
	names, ok := weekdays[lang]
	if !ok {
		names = weekdays[domain.DefaultLanguage]
	}
	return names[index-1], nil
}

// GregorianWeekday returns the weekday label used in gregorian dates.
// Every language other than English gets the 星期 prefix.
func (l *Localizer) GregorianWeekday(index int, lang domain.Language) (string, error) {
	label, err := l.WeekdayLabel(index, lang)
	if err != nil {
		return "", err
	}
	if lang == domain.LanguageEnglish {
		return label, nil
	}
	return weekdayPrefix + label, nil
}
