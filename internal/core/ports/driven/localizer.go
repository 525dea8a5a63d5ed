package driven

import "github.com/custodia-labs/huangli/internal/core/domain"

// Localizer formats locale-dependent presentation strings.
type Localizer interface {
	// Language matches a requested language tag to a supported language.
	// Unknown or empty tags resolve to domain.DefaultLanguage.
	Language(tag string) domain.Language

	// WeekdayLabel returns the bare weekday label for an ISO index
	// (1=Monday..7=Sunday). Indices outside 1..7 fail with
	// domain.ErrInvalidWeekday.
	WeekdayLabel(index int, lang domain.Language) (string, error)

	// GregorianWeekday returns the label used in the gregorian date,
	// e.g. "星期一" for Chinese and "Mon" for English.
	GregorianWeekday(index int, lang domain.Language) (string, error)
}
