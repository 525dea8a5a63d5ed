package driven

import (
	"time"

	"github.com/custodia-labs/huangli/internal/core/domain"
)

// LunarProvider converts gregorian days to lunisolar days.
// Conversion is the mandatory capability: a failure here is fatal for
// the request and must be reported as domain.ErrCalendarConversion.
type LunarProvider interface {
	// Name identifies the provider and its version in logs.
	Name() string

	// Lookup converts the calendar day of the instant.
	Lookup(instant domain.CalendarInstant) (LunarDay, error)
}

// LunarDay is one converted day.
//
// Basics returns the mandatory subset every provider supports. Optional
// almanac categories are discovered by asserting the capability
// interfaces below; a provider may implement any subset of them and any
// individual method may fail with domain.ErrUnsupported or another error.
type LunarDay interface {
	Basics() LunarBasics
}

// LunarBasics is the mandatory data of a converted day.
type LunarBasics struct {
	// Gregorian date as seen by the provider.
	SolarYear  int
	SolarMonth int
	SolarDay   int

	// Weekday as reported by the provider.
	Weekday time.Weekday

	// Lunar date. Month is negative for leap months.
	Year  int
	Month int
	Day   int

	// Zodiac is the year's animal.
	Zodiac string

	// Sexagenary labels of the year, month and day pillars.
	YearGanZhi  string
	MonthGanZhi string
	DayGanZhi   string
}

// Optional capabilities.

// LunarNamer names the lunar month and day in Chinese.
type LunarNamer interface {
	MonthName() (string, error)
	DayName() (string, error)
}

// SolarTermer reports the solar term falling on the day, if any.
type SolarTermer interface {
	SolarTerm() (string, error)
}

// MoonPhaser reports the lunar phase of the day.
type MoonPhaser interface {
	MoonPhase() (string, error)
}

// ActivityLister lists the day's auspicious (yi) and inauspicious (ji) activities.
type ActivityLister interface {
	DayYi() ([]string, error)
	DayJi() ([]string, error)
}

// DeityTeller reports the day deity and its Huang Dao classification.
type DeityTeller interface {
	DayTianShen() (string, error)
	IsHuangDao() (bool, error)
}

// ClashTeller reports the clashing animal and the sha direction.
type ClashTeller interface {
	ChongAnimal() (string, error)
	ChongDesc() (string, error)
	Sha() (string, error)
}

// PengZuTeller reports the Peng Zu taboos of the day stem and branch.
type PengZuTeller interface {
	PengZuGan() (string, error)
	PengZuZhi() (string, error)
}

// DirectionTeller reports the directions of the joy, fortune and wealth gods.
type DirectionTeller interface {
	PositionXi() (string, error)
	PositionFu() (string, error)
	PositionCai() (string, error)
}

// StarLister lists the day's auspicious deities and inauspicious influences.
type StarLister interface {
	DayJiShen() ([]string, error)
	DayXiongSha() ([]string, error)
}

// NaYinTeller reports the five-element sound names of the pillars.
type NaYinTeller interface {
	YearNaYin() (string, error)
	MonthNaYin() (string, error)
	DayNaYin() (string, error)
}
