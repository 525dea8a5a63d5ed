package domain

import (
	"fmt"
	"time"
)

// NoonHour is the local hour every CalendarInstant is pinned to.
const NoonHour = 12

// CalendarInstant is a calendar day in a named timezone, fixed at local noon.
// Values are immutable; construct them with NewCalendarInstant.
type CalendarInstant struct {
	year     int
	month    time.Month
	day      int
	location *time.Location
}

// NewCalendarInstant returns the instant for the given day at noon in loc.
// The day is normalised the way time.Date normalises out-of-range values.
func NewCalendarInstant(year int, month time.Month, day int, loc *time.Location) CalendarInstant {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(year, month, day, NoonHour, 0, 0, 0, loc)
	return CalendarInstant{
		year:     t.Year(),
		month:    t.Month(),
		day:      t.Day(),
		location: loc,
	}
}

// Year returns the gregorian year.
func (c CalendarInstant) Year() int { return c.year }

// Month returns the gregorian month.
func (c CalendarInstant) Month() time.Month { return c.month }

// Day returns the gregorian day of month.
func (c CalendarInstant) Day() int { return c.day }

// Location returns the timezone the instant is anchored in.
func (c CalendarInstant) Location() *time.Location {
	if c.location == nil {
		return time.UTC
	}
	return c.location
}

// Timezone returns the IANA identifier of the instant's timezone.
func (c CalendarInstant) Timezone() string {
	return c.Location().String()
}

// Time returns the instant as a time.Time at exactly 12:00:00.000 local time.
func (c CalendarInstant) Time() time.Time {
	return time.Date(c.year, c.month, c.day, NoonHour, 0, 0, 0, c.Location())
}

// IsZero reports whether the instant was never set.
func (c CalendarInstant) IsZero() bool {
	return c.year == 0 && c.month == 0 && c.day == 0
}

// String formats the instant as YYYY-MM-DD followed by the timezone.
func (c CalendarInstant) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %s", c.year, int(c.month), c.day, c.Timezone())
}
