package services

import (
	"fmt"
	"regexp"
	"time"

	"github.com/custodia-labs/huangli/internal/core/domain"
)

// dateLayout is the only accepted date format.
const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateTimeResolver turns an optional date string and a timezone name
// into a CalendarInstant pinned to local noon.
type DateTimeResolver struct {
	now func() time.Time
}

// NewDateTimeResolver creates a resolver using the wall clock.
func NewDateTimeResolver() *DateTimeResolver {
	return &DateTimeResolver{now: time.Now}
}

// SetClock replaces the wall clock. Intended for tests.
func (r *DateTimeResolver) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	r.now = now
}

// Resolve returns the instant for date in the named timezone.
// An empty date means today in that timezone.
func (r *DateTimeResolver) Resolve(date, timezone string) (domain.CalendarInstant, error) {
	loc, err := loadLocation(timezone)
	if err != nil {
		return domain.CalendarInstant{}, err
	}

	if date == "" {
		today := r.now().In(loc)
		return domain.NewCalendarInstant(today.Year(), today.Month(), today.Day(), loc), nil
	}

	if !datePattern.MatchString(date) {
		return domain.CalendarInstant{}, fmt.Errorf("%w: %q does not match YYYY-MM-DD", domain.ErrInvalidDate, date)
	}

	// Parse in UTC so a DST gap at midnight in loc cannot shift the day.
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return domain.CalendarInstant{}, fmt.Errorf("%w: %q: %v", domain.ErrInvalidDate, date, err)
	}

	return domain.NewCalendarInstant(parsed.Year(), parsed.Month(), parsed.Day(), loc), nil
}

// loadLocation resolves an IANA name. The empty name is rejected rather
// than silently meaning UTC.
func loadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return nil, fmt.Errorf("%w: empty timezone name", domain.ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidTimezone, timezone, err)
	}
	return loc, nil
}
