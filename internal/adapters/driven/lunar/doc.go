// Package lunar provides the lunisolar calendar provider backed by
// github.com/6tail/lunar-go.
//
// The library computes everything the almanac needs except hour pillars.
// Its methods panic on dates outside its tables instead of returning
// errors; Lookup converts such panics into domain.ErrCalendarConversion
// and every optional getter is expected to be called through the
// services accessor, which recovers them.
package lunar
