package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
)

func shanghaiInstant(t *testing.T, year int, month time.Month, day int) domain.CalendarInstant {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	return domain.NewCalendarInstant(year, month, day, loc)
}

// assertEmptyOptionals checks every optional field holds its empty default.
func assertEmptyOptionals(t *testing.T, r *domain.AlmanacRecord) {
	t.Helper()

	assert.Equal(t, "", r.Date.Lunar.MonthName)
	assert.Equal(t, "", r.Date.Lunar.DayName)
	assert.Equal(t, "", r.Date.SolarTerm)
	assert.Equal(t, "", r.Date.MoonPhase)
	assert.Equal(t, domain.Nayin{}, r.StemsBranches.Nayin)

	a := r.Almanac
	assert.Equal(t, []string{}, a.Yi)
	assert.Equal(t, []string{}, a.Ji)
	assert.Equal(t, "", a.DayTianShen)
	assert.Equal(t, domain.HeiDaoDay, a.HuangDaoOrHeiDao)
	assert.Equal(t, domain.Chong{}, a.Chong)
	assert.Equal(t, "", a.Sha)
	assert.Equal(t, domain.PengZu{}, a.PengZu)
	assert.Equal(t, domain.GodsDirection{}, a.GodsDirection)
	assert.Equal(t, []string{}, a.Stars.JiShen)
	assert.Equal(t, []string{}, a.Stars.XiongSha)
}

func TestAlmanacAssembler_FullProvider(t *testing.T) {
	provider := &mockProvider{day: fullDay{bareDay: bareDay{basics: newYearBasics}, huangDao: true}}
	a := NewAlmanacAssembler(provider, mockLocalizer{})

	r, err := a.Assemble(shanghaiInstant(t, 2024, time.February, 10), domain.LanguageChinese)
	require.NoError(t, err)

	assert.Equal(t, domain.GregorianDate{
		Year: 2024, Month: 2, Day: 10, Weekday: "星期六", Timezone: "Asia/Shanghai",
	}, r.Date.Gregorian)
	assert.Equal(t, domain.LunarDate{
		Year: 2024, Month: 1, Day: 1, MonthName: "正", DayName: "初一", Zodiac: "龙",
	}, r.Date.Lunar)
	assert.Equal(t, "", r.Date.SolarTerm)
	assert.Equal(t, "朔", r.Date.MoonPhase)

	assert.Equal(t, "甲辰", r.StemsBranches.YearGZ)
	assert.Equal(t, "丙寅", r.StemsBranches.MonthGZ)
	assert.Equal(t, "甲辰", r.StemsBranches.DayGZ)
	assert.Equal(t, "", r.StemsBranches.TimeGZ)
	assert.Equal(t, domain.Nayin{Year: "覆灯火", Month: "炉中火", Day: "覆灯火"}, r.StemsBranches.Nayin)

	assert.Equal(t, []string{"祭祀", "祈福"}, r.Almanac.Yi)
	assert.Equal(t, []string{"动土"}, r.Almanac.Ji)
	assert.Equal(t, "青龙", r.Almanac.DayTianShen)
	assert.Equal(t, domain.HuangDaoDay, r.Almanac.HuangDaoOrHeiDao)
	assert.Equal(t, domain.Chong{Animal: "狗", Desc: "(戊戌)狗"}, r.Almanac.Chong)
	assert.Equal(t, "南", r.Almanac.Sha)
	assert.Equal(t, "甲不开仓财物耗散", r.Almanac.PengZu.Gan)
	assert.Equal(t, domain.GodsDirection{Xi: "东北", Fu: "东南", Cai: "东北"}, r.Almanac.GodsDirection)
	assert.Equal(t, []string{"月德", "天恩"}, r.Almanac.Stars.JiShen)
	assert.Equal(t, []string{"月破"}, r.Almanac.Stars.XiongSha)

	require.Len(t, provider.lookups, 1)
	assert.Equal(t, 12, provider.lookups[0].Time().Hour())
}

func TestAlmanacAssembler_HeiDao(t *testing.T) {
	provider := &mockProvider{day: fullDay{bareDay: bareDay{basics: newYearBasics}}}
	a := NewAlmanacAssembler(provider, mockLocalizer{})

	r, err := a.Assemble(shanghaiInstant(t, 2024, time.February, 10), domain.LanguageChinese)
	require.NoError(t, err)
	assert.Equal(t, domain.HeiDaoDay, r.Almanac.HuangDaoOrHeiDao)
}

func TestAlmanacAssembler_DegradedProviders(t *testing.T) {
	base := bareDay{basics: newYearBasics}

	tests := []struct {
		name string
		day  driven.LunarDay
	}{
		{"no optional capabilities", base},
		{"every optional capability errors", failingDay{bareDay: base}},
		{"every optional capability panics", panickingDay{bareDay: base}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAlmanacAssembler(&mockProvider{day: tt.day}, mockLocalizer{})

			var r *domain.AlmanacRecord
			var err error
			require.NotPanics(t, func() {
				r, err = a.Assemble(shanghaiInstant(t, 2024, time.February, 10), domain.LanguageChinese)
			})
			require.NoError(t, err)
			require.NotNil(t, r)

			// Mandatory data still flows through.
			assert.Equal(t, 1, r.Date.Lunar.Month)
			assert.Equal(t, 1, r.Date.Lunar.Day)
			assert.Equal(t, "龙", r.Date.Lunar.Zodiac)
			assert.Equal(t, "甲辰", r.StemsBranches.YearGZ)

			assertEmptyOptionals(t, r)
			assert.Equal(t, "", r.StemsBranches.TimeGZ)

			data, err := json.Marshal(r)
			require.NoError(t, err)
			assert.NotContains(t, string(data), "null")
		})
	}
}

func TestAlmanacAssembler_HourPillarAlwaysEmpty(t *testing.T) {
	base := bareDay{basics: newYearBasics}
	for _, day := range []driven.LunarDay{base, fullDay{bareDay: base}, failingDay{bareDay: base}} {
		a := NewAlmanacAssembler(&mockProvider{day: day}, mockLocalizer{})
		r, err := a.Assemble(shanghaiInstant(t, 2024, time.February, 10), domain.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, "", r.StemsBranches.TimeGZ)
		assert.Equal(t, "", r.StemsBranches.Nayin.Time)
	}
}

func TestAlmanacAssembler_Weekday(t *testing.T) {
	tests := []struct {
		weekday time.Weekday
		lang    domain.Language
		want    string
	}{
		{time.Monday, domain.LanguageEnglish, "Mon"},
		{time.Monday, domain.LanguageChinese, "星期一"},
		{time.Saturday, domain.LanguageEnglish, "Sat"},
		{time.Sunday, domain.LanguageEnglish, "Sun"},
		{time.Sunday, domain.LanguageChinese, "星期日"},
	}

	for _, tt := range tests {
		t.Run(tt.weekday.String()+"/"+tt.lang.String(), func(t *testing.T) {
			basics := newYearBasics
			basics.Weekday = tt.weekday
			a := NewAlmanacAssembler(&mockProvider{day: bareDay{basics: basics}}, mockLocalizer{})

			r, err := a.Assemble(shanghaiInstant(t, 2024, time.February, 10), tt.lang)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Date.Gregorian.Weekday)
		})
	}
}

func TestAlmanacAssembler_InvalidProviderWeekday(t *testing.T) {
	basics := newYearBasics
	basics.Weekday = time.Weekday(9)
	a := NewAlmanacAssembler(&mockProvider{day: bareDay{basics: basics}}, mockLocalizer{})

	_, err := a.Assemble(shanghaiInstant(t, 2024, time.February, 10), domain.LanguageChinese)
	assert.ErrorIs(t, err, domain.ErrInvalidWeekday)
}

func TestAlmanacAssembler_ConversionFailure(t *testing.T) {
	tests := []struct {
		name     string
		provider *mockProvider
	}{
		{"provider error", &mockProvider{err: errors.New("year out of range")}},
		{"provider panic", &mockProvider{panicMsg: "index out of range [-1]"}},
		{"provider returns nothing", &mockProvider{}},
		{"provider already classified", &mockProvider{err: domain.ErrCalendarConversion}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAlmanacAssembler(tt.provider, mockLocalizer{})

			r, err := a.Assemble(shanghaiInstant(t, 9999, time.December, 31), domain.LanguageChinese)
			require.Error(t, err)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, domain.ErrCalendarConversion)
		})
	}
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(time.Monday))
	assert.Equal(t, 6, isoWeekday(time.Saturday))
	assert.Equal(t, 7, isoWeekday(time.Sunday))
	assert.Equal(t, 0, isoWeekday(time.Weekday(-1)))
	assert.Equal(t, 0, isoWeekday(time.Weekday(7)))
}

func TestMissingCapabilities(t *testing.T) {
	assert.Len(t, missingCapabilities(bareDay{}), 10)
	assert.Empty(t, missingCapabilities(fullDay{}))
}
