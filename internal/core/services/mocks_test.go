package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockProvider implements driven.LunarProvider for testing.
type mockProvider struct {
	day      driven.LunarDay
	err      error
	panicMsg string
	lookups  []domain.CalendarInstant
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Lookup(instant domain.CalendarInstant) (driven.LunarDay, error) {
	m.lookups = append(m.lookups, instant)
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.day, nil
}

// newYearBasics is 2024-02-10, the first day of the Year of the Dragon.
var newYearBasics = driven.LunarBasics{
	SolarYear:   2024,
	SolarMonth:  2,
	SolarDay:    10,
	Weekday:     time.Saturday,
	Year:        2024,
	Month:       1,
	Day:         1,
	Zodiac:      "龙",
	YearGanZhi:  "甲辰",
	MonthGanZhi: "丙寅",
	DayGanZhi:   "甲辰",
}

// bareDay implements only the mandatory subset.
type bareDay struct {
	basics driven.LunarBasics
}

func (d bareDay) Basics() driven.LunarBasics { return d.basics }

// fullDay implements every optional capability with fixed values.
type fullDay struct {
	bareDay
	huangDao bool
}

func (fullDay) MonthName() (string, error) { return "正", nil }
func (fullDay) DayName() (string, error) { return "初一", nil }
func (fullDay) SolarTerm() (string, error) { return "", nil }
func (fullDay) MoonPhase() (string, error) { return "朔", nil }
func (fullDay) DayYi() ([]string, error) { return []string{"祭祀", "", "祈福"}, nil }
func (fullDay) DayJi() ([]string, error) { return []string{"动土"}, nil }
func (fullDay) DayTianShen() (string, error) { return "青龙", nil }
func (d fullDay) IsHuangDao() (bool, error) { return d.huangDao, nil }
func (fullDay) ChongAnimal() (string, error) { return "狗", nil }
func (fullDay) ChongDesc() (string, error) { return "(戊戌)狗", nil }
func (fullDay) Sha() (string, error) { return "南", nil }
func (fullDay) PengZuGan() (string, error) { return "甲不开仓财物耗散", nil }
func (fullDay) PengZuZhi() (string, error) { return "辰不哭泣必主重丧", nil }
func (fullDay) PositionXi() (string, error) { return "东北", nil }
func (fullDay) PositionFu() (string, error) { return "东南", nil }
func (fullDay) PositionCai() (string, error) { return "东北", nil }
func (fullDay) DayJiShen() ([]string, error) { return []string{"月德", "天恩"}, nil }
func (fullDay) DayXiongSha() ([]string, error) { return []string{"", "月破"}, nil }
func (fullDay) YearNaYin() (string, error) { return "覆灯火", nil }
func (fullDay) MonthNaYin() (string, error) { return "炉中火", nil }
func (fullDay) DayNaYin() (string, error) { return "覆灯火", nil }

var errNotInThisVersion = errors.New("method not available in this provider version")

// failingDay implements every optional capability, each one failing.
type failingDay struct {
	bareDay
}

func (failingDay) MonthName() (string, error) { return "", errNotInThisVersion }
func (failingDay) DayName() (string, error) { return "", errNotInThisVersion }
func (failingDay) SolarTerm() (string, error) { return "", errNotInThisVersion }
func (failingDay) MoonPhase() (string, error) { return "", errNotInThisVersion }
func (failingDay) DayYi() ([]string, error) { return nil, errNotInThisVersion }
func (failingDay) DayJi() ([]string, error) { return []string{"x"}, errNotInThisVersion }
func (failingDay) DayTianShen() (string, error) { return "", errNotInThisVersion }
func (failingDay) IsHuangDao() (bool, error) { return true, errNotInThisVersion }
func (failingDay) ChongAnimal() (string, error) { return "", errNotInThisVersion }
func (failingDay) ChongDesc() (string, error) { return "", errNotInThisVersion }
func (failingDay) Sha() (string, error) { return "", errNotInThisVersion }
func (failingDay) PengZuGan() (string, error) { return "", errNotInThisVersion }
func (failingDay) PengZuZhi() (string, error) { return "", errNotInThisVersion }
func (failingDay) PositionXi() (string, error) { return "", errNotInThisVersion }
func (failingDay) PositionFu() (string, error) { return "", errNotInThisVersion }
func (failingDay) PositionCai() (string, error) { return "", errNotInThisVersion }
func (failingDay) DayJiShen() ([]string, error) { return nil, errNotInThisVersion }
func (failingDay) DayXiongSha() ([]string, error) { return nil, errNotInThisVersion }
func (failingDay) YearNaYin() (string, error) { return "x", errNotInThisVersion }
func (failingDay) MonthNaYin() (string, error) { return "", errNotInThisVersion }
func (failingDay) DayNaYin() (string, error) { return "", errNotInThisVersion }

// panickingDay implements every optional capability, each one panicking.
type panickingDay struct {
	bareDay
}

func (panickingDay) MonthName() (string, error) { panic("boom") }
func (panickingDay) DayName() (string, error) { panic("boom") }
func (panickingDay) SolarTerm() (string, error) { panic("boom") }
func (panickingDay) MoonPhase() (string, error) { panic("boom") }
func (panickingDay) DayYi() ([]string, error) { panic("boom") }
func (panickingDay) DayJi() ([]string, error) { panic("boom") }
func (panickingDay) DayTianShen() (string, error) { panic("boom") }
func (panickingDay) IsHuangDao() (bool, error) { panic("boom") }
func (panickingDay) ChongAnimal() (string, error) { panic("boom") }
func (panickingDay) ChongDesc() (string, error) { panic("boom") }
func (panickingDay) Sha() (string, error) { panic("boom") }
func (panickingDay) PengZuGan() (string, error) { panic("boom") }
func (panickingDay) PengZuZhi() (string, error) { panic("boom") }
func (panickingDay) PositionXi() (string, error) { panic("boom") }
func (panickingDay) PositionFu() (string, error) { panic("boom") }
func (panickingDay) PositionCai() (string, error) { panic("boom") }
func (panickingDay) DayJiShen() ([]string, error) { panic("boom") }
func (panickingDay) DayXiongSha() ([]string, error) { panic("boom") }
func (panickingDay) YearNaYin() (string, error) { panic("boom") }
func (panickingDay) MonthNaYin() (string, error) { panic("boom") }
func (panickingDay) DayNaYin() (string, error) { panic("boom") }

// mockLocalizer implements driven.Localizer for testing.
type mockLocalizer struct{}

var (
	mockEnglishDays = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	mockChineseDays = [...]string{"一", "二", "三", "四", "五", "六", "日"}
)

func (mockLocalizer) Language(tag string) domain.Language {
	if tag == "en" {
		return domain.LanguageEnglish
	}
	return domain.LanguageChinese
}

func (mockLocalizer) WeekdayLabel(index int, lang domain.Language) (string, error) {
	if index < 1 || index > 7 {
		return "", fmt.Errorf("%w: %d", domain.ErrInvalidWeekday, index)
	}
	if lang == domain.LanguageEnglish {
		return mockEnglishDays[index-1], nil
	}
	return mockChineseDays[index-1], nil
}

func (m mockLocalizer) GregorianWeekday(index int, lang domain.Language) (string, error) {
	label, err := m.WeekdayLabel(index, lang)
	if err != nil || lang == domain.LanguageEnglish {
		return label, err
	}
	return "星期" + label, nil
}

// concurrentProvider is a stateless provider safe for parallel use.
type concurrentProvider struct{}

func (concurrentProvider) Name() string { return "concurrent" }

func (concurrentProvider) Lookup(_ domain.CalendarInstant) (driven.LunarDay, error) {
	return fullDay{bareDay: bareDay{basics: newYearBasics}}, nil
}
