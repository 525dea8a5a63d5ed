package lunar

import (
	"container/list"
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.LunarProvider = (*Provider)(nil)

// Ensure day implements every optional capability.
var (
	_ driven.LunarNamer      = (*day)(nil)
	_ driven.SolarTermer     = (*day)(nil)
	_ driven.MoonPhaser      = (*day)(nil)
	_ driven.ActivityLister  = (*day)(nil)
	_ driven.DeityTeller     = (*day)(nil)
	_ driven.ClashTeller     = (*day)(nil)
	_ driven.PengZuTeller    = (*day)(nil)
	_ driven.DirectionTeller = (*day)(nil)
	_ driven.StarLister      = (*day)(nil)
	_ driven.NaYinTeller     = (*day)(nil)
)

// ProviderName identifies this provider in logs.
const ProviderName = "lunar-go"

// huangDaoType is the deity type lunar-go reports for yellow-road days.
const huangDaoType = "黄道"

// Supported gregorian year range.
const (
	MinYear = 1
	MaxYear = 9999
)

// Provider converts gregorian days using lunar-go.
// It is stateless and safe for concurrent use.
type Provider struct{}

// NewProvider creates a new lunar-go provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return ProviderName
}

// Lookup converts the instant's calendar day.
func (p *Provider) Lookup(instant domain.CalendarInstant) (result driven.LunarDay, err error) {
	if instant.Year() < MinYear || instant.Year() > MaxYear {
		return nil, fmt.Errorf("%w: year %d outside %d..%d",
			domain.ErrCalendarConversion, instant.Year(), MinYear, MaxYear)
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: %s: %v", domain.ErrCalendarConversion, instant, r)
		}
	}()

	solar := calendar.NewSolarFromYmd(instant.Year(), int(instant.Month()), instant.Day())
	lunar := solar.GetLunar()

	d := &day{
		lunar: lunar,
		basics: driven.LunarBasics{
			SolarYear:   solar.GetYear(),
			SolarMonth:  solar.GetMonth(),
			SolarDay:    solar.GetDay(),
			Weekday:     time.Weekday(solar.GetWeek()),
			Year:        lunar.GetYear(),
			Month:       lunar.GetMonth(),
			Day:         lunar.GetDay(),
			Zodiac:      lunar.GetYearShengXiao(),
			YearGanZhi:  lunar.GetYearInGanZhi(),
			MonthGanZhi: lunar.GetMonthInGanZhi(),
			DayGanZhi:   lunar.GetDayInGanZhi(),
		},
	}
	return d, nil
}

// day is one converted day.
type day struct {
	lunar  *calendar.Lunar
	basics driven.LunarBasics
}

func (d *day) Basics() driven.LunarBasics { return d.basics }

func (d *day) MonthName() (string, error) { return d.lunar.GetMonthInChinese(), nil }
func (d *day) DayName() (string, error) { return d.lunar.GetDayInChinese(), nil }
func (d *day) SolarTerm() (string, error) { return d.lunar.GetJieQi(), nil }
func (d *day) MoonPhase() (string, error) { return d.lunar.GetYueXiang(), nil }

func (d *day) DayYi() ([]string, error) { return listStrings(d.lunar.GetDayYi()) }
func (d *day) DayJi() ([]string, error) { return listStrings(d.lunar.GetDayJi()) }

func (d *day) DayTianShen() (string, error) { return d.lunar.GetDayTianShen(), nil }

func (d *day) IsHuangDao() (bool, error) {
	return d.lunar.GetDayTianShenType() == huangDaoType, nil
}

func (d *day) ChongAnimal() (string, error) { return d.lunar.GetChongShengXiao(), nil }
func (d *day) ChongDesc() (string, error) { return d.lunar.GetChongDesc(), nil }
func (d *day) Sha() (string, error) { return d.lunar.GetSha(), nil }

func (d *day) PengZuGan() (string, error) { return d.lunar.GetPengZuGan(), nil }
func (d *day) PengZuZhi() (string, error) { return d.lunar.GetPengZuZhi(), nil }

func (d *day) PositionXi() (string, error) { return d.lunar.GetPositionXiDesc(), nil }
func (d *day) PositionFu() (string, error) { return d.lunar.GetPositionFuDesc(), nil }
func (d *day) PositionCai() (string, error) { return d.lunar.GetPositionCaiDesc(), nil }

func (d *day) DayJiShen() ([]string, error) { return listStrings(d.lunar.GetDayJiShen()) }
func (d *day) DayXiongSha() ([]string, error) { return listStrings(d.lunar.GetDayXiongSha()) }

func (d *day) YearNaYin() (string, error) { return d.lunar.GetYearNaYin(), nil }
func (d *day) MonthNaYin() (string, error) { return d.lunar.GetMonthNaYin(), nil }
func (d *day) DayNaYin() (string, error) { return d.lunar.GetDayNaYin(), nil }

// listStrings copies a lunar-go list of strings into a slice.
func listStrings(l *list.List) ([]string, error) {
	if l == nil {
		return nil, nil
	}
	out := make([]string, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		s, ok := e.Value.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected list element %T", e.Value)
		}
		out = append(out, s)
	}
	return out, nil
}
