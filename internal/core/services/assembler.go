package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
	"github.com/custodia-labs/huangli/internal/logger"
)

// hourPillarUnsupported is the value of the hour pillar and its nayin.
// Hour pillars are not computed at all, so they never go through the
// optional-query path.
const hourPillarUnsupported = ""

// AlmanacAssembler queries a lunar provider and builds the normalised record.
type AlmanacAssembler struct {
	provider  driven.LunarProvider
	localizer driven.Localizer
}

// NewAlmanacAssembler creates an assembler over the given collaborators.
func NewAlmanacAssembler(provider driven.LunarProvider, localizer driven.Localizer) *AlmanacAssembler {
	return &AlmanacAssembler{
		provider:  provider,
		localizer: localizer,
	}
}

// Assemble builds the almanac record for the instant.
// Only the mandatory conversion can fail; it is reported as
// domain.ErrCalendarConversion. Every optional category falls back to
// an empty value.
func (a *AlmanacAssembler) Assemble(instant domain.CalendarInstant, lang domain.Language) (*domain.AlmanacRecord, error) {
	day, err := a.lookup(instant)
	if err != nil {
		return nil, err
	}
	basics := day.Basics()

	weekday, err := a.localizer.GregorianWeekday(isoWeekday(basics.Weekday), lang)
	if err != nil {
		return nil, fmt.Errorf("formatting weekday: %w", err)
	}

	if missing := missingCapabilities(day); len(missing) > 0 {
		logger.Debug("Provider %s lacks: %s", a.provider.Name(), strings.Join(missing, ", "))
	}

	record := &domain.AlmanacRecord{
		Date: domain.DateInfo{
			Gregorian: domain.GregorianDate{
				Year:     basics.SolarYear,
				Month:    basics.SolarMonth,
				Day:      basics.SolarDay,
				Weekday:  weekday,
				Timezone: instant.Timezone(),
			},
			Lunar: domain.LunarDate{
				Year:      basics.Year,
				Month:     basics.Month,
				Day:       basics.Day,
				MonthName: ask(day, driven.LunarNamer.MonthName).Or(""),
				DayName:   ask(day, driven.LunarNamer.DayName).Or(""),
				Zodiac:    basics.Zodiac,
			},
			SolarTerm: ask(day, driven.SolarTermer.SolarTerm).Or(""),
			MoonPhase: ask(day, driven.MoonPhaser.MoonPhase).Or(""),
		},
		StemsBranches: domain.StemsBranches{
			YearGZ:  basics.YearGanZhi,
			MonthGZ: basics.MonthGanZhi,
			DayGZ:   basics.DayGanZhi,
			TimeGZ:  hourPillarUnsupported,
			Nayin: domain.Nayin{
				Year:  ask(day, driven.NaYinTeller.YearNaYin).Or(""),
				Month: ask(day, driven.NaYinTeller.MonthNaYin).Or(""),
				Day:   ask(day, driven.NaYinTeller.DayNaYin).Or(""),
				Time:  hourPillarUnsupported,
			},
		},
		Almanac: domain.AlmanacDetails{
			Yi:               askList(day, driven.ActivityLister.DayYi),
			Ji:               askList(day, driven.ActivityLister.DayJi),
			DayTianShen:      ask(day, driven.DeityTeller.DayTianShen).Or(""),
			HuangDaoOrHeiDao: huangDaoLabel(ask(day, driven.DeityTeller.IsHuangDao).Or(false)),
			Chong: domain.Chong{
				Animal: ask(day, driven.ClashTeller.ChongAnimal).Or(""),
				Desc:   ask(day, driven.ClashTeller.ChongDesc).Or(""),
			},
			Sha: ask(day, driven.ClashTeller.Sha).Or(""),
			PengZu: domain.PengZu{
				Gan: ask(day, driven.PengZuTeller.PengZuGan).Or(""),
				Zhi: ask(day, driven.PengZuTeller.PengZuZhi).Or(""),
			},
			GodsDirection: domain.GodsDirection{
				Xi:  ask(day, driven.DirectionTeller.PositionXi).Or(""),
				Fu:  ask(day, driven.DirectionTeller.PositionFu).Or(""),
				Cai: ask(day, driven.DirectionTeller.PositionCai).Or(""),
			},
			Stars: domain.Stars{
				JiShen:   askList(day, driven.StarLister.DayJiShen),
				XiongSha: askList(day, driven.StarLister.DayXiongSha),
			},
		},
	}
	record.Normalize()

	return record, nil
}

// lookup performs the mandatory conversion. Provider errors and panics
// both surface as domain.ErrCalendarConversion.
func (a *AlmanacAssembler) lookup(instant domain.CalendarInstant) (day driven.LunarDay, err error) {
	defer func() {
		if p := recover(); p != nil {
			day = nil
			err = fmt.Errorf("%w for %s: provider panic: %v", domain.ErrCalendarConversion, instant, p)
		}
	}()

	day, err = a.provider.Lookup(instant)
	if err != nil {
		if errors.Is(err, domain.ErrCalendarConversion) {
			return nil, err
		}
		return nil, fmt.Errorf("%w for %s: %w", domain.ErrCalendarConversion, instant, err)
	}
	if day == nil {
		return nil, fmt.Errorf("%w for %s: provider returned no day", domain.ErrCalendarConversion, instant)
	}
	return day, nil
}

// isoWeekday maps Sunday=0..Saturday=6 to Monday=1..Sunday=7.
// Out-of-range input maps to 0 so the localizer rejects it.
func isoWeekday(w time.Weekday) int {
	if w < time.Sunday || w > time.Saturday {
		return 0
	}
	if w == time.Sunday {
		return 7
	}
	return int(w)
}

func huangDaoLabel(huangDao bool) string {
	if huangDao {
		return domain.HuangDaoDay
	}
	return domain.HeiDaoDay
}

// missingCapabilities names the optional categories day does not implement.
func missingCapabilities(day driven.LunarDay) []string {
	var missing []string
	check := func(name string, ok bool) {
		if !ok {
			missing = append(missing, name)
		}
	}
	_, ok := day.(driven.LunarNamer)
	check("names", ok)
	_, ok = day.(driven.SolarTermer)
	check("solar term", ok)
	_, ok = day.(driven.MoonPhaser)
	check("moon phase", ok)
	_, ok = day.(driven.ActivityLister)
	check("yi/ji", ok)
	_, ok = day.(driven.DeityTeller)
	check("day deity", ok)
	_, ok = day.(driven.ClashTeller)
	check("chong/sha", ok)
	_, ok = day.(driven.PengZuTeller)
	check("pengzu", ok)
	_, ok = day.(driven.DirectionTeller)
	check("gods direction", ok)
	_, ok = day.(driven.StarLister)
	check("stars", ok)
	_, ok = day.(driven.NaYinTeller)
	check("nayin", ok)
	return missing
}
