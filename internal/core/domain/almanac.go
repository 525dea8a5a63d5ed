package domain

// Fixed Huang Dao / Hei Dao labels.
const (
	HuangDaoDay = "黄道日"
	HeiDaoDay   = "黑道日"
)

// DefaultTimezone is the timezone used when a request names none.
const DefaultTimezone = "Asia/Shanghai"

// AlmanacRecord is the normalised Huangli output for one day.
// Every field is always present: missing provider data is an empty
// string or an empty (non-nil) list, never a missing key or null.
type AlmanacRecord struct {
	Date          DateInfo       `json:"date"`
	StemsBranches StemsBranches  `json:"stemsBranches"`
	Almanac       AlmanacDetails `json:"almanac"`
}

// DateInfo groups the gregorian and lunar representations of the day.
type DateInfo struct {
	Gregorian GregorianDate `json:"gregorian"`
	Lunar     LunarDate     `json:"lunar"`
	SolarTerm string        `json:"solarTerm"`
	MoonPhase string        `json:"moonPhase"`
}

// GregorianDate is the civil date with a localised weekday label.
type GregorianDate struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Day      int    `json:"day"`
	Weekday  string `json:"weekday"`
	Timezone string `json:"timezone"`
}

// LunarDate is the lunisolar equivalent of the gregorian date.
type LunarDate struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"monthName"`
	DayName   string `json:"dayName"`
	Zodiac    string `json:"zodiac"`
}

// StemsBranches holds the sexagenary labels of the four pillars.
// TimeGZ and Nayin.Time are always empty: hour pillars are not computed.
type StemsBranches struct {
	YearGZ  string `json:"yearGZ"`
	MonthGZ string `json:"monthGZ"`
	DayGZ   string `json:"dayGZ"`
	TimeGZ  string `json:"timeGZ"`
	Nayin   Nayin  `json:"nayin"`
}

// Nayin holds the five-element sound names of the four pillars.
type Nayin struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Time  string `json:"time"`
}

// AlmanacDetails lists the day's auspices and taboos.
type AlmanacDetails struct {
	Yi               []string      `json:"yi"`
	Ji               []string      `json:"ji"`
	DayTianShen      string        `json:"dayTianShen"`
	HuangDaoOrHeiDao string        `json:"huangDaoOrHeiDao"`
	Chong            Chong         `json:"chong"`
	Sha              string        `json:"sha"`
	PengZu           PengZu        `json:"pengzu"`
	GodsDirection    GodsDirection `json:"godsDirection"`
	Stars            Stars         `json:"stars"`
}

// Chong is the zodiac animal the day clashes with.
type Chong struct {
	Animal string `json:"animal"`
	Desc   string `json:"desc"`
}

// PengZu holds the two Peng Zu taboo sentences for the day's stem and branch.
type PengZu struct {
	Gan string `json:"gan"`
	Zhi string `json:"zhi"`
}

// GodsDirection holds the directions of the joy, fortune and wealth gods.
type GodsDirection struct {
	Xi  string `json:"xi"`
	Fu  string `json:"fu"`
	Cai string `json:"cai"`
}

// Stars lists the auspicious deities and inauspicious influences of the day.
type Stars struct {
	JiShen   []string `json:"jiShen"`
	XiongSha []string `json:"xiongSha"`
}

// Normalize replaces nil lists with empty ones so the record always
// serialises every list as [] rather than null.
func (r *AlmanacRecord) Normalize() {
	r.Almanac.Yi = nonNil(r.Almanac.Yi)
	r.Almanac.Ji = nonNil(r.Almanac.Ji)
	r.Almanac.Stars.JiShen = nonNil(r.Almanac.Stars.JiShen)
	r.Almanac.Stars.XiongSha = nonNil(r.Almanac.Stars.XiongSha)
	if r.Almanac.HuangDaoOrHeiDao == "" {
		r.Almanac.HuangDaoOrHeiDao = HeiDaoDay
	}
}

func nonNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}
