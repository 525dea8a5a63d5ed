package mcp

import (
	"context"
	"sync"

	"github.com/custodia-labs/huangli/internal/core/domain"
)

// mockHuangliService is a mock implementation of driving.HuangliService.
type mockHuangliService struct {
	mu       sync.Mutex
	record   *domain.AlmanacRecord
	err      error
	requests []domain.AlmanacRequest
}

func (m *mockHuangliService) Almanac(_ context.Context, req domain.AlmanacRequest) (*domain.AlmanacRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.record, nil
}

func (m *mockHuangliService) lastRequest() domain.AlmanacRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return domain.AlmanacRequest{}
	}
	return m.requests[len(m.requests)-1]
}

// sampleRecord returns a complete record for 2024-02-10.
func sampleRecord() *domain.AlmanacRecord {
	r := &domain.AlmanacRecord{
		Date: domain.DateInfo{
			Gregorian: domain.GregorianDate{Year: 2024, Month: 2, Day: 10, Weekday: "星期六", Timezone: "Asia/Shanghai"},
			Lunar:     domain.LunarDate{Year: 2024, Month: 1, Day: 1, MonthName: "正", DayName: "初一", Zodiac: "龙"},
		},
		StemsBranches: domain.StemsBranches{
			YearGZ:  "甲辰",
			MonthGZ: "丙寅",
			DayGZ:   "甲辰",
			Nayin:   domain.Nayin{Year: "覆灯火", Month: "炉中火", Day: "覆灯火"},
		},
		Almanac: domain.AlmanacDetails{
			Yi:               []string{"祭祀", "祈福"},
			DayTianShen:      "青龙",
			HuangDaoOrHeiDao: domain.HuangDaoDay,
			Chong:            domain.Chong{Animal: "狗", Desc: "(戊戌)狗"},
			Sha:              "南",
			GodsDirection:    domain.GodsDirection{Xi: "东北", Fu: "东南", Cai: "东北"},
		},
	}
	r.Normalize()
	return r
}
