package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/huangli/internal/core/domain"
	"github.com/custodia-labs/huangli/internal/core/ports/driven"
	"github.com/custodia-labs/huangli/internal/core/ports/driving"
	"github.com/custodia-labs/huangli/internal/logger"
)

// Ensure HuangliService implements the interface.
var _ driving.HuangliService = (*HuangliService)(nil)

// HuangliService resolves requests and assembles almanac records.
// It holds no per-request state; concurrent calls are independent.
type HuangliService struct {
	resolver  *DateTimeResolver
	assembler *AlmanacAssembler
	localizer driven.Localizer

	mu       sync.RWMutex
	defaults domain.AlmanacRequest
}

// NewHuangliService creates a service over the given provider and localizer.
func NewHuangliService(provider driven.LunarProvider, localizer driven.Localizer) *HuangliService {
	return &HuangliService{
		resolver:  NewDateTimeResolver(),
		assembler: NewAlmanacAssembler(provider, localizer),
		localizer: localizer,
		defaults:  domain.AlmanacRequest{}.WithDefaults(),
	}
}

// SetClock replaces the wall clock used for requests without a date.
func (s *HuangliService) SetClock(now func() time.Time) {
	s.resolver.SetClock(now)
}

// SetDefaults sets the timezone and language applied to requests that
// leave them empty. Empty arguments restore the built-in defaults.
func (s *HuangliService) SetDefaults(timezone, lang string) {
	d := domain.AlmanacRequest{Timezone: timezone, Lang: lang}.WithDefaults()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaults = d
}

// Defaults returns the timezone and language applied to empty requests.
func (s *HuangliService) Defaults() (timezone, lang string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaults.Timezone, s.defaults.Lang
}

// Almanac returns the almanac record for the request.
func (s *HuangliService) Almanac(ctx context.Context, req domain.AlmanacRequest) (*domain.AlmanacRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timezone, lang := s.Defaults()
	if req.Timezone == "" {
		req.Timezone = timezone
	}
	if req.Lang == "" {
		req.Lang = lang
	}
	logger.Debug("Almanac request: date=%q tz=%q lang=%q", req.Date, req.Timezone, req.Lang)

	instant, err := s.resolver.Resolve(req.Date, req.Timezone)
	if err != nil {
		return nil, domain.NewRequestError(req.Date, req.Timezone, err)
	}

	return s.assembler.Assemble(instant, s.localizer.Language(req.Lang))
}
