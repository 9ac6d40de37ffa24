package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/clinicware/clinic-scheduler/internal/dto"
	"github.com/clinicware/clinic-scheduler/internal/timezone"
)

// ScheduleCache keeps the fetched day list per clinic and date, so
// repeated reads of the same day coalesce into one query. Every
// confirmed mutation deletes the day's key; the next read rebuilds it.
type ScheduleCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func New(rdb *redis.Client, logger *zap.Logger) *ScheduleCache {
	return &ScheduleCache{
		rdb:    rdb,
		ttl:    5 * time.Minute,
		logger: logger,
	}
}

func dayKey(clinicID uint, date time.Time) string {
	return fmt.Sprintf("schedule:%d:%s", clinicID, timezone.FormatDate(date))
}

// GetDay returns the cached day list, or false on a miss. Cache failures
// count as misses: the grid must keep working without redis.
func (c *ScheduleCache) GetDay(ctx context.Context, clinicID uint, date time.Time) ([]dto.ProfessionalAppointmentsDTO, bool) {
	raw, err := c.rdb.Get(ctx, dayKey(clinicID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("schedule cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var day []dto.ProfessionalAppointmentsDTO
	if err := json.Unmarshal(raw, &day); err != nil {
		c.logger.Warn("schedule cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return day, true
}

func (c *ScheduleCache) SetDay(ctx context.Context, clinicID uint, date time.Time, day []dto.ProfessionalAppointmentsDTO) {
	raw, err := json.Marshal(day)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, dayKey(clinicID, date), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("schedule cache write failed", zap.Error(err))
	}
}

// InvalidateDay drops the cached list so the next fetch sees server truth.
func (c *ScheduleCache) InvalidateDay(ctx context.Context, clinicID uint, date time.Time) {
	if err := c.rdb.Del(ctx, dayKey(clinicID, date)).Err(); err != nil {
		c.logger.Warn("schedule cache invalidate failed", zap.Error(err))
	}
}
