package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/u-santos1/barbearia-backend-sub000/internal/usecase/scheduling"
)

const availabilityTTL = 30 * time.Second

// Availability guarda respostas de disponibilidade no Redis com TTL curto.
// Mutações na agenda invalidam o dia inteiro do profissional.
type Availability struct {
	rdb *redis.Client
}

func NewAvailability(rdb *redis.Client) *Availability {
	return &Availability{rdb: rdb}
}

func key(professionalID, serviceID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s:%d", professionalID, date, serviceID)
}

func (c *Availability) Get(
	ctx context.Context,
	professionalID, serviceID uint,
	date string,
) ([]scheduling.TimeSlot, bool) {

	raw, err := c.rdb.Get(ctx, key(professionalID, serviceID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []scheduling.TimeSlot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *Availability) Set(
	ctx context.Context,
	professionalID, serviceID uint,
	date string,
	slots []scheduling.TimeSlot,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key(professionalID, serviceID, date), raw, availabilityTTL)
}

func (c *Availability) Invalidate(
	ctx context.Context,
	professionalID uint,
	date string,
) {
	pattern := fmt.Sprintf("availability:%d:%s:*", professionalID, date)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}

var _ scheduling.AvailabilityCache = (*Availability)(nil)
