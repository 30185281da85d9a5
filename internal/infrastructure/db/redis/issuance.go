package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const issuanceKeyPrefix = "income:issued:"

// IssuanceGuard claims income-issuance periods in Redis so a period is swept
// at most once across replicas. The claim key outlives the period by a wide
// margin and then expires on its own.
type IssuanceGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIssuanceGuard(client *redis.Client, ttl time.Duration) *IssuanceGuard {
	if ttl <= 0 {
		ttl = 14 * 24 * time.Hour
	}
	return &IssuanceGuard{client: client, ttl: ttl}
}

// Acquire attempts to claim the given period. It returns true when this
// caller won the claim and false when another replica already swept it.
func (g *IssuanceGuard) Acquire(ctx context.Context, period string) (bool, error) {
	ok, err := g.client.SetNX(ctx, issuanceKeyPrefix+period, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim issuance period %q: %w", period, err)
	}
	return ok, nil
}
