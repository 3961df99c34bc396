package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	EntitlementCacheTTL = 5 * time.Minute
	ProgressCacheTTL    = 1 * time.Minute
	RateLimitWindowTTL  = 1 * time.Minute
)

func EntitlementKey(userID uuid.UUID) string {
	return fmt.Sprintf("entitlement:user:%s", userID)
}

func ProgressKey(userID uuid.UUID) string {
	return fmt.Sprintf("progress:user:%s", userID)
}

func RateLimitKey(clientKey string) string {
	return fmt.Sprintf("ratelimit:client:%s", clientKey)
}

// GetEntitlement loads the cached entitlement decision for a user. Returns
// ErrCacheMiss when no decision is cached.
func (c *Cache) GetEntitlement(ctx context.Context, userID uuid.UUID, dest interface{}) error {
	return c.Get(ctx, EntitlementKey(userID), dest)
}

func (c *Cache) SetEntitlement(ctx context.Context, userID uuid.UUID, entitlement interface{}) error {
	return c.Set(ctx, EntitlementKey(userID), entitlement, EntitlementCacheTTL)
}

// InvalidateEntitlement drops the cached decision. Called after activation
// and reactivation; decisions cached while ACTIVE carry their own expiry
// bound, so the background sweep needs no invalidation.
func (c *Cache) InvalidateEntitlement(ctx context.Context, userID uuid.UUID) error {
	return c.Delete(ctx, EntitlementKey(userID))
}

func (c *Cache) GetProgress(ctx context.Context, userID uuid.UUID, dest interface{}) error {
	return c.Get(ctx, ProgressKey(userID), dest)
}

func (c *Cache) SetProgress(ctx context.Context, userID uuid.UUID, progress interface{}) error {
	return c.Set(ctx, ProgressKey(userID), progress, ProgressCacheTTL)
}

// InvalidateProgress drops the cached day list after any completion or start
// transition.
func (c *Cache) InvalidateProgress(ctx context.Context, userID uuid.UUID) error {
	return c.Delete(ctx, ProgressKey(userID))
}

// IncrementRateLimit bumps the per-client request counter for the current
// window and returns the new count.
func (c *Cache) IncrementRateLimit(ctx context.Context, clientKey string) (int64, error) {
	return c.IncrementWithExpiry(ctx, RateLimitKey(clientKey), RateLimitWindowTTL)
}
