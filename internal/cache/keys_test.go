package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCacheKeys_DistinctPerUser(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.NotEqual(t, EntitlementKey(a), EntitlementKey(b))
	assert.NotEqual(t, ProgressKey(a), ProgressKey(b))
	assert.NotEqual(t, EntitlementKey(a), ProgressKey(a))
}

func TestCacheKeys_Format(t *testing.T) {
	id := uuid.MustParse("2e9f0b7c-9f34-4c88-a5d3-111111111111")

	assert.Equal(t, "entitlement:user:2e9f0b7c-9f34-4c88-a5d3-111111111111", EntitlementKey(id))
	assert.Equal(t, "progress:user:2e9f0b7c-9f34-4c88-a5d3-111111111111", ProgressKey(id))
	assert.Equal(t, "ratelimit:client:10.0.0.1", RateLimitKey("10.0.0.1"))
}
