// package solvedcache caches the solved relation in Redis. The relational
// store stays the source of truth; a cold or evicted cache only costs a
// database lookup.
package solvedcache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Ayanroy004/Leet-lab/internal/core/ports/primary"
	"github.com/Ayanroy004/Leet-lab/internal/core/ports/secondary"
)

const (
	solvedKeyPrefix  = "solved:"
	solvedExpiration = 24 * time.Hour
)

var _ secondary.SolvedCache = (*SolvedCache)(nil)

// SolvedCache implements the SolvedCache port with a Redis set per user.
type SolvedCache struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewSolvedCache creates a new Redis solved cache.
func NewSolvedCache(redisClient *redis.Client, logger primary.Logger) *SolvedCache {
	return &SolvedCache{
		redisClient: redisClient,
		logger:      logger,
	}
}

// AddSolved adds the problem to the user's solved set and refreshes its TTL.
func (c *SolvedCache) AddSolved(ctx context.Context, userID, problemID string) error {
	key := solvedKey(userID)
	if err := c.redisClient.SAdd(ctx, key, problemID).Err(); err != nil {
		c.logger.Error("Failed to add solved problem to cache", "userId", userID, "error", err)
		return fmt.Errorf("failed to add solved problem to cache: %w", err)
	}

	if err := c.redisClient.Expire(ctx, key, solvedExpiration).Err(); err != nil {
		c.logger.Error("Failed to refresh solved cache TTL", "userId", userID, "error", err)
		return fmt.Errorf("failed to refresh solved cache TTL: %w", err)
	}

	return nil
}

// IsSolved checks membership in the user's solved set. The second return is
// false when the user has no cached set at all, so callers can fall back to
// the database.
func (c *SolvedCache) IsSolved(ctx context.Context, userID, problemID string) (bool, bool, error) {
	key := solvedKey(userID)

	exists, err := c.redisClient.Exists(ctx, key).Result()
	if err != nil {
		return false, false, fmt.Errorf("failed to check solved cache: %w", err)
	}
	if exists == 0 {
		return false, false, nil
	}

	member, err := c.redisClient.SIsMember(ctx, key, problemID).Result()
	if err != nil {
		return false, false, fmt.Errorf("failed to check solved cache membership: %w", err)
	}

	return member, true, nil
}

func solvedKey(userID string) string {
	return fmt.Sprintf("%s%s", solvedKeyPrefix, userID)
}
