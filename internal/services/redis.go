package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// Approval counts are cached per reviewer with a short TTL. Review actions do
// not invalidate the cache; dashboards see the cached snapshot until it
// expires or the page remounts.
const statsCacheTTL = 60 * time.Second

// InitRedis initializes the Redis client
func InitRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://redis:6379" // Default Redis address for Docker
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	RedisClient = redis.NewClient(opt)

	// Test the connection
	ctx := context.Background()
	_, err = RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return nil
}

// ApprovalStats is the aggregate snapshot served to dashboards
type ApprovalStats struct {
	Pending struct {
		Drivers  int64 `json:"drivers"`
		Vehicles int64 `json:"vehicles"`
		Total    int64 `json:"total"`
	} `json:"pending"`
	MyApprovals struct {
		Total int64 `json:"total"`
	} `json:"myApprovals"`
}

// SetApprovalStats caches the stats snapshot for a reviewer
func SetApprovalStats(ctx context.Context, reviewerID uint, stats ApprovalStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("stats:approvals:%d", reviewerID)
	return RedisClient.Set(ctx, key, data, statsCacheTTL).Err()
}

// GetApprovalStats retrieves a reviewer's cached stats snapshot, if present
func GetApprovalStats(ctx context.Context, reviewerID uint) (*ApprovalStats, error) {
	key := fmt.Sprintf("stats:approvals:%d", reviewerID)
	data, err := RedisClient.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var stats ApprovalStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// SetPendingCount caches the pending-driver count used by the badge endpoint
func SetPendingCount(ctx context.Context, kind string, count int64) error {
	key := fmt.Sprintf("stats:pending:%s", kind)
	return RedisClient.Set(ctx, key, count, statsCacheTTL).Err()
}

// GetPendingCount retrieves a cached pending count
func GetPendingCount(ctx context.Context, kind string) (int64, error) {
	key := fmt.Sprintf("stats:pending:%s", kind)
	return RedisClient.Get(ctx, key).Int64()
}
