package station

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	sharedredis "stations-server/internal/shared/redis"
)

const snapshotTTL = 30 * time.Second

// Cache keeps station info snapshots in Redis so the read-heavy info
// command does not hit the store on every call. All methods are no-ops
// on a nil receiver, which is how the server runs when Redis is
// disabled.
type Cache struct {
	client *sharedredis.Client
	logger *slog.Logger
}

func NewCache(client *sharedredis.Client, logger *slog.Logger) *Cache {
	if client == nil {
		return nil
	}

	logger.Debug("Initializing station snapshot cache")
	return &Cache{
		client: client,
		logger: logger,
	}
}

func snapshotKey(stationID string) string {
	return "station:info:" + stationID
}

// GetInfo returns the cached snapshot, or nil on a miss. Cache errors
// are logged and treated as misses.
func (c *Cache) GetInfo(ctx context.Context, stationID string) *Snapshot {
	if c == nil {
		return nil
	}

	data, err := c.client.Get(ctx, snapshotKey(stationID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Failed to read station snapshot from cache", "error", err, "station_id", stationID)
		}
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.logger.Warn("Failed to decode cached station snapshot", "error", err, "station_id", stationID)
		return nil
	}

	return &snap
}

func (c *Cache) SetInfo(ctx context.Context, stationID string, snap *Snapshot) {
	if c == nil {
		return
	}

	data, err := json.Marshal(snap)
	if err != nil {
		c.logger.Warn("Failed to encode station snapshot", "error", err, "station_id", stationID)
		return
	}

	if err := c.client.Set(ctx, snapshotKey(stationID), data, snapshotTTL).Err(); err != nil {
		c.logger.Warn("Failed to cache station snapshot", "error", err, "station_id", stationID)
	}
}

func (c *Cache) Invalidate(ctx context.Context, stationID string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, snapshotKey(stationID)).Err(); err != nil {
		c.logger.Warn("Failed to invalidate station snapshot", "error", err, "station_id", stationID)
	}
}
