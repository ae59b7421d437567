package helper

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"cinebook/config"

	"github.com/redis/go-redis/v9"
)

// ChangeEvent is the refresh trigger published on a table's channel. It
// is not an authoritative payload: consumers re-fetch the view instead
// of applying deltas.
type ChangeEvent struct {
	Table string `json:"table"`
	Kind  string `json:"kind"` // INSERT, UPDATE, DELETE
}

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

func RedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// FeedChannel is the pub/sub channel name for a table's change feed.
func FeedChannel(table string) string {
	return "table:" + table
}

// NotifyChange publishes a mutation on the table's feed channel.
// Delivery is at-least-once from the consumer's point of view; a failed
// publish is logged and dropped, the committed state is already durable
// and the next notification re-triggers a full re-fetch anyway.
func NotifyChange(table, kind string) {
	payload, err := json.Marshal(ChangeEvent{Table: table, Kind: kind})
	if err != nil {
		log.Printf("marshal change event %s/%s: %v", table, kind, err)
		return
	}
	if err := RedisClient().Publish(context.Background(), FeedChannel(table), payload).Err(); err != nil {
		log.Printf("publish change event %s/%s: %v", table, kind, err)
	}
}
