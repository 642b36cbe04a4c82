package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// storageKey matches the document key the web client used for its local
// storage. The planner serves one session, so the key is fixed.
const storageKey = "neon-voyager-itinerary"

// Connect parses redisURL, creates a client, and verifies connectivity with a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// RedisStore persists the planner document under a fixed Redis key with no
// expiry.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load retrieves the planner document. Returns nil, nil when the key is
// absent. A document that fails to decode is an error; the planner treats
// that as corruption and starts empty.
func (s *RedisStore) Load(ctx context.Context) (*Document, error) {
	val, err := s.client.Get(ctx, storageKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading planner document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling planner document: %w", err)
	}
	return &doc, nil
}

// Save writes the planner document.
func (s *RedisStore) Save(ctx context.Context, doc *Document) error {
	if doc == nil {
		return nil
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling planner document: %w", err)
	}

	if err := s.client.Set(ctx, storageKey, b, 0).Err(); err != nil {
		return fmt.Errorf("saving planner document: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
