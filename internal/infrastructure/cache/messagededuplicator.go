package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	messageKeyPrefix = "helpdesk:inbound:"
	// DefaultMessageDedupTTL is how long a Message-ID stays claimed.
	DefaultMessageDedupTTL = 7 * 24 * time.Hour
)

// MessageDeduplicator remembers inbound Message-IDs so a message fetched
// twice (or by two pollers) is ingested once.
type MessageDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMessageDeduplicator(client *redis.Client, ttl time.Duration) *MessageDeduplicator {
	if ttl <= 0 {
		ttl = DefaultMessageDedupTTL
	}
	return &MessageDeduplicator{client: client, ttl: ttl}
}

func (d *MessageDeduplicator) buildKey(messageID string) string {
	return messageKeyPrefix + strings.ToLower(strings.TrimSpace(messageID))
}

// TryClaim atomically marks messageID as seen. It returns false when the
// message was already claimed.
func (d *MessageDeduplicator) TryClaim(ctx context.Context, messageID string) (bool, error) {
	acquired, err := d.client.SetNX(ctx, d.buildKey(messageID), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim message id: %w", err)
	}
	return acquired, nil
}

// Release forgets messageID so a failed ingest can be retried on the next poll.
func (d *MessageDeduplicator) Release(ctx context.Context, messageID string) error {
	if err := d.client.Del(ctx, d.buildKey(messageID)).Err(); err != nil {
		return fmt.Errorf("failed to release message id: %w", err)
	}
	return nil
}
