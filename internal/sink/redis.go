package sink

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

const defaultBatchSize = 1000

// listStore is the part of a Redis client the Redis writer needs.
type listStore interface {
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Rename(ctx context.Context, key, newkey string) *redis.StatusCmd
}

// RedisWriter writes words to a Redis list. The id is taken as the list key;
// an existing list is replaced.
//
// Words are pushed to a scratch list first, which is renamed to the target key
// once complete. Readers see either the old list or the new one, and a failed
// write leaves the old list in place.
type RedisWriter struct {
	client    listStore
	batchSize int
	logger    *slog.Logger
}

// NewRedisWriter creates a writer pushing to Redis lists in batches of batchSize.
func NewRedisWriter(client listStore, batchSize int) *RedisWriter {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &RedisWriter{
		client:    client,
		batchSize: batchSize,
		logger:    slog.Default().With("component", "redis-sink"),
	}
}

// Write replaces the list at key by words. For an empty slice of words, the list
// is not touched at all.
func (w *RedisWriter) Write(ctx context.Context, key string, words []string) error {
	if len(words) == 0 {
		return nil
	}
	scratch, err := scratchKey(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}
	for start := 0; start < len(words); start += w.batchSize {
		end := min(start+w.batchSize, len(words))
		batch := make([]interface{}, 0, end-start)
		for _, word := range words[start:end] {
			batch = append(batch, word)
		}
		if err := w.client.RPush(ctx, scratch, batch...).Err(); err != nil {
			w.discard(scratch)
			return fmt.Errorf("%w: pushing to list %s: %v", ErrWriteFailure, key, err)
		}
	}
	if err := w.client.Rename(ctx, scratch, key).Err(); err != nil {
		w.discard(scratch)
		return fmt.Errorf("%w: replacing list %s: %v", ErrWriteFailure, key, err)
	}
	w.logger.Debug("words written", "key", key, "count", len(words))
	return nil
}

// discard removes a partially written scratch list, independent of the write context.
func (w *RedisWriter) discard(scratch string) {
	if err := w.client.Del(context.Background(), scratch).Err(); err != nil {
		w.logger.Warn("cannot remove scratch list", "key", scratch, "error", err)
	}
}

func scratchKey(key string) (string, error) {
	var suffix [8]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", fmt.Errorf("creating scratch key: %w", err)
	}
	return key + ":tmp:" + hex.EncodeToString(suffix[:]), nil
}
