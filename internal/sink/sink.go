// Package sink writes sorted words to an output medium, one word per record.
package sink

import (
	"context"
	"errors"
	"fmt"

	"github.com/npillmayer/fpsort/internal/config"
	"github.com/redis/go-redis/v9"
)

// ErrWriteFailure is reported if the destination cannot be opened or written.
var ErrWriteFailure = errors.New("write failure")

// Writer writes a sequence of words to a destination identified by id.
// Writing an empty sequence is a no-op and leaves the destination untouched.
type Writer interface {
	Write(ctx context.Context, id string, words []string) error
}

// New creates a writer for the configured sink kind. The returned close function
// releases connections held by the writer.
func New(cfg config.SinkConfig) (Writer, func() error, error) {
	switch cfg.Kind {
	case config.SinkFile, "":
		return NewFileWriter(), func() error { return nil }, nil
	case config.SinkRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return NewRedisWriter(client, cfg.Redis.BatchSize), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown sink kind %q", cfg.Kind)
}
