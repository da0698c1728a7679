package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// SequenceFile holds the sequence id shared by all tasks of one submission
const SequenceFile = "bibtask_sequenceid"

// SequenceAllocator hands out the id that links the tasks of one submission
type SequenceAllocator interface {
	Allocate(ctx context.Context, curdir string) (int64, error)
}

// Counter is the part of the Redis client the allocator needs
type Counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

type redisSequenceAllocator struct {
	counter Counter
	key     string
}

func NewRedisSequenceAllocator(counter Counter, key string) SequenceAllocator {
	return &redisSequenceAllocator{
		counter: counter,
		key:     key,
	}
}

// Allocate returns the id already stored in curdir, or takes a new one and stores it
func (s *redisSequenceAllocator) Allocate(ctx context.Context, curdir string) (int64, error) {
	path := filepath.Join(curdir, SequenceFile)

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		id, convErr := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
		if convErr == nil {
			return id, nil
		}
		log.Warnf("⚠️ Ignoring malformed sequence id in %s: %v", path, convErr)
	case !errors.Is(err, os.ErrNotExist):
		return 0, fmt.Errorf("failed to read sequence id from %s: %w", path, err)
	}

	id, err := s.counter.Incr(ctx, s.key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate sequence id: %w", err)
	}

	if err := os.WriteFile(path, []byte(strconv.FormatInt(id, 10)), 0o644); err != nil {
		return 0, fmt.Errorf("failed to store sequence id in %s: %w", path, err)
	}

	return id, nil
}
