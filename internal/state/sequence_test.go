package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	value int64
	calls int
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.calls++
	f.value++
	cmd := redis.NewIntCmd(ctx, "incr", key)
	cmd.SetVal(f.value)
	return cmd
}

func TestAllocate_StoresNewID(t *testing.T) {
	curdir := t.TempDir()
	counter := &fakeCounter{value: 41}
	alloc := NewRedisSequenceAllocator(counter, "seq")

	id, err := alloc.Allocate(context.Background(), curdir)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	data, err := os.ReadFile(filepath.Join(curdir, SequenceFile))
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))
}

func TestAllocate_ReusesStoredID(t *testing.T) {
	curdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(curdir, SequenceFile), []byte("17\n"), 0o644))
	counter := &fakeCounter{}
	alloc := NewRedisSequenceAllocator(counter, "seq")

	id, err := alloc.Allocate(context.Background(), curdir)
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	assert.Zero(t, counter.calls)
}

func TestAllocate_MalformedIDIsReplaced(t *testing.T) {
	curdir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(curdir, SequenceFile), []byte("abc"), 0o644))
	alloc := NewRedisSequenceAllocator(&fakeCounter{}, "seq")

	id, err := alloc.Allocate(context.Background(), curdir)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}
