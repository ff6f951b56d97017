package setting

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("dial tcp: connection refused")

type fakeKV struct {
	mu     sync.Mutex
	values map[string]string
	fault  error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fault != nil {
		return redis.NewStringResult("", f.fault)
	}

	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (f *fakeKV) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fault != nil {
		return redis.NewStatusResult("", f.fault)
	}

	f.values[key] = value.(string)

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fault != nil {
		return redis.NewIntResult(0, f.fault)
	}

	var n int64

	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func TestCachedReadThrough(t *testing.T) {
	mem := NewMemory(map[string]string{"siteName": "Gophers"})
	kv := newFakeKV()
	c := NewCached(mem, kv, "Wo_Config:", time.Minute)

	v, err := c.Get("siteName")
	require.NoError(t, err)
	assert.Equal(t, "Gophers", v)
	assert.Equal(t, "Gophers", kv.values["Wo_Config:siteName"])

	// served from the cache even when the store is gone
	mem.Fail(errDown)

	v, err = c.Get("siteName")
	require.NoError(t, err)
	assert.Equal(t, "Gophers", v)
}

func TestCachedMissIsNotCached(t *testing.T) {
	kv := newFakeKV()
	c := NewCached(NewMemory(nil), kv, "p:", time.Minute)

	_, err := c.Get("missing")
	require.ErrorIs(t, err, ErrSettingNotFound)
	assert.Empty(t, kv.values)

	_, err = c.Get("")
	require.ErrorIs(t, err, ErrSettingNameEmpty)
}

func TestCachedSetInvalidates(t *testing.T) {
	mem := NewMemory(map[string]string{"maintenance_mode": "0"})
	kv := newFakeKV()
	c := NewCached(mem, kv, "p:", time.Minute)

	_, err := c.Get("maintenance_mode")
	require.NoError(t, err)

	require.NoError(t, c.Set("maintenance_mode", true))
	assert.NotContains(t, kv.values, "p:maintenance_mode")

	v, err := c.Get("maintenance_mode")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestCachedSetFailureKeepsCache(t *testing.T) {
	mem := NewMemory(map[string]string{"siteName": "Gophers"})
	kv := newFakeKV()
	c := NewCached(mem, kv, "p:", time.Minute)

	_, err := c.Get("siteName")
	require.NoError(t, err)

	mem.Fail(errDown)
	require.ErrorIs(t, c.Set("siteName", "Other"), ErrStorageUnavailable)
	assert.Equal(t, "Gophers", kv.values["p:siteName"])
}

func TestCachedRedisDownFallsThrough(t *testing.T) {
	mem := NewMemory(map[string]string{"siteName": "Gophers"})
	kv := newFakeKV()
	kv.fault = errRedisDown
	c := NewCached(mem, kv, "p:", time.Minute)

	v, err := c.Get("siteName")
	require.NoError(t, err)
	assert.Equal(t, "Gophers", v)

	require.NoError(t, c.Set("siteName", "Other"))

	v, err = c.Get("siteName")
	require.NoError(t, err)
	assert.Equal(t, "Other", v)

	all, err := c.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"siteName": "Other"}, all)
}

func TestCachedResolverDefaults(t *testing.T) {
	mem := NewMemory(nil)
	mem.Fail(errDown)

	kv := newFakeKV()
	kv.fault = errRedisDown

	r := NewResolver(NewCached(mem, kv, "p:", time.Minute))
	assert.Equal(t, "fallback", r.Get("siteName", "fallback"))
	assert.NotPanics(t, func() { r.Set("siteName", "x") })
}
