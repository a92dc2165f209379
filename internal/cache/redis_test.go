package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCmdable отвечает заранее заданными значениями без сервера redis.
type fakeCmdable struct {
	redis.Cmdable
	stored  map[string]string
	lastTTL time.Duration
	deleted []string
}

func newFake() *fakeCmdable {
	return &fakeCmdable{stored: map[string]string{}}
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	v, ok := f.stored[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)
	return cmd
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.stored[key] = string(value.([]byte))
	f.lastTTL = ttl
	cmd := redis.NewStatusCmd(ctx, "set", key)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys...)
	for _, k := range keys {
		delete(f.stored, k)
	}
	cmd := redis.NewIntCmd(ctx, "del")
	cmd.SetVal(int64(len(keys)))
	return cmd
}

type entry struct {
	Name string `json:"name"`
}

func TestRedis_RoundTrip(t *testing.T) {
	fake := newFake()
	c := NewRedis(fake, 0)

	var got []entry
	hit, err := c.GetJSON(context.Background(), "items:list", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetJSON(context.Background(), "items:list", []entry{{Name: "tea"}}))
	assert.Equal(t, DefaultTTL, fake.lastTTL)

	hit, err = c.GetJSON(context.Background(), "items:list", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []entry{{Name: "tea"}}, got)

	require.NoError(t, c.Delete(context.Background(), "items:list"))
	assert.Equal(t, []string{"items:list"}, fake.deleted)
}

func TestRedis_BrokenValue(t *testing.T) {
	fake := newFake()
	fake.stored["items:list"] = "{not json"

	var got []entry
	hit, err := NewRedis(fake, time.Second).GetJSON(context.Background(), "items:list", &got)
	require.Error(t, err)
	assert.False(t, hit)
}

func TestNop(t *testing.T) {
	var c Nop
	hit, err := c.GetJSON(context.Background(), "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, c.SetJSON(context.Background(), "k", 1))
	require.NoError(t, c.Delete(context.Background(), "k"))
}
