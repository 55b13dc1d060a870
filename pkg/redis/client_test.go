package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeCmdable struct {
	values  map[string]string
	expired map[string]time.Duration
}

func newFakeCmdable() *fakeCmdable {
	return &fakeCmdable{values: map[string]string{}, expired: map[string]time.Duration{}}
}

func (f *fakeCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeCmdable) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	f.values[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeCmdable) Incr(ctx context.Context, key string) *redis.IntCmd {
	n := int64(1)
	if v, ok := f.values[key]; ok && v == "1" {
		n = 2
	}
	f.values[key] = "1"
	return redis.NewIntResult(n, nil)
}

func (f *fakeCmdable) Expire(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	f.expired[key] = ttl
	return redis.NewBoolResult(true, nil)
}

func (f *fakeCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.values, key)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestKeyBuilding(t *testing.T) {
	c := &Client{}
	if got := c.RateLimitKey("login"); got != "dl:rate_limit:login" {
		t.Fatalf("unexpected rate limit key %s", got)
	}
	if got := c.AccessSessionKey("abc"); got != "dl:session:access:abc" {
		t.Fatalf("unexpected session key %s", got)
	}
	if got := c.ProfileKey("user-1"); got != "dl:profile:user-1" {
		t.Fatalf("unexpected profile key %s", got)
	}
}

func TestIncrWithTTLSetsExpiryOnFirstIncrement(t *testing.T) {
	fake := newFakeCmdable()
	c := &Client{store: fake}

	count, err := c.IncrWithTTL(context.Background(), "dl:rate_limit:login", time.Minute)
	if err != nil {
		t.Fatalf("incr: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected first increment to be 1, got %d", count)
	}
	if fake.expired["dl:rate_limit:login"] != time.Minute {
		t.Fatal("expected expiry to be set on first increment")
	}

	count, err = c.IncrWithTTL(context.Background(), "dl:rate_limit:login", time.Minute)
	if err != nil {
		t.Fatalf("second incr: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected second increment to be 2, got %d", count)
	}
}

func TestSetGetDelRoundTrip(t *testing.T) {
	fake := newFakeCmdable()
	c := &Client{store: fake}
	ctx := context.Background()

	if err := c.Set(ctx, "dl:profile:u1", `{"id":"u1"}`, 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := c.Get(ctx, "dl:profile:u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"id":"u1"}` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := c.Del(ctx, "dl:profile:u1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := c.Get(ctx, "dl:profile:u1"); err != redis.Nil {
		t.Fatalf("expected redis.Nil after delete, got %v", err)
	}
}

func TestUninitializedClientErrors(t *testing.T) {
	c := &Client{}
	if err := c.Ping(context.Background()); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
}
