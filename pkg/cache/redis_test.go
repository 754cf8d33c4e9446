package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(c *RedisCache, mr *miniredis.Miniredis)
		key     string
		wantHit bool
		want    string
	}{
		{
			name:  "miss",
			setup: func(*RedisCache, *miniredis.Miniredis) {},
			key:   "diagram:absent",
		},
		{
			name: "hit",
			setup: func(c *RedisCache, _ *miniredis.Miniredis) {
				_ = c.Set(ctx, "diagram:a", []byte(`{"nodes":[]}`), time.Hour)
			},
			key:     "diagram:a",
			wantHit: true,
			want:    `{"nodes":[]}`,
		},
		{
			name: "overwrite",
			setup: func(c *RedisCache, _ *miniredis.Miniredis) {
				_ = c.Set(ctx, "k", []byte("old"), time.Hour)
				_ = c.Set(ctx, "k", []byte("new"), time.Hour)
			},
			key:     "k",
			wantHit: true,
			want:    "new",
		},
		{
			name: "expired",
			setup: func(c *RedisCache, mr *miniredis.Miniredis) {
				_ = c.Set(ctx, "k", []byte("v"), time.Minute)
				mr.FastForward(2 * time.Minute)
			},
			key: "k",
		},
		{
			name: "not yet expired",
			setup: func(c *RedisCache, mr *miniredis.Miniredis) {
				_ = c.Set(ctx, "k", []byte("v"), time.Minute)
				mr.FastForward(30 * time.Second)
			},
			key:     "k",
			wantHit: true,
			want:    "v",
		},
		{
			name: "no ttl never expires",
			setup: func(c *RedisCache, mr *miniredis.Miniredis) {
				_ = c.Set(ctx, "k", []byte("v"), 0)
				mr.FastForward(365 * 24 * time.Hour)
			},
			key:     "k",
			wantHit: true,
			want:    "v",
		},
		{
			name: "deleted",
			setup: func(c *RedisCache, _ *miniredis.Miniredis) {
				_ = c.Set(ctx, "k", []byte("v"), time.Hour)
				_ = c.Delete(ctx, "k")
			},
			key: "k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mr := newTestRedisCache(t)
			tt.setup(c, mr)

			data, hit, err := c.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if string(data) != tt.want {
				t.Errorf("data = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestRedisCacheSetsTTL(t *testing.T) {
	c, mr := newTestRedisCache(t)
	if err := c.Set(context.Background(), "k", []byte("v"), TTLDiagram); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := mr.TTL("k"); got != TTLDiagram {
		t.Errorf("TTL = %v, want %v", got, TTLDiagram)
	}
}

func TestRedisCacheDeleteMissing(t *testing.T) {
	c, _ := newTestRedisCache(t)
	if err := c.Delete(context.Background(), "absent"); err != nil {
		t.Errorf("Delete of a missing key: %v", err)
	}
}

func TestRedisCacheServerError(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t)
	mr.SetError("ERR injected failure")

	if _, hit, err := c.Get(ctx, "k"); err == nil || hit {
		t.Errorf("Get = (hit %v, err %v), want an error", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err == nil {
		t.Error("Set should report the server error")
	}
	if err := c.Delete(ctx, "k"); err == nil {
		t.Error("Delete should report the server error")
	}
}

func TestNewRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := NewRedisCache(context.Background(), RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(context.Background(), "k", []byte("v"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := mr.Get("k"); err != nil || got != "v" {
		t.Errorf("server value = %q (err %v), want v", got, err)
	}
}
