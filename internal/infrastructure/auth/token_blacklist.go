package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/argos/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes tokens by JTI before they expire (logout, refresh rotation)
type TokenBlacklist interface {
	// AddToBlacklist revokes jti for ttl, normally the token's remaining lifetime
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
}

const blacklistKeyPrefix = "argos:token:revoked:"

// RedisTokenBlacklist implements TokenBlacklist using Redis key expiry
type RedisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisClient opens and pings a Redis client for cfg
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr(), err)
	}
	return client, nil
}

// NewRedisTokenBlacklist creates a blacklist over an existing Redis client
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

// AddToBlacklist stores jti with an expiry so Redis drops it once the token is dead anyway
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted checks if a token's JTI is revoked
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return n > 0, nil
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist keeps revoked JTIs in process memory.
// Revocations are lost on restart and not shared between instances.
type InMemoryTokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time // jti -> expiry

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewInMemoryTokenBlacklist creates an in-memory blacklist.
// A positive sweepInterval starts a janitor that drops expired entries until Close.
func NewInMemoryTokenBlacklist(sweepInterval time.Duration) *InMemoryTokenBlacklist {
	b := &InMemoryTokenBlacklist{
		entries: make(map[string]time.Time),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go b.sweepLoop(sweepInterval)
	} else {
		close(b.done)
	}
	return b
}

func (b *InMemoryTokenBlacklist) sweepLoop(interval time.Duration) {
	defer close(b.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-b.stop:
			return
		case now := <-ticker.C:
			b.sweep(now)
		}
	}
}

func (b *InMemoryTokenBlacklist) sweep(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for jti, exp := range b.entries {
		if now.After(exp) {
			delete(b.entries, jti)
		}
	}
}

// AddToBlacklist revokes jti for ttl
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[jti] = time.Now().Add(ttl)
	return nil
}

// IsBlacklisted reports whether jti is revoked and the revocation has not lapsed
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.entries[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(b.entries, jti)
		return false, nil
	}
	return true, nil
}

// Len returns the number of tracked revocations
func (b *InMemoryTokenBlacklist) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Close stops the janitor and waits for it to exit
func (b *InMemoryTokenBlacklist) Close() error {
	b.once.Do(func() { close(b.stop) })
	<-b.done
	return nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
