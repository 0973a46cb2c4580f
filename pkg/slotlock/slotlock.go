package slotlock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired возвращается, когда ключ уже заблокирован другим запросом
var ErrLockNotAcquired = errors.New("slotlock: lock not acquired")

// Locker выполняет fn под эксклюзивной блокировкой ключа
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// StaffDayKey ключ блокировки расписания мастера на день
func StaffDayKey(staffID int64, date time.Time) string {
	return fmt.Sprintf("staff:%d:%s", staffID, date.Format("2006-01-02"))
}

// StaffDayKeys ключи блокировки нескольких мастеров на один день
func StaffDayKeys(staffIDs []int64, date time.Time) []string {
	keys := make([]string, 0, len(staffIDs))
	for _, id := range staffIDs {
		keys = append(keys, StaffDayKey(id, date))
	}
	return keys
}

// WithLocks захватывает все ключи по очереди и выполняет fn под ними
// Ключи сортируются и дедуплицируются, поэтому два запроса с пересекающимися
// наборами мастеров берут блокировки в одном порядке.
func WithLocks(ctx context.Context, l Locker, keys []string, fn func(ctx context.Context) error) error {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)

	var acquire func(ctx context.Context, i int) error
	acquire = func(ctx context.Context, i int) error {
		if i == len(unique) {
			return fn(ctx)
		}
		return l.WithLock(ctx, unique[i], func(lockCtx context.Context) error {
			return acquire(lockCtx, i+1)
		})
	}
	return acquire(ctx, 0)
}

// RedisLocker блокировка на SET NX с токеном владельца
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker создает блокировку поверх Redis
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, ttl: ttl}
}

// WithLock захватывает ключ, выполняет fn и освобождает ключ
// fn получает контекст, ограниченный временем жизни блокировки
func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	redisKey := "lock:calendar:" + key
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("slotlock: acquire %s: %w", key, err)
	}
	if !ok {
		return ErrLockNotAcquired
	}

	defer func() {
		_ = l.release(context.WithoutCancel(ctx), redisKey, token)
	}()

	lockCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(lockCtx)
}

// unlockScript удаляет ключ, только если он принадлежит владельцу токена
var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *RedisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("slotlock: release %s: %w", key, err)
	}
	return nil
}

// PingContext проверяет соединение с Redis (для readiness)
func (l *RedisLocker) PingContext(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// NoopLocker используется, когда Redis отключен
// Консистентность в этом случае обеспечивают только сериализуемые транзакции
type NoopLocker struct{}

// WithLock сразу выполняет fn
func (NoopLocker) WithLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NewRedisClient создает клиента Redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Username:     username,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}
