// File: internal/infra/redis/turn_lock.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"telegram-registration-bot/internal/domain"
)

// TurnLocker serializes one user's conversation turn across bot processes.
// The worker pool already orders messages per user inside one process; this
// lock covers the retried-delivery case where a second process picks up the
// same user concurrently.
type TurnLocker interface {
	TryLock(ctx context.Context, userID int64, ttl time.Duration) (token string, err error)
	Unlock(ctx context.Context, userID int64, token string) error
}

type RedisTurnLocker struct {
	cli *redis.Client
}

func NewTurnLocker(c *Client) *RedisTurnLocker {
	return &RedisTurnLocker{cli: c.cli}
}

func turnKey(userID int64) string { return fmt.Sprintf("reg_turn:%d", userID) }

func (l *RedisTurnLocker) TryLock(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	for i := 0; i < 5; i++ { // 5 tries
		ok, err := l.cli.SetNX(ctx, turnKey(userID), token, ttl).Result()
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
		time.Sleep(50 * time.Millisecond) // wait before retrying
	}
	return "", domain.ErrTurnInProgress
}

var luaUnlock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end`)

func (l *RedisTurnLocker) Unlock(ctx context.Context, userID int64, token string) error {
	_, err := luaUnlock.Run(ctx, l.cli, []string{turnKey(userID)}, token).Result()
	return err
}
