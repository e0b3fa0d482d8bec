package throttle

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/aclgate/aclgate/core"
)

func newTestService(t *testing.T, config core.Config) (core.ThrottleService, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewService(NewRepository(rdb), config), mr
}

func TestAllowRequestFixedWindow(t *testing.T) {
	service, _ := newTestService(t, core.Config{RequestLimit: 2, RequestWindowSecs: 30})
	ctx := context.Background()

	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)
	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)

	result := service.AllowRequest(ctx, "alice")
	assert.False(t, result.Allowed)
	assert.Greater(t, result.RetryAfter, 0)
	assert.Equal(t, core.MsgRateLimitExceeded, result.Message)

	// other subjects have their own window
	assert.True(t, service.AllowRequest(ctx, "bob").Allowed)
}

func TestAllowRequestWindowExpiry(t *testing.T) {
	service, mr := newTestService(t, core.Config{RequestLimit: 1, RequestWindowSecs: 30})
	ctx := context.Background()

	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)
	assert.False(t, service.AllowRequest(ctx, "alice").Allowed)

	mr.FastForward(31 * time.Second)

	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)
}

func TestResetRequest(t *testing.T) {
	service, _ := newTestService(t, core.Config{RequestLimit: 1, RequestWindowSecs: 30})
	ctx := context.Background()

	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)
	assert.False(t, service.AllowRequest(ctx, "alice").Allowed)

	assert.NoError(t, service.ResetRequest(ctx, "alice"))
	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)
}

func TestAllowLoginBlocksAfterLimit(t *testing.T) {
	service, _ := newTestService(t, core.Config{LoginAttemptLimit: 3, LoginBlockSeconds: 300})
	ctx := context.Background()

	// the limit-th attempt still passes; only the one after is blocked
	assert.True(t, service.AllowLogin(ctx, "alice@example.com").Allowed)
	assert.True(t, service.AllowLogin(ctx, "alice@example.com").Allowed)
	assert.True(t, service.AllowLogin(ctx, "alice@example.com").Allowed)

	result := service.AllowLogin(ctx, "alice@example.com")
	assert.False(t, result.Allowed)
	assert.Greater(t, result.RetryAfter, 0)
	assert.Equal(t, core.MsgLoginRateLimitExceeded, result.Message)
}

func TestAllowLoginCaseFoldsIdentity(t *testing.T) {
	service, _ := newTestService(t, core.Config{LoginAttemptLimit: 1, LoginBlockSeconds: 300})
	ctx := context.Background()

	assert.True(t, service.AllowLogin(ctx, "Alice@Example.com").Allowed)
	assert.False(t, service.AllowLogin(ctx, "alice@example.com").Allowed)
}

func TestResetLoginClearsCounter(t *testing.T) {
	service, _ := newTestService(t, core.Config{LoginAttemptLimit: 1, LoginBlockSeconds: 300})
	ctx := context.Background()

	assert.True(t, service.AllowLogin(ctx, "alice@example.com").Allowed)
	assert.False(t, service.AllowLogin(ctx, "alice@example.com").Allowed)

	assert.NoError(t, service.ResetLogin(ctx, "ALICE@example.com"))
	assert.True(t, service.AllowLogin(ctx, "alice@example.com").Allowed)
}

func TestLimiterFailsOpen(t *testing.T) {
	service, mr := newTestService(t, core.Config{RequestLimit: 1, RequestWindowSecs: 30})
	ctx := context.Background()

	mr.Close()

	assert.True(t, service.AllowRequest(ctx, "alice").Allowed)
	assert.True(t, service.AllowLogin(ctx, "alice@example.com").Allowed)
}
