package throttle

import (
	"context"
	"strings"

	"github.com/aclgate/aclgate/core"
)

type service struct {
	repository Repository
	config     core.Config
}

// NewService creates a new throttle service
func NewService(repository Repository, config core.Config) core.ThrottleService {
	return &service{repository, config}
}

// AllowLogin checks the identity's failure counter before recording
// this attempt, so the limit-th failure is still observed and only
// the next attempt is blocked. Every recorded attempt refreshes the
// block window.
func (s *service) AllowLogin(ctx context.Context, identity string) core.RateLimitResult {
	ctx, span := tracer.Start(ctx, "Throttle.Service.AllowLogin")
	defer span.End()

	key := loginPrefix + strings.ToLower(identity)

	if s.repository.Count(ctx, key) >= int64(s.config.LoginAttemptLimit) {
		retryAfter := int(s.repository.TTL(ctx, key).Seconds())
		if retryAfter <= 0 {
			retryAfter = s.config.LoginBlockSeconds
		}
		return core.RateLimitResult{
			Allowed:    false,
			RetryAfter: retryAfter,
			Message:    core.MsgLoginRateLimitExceeded,
		}
	}

	s.repository.IncrRefresh(ctx, key, s.config.LoginBlockWindow())

	return core.RateLimitResult{Allowed: true}
}

func (s *service) ResetLogin(ctx context.Context, identity string) error {
	ctx, span := tracer.Start(ctx, "Throttle.Service.ResetLogin")
	defer span.End()

	return s.repository.Reset(ctx, loginPrefix+strings.ToLower(identity))
}

// AllowRequest counts this request against the subject's fixed window
// and blocks once the count exceeds the limit.
func (s *service) AllowRequest(ctx context.Context, subject string) core.RateLimitResult {
	ctx, span := tracer.Start(ctx, "Throttle.Service.AllowRequest")
	defer span.End()

	key := requestPrefix + subject

	count := s.repository.IncrWindow(ctx, key, s.config.RequestWindow())
	if count > int64(s.config.RequestLimit) {
		retryAfter := int(s.repository.TTL(ctx, key).Seconds())
		if retryAfter <= 0 {
			retryAfter = s.config.RequestWindowSecs
		}
		return core.RateLimitResult{
			Allowed:    false,
			RetryAfter: retryAfter,
			Message:    core.MsgRateLimitExceeded,
		}
	}

	return core.RateLimitResult{Allowed: true}
}

func (s *service) ResetRequest(ctx context.Context, subject string) error {
	ctx, span := tracer.Start(ctx, "Throttle.Service.ResetRequest")
	defer span.End()

	return s.repository.Reset(ctx, requestPrefix+subject)
}
