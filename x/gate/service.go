package gate

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aclgate/aclgate/core"
)

var decisionCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "acl_decisions_total",
		Help: "Access decisions by verdict and reason",
	},
	[]string{"verdict", "reason"},
)

type service struct {
	repository Repository
	rule       core.RuleService
	throttle   core.ThrottleService
	sink       core.EventSink
	config     core.Config
}

// NewService creates a new gate service
func NewService(
	repository Repository,
	rule core.RuleService,
	throttle core.ThrottleService,
	sink core.EventSink,
	config core.Config,
) core.GateService {
	return &service{repository, rule, throttle, sink, config}
}

// Enforce is the access-control middleware. Order is fixed: bypass
// check, identity extraction, rate limit, rule evaluation, method
// sub-check. A passing request carries the verdict and endpoint in
// the echo context for downstream handlers.
func (s *service) Enforce(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Gate.Service.Enforce")
		defer span.End()
		c.SetRequest(c.Request().WithContext(ctx))

		path := c.Request().URL.Path
		for _, prefix := range s.config.BypassPrefixes {
			if strings.HasPrefix(path, prefix) {
				return next(c)
			}
		}

		subject := c.Request().Header.Get(s.config.SubjectHeader)
		if subject == "" {
			s.observe(c, core.AccessEvent{Reason: core.ReasonIdentityMissing, Method: c.Request().Method, Path: path})
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"status": "error",
				"reason": core.ReasonIdentityMissing,
				"error":  "subject identity header is required",
			})
		}

		application := c.Request().Header.Get(s.config.ApplicationHeader)
		if application == "" {
			application = s.config.DefaultApplication
		}

		if limit := s.throttle.AllowRequest(ctx, subject); !limit.Allowed {
			s.observe(c, core.AccessEvent{
				Reason:      core.ReasonRateLimited,
				SubjectID:   subject,
				Application: application,
				Method:      c.Request().Method,
				Path:        path,
			})
			c.Response().Header().Set("Retry-After", strconv.Itoa(limit.RetryAfter))
			return c.JSON(http.StatusTooManyRequests, echo.Map{
				"status":      "error",
				"reason":      core.ReasonRateLimited,
				"error":       limit.Message,
				"retry_after": limit.RetryAfter,
			})
		}

		verdict, err := s.rule.Evaluate(ctx, subject, c.Request().Method, path, application)
		event := core.AccessEvent{
			Allowed:           verdict.Allowed,
			Reason:            verdict.Reason,
			SubjectID:         subject,
			Application:       application,
			Method:            c.Request().Method,
			Path:              path,
			MatchedEndpointID: verdict.MatchedEndpointID,
		}

		if err != nil {
			span.RecordError(err)
			s.observe(c, event)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"status": "error",
				"reason": core.ReasonInternalError,
				"error":  "access check failed",
			})
		}

		if !verdict.Allowed {
			s.observe(c, event)
			if verdict.Reason == core.ReasonRouteNotRegistered {
				return c.JSON(http.StatusNotFound, echo.Map{
					"status": "error",
					"reason": verdict.Reason,
					"error":  "no endpoint matches this request",
				})
			}
			return c.JSON(http.StatusForbidden, echo.Map{
				"status": "error",
				"reason": verdict.Reason,
				"error":  "access denied",
			})
		}

		routes, hit := s.rule.GetCachedRoutes(ctx, subject, application)
		if !hit {
			routes, err = s.rule.BuildAllowedRoutes(ctx, subject, application)
			if err != nil {
				span.RecordError(err)
				routes = nil
			}
		}

		if !s.rule.MethodAllowed(ctx, routes, verdict.MatchedEndpointID, c.Request().Method) {
			event.Allowed = false
			event.Reason = core.ReasonMethodNotAllowed
			s.observe(c, event)
			return c.JSON(http.StatusForbidden, echo.Map{
				"status": "error",
				"reason": core.ReasonMethodNotAllowed,
				"error":  "method not permitted for this endpoint",
			})
		}

		c.Set(core.SubjectIdCtxKey, subject)
		c.Set(core.ApplicationCtxKey, application)
		c.Set(core.VerdictCtxKey, verdict)
		c.Set(core.RouteSetCtxKey, routes)
		if verdict.Endpoint != nil {
			c.Set(core.EndpointCtxKey, *verdict.Endpoint)
		}

		s.observe(c, event)

		return next(c)
	}
}

// observe records the decision in metrics, the access trail, and the
// sampled event stream. None of these may fail the request.
func (s *service) observe(c echo.Context, event core.AccessEvent) {
	ctx := c.Request().Context()

	verdict := "deny"
	if event.Allowed {
		verdict = "allow"
	}
	decisionCounter.WithLabelValues(verdict, event.Reason).Inc()

	log := core.AccessLog{
		SubjectID: event.SubjectID,
		Method:    event.Method,
		Path:      event.Path,
		Allowed:   event.Allowed,
		Reason:    event.Reason,
		IPAddress: c.RealIP(),
	}
	if event.MatchedEndpointID != "" {
		id := event.MatchedEndpointID
		log.RouteID = &id
	}
	if err := s.repository.WriteAccessLog(ctx, log); err != nil {
		slog.WarnContext(ctx, "access log write failed", slog.String("error", err.Error()))
	}

	s.sink.Emit(ctx, event)
}
