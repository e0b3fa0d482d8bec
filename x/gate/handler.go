package gate

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aclgate/aclgate/core"
)

// Handler exposes the decision API directly, for callers that enforce
// out of process instead of sitting behind the middleware.
type Handler interface {
	Evaluate(c echo.Context) error
	MyRoutes(c echo.Context) error
	RebuildMyRoutes(c echo.Context) error
	InvalidateRoutes(c echo.Context) error
	ResetLimiter(c echo.Context) error
	RecentAccess(c echo.Context) error
	CheckLogin(c echo.Context) error
}

type handler struct {
	repository Repository
	rule       core.RuleService
	throttle   core.ThrottleService
	config     core.Config
}

// NewHandler creates a new gate handler
func NewHandler(repository Repository, rule core.RuleService, throttle core.ThrottleService, config core.Config) Handler {
	return &handler{repository, rule, throttle, config}
}

type evaluateRequest struct {
	Subject     string `json:"subject"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Application string `json:"application"`
}

// Evaluate answers an access question without enforcing it. Denials
// are successful responses here; only a store fault is an error.
func (h *handler) Evaluate(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.Evaluate")
	defer span.End()

	var request evaluateRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}
	if request.Method == "" || request.Path == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "method and path are required"})
	}
	if request.Subject == "" {
		request.Subject = c.Request().Header.Get(h.config.SubjectHeader)
	}
	if request.Application == "" {
		request.Application = h.config.DefaultApplication
	}

	verdict, err := h.rule.Evaluate(ctx, request.Subject, request.Method, request.Path, request.Application)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "reason": verdict.Reason, "error": "access check failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": verdict})
}

func (h *handler) MyRoutes(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.MyRoutes")
	defer span.End()

	subject, application, ok := h.identity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "error": "subject identity header is required"})
	}

	routes, hit := h.rule.GetCachedRoutes(ctx, subject, application)
	if !hit {
		var err error
		routes, err = h.rule.BuildAllowedRoutes(ctx, subject, application)
		if err != nil {
			span.RecordError(err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": routes})
}

func (h *handler) RebuildMyRoutes(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.RebuildMyRoutes")
	defer span.End()

	subject, application, ok := h.identity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error", "error": "subject identity header is required"})
	}

	if err := h.rule.InvalidateRoutes(ctx, subject, application); err != nil {
		span.RecordError(err)
	}

	routes, err := h.rule.BuildAllowedRoutes(ctx, subject, application)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": routes})
}

func (h *handler) InvalidateRoutes(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.InvalidateRoutes")
	defer span.End()

	subject := c.Param("subject")
	if subject == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "subject is required"})
	}
	application := c.QueryParam("application")
	if application == "" {
		application = h.config.DefaultApplication
	}

	if err := h.rule.InvalidateRoutes(ctx, subject, application); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) ResetLimiter(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.ResetLimiter")
	defer span.End()

	subject := c.Param("subject")
	if subject == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "subject is required"})
	}

	var err error
	switch c.QueryParam("kind") {
	case "login":
		err = h.throttle.ResetLogin(ctx, subject)
	default:
		err = h.throttle.ResetRequest(ctx, subject)
	}
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) RecentAccess(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.RecentAccess")
	defer span.End()

	subject := c.Param("subject")
	if subject == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "subject is required"})
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	logs, err := h.repository.ListAccessLogs(ctx, subject, limit)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": logs})
}

type checkLoginRequest struct {
	Identity string `json:"identity"`
}

// CheckLogin records a login attempt against the identity's counter
// and reports whether the attempt may proceed. Callers invoke it
// before their own credential check and ResetLimiter(kind=login)
// after a success.
func (h *handler) CheckLogin(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Gate.Handler.CheckLogin")
	defer span.End()

	var request checkLoginRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}
	if request.Identity == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "identity is required"})
	}

	result := h.throttle.AllowLogin(ctx, request.Identity)
	if !result.Allowed {
		c.Response().Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
		return c.JSON(http.StatusTooManyRequests, echo.Map{
			"status":      "error",
			"reason":      core.ReasonRateLimited,
			"error":       result.Message,
			"retry_after": result.RetryAfter,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *handler) identity(c echo.Context) (string, string, bool) {
	subject := c.Request().Header.Get(h.config.SubjectHeader)
	if subject == "" {
		return "", "", false
	}
	application := c.Request().Header.Get(h.config.ApplicationHeader)
	if application == "" {
		application = h.config.DefaultApplication
	}
	return subject, application, true
}
