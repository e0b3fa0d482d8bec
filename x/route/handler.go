package route

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aclgate/aclgate/core"
)

// Handler is the interface for handling HTTP requests
type Handler interface {
	Register(c echo.Context) error
	Get(c echo.Context) error
	List(c echo.Context) error
	Deactivate(c echo.Context) error
}

type handler struct {
	service core.RouteService
	rule    core.RuleService
}

// NewHandler creates a new handler
func NewHandler(service core.RouteService, rule core.RuleService) Handler {
	return &handler{service: service, rule: rule}
}

// Route writes leave the endpoint's memoized rule sets and verdicts
// stale until TTL; dropping them here closes that window. A cache
// fault is logged, not surfaced.
func (h *handler) invalidateEndpoint(ctx context.Context, id string) {
	if err := h.rule.InvalidateEndpoint(ctx, id); err != nil {
		slog.WarnContext(ctx, "endpoint cache invalidation failed",
			slog.String("routeId", id),
			slog.String("error", err.Error()),
		)
	}
}

type registerRequest struct {
	Application string `json:"application"`
	Path        string `json:"path"`
	Method      string `json:"method"`
	Service     string `json:"service"`
	Action      string `json:"action"`
	IsSensitive bool   `json:"isSensitive"`
	IsIgnored   bool   `json:"isIgnored"`
}

// Register upserts a route in the registry
func (h *handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Route.Handler.Register")
	defer span.End()

	var request registerRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": err.Error()})
	}
	if request.Path == "" || request.Method == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "message": "path and method are required"})
	}

	created, err := h.service.Register(ctx, core.Route{
		Application: request.Application,
		Path:        request.Path,
		Method:      request.Method,
		Service:     request.Service,
		Action:      request.Action,
		IsActive:    true,
		IsSensitive: request.IsSensitive,
		IsIgnored:   request.IsIgnored,
	})
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	h.invalidateEndpoint(ctx, created.ID)

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": created})
}

// Get returns a route by ID
func (h *handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Route.Handler.Get")
	defer span.End()

	id := c.Param("id")

	data, err := h.service.Get(ctx, id)
	if err != nil {
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "route not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": data})
}

// List returns routes for an application
func (h *handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Route.Handler.List")
	defer span.End()

	application := c.QueryParam("application")
	activeOnly := c.QueryParam("all") != "true"

	data, err := h.service.List(ctx, application, activeOnly)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": data})
}

// Deactivate marks a route inactive; it then behaves as if deleted
func (h *handler) Deactivate(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Route.Handler.Deactivate")
	defer span.End()

	id := c.Param("id")

	if err := h.service.Deactivate(ctx, id); err != nil {
		if _, ok := err.(core.ErrorNotFound); ok {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "message": "route not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "message": err.Error()})
	}

	h.invalidateEndpoint(ctx, id)

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
