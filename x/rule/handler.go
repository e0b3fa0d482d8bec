package rule

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aclgate/aclgate/core"
)

// Handler is the rule administration surface. Mutations also
// invalidate the caches derived from the touched data.
type Handler interface {
	EnsureRole(c echo.Context) error
	AssignRole(c echo.Context) error
	RevokeRole(c echo.Context) error
	BindRoute(c echo.Context) error
	BindPriority(c echo.Context) error
	InvalidateEndpoint(c echo.Context) error
}

type handler struct {
	service core.RuleService
}

// NewHandler creates a new rule handler
func NewHandler(service core.RuleService) Handler {
	return &handler{service}
}

type ensureRoleRequest struct {
	Name        string `json:"name"`
	Application string `json:"application"`
	IsSuperRole bool   `json:"isSuperRole"`
}

func (h *handler) EnsureRole(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.EnsureRole")
	defer span.End()

	var request ensureRoleRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}
	if request.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "name is required"})
	}

	role, err := h.service.EnsureRole(ctx, request.Name, request.Application, request.IsSuperRole)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": role})
}

type assignmentRequest struct {
	Subject     string `json:"subject"`
	Role        string `json:"role"`
	Application string `json:"application"`
}

func (h *handler) AssignRole(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.AssignRole")
	defer span.End()

	var request assignmentRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}
	if request.Subject == "" || request.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "subject and role are required"})
	}

	assignment, err := h.service.AssignRole(ctx, request.Subject, request.Role, request.Application)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": assignment})
}

func (h *handler) RevokeRole(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.RevokeRole")
	defer span.End()

	var request assignmentRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}

	err := h.service.RevokeRole(ctx, request.Subject, request.Role, request.Application)
	if err != nil {
		if _, notFound := err.(core.ErrorNotFound); notFound {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "role not found"})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

type bindRouteRequest struct {
	Role        string `json:"role"`
	Application string `json:"application"`
	RouteID     string `json:"routeId"`
	Allow       bool   `json:"allow"`
}

func (h *handler) BindRoute(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.BindRoute")
	defer span.End()

	var request bindRouteRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}
	if request.Role == "" || request.RouteID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "role and routeId are required"})
	}

	binding, err := h.service.BindRoute(ctx, request.Role, request.Application, request.RouteID, request.Allow)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": binding})
}

type bindPriorityRequest struct {
	Kind      string `json:"kind"`
	SubjectID string `json:"subjectId"`
	RouteID   string `json:"routeId"`
	Allow     bool   `json:"allow"`
	Priority  int    `json:"priority"`
}

func (h *handler) BindPriority(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.BindPriority")
	defer span.End()

	var request bindPriorityRequest
	if err := c.Bind(&request); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": err.Error()})
	}
	if request.Kind != core.KindUser && request.Kind != core.KindRole && request.Kind != core.KindTeam {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "kind must be user, role, or team"})
	}
	if request.SubjectID == "" || request.RouteID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "subjectId and routeId are required"})
	}

	binding, err := h.service.BindPriority(ctx, request.Kind, request.SubjectID, request.RouteID, request.Allow, request.Priority)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": binding})
}

func (h *handler) InvalidateEndpoint(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Rule.Handler.InvalidateEndpoint")
	defer span.End()

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "id is required"})
	}

	if err := h.service.InvalidateEndpoint(ctx, id); err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
