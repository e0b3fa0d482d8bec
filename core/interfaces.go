//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"

	"github.com/labstack/echo/v4"
)

// RouteService resolves raw (method, path) pairs to endpoint
// identities and maintains the route registry.
type RouteService interface {
	Resolve(ctx context.Context, method, path, application, routeName string) (Endpoint, error)
	Register(ctx context.Context, route Route) (Route, error)
	Deactivate(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (Route, error)
	List(ctx context.Context, application string, activeOnly bool) ([]Route, error)
	Invalidate(ctx context.Context, route Route) error
	Count(ctx context.Context) (int64, error)
}

// RuleService is the authorization decision engine plus the
// subject-scoped route set builder.
type RuleService interface {
	Evaluate(ctx context.Context, subject, method, path, application string) (Verdict, error)

	BuildAllowedRoutes(ctx context.Context, subject, application string) ([]AllowedRoute, error)
	GetCachedRoutes(ctx context.Context, subject, application string) ([]AllowedRoute, bool)
	InvalidateRoutes(ctx context.Context, subject, application string) error
	InvalidateEndpoint(ctx context.Context, endpointID string) error
	MethodAllowed(ctx context.Context, routes []AllowedRoute, endpointID, method string) bool

	EnsureRole(ctx context.Context, name, application string, isSuperRole bool) (Role, error)
	AssignRole(ctx context.Context, subject, roleName, application string) (RoleAssignment, error)
	RevokeRole(ctx context.Context, subject, roleName, application string) error
	BindRoute(ctx context.Context, roleName, application, routeID string, allow bool) (RoleBinding, error)
	BindPriority(ctx context.Context, kind, subjectID, routeID string, allow bool, priority int) (PriorityBinding, error)
	Count(ctx context.Context) (int64, error)
}

// ThrottleService bundles the login-attempt and request limiters.
// Limiter checks never return errors: backend faults degrade to allow.
type ThrottleService interface {
	AllowLogin(ctx context.Context, identity string) RateLimitResult
	ResetLogin(ctx context.Context, identity string) error
	AllowRequest(ctx context.Context, identifier string) RateLimitResult
	ResetRequest(ctx context.Context, identifier string) error
}

// GateService is the per-request orchestration pipeline.
type GateService interface {
	Enforce(next echo.HandlerFunc) echo.HandlerFunc
	GuardWS(next echo.HandlerFunc) echo.HandlerFunc
}
