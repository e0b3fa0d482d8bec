package route

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/aclgate/aclgate/core"
)

var tracer = otel.Tracer("route")

type service struct {
	repository Repository
	config     core.Config
	normalize  Normalizer
}

// NewService creates a new route service with the default normalizer
func NewService(repository Repository, config core.Config) core.RouteService {
	return &service{repository, config, NormalizePath}
}

// NewServiceWithNormalizer creates a route service with a substitute
// path normalizer
func NewServiceWithNormalizer(repository Repository, config core.Config, normalize Normalizer) core.RouteService {
	return &service{repository, config, normalize}
}

func makeEndpoint(route core.Route) core.Endpoint {
	return core.Endpoint{
		ID:          route.ID,
		Service:     route.Service,
		PathPattern: route.Path,
		Method:      route.Method,
		Action:      route.Action,
		IsSensitive: route.IsSensitive,
		IsIgnored:   route.IsIgnored,
	}
}

// Resolve maps a raw (method, path) pair to the registered endpoint
// identity. routeName, when the surrounding framework can supply one,
// enables a cached fast path; pass "" otherwise.
func (s *service) Resolve(ctx context.Context, method, path, application, routeName string) (core.Endpoint, error) {
	ctx, span := tracer.Start(ctx, "Route.Service.Resolve")
	defer span.End()

	methodUpper := strings.ToUpper(method)

	if routeName != "" {
		if endpoint, ok := s.repository.GetCachedEndpoint(ctx, endpointNameKey(methodUpper, routeName)); ok {
			return endpoint, nil
		}
	}

	normalized := s.normalize(path)

	matched, err := s.repository.GetByNormalizedPath(ctx, application, normalized, methodUpper)
	if err == nil {
		endpoint := makeEndpoint(matched)
		s.cacheEndpoint(ctx, endpoint, routeName)
		return endpoint, nil
	}
	if _, notFound := err.(core.ErrorNotFound); !notFound {
		span.RecordError(err)
		return core.Endpoint{}, err
	}

	// fall back to pattern matching over the active set
	candidates, err := s.repository.ListActive(ctx, application)
	if err != nil {
		span.RecordError(err)
		return core.Endpoint{}, err
	}

	for _, candidate := range candidates {
		if candidate.Method != methodUpper {
			continue
		}
		if MatchPattern(candidate.Path, normalized) {
			endpoint := makeEndpoint(candidate)
			s.cacheEndpoint(ctx, endpoint, routeName)
			return endpoint, nil
		}
	}

	return core.Endpoint{}, core.NewErrorEndpointNotFound()
}

func (s *service) cacheEndpoint(ctx context.Context, endpoint core.Endpoint, routeName string) {
	s.repository.SetCachedEndpoint(ctx, endpointIDKey(endpoint.ID), endpoint)
	if routeName != "" {
		s.repository.SetCachedEndpoint(ctx, endpointNameKey(endpoint.Method, routeName), endpoint)
	}
}

// Register upserts a route by (application, path, method), deriving
// the normalized path, and drops any stale cached payload.
func (s *service) Register(ctx context.Context, route core.Route) (core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Service.Register")
	defer span.End()

	route.Method = strings.ToUpper(route.Method)
	route.NormalizedPath = s.normalize(route.Path)
	route.IsActive = true

	created, err := s.repository.Upsert(ctx, route)
	if err != nil {
		span.RecordError(err)
		return core.Route{}, err
	}

	s.repository.PurgeEndpoint(ctx, endpointIDKey(created.ID))

	return created, nil
}

// Deactivate marks a route inactive and drops every cached payload
// for it, including the name-keyed entry the fast path writes.
func (s *service) Deactivate(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Route.Service.Deactivate")
	defer span.End()

	existing, err := s.repository.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.repository.SetActive(ctx, id, false); err != nil {
		span.RecordError(err)
		return err
	}

	return s.Invalidate(ctx, existing)
}

func (s *service) Get(ctx context.Context, id string) (core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Service.Get")
	defer span.End()

	return s.repository.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, application string, activeOnly bool) ([]core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Service.List")
	defer span.End()

	return s.repository.List(ctx, application, activeOnly)
}

// Invalidate drops the cached payloads for a route. Callers pass the
// route record so name-keyed entries can be purged too.
func (s *service) Invalidate(ctx context.Context, route core.Route) error {
	ctx, span := tracer.Start(ctx, "Route.Service.Invalidate")
	defer span.End()

	keys := []string{endpointIDKey(route.ID)}
	if route.Action != "" {
		keys = append(keys, endpointNameKey(strings.ToUpper(route.Method), route.Action))
	}
	s.repository.PurgeEndpoint(ctx, keys...)

	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Route.Service.Count")
	defer span.End()

	return s.repository.Count(ctx)
}
