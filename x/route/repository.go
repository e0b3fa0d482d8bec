//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package route

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/rs/xid"
	"gorm.io/gorm"

	"github.com/aclgate/aclgate/core"
)

// Repository reads the route registry and keeps resolved endpoint
// payloads in memcache. Cache faults are absorbed: a failed get is a
// miss, a failed set is a no-op.
type Repository interface {
	GetByNormalizedPath(ctx context.Context, application, normalized, method string) (core.Route, error)
	GetByID(ctx context.Context, id string) (core.Route, error)
	ListActive(ctx context.Context, application string) ([]core.Route, error)
	List(ctx context.Context, application string, activeOnly bool) ([]core.Route, error)
	Upsert(ctx context.Context, route core.Route) (core.Route, error)
	SetActive(ctx context.Context, id string, active bool) error
	Count(ctx context.Context) (int64, error)

	GetCachedEndpoint(ctx context.Context, key string) (core.Endpoint, bool)
	SetCachedEndpoint(ctx context.Context, key string, endpoint core.Endpoint)
	PurgeEndpoint(ctx context.Context, keys ...string)
}

type repository struct {
	db     *gorm.DB
	mc     *memcache.Client
	config core.Config
}

// NewRepository creates a new route repository
func NewRepository(db *gorm.DB, mc *memcache.Client, config core.Config) Repository {
	return &repository{db, mc, config}
}

const (
	endpointNamePrefix = "route:name:"
	endpointIDPrefix   = "route:id:"
)

func endpointNameKey(method, routeName string) string {
	return endpointNamePrefix + method + ":" + routeName
}

func endpointIDKey(id string) string {
	return endpointIDPrefix + id
}

func (r *repository) GetByNormalizedPath(ctx context.Context, application, normalized, method string) (core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Repository.GetByNormalizedPath")
	defer span.End()

	var route core.Route
	err := r.db.WithContext(ctx).
		Where("application = ? AND normalized_path = ? AND method = ? AND is_active = ?", application, normalized, method, true).
		First(&route).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Route{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Route{}, err
	}

	return route, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Repository.GetByID")
	defer span.End()

	var route core.Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Route{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Route{}, err
	}

	return route, nil
}

func (r *repository) ListActive(ctx context.Context, application string) ([]core.Route, error) {
	return r.List(ctx, application, true)
}

func (r *repository) List(ctx context.Context, application string, activeOnly bool) ([]core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Repository.List")
	defer span.End()

	query := r.db.WithContext(ctx).Where("application = ?", application)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var routes []core.Route
	if err := query.Find(&routes).Error; err != nil {
		span.RecordError(err)
		return nil, err
	}

	return routes, nil
}

// Upsert creates or updates a route keyed by (application, path,
// method). The caller supplies the derived normalized path.
func (r *repository) Upsert(ctx context.Context, route core.Route) (core.Route, error) {
	ctx, span := tracer.Start(ctx, "Route.Repository.Upsert")
	defer span.End()

	var existing core.Route
	err := r.db.WithContext(ctx).
		Where("application = ? AND path = ? AND method = ?", route.Application, route.Path, route.Method).
		First(&existing).Error
	if err == nil {
		existing.NormalizedPath = route.NormalizedPath
		existing.Service = route.Service
		existing.Action = route.Action
		existing.IsActive = route.IsActive
		existing.IsSensitive = route.IsSensitive
		existing.IsIgnored = route.IsIgnored
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			span.RecordError(err)
			return core.Route{}, err
		}
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		span.RecordError(err)
		return core.Route{}, err
	}

	route.ID = xid.New().String()
	if err := r.db.WithContext(ctx).Create(&route).Error; err != nil {
		span.RecordError(err)
		return core.Route{}, err
	}

	return route, nil
}

func (r *repository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, span := tracer.Start(ctx, "Route.Repository.SetActive")
	defer span.End()

	result := r.db.WithContext(ctx).Model(&core.Route{}).Where("id = ?", id).Update("is_active", active)
	if result.Error != nil {
		span.RecordError(result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NewErrorNotFound()
	}

	return nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Route.Repository.Count")
	defer span.End()

	var count int64
	if err := r.db.WithContext(ctx).Model(&core.Route{}).Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, err
	}

	return count, nil
}

func (r *repository) GetCachedEndpoint(ctx context.Context, key string) (core.Endpoint, bool) {
	_, span := tracer.Start(ctx, "Route.Repository.GetCachedEndpoint")
	defer span.End()

	if r.mc == nil {
		return core.Endpoint{}, false
	}

	item, err := r.mc.Get(key)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			span.RecordError(err)
		}
		return core.Endpoint{}, false
	}

	var endpoint core.Endpoint
	if err := json.Unmarshal(item.Value, &endpoint); err != nil {
		span.RecordError(err)
		return core.Endpoint{}, false
	}

	return endpoint, true
}

func (r *repository) SetCachedEndpoint(ctx context.Context, key string, endpoint core.Endpoint) {
	_, span := tracer.Start(ctx, "Route.Repository.SetCachedEndpoint")
	defer span.End()

	if r.mc == nil {
		return
	}

	value, err := json.Marshal(endpoint)
	if err != nil {
		span.RecordError(err)
		return
	}

	err = r.mc.Set(&memcache.Item{
		Key:        key,
		Value:      value,
		Expiration: int32(r.config.CacheTTLSeconds),
	})
	if err != nil {
		span.RecordError(err)
		slog.Warn("endpoint cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (r *repository) PurgeEndpoint(ctx context.Context, keys ...string) {
	_, span := tracer.Start(ctx, "Route.Repository.PurgeEndpoint")
	defer span.End()

	if r.mc == nil {
		return
	}

	for _, key := range keys {
		err := r.mc.Delete(key)
		if err != nil && err != memcache.ErrCacheMiss {
			span.RecordError(err)
			slog.Warn("endpoint cache purge failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}
