//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package rule

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"gorm.io/gorm"

	"github.com/aclgate/aclgate/core"
)

// Repository reads bindings and assignments from the rule store and
// memoizes rule sets, verdicts, and route sets in redis. Every cache
// operation fails soft: a backend fault is a miss on read and a no-op
// on write, and the store remains the source of truth.
type Repository interface {
	ListSubjectRoles(ctx context.Context, subject, application string) ([]core.Role, error)
	ListSubjectTeams(ctx context.Context, subject string) ([]string, error)
	ListRoleBindings(ctx context.Context, routeID string) ([]core.RoleBinding, error)
	ListRoleBindingsForRoles(ctx context.Context, roleIDs []string) ([]core.RoleBinding, error)
	ListPriorityBindings(ctx context.Context, routeID string) ([]core.PriorityBinding, error)

	GetRuleSet(ctx context.Context, endpointID string) ([]core.CachedRule, bool)
	SetRuleSet(ctx context.Context, endpointID string, rules []core.CachedRule)
	PurgeRuleSet(ctx context.Context, endpointID string) error

	GetVerdict(ctx context.Context, endpointID, subject, method string) (bool, bool)
	SetVerdict(ctx context.Context, endpointID, subject, method string, allowed bool)
	PurgeVerdicts(ctx context.Context, endpointID string) error

	GetRouteSet(ctx context.Context, application, subject string) ([]core.AllowedRoute, bool)
	SetRouteSet(ctx context.Context, application, subject string, routes []core.AllowedRoute)
	PurgeRouteSet(ctx context.Context, application, subject string) error

	GetRole(ctx context.Context, name, application string) (core.Role, error)
	UpsertRole(ctx context.Context, role core.Role) (core.Role, error)
	UpsertAssignment(ctx context.Context, assignment core.RoleAssignment) (core.RoleAssignment, error)
	DeleteAssignment(ctx context.Context, subject, roleID, application string) error
	UpsertRoleBinding(ctx context.Context, binding core.RoleBinding) (core.RoleBinding, error)
	CreatePriorityBinding(ctx context.Context, binding core.PriorityBinding) (core.PriorityBinding, error)
	CountBindings(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	rdb    *redis.Client
	config core.Config
}

// NewRepository creates a new rule repository
func NewRepository(db *gorm.DB, rdb *redis.Client, config core.Config) Repository {
	return &repository{db, rdb, config}
}

const (
	ruleSetPrefix  = "acl:endpoint:"
	verdictPrefix  = "acl:verdict:"
	routeSetPrefix = "acl:routes:"
)

func ruleSetKey(endpointID string) string {
	return ruleSetPrefix + endpointID
}

func verdictKey(endpointID, subject, method string) string {
	return verdictPrefix + endpointID + ":" + subject + ":" + method
}

func routeSetKey(application, subject string) string {
	app := application
	if app == "" {
		app = "default"
	}
	return routeSetPrefix + app + ":" + subject
}

func (r *repository) ListSubjectRoles(ctx context.Context, subject, application string) ([]core.Role, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ListSubjectRoles")
	defer span.End()

	var roles []core.Role
	err := r.db.WithContext(ctx).
		Model(&core.Role{}).
		Joins("JOIN role_assignments ON role_assignments.role_id = roles.id").
		Where("role_assignments.subject_id = ? AND role_assignments.application = ?", subject, application).
		Find(&roles).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return roles, nil
}

func (r *repository) ListSubjectTeams(ctx context.Context, subject string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ListSubjectTeams")
	defer span.End()

	var teams []string
	err := r.db.WithContext(ctx).
		Model(&core.TeamMembership{}).
		Where("subject_id = ?", subject).
		Pluck("team_id", &teams).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return teams, nil
}

func (r *repository) ListRoleBindings(ctx context.Context, routeID string) ([]core.RoleBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ListRoleBindings")
	defer span.End()

	var bindings []core.RoleBinding
	err := r.db.WithContext(ctx).Where("route_id = ?", routeID).Find(&bindings).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return bindings, nil
}

func (r *repository) ListRoleBindingsForRoles(ctx context.Context, roleIDs []string) ([]core.RoleBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ListRoleBindingsForRoles")
	defer span.End()

	if len(roleIDs) == 0 {
		return nil, nil
	}

	var bindings []core.RoleBinding
	err := r.db.WithContext(ctx).Where("role_id IN ?", roleIDs).Find(&bindings).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return bindings, nil
}

func (r *repository) ListPriorityBindings(ctx context.Context, routeID string) ([]core.PriorityBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.ListPriorityBindings")
	defer span.End()

	var bindings []core.PriorityBinding
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("priority DESC, id").
		Find(&bindings).Error
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return bindings, nil
}

func (r *repository) GetRuleSet(ctx context.Context, endpointID string) ([]core.CachedRule, bool) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.GetRuleSet")
	defer span.End()

	if r.rdb == nil {
		return nil, false
	}

	val, err := r.rdb.Get(ctx, ruleSetKey(endpointID)).Result()
	if err != nil {
		if err != redis.Nil {
			span.RecordError(err)
		}
		return nil, false
	}

	var rules []core.CachedRule
	if err := json.Unmarshal([]byte(val), &rules); err != nil {
		span.RecordError(err)
		return nil, false
	}

	return rules, true
}

func (r *repository) SetRuleSet(ctx context.Context, endpointID string, rules []core.CachedRule) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.SetRuleSet")
	defer span.End()

	if r.rdb == nil {
		return
	}

	value, err := json.Marshal(rules)
	if err != nil {
		span.RecordError(err)
		return
	}

	if err := r.rdb.Set(ctx, ruleSetKey(endpointID), value, r.config.CacheTTL()).Err(); err != nil {
		span.RecordError(err)
		slog.Warn("rule set cache write failed", slog.String("endpointId", endpointID), slog.String("error", err.Error()))
	}
}

func (r *repository) PurgeRuleSet(ctx context.Context, endpointID string) error {
	ctx, span := tracer.Start(ctx, "Rule.Repository.PurgeRuleSet")
	defer span.End()

	if r.rdb == nil {
		return nil
	}

	if err := r.rdb.Del(ctx, ruleSetKey(endpointID)).Err(); err != nil && err != redis.Nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) GetVerdict(ctx context.Context, endpointID, subject, method string) (bool, bool) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.GetVerdict")
	defer span.End()

	if r.rdb == nil {
		return false, false
	}

	val, err := r.rdb.Get(ctx, verdictKey(endpointID, subject, method)).Result()
	if err != nil {
		if err != redis.Nil {
			span.RecordError(err)
		}
		return false, false
	}

	return val == "1", true
}

func (r *repository) SetVerdict(ctx context.Context, endpointID, subject, method string, allowed bool) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.SetVerdict")
	defer span.End()

	if r.rdb == nil {
		return
	}

	value := "0"
	if allowed {
		value = "1"
	}

	if err := r.rdb.Set(ctx, verdictKey(endpointID, subject, method), value, r.config.CacheTTL()).Err(); err != nil {
		span.RecordError(err)
		slog.Warn("verdict cache write failed", slog.String("endpointId", endpointID), slog.String("error", err.Error()))
	}
}

// PurgeVerdicts walks every cached verdict for an endpoint. Scan keeps
// it incremental; the staleness window until completion is accepted.
func (r *repository) PurgeVerdicts(ctx context.Context, endpointID string) error {
	ctx, span := tracer.Start(ctx, "Rule.Repository.PurgeVerdicts")
	defer span.End()

	if r.rdb == nil {
		return nil
	}

	iter := r.rdb.Scan(ctx, 0, verdictPrefix+endpointID+":*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil && err != redis.Nil {
			span.RecordError(err)
			return err
		}
	}
	if err := iter.Err(); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) GetRouteSet(ctx context.Context, application, subject string) ([]core.AllowedRoute, bool) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.GetRouteSet")
	defer span.End()

	if r.rdb == nil {
		return nil, false
	}

	val, err := r.rdb.Get(ctx, routeSetKey(application, subject)).Result()
	if err != nil {
		if err != redis.Nil {
			span.RecordError(err)
		}
		return nil, false
	}

	var routes []core.AllowedRoute
	if err := json.Unmarshal([]byte(val), &routes); err != nil {
		span.RecordError(err)
		return nil, false
	}

	return routes, true
}

func (r *repository) SetRouteSet(ctx context.Context, application, subject string, routes []core.AllowedRoute) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.SetRouteSet")
	defer span.End()

	if r.rdb == nil {
		return
	}

	if routes == nil {
		routes = []core.AllowedRoute{}
	}

	value, err := json.Marshal(routes)
	if err != nil {
		span.RecordError(err)
		return
	}

	if err := r.rdb.Set(ctx, routeSetKey(application, subject), value, r.config.RouteSetTTL()).Err(); err != nil {
		span.RecordError(err)
		slog.Warn("route set cache write failed", slog.String("subject", subject), slog.String("error", err.Error()))
	}
}

func (r *repository) PurgeRouteSet(ctx context.Context, application, subject string) error {
	ctx, span := tracer.Start(ctx, "Rule.Repository.PurgeRouteSet")
	defer span.End()

	if r.rdb == nil {
		return nil
	}

	if err := r.rdb.Del(ctx, routeSetKey(application, subject)).Err(); err != nil && err != redis.Nil {
		span.RecordError(err)
		return err
	}

	return nil
}

func (r *repository) GetRole(ctx context.Context, name, application string) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.GetRole")
	defer span.End()

	var role core.Role
	err := r.db.WithContext(ctx).
		Where("name = ? AND application = ?", name, application).
		First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return core.Role{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Role{}, err
	}

	return role, nil
}

func (r *repository) UpsertRole(ctx context.Context, role core.Role) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.UpsertRole")
	defer span.End()

	if role.ID == "" {
		role.ID = xid.New().String()
		if err := r.db.WithContext(ctx).Create(&role).Error; err != nil {
			span.RecordError(err)
			return core.Role{}, err
		}
		return role, nil
	}

	if err := r.db.WithContext(ctx).Save(&role).Error; err != nil {
		span.RecordError(err)
		return core.Role{}, err
	}

	return role, nil
}

func (r *repository) UpsertAssignment(ctx context.Context, assignment core.RoleAssignment) (core.RoleAssignment, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.UpsertAssignment")
	defer span.End()

	var existing core.RoleAssignment
	err := r.db.WithContext(ctx).
		Where("subject_id = ? AND application = ? AND role_id = ?", assignment.SubjectID, assignment.Application, assignment.RoleID).
		First(&existing).Error
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		span.RecordError(err)
		return core.RoleAssignment{}, err
	}

	assignment.ID = xid.New().String()
	if err := r.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		span.RecordError(err)
		return core.RoleAssignment{}, err
	}

	return assignment, nil
}

func (r *repository) DeleteAssignment(ctx context.Context, subject, roleID, application string) error {
	ctx, span := tracer.Start(ctx, "Rule.Repository.DeleteAssignment")
	defer span.End()

	err := r.db.WithContext(ctx).
		Where("subject_id = ? AND role_id = ? AND application = ?", subject, roleID, application).
		Delete(&core.RoleAssignment{}).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// UpsertRoleBinding is last-write-wins on the (role, route) pair.
func (r *repository) UpsertRoleBinding(ctx context.Context, binding core.RoleBinding) (core.RoleBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.UpsertRoleBinding")
	defer span.End()

	var existing core.RoleBinding
	err := r.db.WithContext(ctx).
		Where("role_id = ? AND route_id = ?", binding.RoleID, binding.RouteID).
		First(&existing).Error
	if err == nil {
		existing.IsAllowed = binding.IsAllowed
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			span.RecordError(err)
			return core.RoleBinding{}, err
		}
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		span.RecordError(err)
		return core.RoleBinding{}, err
	}

	binding.ID = xid.New().String()
	if err := r.db.WithContext(ctx).Create(&binding).Error; err != nil {
		span.RecordError(err)
		return core.RoleBinding{}, err
	}

	return binding, nil
}

func (r *repository) CreatePriorityBinding(ctx context.Context, binding core.PriorityBinding) (core.PriorityBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.CreatePriorityBinding")
	defer span.End()

	binding.ID = xid.New().String()
	if err := r.db.WithContext(ctx).Create(&binding).Error; err != nil {
		span.RecordError(err)
		return core.PriorityBinding{}, err
	}

	return binding, nil
}

func (r *repository) CountBindings(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Rule.Repository.CountBindings")
	defer span.End()

	var roleBindings int64
	if err := r.db.WithContext(ctx).Model(&core.RoleBinding{}).Count(&roleBindings).Error; err != nil {
		span.RecordError(err)
		return 0, err
	}

	var priorityBindings int64
	if err := r.db.WithContext(ctx).Model(&core.PriorityBinding{}).Count(&priorityBindings).Error; err != nil {
		span.RecordError(err)
		return 0, err
	}

	return roleBindings + priorityBindings, nil
}
