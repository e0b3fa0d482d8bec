package rule

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/aclgate/aclgate/core"
)

var tracer = otel.Tracer("rule")

type service struct {
	repository Repository
	route      core.RouteService
	config     core.Config
}

// NewService creates a new rule service
func NewService(repository Repository, route core.RouteService, config core.Config) core.RuleService {
	return &service{repository, route, config}
}

// Evaluate decides whether subject may invoke (method, path) within
// application. It never returns an error for a benign deny: errors
// mean the rule store itself failed, and the verdict is already the
// fail-closed deny the caller must use.
func (s *service) Evaluate(ctx context.Context, subject, method, path, application string) (core.Verdict, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.Evaluate")
	defer span.End()

	if subject == "" {
		return core.Verdict{Allowed: false, Reason: core.ReasonIdentityMissing}, nil
	}

	methodUpper := strings.ToUpper(method)

	endpoint, err := s.route.Resolve(ctx, methodUpper, path, application, "")
	if err != nil {
		if _, notFound := err.(core.ErrorEndpointNotFound); notFound {
			return core.Verdict{Allowed: false, Reason: core.ReasonRouteNotRegistered}, nil
		}
		span.RecordError(err)
		return core.Verdict{Allowed: false, Reason: core.ReasonInternalError}, errors.Wrap(err, "endpoint resolution failed")
	}

	if allowed, hit := s.repository.GetVerdict(ctx, endpoint.ID, subject, methodUpper); hit {
		return core.Verdict{
			Allowed:           allowed,
			Reason:            core.ReasonCacheHit,
			MatchedEndpointID: endpoint.ID,
			Endpoint:          &endpoint,
		}, nil
	}

	verdict, err := s.decide(ctx, subject, methodUpper, application, endpoint)
	if err != nil {
		return verdict, err
	}

	s.repository.SetVerdict(ctx, endpoint.ID, subject, methodUpper, verdict.Allowed)

	return verdict, nil
}

func (s *service) decide(ctx context.Context, subject, method, application string, endpoint core.Endpoint) (core.Verdict, error) {
	deny := func(reason string) core.Verdict {
		return core.Verdict{Allowed: false, Reason: reason, MatchedEndpointID: endpoint.ID, Endpoint: &endpoint}
	}
	allow := func(reason string) core.Verdict {
		return core.Verdict{Allowed: true, Reason: reason, MatchedEndpointID: endpoint.ID, Endpoint: &endpoint}
	}

	if endpoint.IsIgnored {
		return allow(core.ReasonRouteIgnored), nil
	}

	roles, err := s.repository.ListSubjectRoles(ctx, subject, application)
	if err != nil {
		return deny(core.ReasonInternalError), errors.Wrap(core.NewErrorRuleStoreUnavailable(), err.Error())
	}

	for _, role := range roles {
		if role.IsSuperRole {
			return allow(core.ReasonSuperRole), nil
		}
	}

	rules, err := s.loadRules(ctx, endpoint.ID)
	if err != nil {
		return deny(core.ReasonInternalError), errors.Wrap(core.NewErrorRuleStoreUnavailable(), err.Error())
	}

	if s.config.PolicyShape == core.PolicyShapeTiered {
		return s.decideTiered(ctx, subject, roles, rules, allow, deny), nil
	}

	return s.decideRoles(roles, rules, allow, deny), nil
}

// decideRoles is the default deny-overrides-allow policy over the
// subject's role bindings.
func (s *service) decideRoles(roles []core.Role, rules []core.CachedRule, allow, deny func(string) core.Verdict) core.Verdict {
	if len(roles) == 0 {
		return deny(core.ReasonNoRoles)
	}

	roleIDs := make([]string, len(roles))
	for i, role := range roles {
		roleIDs[i] = role.ID
	}

	matched := false
	for _, rule := range rules {
		if rule.Kind != core.KindRole || !slices.Contains(roleIDs, rule.SubjectID) {
			continue
		}
		if !rule.Allow {
			return deny(core.ReasonExplicitDeny)
		}
		matched = true
	}
	if matched {
		return allow(core.ReasonExplicitAllow)
	}

	return deny(core.ReasonNoMatchingRule)
}

// decideTiered is the alternate strict-tier policy: user bindings
// outrank role bindings outrank team bindings; a tier with any
// applicable binding decides and lower tiers are never consulted.
func (s *service) decideTiered(ctx context.Context, subject string, roles []core.Role, rules []core.CachedRule, allow, deny func(string) core.Verdict) core.Verdict {
	if verdict, ok := selectRule(rules, core.KindUser, []string{subject}); ok {
		return tierVerdict(verdict, core.ReasonTierUser, allow, deny)
	}

	roleTags := make([]string, 0, len(roles)*2)
	for _, role := range roles {
		roleTags = append(roleTags, role.ID, role.Name)
	}
	if verdict, ok := selectRule(rules, core.KindRole, roleTags); ok {
		return tierVerdict(verdict, core.ReasonTierRole, allow, deny)
	}

	teams, err := s.repository.ListSubjectTeams(ctx, subject)
	if err != nil {
		// membership lookup failure skips the tier, it never allows
		teams = nil
	}
	if verdict, ok := selectRule(rules, core.KindTeam, teams); ok {
		return tierVerdict(verdict, core.ReasonTierTeam, allow, deny)
	}

	return deny(core.ReasonDefaultDeny)
}

func tierVerdict(allowed bool, reason string, allow, deny func(string) core.Verdict) core.Verdict {
	if allowed {
		return allow(reason)
	}
	return deny(reason)
}

// selectRule picks the winning rule of one tier: highest priority
// first, ties broken in favor of allow.
func selectRule(rules []core.CachedRule, kind string, subjectTags []string) (bool, bool) {
	var candidates []core.CachedRule
	for _, rule := range rules {
		if rule.Kind == kind && slices.Contains(subjectTags, rule.SubjectID) {
			candidates = append(candidates, rule)
		}
	}
	if len(candidates) == 0 {
		return false, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority > candidates[j].Priority
		}
		return candidates[i].Allow && !candidates[j].Allow
	})

	return candidates[0].Allow, true
}

// loadRules returns the endpoint's serialized rule set, read through
// the cache. Role bindings and priority bindings share one tagged
// shape so a cache hit is indistinguishable from a store read.
func (s *service) loadRules(ctx context.Context, endpointID string) ([]core.CachedRule, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.loadRules")
	defer span.End()

	if rules, hit := s.repository.GetRuleSet(ctx, endpointID); hit {
		return rules, nil
	}

	roleBindings, err := s.repository.ListRoleBindings(ctx, endpointID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	priorityBindings, err := s.repository.ListPriorityBindings(ctx, endpointID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	rules := make([]core.CachedRule, 0, len(roleBindings)+len(priorityBindings))
	for _, binding := range roleBindings {
		rules = append(rules, core.CachedRule{
			Kind:      core.KindRole,
			SubjectID: binding.RoleID,
			Allow:     binding.IsAllowed,
			Priority:  0,
		})
	}
	for _, binding := range priorityBindings {
		rules = append(rules, core.CachedRule{
			Kind:      binding.Kind,
			SubjectID: binding.SubjectID,
			Allow:     binding.Allow,
			Priority:  binding.Priority,
		})
	}

	s.repository.SetRuleSet(ctx, endpointID, rules)

	return rules, nil
}

// BuildAllowedRoutes computes and caches the subject's resolved route
// set under deny-overrides-allow, skipping ignored routes.
func (s *service) BuildAllowedRoutes(ctx context.Context, subject, application string) ([]core.AllowedRoute, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.BuildAllowedRoutes")
	defer span.End()

	roles, err := s.repository.ListSubjectRoles(ctx, subject, application)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if len(roles) == 0 {
		empty := []core.AllowedRoute{}
		s.repository.SetRouteSet(ctx, application, subject, empty)
		return empty, nil
	}

	roleIDs := make([]string, len(roles))
	isSuper := false
	for i, role := range roles {
		roleIDs[i] = role.ID
		if role.IsSuperRole {
			isSuper = true
		}
	}

	routes, err := s.route.List(ctx, application, true)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	bindings, err := s.repository.ListRoleBindingsForRoles(ctx, roleIDs)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	denied := map[string]bool{}
	allowed := map[string]bool{}
	for _, binding := range bindings {
		if binding.IsAllowed {
			allowed[binding.RouteID] = true
		} else {
			denied[binding.RouteID] = true
		}
	}

	result := []core.AllowedRoute{}
	seen := map[string]bool{}
	for _, route := range routes {
		if route.IsIgnored || denied[route.ID] {
			continue
		}
		if !isSuper && !allowed[route.ID] {
			continue
		}

		key := route.Application + ":" + route.Method + ":" + route.Path
		if seen[key] {
			continue
		}
		seen[key] = true

		result = append(result, core.AllowedRoute{
			Application:    route.Application,
			EndpointID:     route.ID,
			Path:           route.Path,
			NormalizedPath: route.NormalizedPath,
			Method:         route.Method,
			MethodEnc:      core.EncodeMethod(route.Method),
			IsSensitive:    route.IsSensitive,
		})
	}

	s.repository.SetRouteSet(ctx, application, subject, result)

	return result, nil
}

func (s *service) GetCachedRoutes(ctx context.Context, subject, application string) ([]core.AllowedRoute, bool) {
	ctx, span := tracer.Start(ctx, "Rule.Service.GetCachedRoutes")
	defer span.End()

	return s.repository.GetRouteSet(ctx, application, subject)
}

func (s *service) InvalidateRoutes(ctx context.Context, subject, application string) error {
	ctx, span := tracer.Start(ctx, "Rule.Service.InvalidateRoutes")
	defer span.End()

	return s.repository.PurgeRouteSet(ctx, application, subject)
}

// InvalidateEndpoint drops the endpoint's rule set and every cached
// verdict derived from it. The next evaluation re-reads the store.
func (s *service) InvalidateEndpoint(ctx context.Context, endpointID string) error {
	ctx, span := tracer.Start(ctx, "Rule.Service.InvalidateEndpoint")
	defer span.End()

	if err := s.repository.PurgeRuleSet(ctx, endpointID); err != nil {
		span.RecordError(err)
		return err
	}
	if err := s.repository.PurgeVerdicts(ctx, endpointID); err != nil {
		span.RecordError(err)
		return err
	}

	return nil
}

// MethodAllowed is the optional post-allow sub-check against the
// subject's cached route set. It is an optimization layer: an empty
// or unavailable set, or an endpoint absent from it, allows.
func (s *service) MethodAllowed(ctx context.Context, routes []core.AllowedRoute, endpointID, method string) bool {
	_, span := tracer.Start(ctx, "Rule.Service.MethodAllowed")
	defer span.End()

	if len(routes) == 0 {
		return true
	}

	encoded := core.EncodeMethod(method)
	for _, route := range routes {
		if route.EndpointID == endpointID {
			return strings.Contains(route.MethodEnc, encoded)
		}
	}

	return true
}

func (s *service) EnsureRole(ctx context.Context, name, application string, isSuperRole bool) (core.Role, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.EnsureRole")
	defer span.End()

	role, err := s.repository.GetRole(ctx, name, application)
	if err == nil {
		if role.IsSuperRole != isSuperRole {
			role.IsSuperRole = isSuperRole
			return s.repository.UpsertRole(ctx, role)
		}
		return role, nil
	}
	if _, notFound := err.(core.ErrorNotFound); !notFound {
		span.RecordError(err)
		return core.Role{}, err
	}

	return s.repository.UpsertRole(ctx, core.Role{
		Application: application,
		Name:        name,
		IsSuperRole: isSuperRole,
	})
}

func (s *service) AssignRole(ctx context.Context, subject, roleName, application string) (core.RoleAssignment, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.AssignRole")
	defer span.End()

	role, err := s.EnsureRole(ctx, roleName, application, false)
	if err != nil {
		span.RecordError(err)
		return core.RoleAssignment{}, err
	}

	assignment, err := s.repository.UpsertAssignment(ctx, core.RoleAssignment{
		SubjectID:   subject,
		Application: application,
		RoleID:      role.ID,
	})
	if err != nil {
		span.RecordError(err)
		return core.RoleAssignment{}, err
	}

	if err := s.repository.PurgeRouteSet(ctx, application, subject); err != nil {
		span.RecordError(err)
	}

	return assignment, nil
}

func (s *service) RevokeRole(ctx context.Context, subject, roleName, application string) error {
	ctx, span := tracer.Start(ctx, "Rule.Service.RevokeRole")
	defer span.End()

	role, err := s.repository.GetRole(ctx, roleName, application)
	if err != nil {
		return err
	}

	if err := s.repository.DeleteAssignment(ctx, subject, role.ID, application); err != nil {
		span.RecordError(err)
		return err
	}

	return s.repository.PurgeRouteSet(ctx, application, subject)
}

// BindRoute is last-write-wins on the (role, route) pair and pairs the
// write with invalidation of the affected caches.
func (s *service) BindRoute(ctx context.Context, roleName, application, routeID string, allow bool) (core.RoleBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.BindRoute")
	defer span.End()

	role, err := s.EnsureRole(ctx, roleName, application, false)
	if err != nil {
		span.RecordError(err)
		return core.RoleBinding{}, err
	}

	binding, err := s.repository.UpsertRoleBinding(ctx, core.RoleBinding{
		RoleID:    role.ID,
		RouteID:   routeID,
		IsAllowed: allow,
	})
	if err != nil {
		span.RecordError(err)
		return core.RoleBinding{}, err
	}

	if err := s.InvalidateEndpoint(ctx, routeID); err != nil {
		span.RecordError(err)
	}

	return binding, nil
}

func (s *service) BindPriority(ctx context.Context, kind, subjectID, routeID string, allow bool, priority int) (core.PriorityBinding, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.BindPriority")
	defer span.End()

	binding, err := s.repository.CreatePriorityBinding(ctx, core.PriorityBinding{
		RouteID:   routeID,
		Kind:      kind,
		SubjectID: subjectID,
		Allow:     allow,
		Priority:  priority,
	})
	if err != nil {
		span.RecordError(err)
		return core.PriorityBinding{}, err
	}

	if err := s.InvalidateEndpoint(ctx, routeID); err != nil {
		span.RecordError(err)
	}

	return binding, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Rule.Service.Count")
	defer span.End()

	return s.repository.CountBindings(ctx)
}
