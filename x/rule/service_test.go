package rule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aclgate/aclgate/core"
	mock_core "github.com/aclgate/aclgate/core/mock"
	mock_rule "github.com/aclgate/aclgate/x/rule/mock"
)

type fixture struct {
	repo  *mock_rule.MockRepository
	route *mock_core.MockRouteService
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	return &fixture{
		repo:  mock_rule.NewMockRepository(ctrl),
		route: mock_core.NewMockRouteService(ctrl),
	}, ctrl
}

func (f *fixture) service(config core.Config) core.RuleService {
	return NewService(f.repo, f.route, config)
}

var viewEndpoint = core.Endpoint{ID: "ep1", PathPattern: "/reports", Method: "GET", Service: "reports"}

func TestEvaluateIdentityMissing(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonIdentityMissing, verdict.Reason)
}

func TestEvaluateRouteNotRegistered(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.route.EXPECT().
		Resolve(gomock.Any(), "GET", "/unknown", "", "").
		Return(core.Endpoint{}, core.NewErrorEndpointNotFound())

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/unknown", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonRouteNotRegistered, verdict.Reason)
}

func TestEvaluateRouteIgnored(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	ignored := viewEndpoint
	ignored.IsIgnored = true

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(ignored, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", true)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, core.ReasonRouteIgnored, verdict.Reason)
}

func TestEvaluateNoRoles(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return([]core.Role{}, nil)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(nil, false)
	f.repo.EXPECT().ListRoleBindings(gomock.Any(), "ep1").Return(nil, nil)
	f.repo.EXPECT().ListPriorityBindings(gomock.Any(), "ep1").Return(nil, nil)
	f.repo.EXPECT().SetRuleSet(gomock.Any(), "ep1", gomock.Any())
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", false)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonNoRoles, verdict.Reason)
}

func TestEvaluateSuperRole(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.route.EXPECT().Resolve(gomock.Any(), "DELETE", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "root", "DELETE").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "root", "").
		Return([]core.Role{{ID: "admin", Name: "ADMIN", IsSuperRole: true}}, nil)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "root", "DELETE", true)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "root", "DELETE", "/reports", "")
	assert.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, core.ReasonSuperRole, verdict.Reason)
}

func TestEvaluateDenyOverridesAllow(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "viewer", Name: "VIEWER"}, {ID: "intern", Name: "INTERN"}}
	rules := []core.CachedRule{
		{Kind: core.KindRole, SubjectID: "viewer", Allow: true},
		{Kind: core.KindRole, SubjectID: "intern", Allow: false},
	}

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(rules, true)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", false)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonExplicitDeny, verdict.Reason)
}

func TestEvaluateExplicitAllow(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "viewer", Name: "VIEWER"}}
	rules := []core.CachedRule{
		{Kind: core.KindRole, SubjectID: "viewer", Allow: true},
		{Kind: core.KindRole, SubjectID: "editor", Allow: false},
	}

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(rules, true)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", true)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, core.ReasonExplicitAllow, verdict.Reason)
}

func TestEvaluateNoMatchingRule(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "viewer", Name: "VIEWER"}}
	rules := []core.CachedRule{
		{Kind: core.KindRole, SubjectID: "editor", Allow: true},
	}

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(rules, true)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", false)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonNoMatchingRule, verdict.Reason)
}

func TestEvaluateCacheHit(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(true, true)

	verdict, err := f.service(core.Config{}).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, core.ReasonCacheHit, verdict.Reason)
	assert.Equal(t, "ep1", verdict.MatchedEndpointID)
}

func TestEvaluateTieredUserOutranksRole(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "editor", Name: "EDITOR"}}
	rules := []core.CachedRule{
		{Kind: core.KindRole, SubjectID: "editor", Allow: true, Priority: 10},
		{Kind: core.KindUser, SubjectID: "alice", Allow: false, Priority: 5},
	}

	config := core.Config{PolicyShape: core.PolicyShapeTiered}

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(rules, true)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", false)

	verdict, err := f.service(config).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonTierUser, verdict.Reason)
}

func TestEvaluateTieredPriorityAndTieBreak(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "editor", Name: "EDITOR"}}
	rules := []core.CachedRule{
		{Kind: core.KindRole, SubjectID: "editor", Allow: false, Priority: 1},
		{Kind: core.KindRole, SubjectID: "EDITOR", Allow: true, Priority: 1},
	}

	config := core.Config{PolicyShape: core.PolicyShapeTiered}

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(rules, true)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", true)

	// equal priority, allow wins the tie
	verdict, err := f.service(config).Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, core.ReasonTierRole, verdict.Reason)
}

func TestEvaluateTieredTeamTierAndDefaultDeny(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "editor", Name: "EDITOR"}}
	rules := []core.CachedRule{
		{Kind: core.KindTeam, SubjectID: "platform", Allow: true, Priority: 0},
	}

	config := core.Config{PolicyShape: core.PolicyShapeTiered}

	f.route.EXPECT().Resolve(gomock.Any(), "GET", "/reports", "", "").Return(viewEndpoint, nil).Times(2)
	f.repo.EXPECT().GetVerdict(gomock.Any(), "ep1", "alice", "GET").Return(false, false).Times(2)
	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil).Times(2)
	f.repo.EXPECT().GetRuleSet(gomock.Any(), "ep1").Return(rules, true).Times(2)

	gomock.InOrder(
		f.repo.EXPECT().ListSubjectTeams(gomock.Any(), "alice").Return([]string{"platform"}, nil),
		f.repo.EXPECT().ListSubjectTeams(gomock.Any(), "alice").Return([]string{}, nil),
	)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", true)
	f.repo.EXPECT().SetVerdict(gomock.Any(), "ep1", "alice", "GET", false)

	service := f.service(config)

	verdict, err := service.Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.True(t, verdict.Allowed)
	assert.Equal(t, core.ReasonTierTeam, verdict.Reason)

	verdict, err = service.Evaluate(context.Background(), "alice", "GET", "/reports", "")
	assert.NoError(t, err)
	assert.False(t, verdict.Allowed)
	assert.Equal(t, core.ReasonDefaultDeny, verdict.Reason)
}

func TestInvalidateEndpointForcesReload(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	service := f.service(core.Config{})

	f.repo.EXPECT().PurgeRuleSet(gomock.Any(), "ep1").Return(nil)
	f.repo.EXPECT().PurgeVerdicts(gomock.Any(), "ep1").Return(nil)

	assert.NoError(t, service.InvalidateEndpoint(context.Background(), "ep1"))
}

func TestBuildAllowedRoutes(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	roles := []core.Role{{ID: "viewer", Name: "VIEWER"}}
	routes := []core.Route{
		{ID: "r1", Path: "/reports", NormalizedPath: "/reports", Method: "GET"},
		{ID: "r2", Path: "/reports", NormalizedPath: "/reports", Method: "DELETE"},
		{ID: "r3", Path: "/ping", NormalizedPath: "/ping", Method: "GET", IsIgnored: true},
	}
	bindings := []core.RoleBinding{
		{RoleID: "viewer", RouteID: "r1", IsAllowed: true},
		{RoleID: "viewer", RouteID: "r2", IsAllowed: false},
	}

	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "alice", "").Return(roles, nil)
	f.route.EXPECT().List(gomock.Any(), "", true).Return(routes, nil)
	f.repo.EXPECT().ListRoleBindingsForRoles(gomock.Any(), []string{"viewer"}).Return(bindings, nil)
	f.repo.EXPECT().SetRouteSet(gomock.Any(), "", "alice", gomock.Any())

	result, err := f.service(core.Config{}).BuildAllowedRoutes(context.Background(), "alice", "")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "r1", result[0].EndpointID)
	assert.Equal(t, "R", result[0].MethodEnc)
}

func TestBuildAllowedRoutesNoRoles(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().ListSubjectRoles(gomock.Any(), "ghost", "").Return([]core.Role{}, nil)
	f.repo.EXPECT().SetRouteSet(gomock.Any(), "", "ghost", []core.AllowedRoute{})

	result, err := f.service(core.Config{}).BuildAllowedRoutes(context.Background(), "ghost", "")
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestMethodAllowed(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	service := f.service(core.Config{})
	ctx := context.Background()

	routes := []core.AllowedRoute{
		{EndpointID: "ep1", MethodEnc: "R"},
		{EndpointID: "ep2", MethodEnc: "CU"},
	}

	assert.True(t, service.MethodAllowed(ctx, routes, "ep1", "GET"))
	assert.False(t, service.MethodAllowed(ctx, routes, "ep1", "POST"))
	assert.True(t, service.MethodAllowed(ctx, routes, "ep2", "PUT"))
	// endpoints absent from the set are not restricted by it
	assert.True(t, service.MethodAllowed(ctx, routes, "ep9", "DELETE"))
	// an empty set restricts nothing
	assert.True(t, service.MethodAllowed(ctx, nil, "ep1", "DELETE"))
}
