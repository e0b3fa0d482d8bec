package gate

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aclgate/aclgate/core"
	mock_core "github.com/aclgate/aclgate/core/mock"
	mock_gate "github.com/aclgate/aclgate/x/gate/mock"
)

type pipelineFixture struct {
	repo     *mock_gate.MockRepository
	rule     *mock_core.MockRuleService
	throttle *mock_core.MockThrottleService
	config   core.Config
}

func newPipeline(t *testing.T) (*pipelineFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	f := &pipelineFixture{
		repo:     mock_gate.NewMockRepository(ctrl),
		rule:     mock_core.NewMockRuleService(ctrl),
		throttle: mock_core.NewMockThrottleService(ctrl),
		config:   core.Config{}.Normalize(),
	}
	return f, ctrl
}

func (f *pipelineFixture) invoke(req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	service := NewService(f.repo, f.rule, f.throttle, core.NopSink{}, f.config)
	next := func(c echo.Context) error {
		return c.String(http.StatusOK, "passed")
	}
	_ = service.Enforce(next)(c)

	return rec, c
}

func TestEnforceBypassPrefix(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "passed", rec.Body.String())
}

func TestEnforceIdentityMissing(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), core.ReasonIdentityMissing)
}

func TestEnforceRateLimited(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: false, RetryAfter: 42, Message: core.MsgRateLimitExceeded})
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("x-user-id", "alice")
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "42", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), core.ReasonRateLimited)
}

func TestEnforceDenied(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: true})
	f.rule.EXPECT().Evaluate(gomock.Any(), "alice", "GET", "/reports", "").
		Return(core.Verdict{Allowed: false, Reason: core.ReasonExplicitDeny, MatchedEndpointID: "ep1"}, nil)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, log core.AccessLog) error {
			assert.False(t, log.Allowed)
			assert.Equal(t, core.ReasonExplicitDeny, log.Reason)
			assert.Equal(t, "alice", log.SubjectID)
			return nil
		})

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("x-user-id", "alice")
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), core.ReasonExplicitDeny)
}

func TestEnforceRouteNotRegistered(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: true})
	f.rule.EXPECT().Evaluate(gomock.Any(), "alice", "GET", "/unknown", "").
		Return(core.Verdict{Allowed: false, Reason: core.ReasonRouteNotRegistered}, nil)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	req.Header.Set("x-user-id", "alice")
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEnforceAllowedAttachesContext(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	endpoint := core.Endpoint{ID: "ep1", Method: "GET", PathPattern: "/reports"}
	verdict := core.Verdict{Allowed: true, Reason: core.ReasonExplicitAllow, MatchedEndpointID: "ep1", Endpoint: &endpoint}
	routes := []core.AllowedRoute{{EndpointID: "ep1", MethodEnc: "R"}}

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: true})
	f.rule.EXPECT().Evaluate(gomock.Any(), "alice", "GET", "/reports", "").
		Return(verdict, nil)
	f.rule.EXPECT().GetCachedRoutes(gomock.Any(), "alice", "").Return(routes, true)
	f.rule.EXPECT().MethodAllowed(gomock.Any(), routes, "ep1", "GET").Return(true)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("x-user-id", "alice")
	rec, c := f.invoke(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", c.Get(core.SubjectIdCtxKey))
	assert.Equal(t, verdict, c.Get(core.VerdictCtxKey))
	assert.Equal(t, endpoint, c.Get(core.EndpointCtxKey))
}

func TestEnforceMethodSubCheck(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	verdict := core.Verdict{Allowed: true, Reason: core.ReasonExplicitAllow, MatchedEndpointID: "ep1"}
	routes := []core.AllowedRoute{{EndpointID: "ep1", MethodEnc: "R"}}

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: true})
	f.rule.EXPECT().Evaluate(gomock.Any(), "alice", "DELETE", "/reports", "").
		Return(verdict, nil)
	f.rule.EXPECT().GetCachedRoutes(gomock.Any(), "alice", "").Return(routes, true)
	f.rule.EXPECT().MethodAllowed(gomock.Any(), routes, "ep1", "DELETE").Return(false)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/reports", nil)
	req.Header.Set("x-user-id", "alice")
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), core.ReasonMethodNotAllowed)
}

func TestEnforceStoreFailureFailsClosed(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: true})
	f.rule.EXPECT().Evaluate(gomock.Any(), "alice", "GET", "/reports", "").
		Return(core.Verdict{Allowed: false, Reason: core.ReasonInternalError}, core.NewErrorRuleStoreUnavailable())
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("x-user-id", "alice")
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), core.ReasonInternalError)
}

func TestEnforceLogWriteFailureDoesNotBlock(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	verdict := core.Verdict{Allowed: true, Reason: core.ReasonExplicitAllow, MatchedEndpointID: "ep1"}

	f.throttle.EXPECT().AllowRequest(gomock.Any(), "alice").
		Return(core.RateLimitResult{Allowed: true})
	f.rule.EXPECT().Evaluate(gomock.Any(), "alice", "GET", "/reports", "").
		Return(verdict, nil)
	f.rule.EXPECT().GetCachedRoutes(gomock.Any(), "alice", "").Return(nil, false)
	f.rule.EXPECT().BuildAllowedRoutes(gomock.Any(), "alice", "").Return(nil, nil)
	f.rule.EXPECT().MethodAllowed(gomock.Any(), gomock.Nil(), "ep1", "GET").Return(true)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	req.Header.Set("x-user-id", "alice")
	rec, _ := f.invoke(req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
