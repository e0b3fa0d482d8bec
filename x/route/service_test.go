package route

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aclgate/aclgate/core"
	mock_route "github.com/aclgate/aclgate/x/route/mock"
)

func TestResolveExactMatch(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNormalizedPath(gomock.Any(), "", "/users", "GET").
		Return(core.Route{ID: "r0", Path: "/users", Method: "GET", Service: "users"}, nil)
	mockRepo.EXPECT().SetCachedEndpoint(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	service := NewService(mockRepo, core.Config{})

	endpoint, err := service.Resolve(ctx, "get", "/users/", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "r0", endpoint.ID)
	assert.Equal(t, "GET", endpoint.Method)
}

func TestResolvePatternFallback(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNormalizedPath(gomock.Any(), "", "/users/42", "GET").
		Return(core.Route{}, core.NewErrorNotFound())
	mockRepo.EXPECT().
		ListActive(gomock.Any(), "").
		Return([]core.Route{
			{ID: "r1", Path: "/users/{id}", Method: "POST"},
			{ID: "r2", Path: "/users/{id}", Method: "GET"},
			{ID: "r3", Path: "/orders/{id}", Method: "GET"},
		}, nil)
	mockRepo.EXPECT().SetCachedEndpoint(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	service := NewService(mockRepo, core.Config{})

	endpoint, err := service.Resolve(ctx, "GET", "/users/42", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "r2", endpoint.ID)
}

func TestResolveNotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByNormalizedPath(gomock.Any(), "", "/nope", "GET").
		Return(core.Route{}, core.NewErrorNotFound())
	mockRepo.EXPECT().
		ListActive(gomock.Any(), "").
		Return([]core.Route{}, nil)

	service := NewService(mockRepo, core.Config{})

	_, err := service.Resolve(ctx, "GET", "/nope", "", "")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorEndpointNotFound{}, err)
}

func TestResolveNameFastPath(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cached := core.Endpoint{ID: "r9", Method: "GET", PathPattern: "/reports/{id}"}

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetCachedEndpoint(gomock.Any(), "route:name:GET:report-detail").
		Return(cached, true)

	service := NewService(mockRepo, core.Config{})

	endpoint, err := service.Resolve(ctx, "GET", "/reports/3", "", "report-detail")
	assert.NoError(t, err)
	assert.Equal(t, cached, endpoint)
}

func TestRegisterNormalizesAndActivates(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, route core.Route) (core.Route, error) {
			assert.Equal(t, "POST", route.Method)
			assert.Equal(t, "/users", route.NormalizedPath)
			assert.True(t, route.IsActive)
			route.ID = "r5"
			return route, nil
		})
	mockRepo.EXPECT().PurgeEndpoint(gomock.Any(), "route:id:r5")

	service := NewService(mockRepo, core.Config{})

	created, err := service.Register(ctx, core.Route{Path: "/users/", Method: "post"})
	assert.NoError(t, err)
	assert.Equal(t, "r5", created.ID)
}

func TestDeactivatePurgesNamedPayload(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByID(gomock.Any(), "r7").
		Return(core.Route{ID: "r7", Method: "GET", Action: "report-detail"}, nil)
	mockRepo.EXPECT().SetActive(gomock.Any(), "r7", false).Return(nil)
	mockRepo.EXPECT().PurgeEndpoint(gomock.Any(), "route:id:r7", "route:name:GET:report-detail")

	service := NewService(mockRepo, core.Config{})

	assert.NoError(t, service.Deactivate(ctx, "r7"))
}

func TestDeactivateUnknownRoute(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_route.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		GetByID(gomock.Any(), "nope").
		Return(core.Route{}, core.NewErrorNotFound())

	service := NewService(mockRepo, core.Config{})

	err := service.Deactivate(ctx, "nope")
	assert.IsType(t, core.ErrorNotFound{}, err)
}
