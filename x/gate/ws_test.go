package gate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aclgate/aclgate/core"
)

func newWSServer(t *testing.T, f *pipelineFixture) *httptest.Server {
	e := echo.New()
	service := NewService(f.repo, f.rule, f.throttle, core.NopSink{}, f.config)

	e.GET("/ws", func(c echo.Context) error {
		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}
		defer ws.Close()
		subject, _ := c.Get(core.SubjectIdCtxKey).(string)
		return ws.WriteMessage(websocket.TextMessage, []byte("hello "+subject))
	}, service.GuardWS)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server
}

func dialWS(t *testing.T, server *httptest.Server, header http.Header) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	assert.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestGuardWSMissingIdentity(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	server := newWSServer(t, f)
	conn := dialWS(t, server, nil)

	_, _, err := conn.ReadMessage()
	closeErr, ok := err.(*websocket.CloseError)
	if assert.True(t, ok) {
		assert.Equal(t, 4401, closeErr.Code)
	}
}

func TestGuardWSDenied(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.rule.EXPECT().
		Evaluate(gomock.Any(), "alice", "WS", "/ws", "").
		Return(core.Verdict{Allowed: false, Reason: core.ReasonExplicitDeny, MatchedEndpointID: "ep1"}, nil)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	server := newWSServer(t, f)
	conn := dialWS(t, server, http.Header{"x-user-id": []string{"alice"}})

	_, _, err := conn.ReadMessage()
	closeErr, ok := err.(*websocket.CloseError)
	if assert.True(t, ok) {
		assert.Equal(t, 4403, closeErr.Code)
		assert.Equal(t, core.ReasonExplicitDeny, closeErr.Text)
	}
}

func TestGuardWSAllowed(t *testing.T) {
	f, ctrl := newPipeline(t)
	defer ctrl.Finish()

	f.rule.EXPECT().
		Evaluate(gomock.Any(), "alice", "WS", "/ws", "").
		Return(core.Verdict{Allowed: true, Reason: core.ReasonExplicitAllow, MatchedEndpointID: "ep1"}, nil)
	f.repo.EXPECT().WriteAccessLog(gomock.Any(), gomock.Any()).Return(nil)

	server := newWSServer(t, f)
	conn := dialWS(t, server, http.Header{"x-user-id": []string{"alice"}})

	_, payload, err := conn.ReadMessage()
	assert.NoError(t, err)
	assert.Equal(t, "hello alice", string(payload))
}
