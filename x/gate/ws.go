package gate

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/aclgate/aclgate/core"
)

// Close codes mirror the HTTP statuses the plain middleware would
// return for the same denial.
const (
	wsCloseUnauthorized = 4401
	wsCloseForbidden    = 4403
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GuardWS evaluates upgrade requests under the synthetic "WS" method.
// A denied connection is still upgraded so the close code reaches the
// client, since handshake-time HTTP statuses are invisible to most
// websocket clients.
func (s *service) GuardWS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, span := tracer.Start(c.Request().Context(), "Gate.Service.GuardWS")
		defer span.End()
		c.SetRequest(c.Request().WithContext(ctx))

		path := c.Request().URL.Path
		subject := c.Request().Header.Get(s.config.SubjectHeader)
		application := c.Request().Header.Get(s.config.ApplicationHeader)
		if application == "" {
			application = s.config.DefaultApplication
		}

		if subject == "" {
			return closeWithCode(c, wsCloseUnauthorized, "identity required")
		}

		verdict, err := s.rule.Evaluate(ctx, subject, "WS", path, application)
		event := core.AccessEvent{
			Allowed:           verdict.Allowed,
			Reason:            verdict.Reason,
			SubjectID:         subject,
			Application:       application,
			Method:            "WS",
			Path:              path,
			MatchedEndpointID: verdict.MatchedEndpointID,
		}
		s.observe(c, event)

		if err != nil {
			span.RecordError(err)
			return closeWithCode(c, wsCloseForbidden, "access check failed")
		}
		if !verdict.Allowed {
			return closeWithCode(c, wsCloseForbidden, verdict.Reason)
		}

		c.Set(core.SubjectIdCtxKey, subject)
		c.Set(core.ApplicationCtxKey, application)
		c.Set(core.VerdictCtxKey, verdict)

		return next(c)
	}
}

func closeWithCode(c echo.Context, code int, reason string) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.WarnContext(c.Request().Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return nil
	}
	defer ws.Close()

	message := websocket.FormatCloseMessage(code, reason)
	if err := ws.WriteControl(websocket.CloseMessage, message, time.Now().Add(5*time.Second)); err != nil {
		slog.WarnContext(c.Request().Context(), "websocket close failed", slog.String("error", err.Error()))
	}

	return nil
}
