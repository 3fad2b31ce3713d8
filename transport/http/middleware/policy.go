package middleware

import (
	"net/http"
	"roombooking/infras/otel"
	sessionService "roombooking/internal/domains/session/service"
	"roombooking/permissions"
	"roombooking/shared/constant"
	"roombooking/shared/failure"
	"roombooking/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// Policy enforces the per-route session requirements loaded from permissions.json.
type Policy interface {
	Guard(next http.Handler) http.Handler
}

type policyImpl struct {
	sessions   sessionService.Session
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewPolicyMiddleware(sessions sessionService.Session, otel otel.Otel, permission *permissions.PermissionData) Policy {
	return &policyImpl{
		sessions:   sessions,
		otel:       otel,
		permission: permission,
	}
}

// Guard answers 409 on guest routes when a session exists and redirects
// session routes to the sign-in page when none does.
func (m *policyImpl) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.permission == nil {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "policy.middleware")

		path := request.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.Routes != nil {
			if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != constant.Empty {
				path = pattern
			}
		}

		permission := m.permission.FindPermissions(path, request.Method)
		_, signedIn := m.sessions.Current()

		scope.SetAttributes(map[string]any{
			"middleware.type": "policy",
			"http.route":      path,
			"http.method":     request.Method,
			"session.present": signedIn,
		})

		var err error

		switch {
		case permission.Guest && signedIn:
			err = failure.GuestOnlyError
		case permission.Session && !signedIn:
			err = failure.Redirect(constant.RouteAuth)
		}

		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
