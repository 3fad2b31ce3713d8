package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roombooking/config"
	"roombooking/infras/otel/mocks"
	sessionModel "roombooking/internal/domains/session/model"
	sessionMocks "roombooking/internal/domains/session/mocks"
	"roombooking/permissions"
	"roombooking/shared/cache"
	cacheMocks "roombooking/shared/cache/mocks"
	"roombooking/shared/constant"
	"roombooking/transport/http/middleware"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestPolicy_Guard(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		signedIn     bool
		wantStatus   int
		wantLocation string
	}{
		{name: "public route without session", method: http.MethodGet, path: "/all-rooms/", wantStatus: http.StatusOK},
		{name: "public route with session", method: http.MethodGet, path: "/all-rooms/3", signedIn: true, wantStatus: http.StatusOK},
		{name: "booking without session", method: http.MethodPost, path: "/", wantStatus: http.StatusSeeOther, wantLocation: constant.RouteAuth},
		{name: "booking with session", method: http.MethodPost, path: "/", signedIn: true, wantStatus: http.StatusOK},
		{name: "cancel without session", method: http.MethodDelete, path: "/my-bookings/41", wantStatus: http.StatusSeeOther, wantLocation: constant.RouteAuth},
		{name: "login as guest", method: http.MethodPost, path: "/auth/login", wantStatus: http.StatusOK},
		{name: "login with session", method: http.MethodPost, path: "/auth/login", signedIn: true, wantStatus: http.StatusConflict},
		{name: "register with session", method: http.MethodPost, path: "/auth/register", signedIn: true, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := sessionMocks.NewMockSessionService(gomock.NewController(t))
			sessions.EXPECT().Current().Return(sessionModel.Session{Token: "abc123"}, tt.signedIn).AnyTimes()

			guard := middleware.NewPolicyMiddleware(sessions, mocks.NewOtel(), permissions.Get())

			router := chi.NewRouter()
			router.Use(guard.Guard)
			router.Post("/", ok)
			router.Route("/all-rooms", func(r chi.Router) {
				r.Get("/", ok)
				r.Get("/{id}", ok)
			})
			router.Route("/my-bookings", func(r chi.Router) {
				r.Delete("/{id}", ok)
			})
			router.Route("/auth", func(r chi.Router) {
				r.Post("/login", ok)
				r.Post("/register", ok)
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(constant.RequestHeaderLocation))
		})
	}
}

func TestAppMiddleware_RateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enable = true
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name       string
		mock       func(c *cacheMocks.MockRedisCache)
		wantStatus int
		wantRemain string
	}{
		{
			name: "first request",
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantRemain: "1",
		},
		{
			name: "over the limit",
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*int)) = 2

						return nil
					})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "cache failure lets the request through",
			mock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.mock(c)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, c)
			handler := app.RateLimit()(http.HandlerFunc(ok))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/all-rooms", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantRemain, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestAppMiddleware_RateLimitDisabledWithoutCache(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true

	c := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, c)

	rec := httptest.NewRecorder()
	app.RateLimit()(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppMiddleware_RequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "req-1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(constant.RequestHeaderRequestID))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-1", seen)
}
