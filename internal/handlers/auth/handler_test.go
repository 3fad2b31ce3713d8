package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"roombooking/infras/otel/mocks"
	"roombooking/internal/domains/auth/model/dto"
	authMocks "roombooking/internal/domains/auth/mocks"
	"roombooking/internal/handlers/auth"
	"roombooking/shared/failure"
)

func setup(t *testing.T) (*authMocks.MockAuthService, http.Handler) {
	t.Helper()

	svc := authMocks.NewMockAuthService(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mock       func(svc *authMocks.MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"email":"ana@example.com","password":"secret"}`,
			mock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().
					Login(gomock.Any(), dto.LoginRequest{Email: "ana@example.com", Password: "secret"}).
					Return(dto.SessionResponse{ID: "7", Email: "ana@example.com"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"7"`,
		},
		{
			name:       "invalid email",
			body:       `{"email":"ana","password":"secret"}`,
			mock:       func(*authMocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			body: `{"email":"ana@example.com","password":"nope"}`,
			mock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.SessionResponse{}, failure.Unauthorized("invalid email or password"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "invalid email or password",
		},
		{
			name: "already signed in",
			body: `{"email":"ana@example.com","password":"secret"}`,
			mock: func(svc *authMocks.MockAuthService) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.SessionResponse{}, failure.GuestOnlyError)
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.mock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_Register(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "longenough",
	}).Return(dto.SessionResponse{ID: "8", Username: "ana"}, nil)

	body := `{"username":"ana","email":"ana@example.com","password":"longenough"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"ana"`)
}

func TestHandler_LogoutAndSession(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Logout(gomock.Any()).Return(nil)
	svc.EXPECT().Current(gomock.Any()).Return(dto.SessionResponse{}, failure.SessionRequiredError)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/session", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
