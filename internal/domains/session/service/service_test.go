package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roombooking/infras/otel/mocks"
	sessionMocks "roombooking/internal/domains/session/mocks"
	"roombooking/internal/domains/session/model"
	"roombooking/internal/domains/session/service"
)

var stored = model.Session{
	User:  model.User{ID: "7", Username: "jane", Email: "jane@example.com"},
	Token: "abc123",
}

func TestSessionService_Init(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *sessionMocks.MockSession)
		wantOK    bool
		wantErr   bool
	}{
		{
			name: "restores stored session",
			setupMock: func(repo *sessionMocks.MockSession) {
				repo.EXPECT().Load(gomock.Any()).Return(stored, true, nil)
			},
			wantOK: true,
		},
		{
			name: "no stored session",
			setupMock: func(repo *sessionMocks.MockSession) {
				repo.EXPECT().Load(gomock.Any()).Return(model.Session{}, false, nil)
			},
			wantOK: false,
		},
		{
			name: "load error",
			setupMock: func(repo *sessionMocks.MockSession) {
				repo.EXPECT().Load(gomock.Any()).Return(model.Session{}, false, errors.New("disk error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := sessionMocks.NewMockSession(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel())
			err := svc.Init(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			sess, ok := svc.Current()
			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, stored, sess)
			}
		})
	}
}

func TestSessionService_InitReadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sessionMocks.NewMockSession(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(stored, true, nil).Times(1)

	svc := service.New(repo, mocks.NewOtel())

	require.NoError(t, svc.Init(context.Background()))
	require.NoError(t, svc.Init(context.Background()))
}

func TestSessionService_SetAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(repo, mocks.NewOtel())
	ctx := context.Background()

	_, ok := svc.Current()
	assert.False(t, ok)

	repo.EXPECT().Store(gomock.Any(), stored).Return(nil)
	require.NoError(t, svc.Set(ctx, stored))

	sess, ok := svc.Current()
	assert.True(t, ok)
	assert.Equal(t, stored, sess)

	repo.EXPECT().Remove(gomock.Any()).Return(nil)
	require.NoError(t, svc.Clear(ctx))

	_, ok = svc.Current()
	assert.False(t, ok)
}

func TestSessionService_SetFailureKeepsPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sessionMocks.NewMockSession(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("read-only file system"))

	assert.Error(t, svc.Set(context.Background(), stored))

	_, ok := svc.Current()
	assert.False(t, ok)
}
