package cli_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	urfave "github.com/urfave/cli/v2"
	"go.uber.org/mock/gomock"

	"roombooking/config"
	"roombooking/infras/otel/mocks"
	authDto "roombooking/internal/domains/auth/model/dto"
	authMocks "roombooking/internal/domains/auth/mocks"
	bookingMocks "roombooking/internal/domains/booking/mocks"
	"roombooking/internal/domains/booking/model"
	bookingDto "roombooking/internal/domains/booking/model/dto"
	roomMocks "roombooking/internal/domains/room/mocks"
	roomDto "roombooking/internal/domains/room/model/dto"
	sessionModel "roombooking/internal/domains/session/model"
	sessionMocks "roombooking/internal/domains/session/mocks"
	"roombooking/shared/constant"
	"roombooking/shared/failure"
	"roombooking/shared/timezone"
	"roombooking/transport/cli"
)

type fixture struct {
	auth     *authMocks.MockAuthService
	rooms    *roomMocks.MockRoomService
	bookings *bookingMocks.MockBookingService
	sessions *sessionMocks.MockSessionService
	out      *bytes.Buffer
	cli      *cli.CLI
}

func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		auth:     authMocks.NewMockAuthService(ctrl),
		rooms:    roomMocks.NewMockRoomService(ctrl),
		bookings: bookingMocks.NewMockBookingService(ctrl),
		sessions: sessionMocks.NewMockSessionService(ctrl),
		out:      &bytes.Buffer{},
	}

	f.sessions.EXPECT().Init(gomock.Any()).Return(nil)

	cfg := &config.Config{}
	cfg.App.Name = "roombooking"

	f.cli = cli.New(cfg, f.auth, f.rooms, f.bookings, f.sessions, mocks.NewOtel())
	f.cli.SetOutput(f.out)

	return f
}

func exitCode(err error) int {
	var coder urfave.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return -1
}

func TestCLI_Book(t *testing.T) {
	sess := sessionModel.Session{User: sessionModel.User{ID: "7"}, Token: "abc123"}

	t.Run("every day booked", func(t *testing.T) {
		f := setup(t)

		f.sessions.EXPECT().Current().Return(sess, true)
		f.bookings.EXPECT().
			Submit(gomock.Any(), &sess, bookingDto.SubmitBookingRequest{RoomID: "3", StartDate: "2024-03-05", EndDate: "2024-03-06"}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sessionModel.Session, _ bookingDto.SubmitBookingRequest, onSuccess model.OnSuccess) (bookingDto.SubmitBookingResponse, error) {
				onSuccess(model.OccupiedDate{ID: "11", Date: "2024-03-05"})
				onSuccess(model.OccupiedDate{ID: "12", Date: "2024-03-06"})

				return bookingDto.SubmitBookingResponse{
					Total:     2,
					Succeeded: []bookingDto.DayResult{{Date: "2024-03-05"}, {Date: "2024-03-06"}},
				}, nil
			})

		err := f.cli.Run(context.Background(), []string{"roombooking", "book", "--room", "3", "--start", "2024-03-05", "--end", "2024-03-06"})
		require.NoError(t, err)

		assert.Equal(t, "booked 2024-03-05 (booking 11)\nbooked 2024-03-06 (booking 12)\n2 of 2 days booked\n", f.out.String())
	})

	t.Run("some days failed", func(t *testing.T) {
		f := setup(t)

		f.sessions.EXPECT().Current().Return(sess, true)
		f.bookings.EXPECT().Submit(gomock.Any(), &sess, gomock.Any(), gomock.Any()).Return(bookingDto.SubmitBookingResponse{
			Total:     2,
			Succeeded: []bookingDto.DayResult{{Date: "2024-03-05"}},
			Failed:    []bookingDto.DayResult{{Date: "2024-03-06", StatusCode: http.StatusBadRequest, Error: "already booked"}},
		}, nil)

		err := f.cli.Run(context.Background(), []string{"roombooking", "book", "--room", "3", "--start", "2024-03-05", "--end", "2024-03-06"})

		assert.Equal(t, 2, exitCode(err))
		assert.Contains(t, f.out.String(), "1 of 2 days booked")
		assert.Contains(t, f.out.String(), "failed 2024-03-06: already booked")
	})

	t.Run("signed out", func(t *testing.T) {
		f := setup(t)

		f.sessions.EXPECT().Current().Return(sessionModel.Session{}, false)
		f.bookings.EXPECT().Submit(gomock.Any(), nil, gomock.Any(), gomock.Any()).
			Return(bookingDto.SubmitBookingResponse{}, failure.Redirect(constant.RouteAuth))

		err := f.cli.Run(context.Background(), []string{"roombooking", "book", "--room", "3", "--start", "2024-03-05"})

		require.Error(t, err)
		assert.Equal(t, 1, exitCode(err))
		assert.Contains(t, err.Error(), "login")
	})

	t.Run("start defaults to today", func(t *testing.T) {
		f := setup(t)

		today := timezone.FormatDate(timezone.Today())

		f.sessions.EXPECT().Current().Return(sess, true)
		f.bookings.EXPECT().
			Submit(gomock.Any(), &sess, bookingDto.SubmitBookingRequest{RoomID: "3", StartDate: today}, gomock.Any()).
			Return(bookingDto.SubmitBookingResponse{Total: 1, Succeeded: []bookingDto.DayResult{{Date: today}}}, nil)

		err := f.cli.Run(context.Background(), []string{"roombooking", "book", "--room", "3"})
		require.NoError(t, err)

		assert.Contains(t, f.out.String(), "1 of 1 days booked")
	})
}

func TestCLI_Login(t *testing.T) {
	f := setup(t)

	f.auth.EXPECT().
		Login(gomock.Any(), authDto.LoginRequest{Email: "ana@example.com", Password: "secret"}).
		Return(authDto.SessionResponse{Username: "ana"}, nil)

	err := f.cli.Run(context.Background(), []string{"roombooking", "login", "--email", "ana@example.com", "--password", "secret"})
	require.NoError(t, err)

	assert.Equal(t, "signed in as ana\n", f.out.String())
}

func TestCLI_LoginRejected(t *testing.T) {
	f := setup(t)

	f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(authDto.SessionResponse{}, failure.Unauthorized("invalid email or password"))

	err := f.cli.Run(context.Background(), []string{"roombooking", "login", "--email", "ana@example.com", "--password", "nope"})

	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestCLI_Rooms(t *testing.T) {
	f := setup(t)

	f.rooms.EXPECT().GetAll(gomock.Any(), roomDto.GetRoomsRequest{Type: "suite"}).Return(roomDto.GetRoomsResponse{
		Rooms: []roomDto.RoomResponse{
			{ID: "3", Name: "Sea view", Type: "suite", PricePerNight: 120, Currency: "EUR", MaxOccupancy: 2},
		},
		TotalData: 1,
	}, nil)

	err := f.cli.Run(context.Background(), []string{"roombooking", "rooms", "--type", "suite"})
	require.NoError(t, err)

	assert.Contains(t, f.out.String(), "Sea view")
	assert.Contains(t, f.out.String(), "120 EUR")
}

func TestCLI_Bookings(t *testing.T) {
	sess := sessionModel.Session{User: sessionModel.User{ID: "7"}, Token: "abc123"}

	f := setup(t)

	f.sessions.EXPECT().Current().Return(sess, true)
	f.bookings.EXPECT().GetMine(gomock.Any(), &sess).Return(bookingDto.GetBookingsResponse{
		Bookings: []bookingDto.BookingResponse{{ID: "41", RoomID: "3", Date: "2024-03-05"}},
	}, nil)

	require.NoError(t, f.cli.Run(context.Background(), []string{"roombooking", "bookings"}))
	assert.Contains(t, f.out.String(), "2024-03-05")
}

func TestCLI_Cancel(t *testing.T) {
	sess := sessionModel.Session{User: sessionModel.User{ID: "7"}, Token: "abc123"}

	f := setup(t)

	f.sessions.EXPECT().Current().Return(sess, true)
	f.bookings.EXPECT().Cancel(gomock.Any(), &sess, "41").Return(nil)

	require.NoError(t, f.cli.Run(context.Background(), []string{"roombooking", "cancel", "--id", "41"}))
	assert.Equal(t, "cancelled booking 41\n", f.out.String())
}
