package repository_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/config"
	"roombooking/infras/bookingapi"
	"roombooking/infras/otel/mocks"
	"roombooking/internal/domains/booking/model"
	"roombooking/internal/domains/booking/repository"
	"roombooking/shared/failure"
)

func newRepository(t *testing.T, handler http.HandlerFunc) (repository.Booking, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL
	cfg.API.AuthScheme = "Token"

	client := bookingapi.New(cfg, mocks.NewOtel())

	return repository.New(client, mocks.NewOtel()), srv
}

func TestBookingRepository_Insert(t *testing.T) {
	var (
		got     model.ReservationRequest
		gotAuth string
		gotPath string
	)

	repo, srv := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":   41,
			"room": got.Room,
			"user": got.User,
			"date": got.Date,
		})
	})

	booked, err := repo.Insert(context.Background(), "abc123", "3", "7", "2024-03-05")
	require.NoError(t, err)

	assert.Equal(t, "/occupied-dates/", gotPath)
	assert.Equal(t, "Token abc123", gotAuth)
	assert.Equal(t, model.ReservationRequest{
		Room: srv.URL + "/rooms/3/",
		User: srv.URL + "/users/7/",
		Date: "2024-03-05",
	}, got)

	assert.Equal(t, "41", booked.ID.String())
	assert.Equal(t, "3", booked.Room.ID.String())
	assert.Equal(t, "7", booked.User.ID.String())
	assert.Equal(t, "2024-03-05", booked.Date)
}

func TestBookingRepository_InsertRejected(t *testing.T) {
	repo, _ := newRepository(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"non_field_errors":["The fields room, date must make a unique set."]}`))
	})

	_, err := repo.Insert(context.Background(), "abc123", "3", "7", "2024-03-05")

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingRepository_GetAll(t *testing.T) {
	repo, _ := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[{"id":1,"room":"http://api/rooms/3/","user":"http://api/users/7/","date":"2024-03-05"}]`))
	})

	bookings, err := repo.GetAll(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "3", bookings[0].Room.ID.String())
}

func TestBookingRepository_Delete(t *testing.T) {
	var gotPath string

	repo, _ := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, repo.Delete(context.Background(), "abc123", "41"))
	assert.Equal(t, "/occupied-dates/41/", gotPath)
}
