package bookingapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/config"
	"roombooking/infras/bookingapi"
	"roombooking/infras/otel/mocks"
	"roombooking/shared/failure"
)

func newClient(t *testing.T, handler http.HandlerFunc) (bookingapi.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = srv.URL + "/"
	cfg.API.AuthScheme = "Token"
	cfg.API.TimeoutSeconds = 5

	return bookingapi.New(cfg, mocks.NewOtel()), srv
}

func TestClient_URLs(t *testing.T) {
	client, srv := newClient(t, func(w http.ResponseWriter, _ *http.Request) {})

	assert.Equal(t, srv.URL+"/rooms/3/", client.ResourceURL("rooms", "3"))
	assert.Equal(t, srv.URL+"/occupied-dates/", client.CollectionURL("occupied-dates"))
}

func TestClient_Post(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotHeader http.Header
		gotBody   map[string]string
	)

	client, srv := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotHeader = r.Header.Clone()

		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 12, "date": "2024-01-30"}`))
	})

	var out struct {
		ID   bookingapi.ID `json:"id"`
		Date string        `json:"date"`
	}

	body := map[string]string{"room": srv.URL + "/rooms/3/", "date": "2024-01-30"}

	err := client.Post(context.Background(), client.CollectionURL("occupied-dates"), "abc123", body, &out)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/occupied-dates/", gotPath)
	assert.Equal(t, "Token abc123", gotHeader.Get("Authorization"))
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.NotEmpty(t, gotHeader.Get("X-Request-ID"))
	assert.Equal(t, body, gotBody)
	assert.Equal(t, "12", out.ID.String())
	assert.Equal(t, "2024-01-30", out.Date)
}

func TestClient_NoCredential(t *testing.T) {
	var gotAuth string

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "rooms/1/", "", &out))
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode int
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"non_field_errors":["unique"]}`, wantCode: http.StatusBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"Invalid token."}`, wantCode: http.StatusUnauthorized},
		{name: "not found", status: http.StatusNotFound, body: ``, wantCode: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantCode: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := client.Post(context.Background(), "occupied-dates/", "abc123", map[string]string{}, nil)
			require.Error(t, err)

			var apiErr *bookingapi.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.body, apiErr.Body)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestClient_UndecodableBody(t *testing.T) {
	client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	var out map[string]any
	err := client.Get(context.Background(), "rooms/", "", &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode api response")
}

func TestClient_Unavailable(t *testing.T) {
	client, srv := newClient(t, func(w http.ResponseWriter, _ *http.Request) {})
	srv.Close()

	err := client.Delete(context.Background(), "occupied-dates/1/", "abc123")

	require.Error(t, err)
	assert.ErrorIs(t, err, bookingapi.ErrUnavailable)
}

func TestClient_Delete(t *testing.T) {
	var gotMethod string

	client, _ := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Delete(context.Background(), "occupied-dates/1/", "abc123"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestClient_GetList(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{name: "bare array", body: `[{"id":1},{"id":"2"}]`, want: []string{"1", "2"}},
		{name: "paginated", body: `{"count":2,"next":null,"results":[{"id":1},{"id":2}]}`, want: []string{"1", "2"}},
		{name: "empty", body: `[]`, want: []string{}},
		{name: "null results", body: `{"results":null}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			var out []struct {
				ID bookingapi.ID `json:"id"`
			}

			require.NoError(t, client.GetList(context.Background(), "rooms/", "", &out))

			got := make([]string, 0, len(out))
			for _, item := range out {
				got = append(got, item.ID.String())
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantURL string
	}{
		{name: "hyperlink", input: `"http://localhost:8000/rooms/3/"`, wantID: "3", wantURL: "http://localhost:8000/rooms/3/"},
		{name: "primary key", input: `3`, wantID: "3"},
		{name: "string key", input: `"3"`, wantID: "3"},
		{name: "null", input: `null`, wantID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref bookingapi.Ref

			require.NoError(t, json.Unmarshal([]byte(tt.input), &ref))
			assert.Equal(t, tt.wantID, ref.ID.String())
			assert.Equal(t, tt.wantURL, ref.URL)
		})
	}
}

func TestIDFromResourceURL(t *testing.T) {
	assert.Equal(t, "3", bookingapi.IDFromResourceURL("http://localhost:8000/rooms/3/"))
	assert.Equal(t, "3", bookingapi.IDFromResourceURL("http://localhost:8000/rooms/3"))
	assert.Equal(t, "3", bookingapi.IDFromResourceURL("3"))
}
