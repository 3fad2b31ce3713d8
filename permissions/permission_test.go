package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombooking/permissions"
)

func TestGet_Embedded(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path, method   string
		guest, session bool
	}{
		{path: "/", method: http.MethodPost, session: true},
		{path: "/my-bookings/{id}", method: http.MethodDelete, session: true},
		{path: "/auth/login", method: http.MethodPost, guest: true},
		{path: "/auth/register", method: http.MethodPost, guest: true},
		{path: "/all-rooms/", method: http.MethodGet},
		{path: "/auth/login", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			p := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.guest, p.Guest)
			assert.Equal(t, tt.session, p.Session)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte("{"))
	assert.Error(t, err)
}
