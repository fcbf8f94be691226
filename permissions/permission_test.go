package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{name: "login is public", path: "/v1/auth/login", method: http.MethodPost, skip: true},
		{name: "user management is admin only", path: "/v1/users/", method: http.MethodGet, roles: []string{"admin"}},
		{name: "room deletion is admin only", path: "/v1/rooms/{id}", method: http.MethodDelete, roles: []string{"admin"}},
		{name: "booking transition is open to staff", path: "/v1/bookings/{id}/status", method: http.MethodPatch},
		{name: "method must match", path: "/v1/auth/login", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.ElementsMatch(t, tt.roles, permission.Permissions)
		})
	}
}

func TestParse(t *testing.T) {
	_, err := permissions.Parse([]byte("{"))

	assert.Error(t, err)
}
