package password_test

import (
	"hotel/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		plain   string
		wantErr error
	}{
		{name: "valid", plain: "admin123"},
		{name: "empty", plain: "", wantErr: password.ErrEmptyPassword},
		{name: "too short", plain: "abc", wantErr: password.ErrTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.plain)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.plain, hash)
			assert.NoError(t, password.Verify(tt.plain, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("admin123")
	require.NoError(t, err)

	assert.ErrorIs(t, password.Verify("admin124", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("admin123", ""), password.ErrInvalidPassword)
	assert.Error(t, password.Verify("admin123", "not-a-bcrypt-hash"))
}

func TestNeedsRehash(t *testing.T) {
	weak, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	strong, err := password.Hash("admin123")
	require.NoError(t, err)

	assert.True(t, password.NeedsRehash(string(weak)))
	assert.False(t, password.NeedsRehash(strong))
	assert.True(t, password.NeedsRehash("garbage"))
}
