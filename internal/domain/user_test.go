package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		user      *User
		wantError bool
	}{
		{
			name: "valid user",
			user: NewUser("jsmith", "$2a$10$somehash", []string{"jsmith@example.com"}),
		},
		{
			name: "no email addresses is allowed",
			user: NewUser("jsmith", "$2a$10$somehash", nil),
		},
		{
			name:      "missing userName",
			user:      NewUser("", "$2a$10$somehash", nil),
			wantError: true,
		},
		{
			name:      "missing password hash",
			user:      NewUser("jsmith", "", nil),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserJSONNeverIncludesPassword(t *testing.T) {
	t.Parallel()

	user := NewUser("jsmith", "$2a$10$somehash", []string{"jsmith@example.com"})

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "somehash")
	assert.NotContains(t, string(encoded), "password")
	assert.Contains(t, string(encoded), `"userName":"jsmith"`)
}
