package gen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolshop/seedgen/pkg/types"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func TestUsers(t *testing.T) {
	cfg := testConfig()
	src := NewSource(cfg)
	users := Users(src, cfg.NumUsers)
	require.Len(t, users, cfg.NumUsers)

	seenEmails := make(map[string]struct{}, len(users))
	seenIDs := make(map[string]struct{}, len(users))
	for _, u := range users {
		assert.Len(t, u.ID, 26)
		_, dup := seenIDs[u.ID]
		assert.False(t, dup, "duplicate id %s", u.ID)
		seenIDs[u.ID] = struct{}{}

		assert.Regexp(t, emailRe, u.Email)
		_, dup = seenEmails[u.Email]
		assert.False(t, dup, "duplicate email %s", u.Email)
		seenEmails[u.Email] = struct{}{}

		assert.Contains(t, types.UserRoles, u.Role)
		if u.Role == types.RoleAdmin {
			assert.True(t, u.Enabled, "admin %s must be enabled", u.Email)
		}
		if u.Enabled {
			assert.Zero(t, u.FailedLoginAttempts)
		}
		if u.Provider != "" {
			assert.Contains(t, types.SocialProviders, u.Provider)
			assert.NotEmpty(t, u.UID)
		} else {
			assert.Empty(t, u.UID)
		}
		if u.TOTPEnabled {
			assert.NotEmpty(t, u.TOTPSecret)
			assert.NotEmpty(t, u.TOTPVerifiedAt)
		}
		assert.NotEmpty(t, u.CreatedAt)
		assert.LessOrEqual(t, u.CreatedAt, u.UpdatedAt)
	}
}

func TestUsersDeterministic(t *testing.T) {
	cfg := testConfig()
	a := Users(NewSource(cfg), cfg.NumUsers)
	b := Users(NewSource(cfg), cfg.NumUsers)
	assert.Equal(t, a, b)
}
