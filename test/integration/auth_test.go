package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibrarianAuth(t *testing.T) {
	base := baseURL(t)

	t.Run("register and login", func(t *testing.T) {
		email, token := registerLibrarian(t, "auth")
		assert.NotEmpty(t, email)
		assert.NotEmpty(t, token)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		resp := postJSON(t, base+"/librarians/register", map[string]string{
			"email":    uniqueEmail("weak"),
			"password": "password", // no digit
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		email, _ := registerLibrarian(t, "dup")

		resp := postJSON(t, base+"/librarians/register", map[string]string{
			"email":    email,
			"password": "integr8pass",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		email, _ := registerLibrarian(t, "wrongpw")

		resp := postJSON(t, base+"/librarians/login", map[string]string{
			"email":    email,
			"password": "integr8WRONG",
		}, "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("protected endpoint requires token", func(t *testing.T) {
		resp := getJSON(t, base+"/books", "")
		assert.NotEqual(t, 0, resp.Code)
	})

	t.Run("logout revokes token", func(t *testing.T) {
		_, token := registerLibrarian(t, "logout")

		// Works before logout.
		resp := getJSON(t, base+"/books", token)
		require.Equal(t, 0, resp.Code)

		resp = postJSON(t, base+"/librarians/logout", nil, token)
		require.Equal(t, 0, resp.Code, "logout failed: %s", resp.Message)

		// The same token is now blacklisted.
		resp = getJSON(t, base+"/books", token)
		assert.NotEqual(t, 0, resp.Code)
	})
}
