package controllers_test

import (
	"context"
	"net/http"
	"testing"

	"rentora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody() map[string]any {
	return map[string]any{
		"name":     "Budi Santoso",
		"email":    "budi@example.com",
		"address":  "Jl. Merdeka No. 10",
		"phone":    "081234567890",
		"password": "secret123",
	}
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", registerBody())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}](t, w)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, models.RoleCustomer, resp.User.Role, "role defaults to customer")
	assert.NotEmpty(t, resp.User.ID)

	stored, err := env.repo.FindUserByEmail(context.Background(), "budi@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password, "password is stored hashed")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", registerBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/auth/register", "", registerBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":     "B",
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[struct {
		Errors map[string]string `json:"errors"`
	}](t, w)
	assert.Equal(t, "must be at least 2 characters", resp.Errors["name"])
	assert.Equal(t, "invalid email format", resp.Errors["email"])
	assert.Equal(t, "must be at least 6 characters", resp.Errors["password"])
	assert.Contains(t, resp.Errors, "address")
	assert.Contains(t, resp.Errors, "phone")
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	body := registerBody()
	body["role"] = "root"
	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/auth/register", "", registerBody()).Code)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "budi@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[struct {
		Message string      `json:"message"`
		Token   string      `json:"token"`
		User    models.User `json:"user"`
	}](t, w)
	assert.Equal(t, "Login successful", resp.Message)
	require.NotEmpty(t, resp.Token)

	// The issued token is accepted by protected routes.
	w = env.do(t, http.MethodGet, "/api/v1/users/"+resp.User.ID, resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/auth/register", "", registerBody()).Code)

	w := env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "budi@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = env.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPasswordNeverSerialized(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/auth/register", "", registerBody())
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "secret123")
}
