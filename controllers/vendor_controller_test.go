package controllers_test

import (
	"net/http"
	"testing"

	"rentora/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorResponse struct {
	Message string        `json:"message"`
	Vendor  models.Vendor `json:"vendor"`
}

func (e *testEnv) createVendor(t *testing.T, token string) models.Vendor {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/vendor", token, map[string]any{
		"companyName":    "PT Sewa Alat",
		"companyAddress": "Jl. Industri No. 5, Jakarta",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[vendorResponse](t, w).Vendor
}

func TestCreateVendor(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.newUser(t, models.RoleVendor)

	v := env.createVendor(t, token)
	assert.Equal(t, user.ID, v.UserID, "owner comes from the token")
	assert.Equal(t, user.Email, v.Email, "contact copied from the user row")
	assert.Equal(t, user.Phone, v.Phone)
	assert.Equal(t, models.VendorPending, v.Status, "new vendors await review")
}

func TestVendorListGetDelete(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, models.RoleVendor)
	v := env.createVendor(t, token)

	w := env.do(t, http.MethodGet, "/api/v1/vendor", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Vendor](t, w), 1)

	w = env.do(t, http.MethodGet, "/api/v1/vendor/"+v.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PT Sewa Alat", decode[models.Vendor](t, w).CompanyName)

	w = env.do(t, http.MethodGet, "/api/v1/vendor/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/vendor/"+v.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/vendor/"+v.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Vendor not found or already deleted")
}

func TestUpdateVendorStatus(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.newUser(t, models.RoleSuperadmin)
	_, vendorToken := env.newUser(t, models.RoleVendor)
	v := env.createVendor(t, vendorToken)

	t.Run("non-admin forbidden", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, "/api/v1/vendor/"+v.ID+"/status", vendorToken, map[string]any{"status": "active"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin activates", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, "/api/v1/vendor/"+v.ID+"/status", adminToken, map[string]any{"status": "active"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, models.VendorActive, decode[vendorResponse](t, w).Vendor.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, "/api/v1/vendor/"+v.ID+"/status", adminToken, map[string]any{"status": "banned"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing vendor", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, "/api/v1/vendor/"+uuid.NewString()+"/status", adminToken, map[string]any{"status": "suspended"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBranchLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, models.RoleVendor)
	v := env.createVendor(t, token)

	w := env.do(t, http.MethodPost, "/api/v1/vendor/"+v.ID+"/branch", token, map[string]any{
		"name":    "Cabang Bandung",
		"address": "Jl. Asia Afrika No. 2",
		"phone":   "0221234567",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	branch := decode[struct {
		Branch models.VendorBranch `json:"branch"`
	}](t, w).Branch
	assert.Equal(t, v.ID, branch.VendorID)

	w = env.do(t, http.MethodPost, "/api/v1/vendor/"+uuid.NewString()+"/branch", token, map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/vendor/"+v.ID+"/branch", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.VendorBranch](t, w), 1)

	w = env.do(t, http.MethodDelete, "/api/v1/vendor/branch/"+branch.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/v1/vendor/branch/"+branch.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
