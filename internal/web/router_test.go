package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/config"
	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/web"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	require.NoError(t, db.Init(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, catalog.Seed(false))
	return web.Router(config.Config{AdminToken: "secret"})
}

func doJSON(t *testing.T, h http.Handler, method, target, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicTemplates(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/templates/goals", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var options []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &options))
	require.NotEmpty(t, options)
	assert.Equal(t, "reduce_stress", options[0]["code"])

	rec = doJSON(t, h, http.MethodGet, "/api/templates/all", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode(t, rec)
	for _, key := range []string{"goals", "challenges", "practices", "age_ranges", "experience_levels"} {
		assert.Contains(t, all, key)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/templates/onboarding", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var screens []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &screens))
	require.Len(t, screens, 11)
	assert.Equal(t, "basic", screens[0]["category"])
}

func TestUserRoutesRequireIdentity(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/users/me/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/users/me/profile", "", map[string]string{"X-User-ID": "abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileLifecycle(t *testing.T) {
	h := newTestRouter(t)
	user := map[string]string{"X-User-ID": "42"}

	// No profile yet.
	rec := doJSON(t, h, http.MethodGet, "/api/users/me/profile", "", user)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// PUT before a profile exists is an error; POST creates.
	rec = doJSON(t, h, http.MethodPut, "/api/users/me/profile", `{"name":"Ana"}`, user)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/users/me/profile",
		`{"personalization_data":{"name":"Ana","goals":["reduce_stress","bogus"]},"timezone":"Europe/Berlin"}`, user)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	data, ok := body["personalization_data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", data["name"])
	assert.Equal(t, []any{"reduce_stress"}, data["goals"], "invalid codes dropped on save")
	assert.Equal(t, "welcome", body["onboarding_screen"])

	// Status reflects the stored answers.
	rec = doJSON(t, h, http.MethodGet, "/api/users/me/onboarding/status", "", user)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode(t, rec)
	assert.Equal(t, true, status["has_profile"])
	assert.Equal(t, false, status["is_completed"])

	// Finish the flow.
	rec = doJSON(t, h, http.MethodPut, "/api/users/me/profile",
		`{"personalization_data":{"challenges":["burnout"],"practice_preferences":["breathing"]},"onboarding_screen":"completed"}`, user)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.NotNil(t, body["personalized_at"])

	rec = doJSON(t, h, http.MethodGet, "/api/onboarding/status", "", user)
	require.Equal(t, http.StatusOK, rec.Code)
	status = decode(t, rec)
	assert.Equal(t, true, status["is_completed"])
	assert.Equal(t, float64(100), status["completion_percentage"])
}

func TestOnboardingScreenEndpoint(t *testing.T) {
	h := newTestRouter(t)
	user := map[string]string{"X-User-ID": "7"}

	rec := doJSON(t, h, http.MethodPost, "/api/onboarding/screen", `{"screen":"breathe"}`, user)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "breathe", body["current_screen"])
	assert.NotNil(t, body["onboarding_started_at"])

	rec = doJSON(t, h, http.MethodPost, "/api/onboarding/screen", `{"screen":"bogus"}`, user)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminGuard(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/api/admin/templates/goals", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/admin/templates/goals", "",
		map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminTemplateManagement(t *testing.T) {
	h := newTestRouter(t)
	admin := map[string]string{"Authorization": "Bearer secret"}

	// Add, conflict on duplicate, deactivate, verify the public view.
	rec := doJSON(t, h, http.MethodPost, "/api/admin/templates/goals/add",
		`{"code":"find_calm","label":"Find calm","is_active":true}`, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/admin/templates/goals/add",
		`{"code":"find_calm","label":"Find calm again","is_active":true}`, admin)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/admin/templates/goals/find_calm", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/admin/templates/goals/missing", "", admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Admin view keeps the deactivated item; public view hides it.
	rec = doJSON(t, h, http.MethodGet, "/api/admin/templates/goals", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, float64(3), body["version"], "add and deactivate each bump the version")
	templates, ok := body["templates"].([]any)
	require.True(t, ok)
	assert.Len(t, templates, 5)

	rec = doJSON(t, h, http.MethodGet, "/api/templates/goals", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var public []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &public))
	assert.Len(t, public, 4)

	// Unknown categories read as empty at version 0.
	rec = doJSON(t, h, http.MethodGet, "/api/admin/templates/brand_new", "", admin)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	assert.Equal(t, float64(0), body["version"])
}
