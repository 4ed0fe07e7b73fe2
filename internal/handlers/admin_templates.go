package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/models"
)

// GET /api/admin/templates/{category}
// Admin view: the raw templates list including deactivated items. A
// category that was never created reads as empty at version 0.
func AdminGetCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	rec, err := catalog.GetCategory(category)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]any{
			"category":  category,
			"templates": []models.TemplateItem{},
			"version":   0,
		})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to load category")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"category":  rec.Category,
		"templates": rec.Templates,
		"version":   rec.Version,
	})
}

type replaceTemplatesRequest struct {
	Templates []models.TemplateItem `json:"templates"`
}

// PUT /api/admin/templates/{category}
func AdminReplaceTemplates(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	var req replaceTemplatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	rec, err := catalog.ReplaceItems(category, req.Templates)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to update templates")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Templates updated for category: " + category,
		"category":  rec.Category,
		"templates": rec.Templates,
		"version":   rec.Version,
	})
}

// POST /api/admin/templates/{category}/add
func AdminAddTemplate(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	var item models.TemplateItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}
	if strings.TrimSpace(item.Code) == "" || strings.TrimSpace(item.Label) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "code and label are required")
		return
	}

	if err := catalog.AddItem(category, item); err != nil {
		if errors.Is(err, catalog.ErrDuplicateCode) {
			writeError(w, http.StatusConflict, "duplicate_code",
				"template with code '"+item.Code+"' already exists in category '"+category+"'")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", "failed to add template")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Template added to category: " + category,
		"template": item,
	})
}

// DELETE /api/admin/templates/{category}/{code}
func AdminDeactivateTemplate(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	code := chi.URLParam(r, "code")

	if err := catalog.DeactivateItem(category, code); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found",
				"template '"+code+"' not found in category '"+category+"'")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", "failed to deactivate template")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Template '" + code + "' deactivated in category '" + category + "'",
	})
}

// POST /api/admin/templates/seed-defaults?overwrite=true
func AdminSeedDefaults(w http.ResponseWriter, r *http.Request) {
	overwrite := r.URL.Query().Get("overwrite") == "true"
	if err := catalog.Seed(overwrite); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "seed failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Templates seeded successfully"})
}

// POST /api/admin/templates/reset-defaults
func AdminResetDefaults(w http.ResponseWriter, r *http.Request) {
	if err := catalog.Reset(); err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "reset failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Templates reset to defaults"})
}
