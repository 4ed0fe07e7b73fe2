package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/models"
)

// templateOption is the trimmed public shape of a selectable item.
type templateOption struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Emoji       string `json:"emoji,omitempty"`
	Description string `json:"description,omitempty"`
}

func toOptions(items []models.TemplateItem) []templateOption {
	out := make([]templateOption, 0, len(items))
	for _, t := range items {
		out = append(out, templateOption{
			Code:        t.Code,
			Label:       t.Label,
			Emoji:       t.Emoji,
			Description: t.Description,
		})
	}
	return out
}

// GET /api/templates/all
// Every active selectable category plus the static enum options, one round
// trip for clients that prefill all pickers at once.
func AllTemplates(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{}

	for _, category := range []string{"goals", "challenges", "practices", "interests", "reminders"} {
		items, err := catalog.ActiveTemplates(category)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", "failed to load templates")
			return
		}
		out[category] = toOptions(items)
	}

	// Lookup categories are included only when present in the catalog.
	for _, category := range []string{"practice_preferences", "experience_levels", "mood_tendencies", "practice_times"} {
		items, err := catalog.ActiveTemplates(category)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal", "failed to load templates")
			return
		}
		if len(items) > 0 {
			out[category] = toOptions(items)
		}
	}

	out["age_ranges"] = catalog.DefaultAgeRanges
	out["genders"] = catalog.DefaultGenders
	out["work_hours"] = catalog.DefaultWorkHours
	out["screen_time"] = catalog.DefaultScreenTime

	// Fixed fallbacks keep stale clients working on an unseeded catalog.
	if _, ok := out["experience_levels"]; !ok {
		out["experience_levels"] = []string{"beginner", "intermediate", "advanced"}
	}
	if _, ok := out["mood_tendencies"]; !ok {
		out["mood_tendencies"] = []string{"calm", "stressed", "sad", "happy"}
	}
	if _, ok := out["practice_times"]; !ok {
		out["practice_times"] = []string{"morning", "afternoon", "night"}
	}

	writeJSON(w, http.StatusOK, out)
}

// GET /api/templates/{category}
func CategoryTemplates(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	items, err := catalog.ActiveTemplates(category)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to load templates")
		return
	}
	writeJSON(w, http.StatusOK, toOptions(items))
}

// GET /api/templates/onboarding
func OnboardingScreens(w http.ResponseWriter, r *http.Request) {
	screens, err := catalog.OnboardingScreens()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to assemble onboarding screens")
		return
	}
	writeJSON(w, http.StatusOK, screens)
}
