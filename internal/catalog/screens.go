package catalog

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/models"
)

// ScreenView is one onboarding screen: category metadata plus its active,
// display-ordered templates and normalized field definitions.
type ScreenView struct {
	ID             uint                  `json:"id"`
	Category       string                `json:"category"`
	ViewOrder      int                   `json:"view_order"`
	ScreenKey      string                `json:"screen_key,omitempty"`
	ScreenTitle    string                `json:"screen_title,omitempty"`
	ScreenSubtitle string                `json:"screen_subtitle,omitempty"`
	ScreenType     string                `json:"screen_type,omitempty"`
	ScreenIcon     string                `json:"screen_icon,omitempty"`
	Templates      []models.TemplateItem `json:"templates"`
	Fields         []map[string]any      `json:"fields"`
	Version        int                   `json:"version"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ActiveTemplates returns the category's active items sorted ascending by
// display_order (stable, list order breaks ties). A missing category comes
// back as an empty list; the catalog should be seeded, but an unseeded
// deployment must not error public reads.
func ActiveTemplates(category string) ([]models.TemplateItem, error) {
	rec, err := GetCategory(category)
	if err == ErrNotFound {
		logrus.WithField("category", category).Warn("template category not found; seed the catalog")
		return []models.TemplateItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return activeSorted(rec.Templates), nil
}

func activeSorted(items models.TemplateItems) []models.TemplateItem {
	out := make([]models.TemplateItem, 0, len(items))
	for _, t := range items {
		if t.IsActive {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// OnboardingScreens assembles the full onboarding flow: every category with
// view_order > 0, ascending. The ordering is the contract the client's
// paginated flow depends on.
func OnboardingScreens() ([]ScreenView, error) {
	var recs []models.TemplateCategory
	if err := db.Conn().Where("view_order > 0").Order("view_order asc, id asc").Find(&recs).Error; err != nil {
		return nil, err
	}

	screens := make([]ScreenView, 0, len(recs))
	for _, rec := range recs {
		screens = append(screens, ScreenView{
			ID:             rec.ID,
			Category:       rec.Category,
			ViewOrder:      rec.ViewOrder,
			ScreenKey:      rec.ScreenKey,
			ScreenTitle:    rec.ScreenTitle,
			ScreenSubtitle: rec.ScreenSubtitle,
			ScreenType:     rec.ScreenType,
			ScreenIcon:     rec.ScreenIcon,
			Templates:      activeSorted(rec.Templates),
			Fields:         normalizeFields(rec.Category, rec.Fields),
			Version:        rec.Version,
			CreatedAt:      rec.CreatedAt,
			UpdatedAt:      rec.UpdatedAt,
		})
	}
	if len(screens) == 0 {
		logrus.Warn("no onboarding templates in catalog; seed the catalog")
	}
	return screens, nil
}

// normalizeFields applies the display-compatibility rules to each stored
// field definition and drops the ones that fail to parse. One malformed
// field never blocks the rest of the screen.
func normalizeFields(category string, fields models.FieldDocs) []map[string]any {
	out := make([]map[string]any, 0, len(fields))
	for _, raw := range fields {
		f, ok := normalizeField(raw)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"category":  category,
				"field_key": raw["field_key"],
			}).Warn("skipping malformed field definition")
			continue
		}
		out = append(out, f)
	}
	return out
}

func normalizeField(raw map[string]any) (map[string]any, bool) {
	if raw == nil {
		return nil, false
	}
	key, _ := raw["field_key"].(string)
	if key == "" {
		return nil, false
	}

	f := make(map[string]any, len(raw))
	for k, v := range raw {
		// Legacy rows carry stringified nulls.
		if v == "None" || v == "null" {
			v = nil
		}
		f[k] = v
	}

	// Clients render from "type"; mirror field_type when it is missing.
	if _, has := f["type"]; !has {
		if ft, ok := f["field_type"].(string); ok && ft != "" {
			f["type"] = ft
		}
	}
	// time_range renders with the same time-picking control.
	if f["type"] == "time_range" {
		f["type"] = "time"
	}

	// Inline options keyed by code get an id for clients that select by id.
	switch opts := f["options"].(type) {
	case []any:
		for _, o := range opts {
			if opt, ok := o.(map[string]any); ok {
				ensureOptionID(opt)
			}
		}
	case []map[string]any:
		for _, opt := range opts {
			ensureOptionID(opt)
		}
	}
	return f, true
}

func ensureOptionID(opt map[string]any) {
	if code, hasCode := opt["code"]; hasCode {
		if _, hasID := opt["id"]; !hasID {
			opt["id"] = code
		}
	}
}
