package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/veya/veya-api/internal/personalization"
)

// TemplateItem is one selectable option inside a category. Code is the
// immutable business key, unique within its category. Deactivated items are
// kept for history and excluded from active lookups.
type TemplateItem struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	Emoji        string `json:"emoji,omitempty"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// TemplateItems is stored as a single JSON array column: one ordered
// list-of-objects document per category, matching the upstream data shape.
type TemplateItems []TemplateItem

// FieldDocs holds the schema-less form-field definitions for a category.
// Entries are kept as raw objects; the screen assembler parses them and
// skips the malformed ones.
type FieldDocs []map[string]any

// TemplateCategory is one catalog record: a named, versioned bucket of
// selectable options and/or field definitions.
type TemplateCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category string `gorm:"uniqueIndex;not null" json:"category"`

	// view_order places the screen in the onboarding flow; 0 or negative
	// keeps a lookup-only category out of the sequence.
	ViewOrder int `gorm:"index;default:0" json:"view_order"`

	ScreenKey      string `json:"screen_key,omitempty"`
	ScreenTitle    string `json:"screen_title,omitempty"`
	ScreenSubtitle string `json:"screen_subtitle,omitempty"`
	ScreenType     string `json:"screen_type,omitempty"` // form | multi | single | consent
	ScreenIcon     string `json:"screen_icon,omitempty"`

	Templates TemplateItems `gorm:"type:json" json:"templates"`
	Fields    FieldDocs     `gorm:"type:json" json:"fields"`

	Version int `gorm:"default:1" json:"version"`
}

func (TemplateCategory) TableName() string {
	return "personalization_templates"
}

// User is the thin identity record; authentication lives outside this
// service.
type User struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email       string `gorm:"uniqueIndex"`
	DisplayName string
	IsSuperuser bool
}

// Onboarding screen markers stored on UserProfile.OnboardingScreen.
const (
	ScreenWelcome     = "welcome"
	ScreenBreathe     = "breathe"
	ScreenPersonalize = "personalize"
	ScreenCompleted   = "completed"
)

// UserProfile carries the open personalization document plus the
// coarse-grained onboarding position.
type UserProfile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"uniqueIndex;not null"`

	PersonalizationData personalization.Document `gorm:"type:json"`
	Timezone            string                   `gorm:"default:UTC"`

	// welcome | breathe | personalize | completed ("" = never set)
	OnboardingScreen    string
	OnboardingStartedAt *time.Time
	PersonalizedAt      *time.Time
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// Doc returns the personalization document, allocating it on first use so
// the typed accessors always have a map to write into.
func (p *UserProfile) Doc() personalization.Document {
	if p.PersonalizationData == nil {
		p.PersonalizationData = personalization.Document{}
	}
	return p.PersonalizationData
}

// Typed views over the document, mirroring the reserved field set.

func (p *UserProfile) Name() string {
	s, _ := p.Doc().GetString("name")
	return s
}

func (p *UserProfile) Goals() []string         { return p.Doc().GetList("goals") }
func (p *UserProfile) Challenges() []string    { return p.Doc().GetList("challenges") }
func (p *UserProfile) PracticePrefs() []string { return p.Doc().GetList("practice_preferences") }
func (p *UserProfile) Interests() []string     { return p.Doc().GetList("interests") }
func (p *UserProfile) ReminderTimes() []string { return p.Doc().GetList("reminder_times") }

func (p *UserProfile) AgeRange() string {
	s, _ := p.Doc().GetString("age_range")
	return s
}

func (p *UserProfile) Gender() string {
	s, _ := p.Doc().GetString("gender")
	return s
}

func (p *UserProfile) ExperienceLevel() string {
	s, _ := p.Doc().GetString("experience_level")
	return s
}

func (p *UserProfile) MoodTendency() string {
	s, _ := p.Doc().GetString("mood_tendency")
	return s
}

// --- JSON column plumbing ---------------------------------------------------

func (t *TemplateItems) Scan(value any) error {
	return scanJSON(value, t)
}

func (t TemplateItems) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	return marshalJSON(t)
}

func (f *FieldDocs) Scan(value any) error {
	return scanJSON(value, f)
}

func (f FieldDocs) Value() (driver.Value, error) {
	if f == nil {
		return "[]", nil
	}
	return marshalJSON(f)
}

func scanJSON(value, dest any) error {
	if value == nil {
		return nil
	}
	var raw []byte
	switch t := value.(type) {
	case []byte:
		raw = t
	case string:
		raw = []byte(t)
	default:
		return fmt.Errorf("models: cannot scan %T as JSON column", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func marshalJSON(v any) (driver.Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}
