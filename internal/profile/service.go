package profile

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/models"
	"github.com/veya/veya-api/internal/personalization"
)

var (
	ErrProfileNotFound = errors.New("profile: not found")
	ErrInvalidScreen   = errors.New("profile: invalid onboarding screen")
)

// selectionCategories maps validated profile keys onto the catalog
// categories their codes must come from.
var selectionCategories = map[string]string{
	"goals":                "goals",
	"challenges":           "challenges",
	"practice_preferences": "practices",
	"interests":            "interests",
	"reminder_times":       "reminders",
}

// SaveInput is one profile save: flattened personalization updates plus the
// onboarding metadata that lives outside the document.
type SaveInput struct {
	Updates          map[string]any
	OnboardingScreen string // "" = leave unchanged
	Timezone         string // "" = leave unchanged
}

// Get loads a user's profile.
func Get(userID uint) (*models.UserProfile, error) {
	var p models.UserProfile
	if err := db.Conn().Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save validates selection codes against the catalog, merges the updates
// into the personalization document and persists the profile. Invalid codes
// are dropped, not rejected: a stale client keeps onboarding instead of
// getting stuck. createIfMissing controls POST (create-or-update) vs PUT
// (update-only) semantics.
func Save(userID uint, in SaveInput, createIfMissing bool) (*models.UserProfile, error) {
	updates := make(map[string]any, len(in.Updates))
	for k, v := range in.Updates {
		updates[k] = v
	}

	for key, category := range selectionCategories {
		raw, present := updates[key]
		if !present || raw == nil {
			continue
		}
		codes := personalization.Document{key: raw}.GetList(key)
		valid, invalid, err := catalog.ValidateCodes(category, codes)
		if err != nil {
			return nil, err
		}
		if len(invalid) > 0 {
			logrus.WithFields(logrus.Fields{
				"user_id":  userID,
				"field":    key,
				"category": category,
				"dropped":  invalid,
			}).Warn("filtered selection codes not in active catalog")
		}
		updates[key] = valid
	}

	screen := normalizeScreen(in.OnboardingScreen)
	now := time.Now().UTC()

	var out *models.UserProfile
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		var p models.UserProfile
		err := tx.Where("user_id = ?", userID).First(&p).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if !createIfMissing {
				return ErrProfileNotFound
			}
			p = models.UserProfile{
				UserID:              userID,
				OnboardingScreen:    models.ScreenWelcome,
				OnboardingStartedAt: &now,
			}
			if screen != "" {
				p.OnboardingScreen = screen
			}
		case err != nil:
			return err
		default:
			if screen != "" {
				p.OnboardingScreen = screen
			}
			if p.OnboardingStartedAt == nil {
				p.OnboardingStartedAt = &now
			}
		}

		p.Doc().BulkUpdate(updates)
		if in.Timezone != "" {
			p.Timezone = in.Timezone
		}

		// Completing the flow with all required selections in place stamps
		// personalized_at once.
		if p.PersonalizedAt == nil && screen == models.ScreenCompleted && hasRequiredFields(&p) {
			p.PersonalizedAt = &now
		}

		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		out = &p
		return nil
	})
	return out, err
}

// SetScreen stores the coarse onboarding position, creating the profile on
// first visit.
func SetScreen(userID uint, screen string) (*models.UserProfile, error) {
	screen = normalizeScreen(screen)
	if screenIndex(screen) < 0 && screen != models.ScreenCompleted {
		return nil, ErrInvalidScreen
	}

	now := time.Now().UTC()
	var out *models.UserProfile
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		var p models.UserProfile
		err := tx.Where("user_id = ?", userID).First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p = models.UserProfile{
				UserID:              userID,
				OnboardingScreen:    screen,
				OnboardingStartedAt: &now,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			out = &p
			return nil
		}
		if err != nil {
			return err
		}

		p.OnboardingScreen = screen
		if p.OnboardingStartedAt == nil {
			p.OnboardingStartedAt = &now
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		out = &p
		return nil
	})
	return out, err
}

func hasRequiredFields(p *models.UserProfile) bool {
	return len(p.Goals()) > 0 && len(p.Challenges()) > 0 && len(p.PracticePrefs()) > 0
}
