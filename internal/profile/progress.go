package profile

import (
	"time"

	"github.com/veya/veya-api/internal/models"
)

// OnboardingScreens is the fixed coarse-grained app flow. It is distinct
// from the per-category template screens the assembler renders; the two
// track progress at different granularities.
var OnboardingScreens = []string{
	models.ScreenWelcome,
	models.ScreenBreathe,
	models.ScreenPersonalize,
}

// Completion weighting. The constants are load-bearing policy: clients
// animate progress bars off these exact numbers.
const (
	screensWeight  = 40.0
	requiredWeight = 60.0
	optionalBonus  = 20.0
)

var requiredFields = []string{"goals", "challenges", "practice_preferences"}

// Progress is the derived onboarding view over a profile; never persisted.
type Progress struct {
	IsCompleted          bool       `json:"is_completed"`
	HasProfile           bool       `json:"has_profile"`
	PersonalizedAt       *time.Time `json:"personalized_at,omitempty"`
	CompletionPercentage int        `json:"completion_percentage"`
	MissingFields        []string   `json:"missing_fields"`
	CurrentScreen        *string    `json:"current_screen"`
	NextScreen           *string    `json:"next_screen"`
	CompletedScreens     []string   `json:"completed_screens"`
	OnboardingStartedAt  *time.Time `json:"onboarding_started_at,omitempty"`
}

// normalizeScreen maps the legacy "sleep" marker onto "completed".
func normalizeScreen(screen string) string {
	if screen == "sleep" {
		return models.ScreenCompleted
	}
	return screen
}

// ComputeProgress derives the onboarding state from a profile, or from its
// absence (pass nil). Same inputs always yield the same output.
func ComputeProgress(p *models.UserProfile) Progress {
	if p == nil {
		welcome, breathe := models.ScreenWelcome, models.ScreenBreathe
		return Progress{
			HasProfile:           false,
			CompletionPercentage: 0,
			MissingFields:        []string{"profile"},
			CurrentScreen:        &welcome,
			NextScreen:           &breathe,
			CompletedScreens:     []string{},
		}
	}

	stored := normalizeScreen(p.OnboardingScreen)
	current := stored

	// Prefix of the fixed sequence preceding the stored marker.
	var completed []string
	switch {
	case stored == models.ScreenCompleted:
		completed = append(completed, OnboardingScreens...)
	case stored != "":
		if idx := screenIndex(stored); idx >= 0 {
			completed = append(completed, OnboardingScreens[:idx]...)
		}
	}

	// A profile existing at all means welcome has been seen.
	completed = appendScreen(completed, models.ScreenWelcome)
	if p.Name() != "" {
		completed = appendScreen(completed, models.ScreenBreathe)
	}

	hasPersonalization := len(p.Goals()) > 0 ||
		len(p.Challenges()) > 0 ||
		len(p.PracticePrefs()) > 0 ||
		len(p.Interests()) > 0 ||
		p.AgeRange() != "" ||
		p.Gender() != ""
	if hasPersonalization || p.PersonalizedAt != nil {
		completed = appendScreen(completed, models.ScreenPersonalize)
	}

	// Infer position when no marker was ever stored.
	if current == "" {
		switch {
		case p.PersonalizedAt != nil:
			current = models.ScreenCompleted
		case hasPersonalization:
			current = models.ScreenPersonalize
		default:
			current = models.ScreenBreathe
		}
	}

	var next *string
	if current != models.ScreenCompleted {
		if idx := screenIndex(current); idx >= 0 {
			if idx < len(OnboardingScreens)-1 {
				next = &OnboardingScreens[idx+1]
			}
		} else {
			personalize := models.ScreenPersonalize
			next = &personalize
		}
	}

	// 40% from distinct completed screens.
	unique := map[string]bool{}
	for _, s := range completed {
		if screenIndex(s) >= 0 {
			unique[s] = true
		}
	}
	screensCompletion := float64(len(unique)) / float64(len(OnboardingScreens)) * screensWeight

	// 60% from the three required fields.
	missing := []string{}
	for _, f := range requiredFields {
		if len(p.Doc().GetList(f)) == 0 {
			missing = append(missing, f)
		}
	}
	fieldsCompletion := float64(len(requiredFields)-len(missing)) / float64(len(requiredFields)) * requiredWeight

	pct := int(screensCompletion + fieldsCompletion)

	// Optional-field bonus, clamped so the total never exceeds 100.
	optionalFilled := 0
	if len(p.Interests()) > 0 {
		optionalFilled++
	}
	if len(p.ReminderTimes()) > 0 {
		optionalFilled++
	}
	for _, s := range []string{p.AgeRange(), p.Gender(), p.ExperienceLevel(), p.MoodTendency()} {
		if s != "" {
			optionalFilled++
		}
	}
	bonus := float64(optionalFilled) / 6.0 * optionalBonus
	if room := float64(100 - pct); bonus > room {
		bonus = room
	}
	pct = int(float64(pct) + bonus)
	if pct > 100 {
		pct = 100
	}

	isCompleted := p.PersonalizedAt != nil &&
		len(missing) == 0 &&
		containsScreen(completed, models.ScreenPersonalize)

	var currentOut *string
	if isCompleted {
		next = nil
		completed = append([]string{}, OnboardingScreens...)
	} else {
		c := current
		currentOut = &c
	}

	// Re-order completed screens to sequence order, deduplicated.
	ordered := []string{}
	for _, s := range OnboardingScreens {
		if containsScreen(completed, s) {
			ordered = append(ordered, s)
		}
	}

	return Progress{
		IsCompleted:          isCompleted,
		HasProfile:           true,
		PersonalizedAt:       p.PersonalizedAt,
		CompletionPercentage: pct,
		MissingFields:        missing,
		CurrentScreen:        currentOut,
		NextScreen:           next,
		CompletedScreens:     ordered,
		OnboardingStartedAt:  p.OnboardingStartedAt,
	}
}

func screenIndex(screen string) int {
	for i, s := range OnboardingScreens {
		if s == screen {
			return i
		}
	}
	return -1
}

func appendScreen(screens []string, screen string) []string {
	if containsScreen(screens, screen) {
		return screens
	}
	return append(screens, screen)
}

func containsScreen(screens []string, screen string) bool {
	for _, s := range screens {
		if s == screen {
			return true
		}
	}
	return false
}
