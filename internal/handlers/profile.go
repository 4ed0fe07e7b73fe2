package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/veya/veya-api/internal/cache"
	"github.com/veya/veya-api/internal/models"
	"github.com/veya/veya-api/internal/personalization"
	"github.com/veya/veya-api/internal/profile"
)

// Keys in a profile payload that are onboarding metadata rather than
// personalization answers.
var profileMetadataKeys = map[string]bool{
	"onboarding_screen": true,
	"timezone":          true,
}

type profileResponse struct {
	ID                  uint                     `json:"id"`
	UserID              uint                     `json:"user_id"`
	PersonalizationData personalization.Document `json:"personalization_data"`
	Timezone            string                   `json:"timezone"`
	OnboardingScreen    string                   `json:"onboarding_screen,omitempty"`
	OnboardingStartedAt *time.Time               `json:"onboarding_started_at,omitempty"`
	PersonalizedAt      *time.Time               `json:"personalized_at,omitempty"`
	CreatedAt           time.Time                `json:"created_at"`
	UpdatedAt           time.Time                `json:"updated_at"`
}

func toProfileResponse(p *models.UserProfile) profileResponse {
	return profileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		PersonalizationData: p.Doc(),
		Timezone:            p.Timezone,
		OnboardingScreen:    p.OnboardingScreen,
		OnboardingStartedAt: p.OnboardingStartedAt,
		PersonalizedAt:      p.PersonalizedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

// GET /api/users/me/profile
func GetMyProfile(w http.ResponseWriter, r *http.Request) {
	p, err := profile.Get(currentUserID(r))
	if errors.Is(err, profile.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "user profile not found; complete onboarding to create it")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// decodeSaveInput flattens an arbitrary profile payload: metadata keys and
// a nested personalization_data object fold into one update map.
func decodeSaveInput(r *http.Request) (profile.SaveInput, error) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return profile.SaveInput{}, err
	}

	in := profile.SaveInput{Updates: map[string]any{}}
	if nested, ok := payload["personalization_data"].(map[string]any); ok {
		for k, v := range nested {
			in.Updates[k] = v
		}
	}
	delete(payload, "personalization_data")

	for k, v := range payload {
		if !profileMetadataKeys[k] {
			in.Updates[k] = v
		}
	}
	if s, ok := payload["onboarding_screen"].(string); ok {
		in.OnboardingScreen = s
	}
	if tz, ok := payload["timezone"].(string); ok {
		in.Timezone = tz
	}
	return in, nil
}

// POST /api/users/me/profile — create-or-update.
func SaveMyProfile(w http.ResponseWriter, r *http.Request) {
	saveProfile(w, r, true)
}

// PUT /api/users/me/profile — update-only.
func UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	saveProfile(w, r, false)
}

func saveProfile(w http.ResponseWriter, r *http.Request, createIfMissing bool) {
	userID := currentUserID(r)
	in, err := decodeSaveInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	p, err := profile.Save(userID, in, createIfMissing)
	if errors.Is(err, profile.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "user profile not found; use POST to create one")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to save profile")
		return
	}

	cache.InvalidateUserInfo(r.Context(), userID)
	writeJSON(w, http.StatusOK, toProfileResponse(p))
}

// GET /api/users/me/onboarding/status (also aliased at /api/onboarding/status)
func OnboardingStatus(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)

	if payload, ok := cache.GetUserInfo(r.Context(), userID); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(payload))
		return
	}

	p, err := profile.Get(userID)
	if err != nil && !errors.Is(err, profile.ErrProfileNotFound) {
		writeError(w, http.StatusInternalServerError, "internal", "failed to load profile")
		return
	}
	// A profile that failed to load is treated as "no profile".
	progress := profile.ComputeProgress(p)

	if cache.Enabled() {
		if raw, err := json.Marshal(progress); err == nil {
			cache.SetUserInfo(r.Context(), userID, string(raw), 5*time.Minute)
		}
	}
	writeJSON(w, http.StatusOK, progress)
}

type updateScreenRequest struct {
	Screen string `json:"screen"`
}

// POST /api/onboarding/screen
func UpdateOnboardingScreen(w http.ResponseWriter, r *http.Request) {
	userID := currentUserID(r)
	var req updateScreenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	p, err := profile.SetScreen(userID, req.Screen)
	if errors.Is(err, profile.ErrInvalidScreen) {
		writeError(w, http.StatusBadRequest, "bad_request",
			"invalid screen; must be one of: welcome, breathe, personalize, completed")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "failed to update onboarding screen")
		return
	}

	cache.InvalidateUserInfo(r.Context(), userID)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":               "Onboarding screen updated",
		"current_screen":        p.OnboardingScreen,
		"onboarding_started_at": p.OnboardingStartedAt,
	})
}
