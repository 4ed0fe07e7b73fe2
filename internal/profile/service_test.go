package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/models"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.Init(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, catalog.Seed(false))
}

func TestSaveCreatesProfile(t *testing.T) {
	initTestDB(t)

	p, err := Save(1, SaveInput{
		Updates:  map[string]any{"name": "  Ana  ", "goals": "reduce_stress"},
		Timezone: "Europe/Berlin",
	}, true)
	require.NoError(t, err)

	assert.Equal(t, uint(1), p.UserID)
	assert.Equal(t, models.ScreenWelcome, p.OnboardingScreen)
	require.NotNil(t, p.OnboardingStartedAt)
	assert.Equal(t, "Europe/Berlin", p.Timezone)
	assert.Equal(t, "Ana", p.Name(), "string values are trimmed")
	assert.Equal(t, []string{"reduce_stress"}, p.Goals(), "scalar selection becomes a singleton list")

	loaded, err := Get(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"reduce_stress"}, loaded.Goals())
}

func TestSaveDropsInvalidCodes(t *testing.T) {
	initTestDB(t)

	p, err := Save(1, SaveInput{
		Updates: map[string]any{"goals": []string{"reduce_stress", "become_a_wizard"}},
	}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"reduce_stress"}, p.Goals(), "unknown codes are filtered, not rejected")
}

func TestSaveEmptySelectionIsStored(t *testing.T) {
	initTestDB(t)

	_, err := Save(1, SaveInput{Updates: map[string]any{"goals": []string{"reduce_stress"}}}, true)
	require.NoError(t, err)

	// An explicit empty list overwrites a previous choice.
	p, err := Save(1, SaveInput{Updates: map[string]any{"goals": []string{}}}, true)
	require.NoError(t, err)
	assert.Empty(t, p.Goals())
	_, ok := p.Doc().Get("goals")
	assert.True(t, ok, "chose-nothing is stored, not erased")
}

func TestSaveUpdateOnlyRequiresProfile(t *testing.T) {
	initTestDB(t)

	_, err := Save(7, SaveInput{Updates: map[string]any{"name": "Ana"}}, false)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestSaveStampsPersonalizedAtOnce(t *testing.T) {
	initTestDB(t)

	p, err := Save(1, SaveInput{
		Updates: map[string]any{
			"goals":                []string{"reduce_stress"},
			"challenges":           []string{"burnout"},
			"practice_preferences": []string{"breathing"},
		},
		OnboardingScreen: models.ScreenCompleted,
	}, true)
	require.NoError(t, err)
	require.NotNil(t, p.PersonalizedAt)
	stamped := *p.PersonalizedAt

	// Later saves keep the original timestamp.
	p, err = Save(1, SaveInput{
		Updates:          map[string]any{"name": "Ana"},
		OnboardingScreen: models.ScreenCompleted,
	}, true)
	require.NoError(t, err)
	require.NotNil(t, p.PersonalizedAt)
	assert.Equal(t, stamped, *p.PersonalizedAt)
}

func TestSaveCompletionWithoutRequiredFields(t *testing.T) {
	initTestDB(t)

	p, err := Save(1, SaveInput{
		Updates:          map[string]any{"goals": []string{"reduce_stress"}},
		OnboardingScreen: models.ScreenCompleted,
	}, true)
	require.NoError(t, err)
	assert.Nil(t, p.PersonalizedAt, "completion without required selections must not stamp")
	assert.Equal(t, models.ScreenCompleted, p.OnboardingScreen)
}

func TestSetScreen(t *testing.T) {
	initTestDB(t)

	p, err := SetScreen(1, models.ScreenBreathe)
	require.NoError(t, err)
	assert.Equal(t, models.ScreenBreathe, p.OnboardingScreen)
	require.NotNil(t, p.OnboardingStartedAt, "first visit starts the clock")

	// Legacy marker normalizes on write.
	p, err = SetScreen(1, "sleep")
	require.NoError(t, err)
	assert.Equal(t, models.ScreenCompleted, p.OnboardingScreen)

	_, err = SetScreen(1, "bogus")
	assert.ErrorIs(t, err, ErrInvalidScreen)
}
