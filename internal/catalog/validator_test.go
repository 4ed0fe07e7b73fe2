package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veya/veya-api/internal/catalog"
	"github.com/veya/veya-api/internal/models"
)

func seedGoals(t *testing.T) {
	t.Helper()
	_, err := catalog.UpsertCategory(models.TemplateCategory{
		Category: "goals",
		Templates: models.TemplateItems{
			{Code: "reduce_stress", Label: "Reduce stress", DisplayOrder: 1, IsActive: true},
			{Code: "sleep_better", Label: "Sleep better", DisplayOrder: 2, IsActive: true},
			{Code: "retired", Label: "Retired", DisplayOrder: 3, IsActive: false},
		},
	}, false)
	require.NoError(t, err)
}

func TestValidateCodesPartition(t *testing.T) {
	initTestDB(t)
	seedGoals(t)

	valid, invalid, err := catalog.ValidateCodes("goals", []string{
		"sleep_better", "bogus", "reduce_stress", "retired",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"sleep_better", "reduce_stress"}, valid, "candidate order preserved")
	assert.Equal(t, []string{"bogus", "retired"}, invalid, "inactive codes are invalid")
}

func TestValidateCodesIdempotent(t *testing.T) {
	initTestDB(t)
	seedGoals(t)

	valid, _, err := catalog.ValidateCodes("goals", []string{"reduce_stress", "x"})
	require.NoError(t, err)
	again, _, err := catalog.ValidateCodes("goals", valid)
	require.NoError(t, err)
	assert.Equal(t, valid, again, "validating a valid set changes nothing")
}

func TestValidateCodesMissingCategory(t *testing.T) {
	initTestDB(t)

	valid, invalid, err := catalog.ValidateCodes("no_such_category", []string{"a", "b"})
	require.NoError(t, err, "missing category is not an error")
	assert.Empty(t, valid)
	assert.Equal(t, []string{"a", "b"}, invalid)
}

func TestValidateCodesEmptyInput(t *testing.T) {
	initTestDB(t)

	valid, invalid, err := catalog.ValidateCodes("goals", nil)
	require.NoError(t, err)
	assert.Empty(t, valid)
	assert.Empty(t, invalid)
}
