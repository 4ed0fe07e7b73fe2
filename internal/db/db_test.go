package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/models"
	"github.com/veya/veya-api/internal/personalization"
)

func TestInitMigratesSchema(t *testing.T) {
	require.NoError(t, db.Init(filepath.Join(t.TempDir(), "test.db")))

	var mode string
	require.NoError(t, db.Conn().Raw("PRAGMA journal_mode").Scan(&mode).Error)
	assert.Equal(t, "wal", mode)

	for _, table := range []string{"users", "user_profiles", "personalization_templates"} {
		assert.True(t, db.Conn().Migrator().HasTable(table), table)
	}
}

func TestJSONColumnsRoundTrip(t *testing.T) {
	require.NoError(t, db.Init(filepath.Join(t.TempDir(), "test.db")))

	cat := models.TemplateCategory{
		Category: "goals",
		Templates: models.TemplateItems{
			{Code: "a", Label: "A", DisplayOrder: 1, IsActive: true},
		},
		Fields:  models.FieldDocs{{"field_key": "goals", "field_type": "multi_select"}},
		Version: 1,
	}
	require.NoError(t, db.Conn().Create(&cat).Error)

	var back models.TemplateCategory
	require.NoError(t, db.Conn().Where("category = ?", "goals").First(&back).Error)
	require.Len(t, back.Templates, 1)
	assert.Equal(t, "a", back.Templates[0].Code)
	require.Len(t, back.Fields, 1)
	assert.Equal(t, "goals", back.Fields[0]["field_key"])

	profile := models.UserProfile{
		UserID: 1,
		PersonalizationData: personalization.Document{
			"goals": []string{"a"},
			"name":  "Ana",
		},
	}
	require.NoError(t, db.Conn().Create(&profile).Error)

	var p models.UserProfile
	require.NoError(t, db.Conn().Where("user_id = ?", 1).First(&p).Error)
	assert.Equal(t, []string{"a"}, p.Goals())
	assert.Equal(t, "Ana", p.Name())
}
