package catalog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/veya/veya-api/internal/db"
	"github.com/veya/veya-api/internal/models"
)

var (
	// ErrNotFound: category or template code absent.
	ErrNotFound = errors.New("catalog: not found")
	// ErrDuplicateCode: adding an item whose code already exists (active or
	// inactive) in the category.
	ErrDuplicateCode = errors.New("catalog: duplicate template code")
)

// GetCategory loads one catalog record by its unique category key.
func GetCategory(name string) (*models.TemplateCategory, error) {
	var rec models.TemplateCategory
	if err := db.Conn().Where("category = ?", name).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// UpsertCategory creates the category at version 1 if absent. When it
// already exists: no-op unless overwrite is set, in which case templates,
// fields and screen metadata are replaced and the version bumped. The seed
// manifest and admin edits both go through here.
func UpsertCategory(rec models.TemplateCategory, overwrite bool) (*models.TemplateCategory, error) {
	var out *models.TemplateCategory
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		var existing models.TemplateCategory
		err := tx.Where("category = ?", rec.Category).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec.ID = 0
			rec.Version = 1
			if rec.Templates == nil {
				rec.Templates = models.TemplateItems{}
			}
			if rec.Fields == nil {
				rec.Fields = models.FieldDocs{}
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			out = &rec
			return nil
		case err != nil:
			return err
		}

		if !overwrite {
			out = &existing
			return nil
		}
		existing.Templates = rec.Templates
		existing.Fields = rec.Fields
		existing.ViewOrder = rec.ViewOrder
		existing.ScreenKey = rec.ScreenKey
		existing.ScreenTitle = rec.ScreenTitle
		existing.ScreenSubtitle = rec.ScreenSubtitle
		existing.ScreenType = rec.ScreenType
		existing.ScreenIcon = rec.ScreenIcon
		existing.Version++
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		out = &existing
		return nil
	})
	return out, err
}

// AddItem appends a new template item to a category, creating the category
// when it does not exist yet. Codes are unique within the category across
// active and inactive items.
func AddItem(category string, item models.TemplateItem) error {
	return db.Conn().Transaction(func(tx *gorm.DB) error {
		var rec models.TemplateCategory
		err := tx.Where("category = ?", category).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = models.TemplateCategory{
				Category:  category,
				Templates: models.TemplateItems{item},
				Fields:    models.FieldDocs{},
				Version:   1,
			}
			return tx.Create(&rec).Error
		}
		if err != nil {
			return err
		}

		for _, t := range rec.Templates {
			if t.Code == item.Code {
				return ErrDuplicateCode
			}
		}
		rec.Templates = append(rec.Templates, item)
		rec.Version++
		return tx.Save(&rec).Error
	})
}

// DeactivateItem flips is_active off for the matching code. Items are never
// removed from the list; history stays intact.
func DeactivateItem(category, code string) error {
	return db.Conn().Transaction(func(tx *gorm.DB) error {
		var rec models.TemplateCategory
		err := tx.Where("category = ?", category).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		found := false
		for i := range rec.Templates {
			if rec.Templates[i].Code == code {
				rec.Templates[i].IsActive = false
				found = true
				break
			}
		}
		if !found {
			return ErrNotFound
		}
		rec.Version++
		return tx.Save(&rec).Error
	})
}

// ReplaceItems swaps the whole templates list (bulk admin update), creating
// the category when absent. Last writer wins on concurrent edits; a
// version-matched compare-and-swap would be the place to tighten this.
func ReplaceItems(category string, items []models.TemplateItem) (*models.TemplateCategory, error) {
	var out *models.TemplateCategory
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		var rec models.TemplateCategory
		err := tx.Where("category = ?", category).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = models.TemplateCategory{
				Category:  category,
				Templates: models.TemplateItems(items),
				Fields:    models.FieldDocs{},
				Version:   1,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			out = &rec
			return nil
		}
		if err != nil {
			return err
		}

		rec.Templates = models.TemplateItems(items)
		rec.Version++
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		out = &rec
		return nil
	})
	return out, err
}
