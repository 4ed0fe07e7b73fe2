package catalog

import (
	"github.com/sirupsen/logrus"
)

// Seed applies the default catalog through the regular UpsertCategory
// contract. With overwrite=false existing categories are left untouched
// (idempotent bootstrap); with overwrite=true they are reset to defaults
// and their version bumped.
func Seed(overwrite bool) error {
	created, updated, skipped := 0, 0, 0
	for _, rec := range defaultCategories() {
		before, err := GetCategory(rec.Category)
		exists := err == nil
		if err != nil && err != ErrNotFound {
			return err
		}

		after, err := UpsertCategory(rec, overwrite)
		if err != nil {
			return err
		}
		switch {
		case !exists:
			created++
		case overwrite && after.Version > before.Version:
			updated++
		default:
			skipped++
		}
	}
	logrus.WithFields(logrus.Fields{
		"created": created,
		"updated": updated,
		"skipped": skipped,
	}).Info("catalog seed complete")
	return nil
}

// Reset forces every category back to the default catalog.
func Reset() error {
	return Seed(true)
}
