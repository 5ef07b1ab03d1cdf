package service

import (
	"errors"
	"strings"

	"github.com/rshzvr/recipe-app-api/model"

	"gorm.io/gorm"
)

var ErrBlankName = errors.New("names can't be blank")

// ResolveTags maps tag names to records owned by the user, creating the
// ones that don't exist yet. Duplicate names collapse to a single record.
// Must be called inside the transaction that writes the recipe so a
// failed write doesn't leave stray half-linked tags
func ResolveTags(tx *gorm.DB, userID string, names []string) ([]model.Tag, error) {
	out := make([]model.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrBlankName
		}

		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		var tag model.Tag

		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error
		if err == nil {
			out = append(out, tag)
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		tag = model.Tag{UserID: userID, Name: name}

		err = tx.Create(&tag).Error
		if err == nil {
			out = append(out, tag)
			continue
		}

		// A concurrent request created the same tag between our lookup
		// and insert. The unique index guarantees exactly one row exists
		// now, so fetch that one instead of failing
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}

		if err := tx.Where("user_id = ? AND name = ?", userID, name).First(&tag).Error; err != nil {
			return nil, err
		}

		out = append(out, tag)
	}

	return out, nil
}

// ResolveIngredients is ResolveTags for the ingredient namespace
func ResolveIngredients(tx *gorm.DB, userID string, names []string) ([]model.Ingredient, error) {
	out := make([]model.Ingredient, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, ErrBlankName
		}

		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		var ing model.Ingredient

		err := tx.Where("user_id = ? AND name = ?", userID, name).First(&ing).Error
		if err == nil {
			out = append(out, ing)
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		ing = model.Ingredient{UserID: userID, Name: name}

		err = tx.Create(&ing).Error
		if err == nil {
			out = append(out, ing)
			continue
		}

		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}

		if err := tx.Where("user_id = ? AND name = ?", userID, name).First(&ing).Error; err != nil {
			return nil, err
		}

		out = append(out, ing)
	}

	return out, nil
}
