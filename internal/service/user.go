// Package service holds account plumbing and background jobs that don't
// belong to a single endpoint
package service

import (
	"errors"
	"time"

	"github.com/rshzvr/recipe-app-api/model"
	"github.com/rshzvr/recipe-app-api/pkg/security"
	"github.com/rshzvr/recipe-app-api/validators"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var ErrEmailTaken = errors.New("this email is already registered")

// CreateSuperuser provisions an account with the staff and superuser
// flags set. Used by the --create-superuser startup flag
func CreateSuperuser(db *gorm.DB, argon *security.ArgonHash, email, password string) (*model.User, error) {
	email = validators.NormalizeEmail(email)

	if err := validators.EmailValidator(email); err != nil {
		return nil, err
	}

	if err := validators.PasswordValidator(password); err != nil {
		return nil, err
	}

	hash, err := argon.GenerateFromPassword(password)
	if err != nil {
		return nil, err
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           userID,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
		CreatedAt:    time.Now().Unix(),
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return user, nil
}
