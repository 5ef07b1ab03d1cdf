package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/rshzvr/recipe-app-api/model"

	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// tokenKeyBytes is the raw entropy per token key. Hex encoding doubles it
// to the 64 characters stored and sent over the wire
const tokenKeyBytes = 32

// IssueToken hands back the user's current token, minting one if none
// exists. An expired token gets rotated in place instead of stacking up
// dead rows
func IssueToken(db *gorm.DB, userID string) (*model.AuthToken, error) {
	ttl := viper.GetDuration("auth.token_ttl")
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}

	now := time.Now()

	var token model.AuthToken

	err := db.Where("user_id = ?", userID).First(&token).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err == nil {
		if token.ExpiresAt > now.Unix() {
			return &token, nil
		}

		key, err := newTokenKey()
		if err != nil {
			return nil, err
		}

		token.Key = key
		token.CreatedAt = now.Unix()
		token.ExpiresAt = now.Add(ttl).Unix()

		if err := db.Save(&token).Error; err != nil {
			return nil, err
		}

		return &token, nil
	}

	key, err := newTokenKey()
	if err != nil {
		return nil, err
	}

	token = model.AuthToken{
		UserID:    userID,
		Key:       key,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}

	if err := db.Create(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

func newTokenKey() (string, error) {
	b := make([]byte, tokenKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}
