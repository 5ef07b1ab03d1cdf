package service

import (
	"testing"
	"time"

	"github.com/rshzvr/recipe-app-api/db"
	"github.com/rshzvr/recipe-app-api/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", ":memory:")

	d, err := db.New()
	require.NoError(t, err)

	return d
}

func seedUser(t *testing.T, d *gorm.DB, id string) *model.User {
	t.Helper()

	user := &model.User{
		ID:           id,
		Email:        id + "@example.com",
		PasswordHash: "irrelevant",
		IsActive:     true,
		CreatedAt:    time.Now().Unix(),
	}
	require.NoError(t, d.Create(user).Error)

	return user
}
