// Package db contains the database bootstrap
package db

import (
	"fmt"
	"os"
	"strings"

	"github.com/rshzvr/recipe-app-api/model"
	"github.com/rshzvr/recipe-app-api/util"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	dsn := viper.GetString("database.dsn")

	var dialector gorm.Dialector

	switch viper.GetString("database.driver") {
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		// If running in a docker container don't allow the sqlite file to be created.
		// The host should instead mount it using volumes
		if util.IsRunningInDocker() && !strings.Contains(dsn, ":memory:") {
			if _, err := os.Stat(dsn); err != nil {
				return nil, fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to /app/%s", dsn)
			}
		}

		dialector = sqlite.Open(dsn)
	}

	// TranslateError turns driver specific duplicate key errors into
	// gorm.ErrDuplicatedKey so the get-or-create paths work on both drivers
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	// An in-memory SQLite database exists per connection. Pin the pool to
	// a single one so every session sees the same data
	if strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		sqlDB.SetMaxOpenConns(1)
	}

	err = db.AutoMigrate(model.User{}, model.AuthToken{}, model.Recipe{}, model.Tag{}, model.Ingredient{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
