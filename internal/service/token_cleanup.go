package service

import (
	"time"

	"github.com/rshzvr/recipe-app-api/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenCleanup periodically deletes auth tokens that are past their
// expiry. The auth middleware already rejects them, this just keeps the
// table from growing forever
func TokenCleanup(t time.Duration, db *gorm.DB) {
	if t <= 0 {
		t = time.Hour
	}

	ticker := time.NewTicker(t)

	zap.L().Debug("Token cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			res := db.
				Where("expires_at < ?", time.Now().Unix()).
				Delete(model.AuthToken{})
			if res.Error != nil {
				zap.L().Error("Failed to cleanup expired tokens", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Debug("Cleaned up expired tokens", zap.Int64("count", res.RowsAffected))
			}
		}
	}()
}
