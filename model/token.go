package model

// AuthToken is the opaque credential returned by the token endpoint.
// Each user holds at most one, expired rows get rotated on the next login
type AuthToken struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"uniqueIndex;not null"`
	Key       string `gorm:"uniqueIndex;not null"`
	CreatedAt int64  `gorm:"not null"`
	ExpiresAt int64  `gorm:"not null"`
}
