package model

// Tag names only need to be unique within a single user's namespace,
// so the unique index spans both columns
type Tag struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"-"`
	Name   string `gorm:"not null;uniqueIndex:idx_tags_user_name" json:"name"`

	Recipes []Recipe `gorm:"many2many:recipe_tags" json:"-"`
}
