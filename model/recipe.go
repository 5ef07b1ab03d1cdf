// Package model defines database models
package model

import "github.com/shopspring/decimal"

type Recipe struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string `gorm:"index;not null" json:"-"`
	Title       string `gorm:"not null" json:"title"`
	TimeMinutes int    `json:"time_minutes"`
	// Price keeps exact cents. Serialized as a quoted string so clients
	// don't mangle it with float math
	Price       decimal.Decimal `gorm:"type:decimal(5,2)" json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`

	// Storing the key instead of a full URL means the storage backend can
	// change without rewriting rows. The URL is built when serving
	ImageKey string `json:"-"`
	ImageURL string `gorm:"-" json:"image_url"`

	CreatedAt int64 `gorm:"not null" json:"-"`

	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`
}
