package model

type Ingredient struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"not null;uniqueIndex:idx_ingredients_user_name" json:"-"`
	Name   string `gorm:"not null;uniqueIndex:idx_ingredients_user_name" json:"name"`

	Recipes []Recipe `gorm:"many2many:recipe_ingredients" json:"-"`
}
