package model

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	IsActive     bool  `gorm:"default:true"`
	IsStaff      bool  `gorm:"default:false"`
	IsSuperuser  bool  `gorm:"default:false"`
	CreatedAt    int64 `gorm:"not null"`

	Tokens      []AuthToken  `gorm:"foreignKey:UserID"`
	Recipes     []Recipe     `gorm:"foreignKey:UserID"`
	Tags        []Tag        `gorm:"foreignKey:UserID"`
	Ingredients []Ingredient `gorm:"foreignKey:UserID"`
}
