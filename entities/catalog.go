package entities

type Kitchen struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(30);not null;index" json:"name"`

	Recipes []*Recipe `gorm:"foreignKey:KitchenID"`
	Timestamp
}

type Ingredient struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(30);not null;index" json:"name"`

	IngredientRecipes []*RecipeIngredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE"`
	Timestamp
}
