package models

type Ingredient struct {
	ID          int64   `gorm:"column:id;primary_key" json:"id"`
	RecipeID    int64   `gorm:"column:recipe_id;index" json:"recipe_id"`
	FoodID      int64   `gorm:"column:food_id" json:"food_id"`
	Amount      float64 `gorm:"column:amount" json:"amount"`
	SeqNum      int     `gorm:"column:seq_num" json:"seq_num"`
	DisplayUnit string  `gorm:"column:display_unit" json:"display_unit"`
}

// TableName sets the insert table name for this struct type
func (i *Ingredient) TableName() string {
	return "ingredient"
}
