package models

// Nutrition is the amount of a nutrient in 100g of a food.
type Nutrition struct {
	FoodID     int64   `gorm:"column:food_id;unique_index:idx_nutrition_food_nutrient" json:"food_id"`
	NutrientID int64   `gorm:"column:nutrient_id;unique_index:idx_nutrition_food_nutrient" json:"nutrient_id"`
	Amount     float64 `gorm:"column:amount" json:"amount"`
}

// TableName sets the insert table name for this struct type
func (n *Nutrition) TableName() string {
	return "nutrition"
}
