package nutrition

import "time"

type WeightUnit struct {
	SeqNum      int     `json:"seq_num"`
	GramWeight  float64 `json:"grams"`
	Amount      float64 `json:"amount"`
	Description string  `json:"name"`
}

type NutrientValue struct {
	Name          string
	Unit          string
	AmountPer100g float64
}

type Ingredient struct {
	FoodID int64
	Amount float64
	SeqNum int
}

// WeightStore returns a nil unit and no error when the food has no weight
// row for seqNum.
type WeightStore interface {
	GetWeightUnit(foodID int64, seqNum int) (*WeightUnit, error)
}

type FoodStore interface {
	WeightStore
	GetCommonNutrientValues(foodID int64) ([]NutrientValue, error)
	FoodExists(foodID int64) (bool, error)
}

type RecipeStore interface {
	GetIngredients(recipeID int64) ([]Ingredient, error)
	RecipeExists(recipeID int64) (bool, error)
}

type IntakeStore interface {
	AppendIntakeRecord(consumer string, nutrients Fact, at time.Time) error
	QueryIntakeRecords(consumer string, start, end time.Time) ([]Fact, error)
}

// Store is everything the calculators and the intake log read and write.
type Store interface {
	FoodStore
	RecipeStore
	IntakeStore
}
