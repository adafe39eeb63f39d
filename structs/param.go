package structs

import "macro-traco-backend/services/nutrition"

type EatParam struct {
	Edible   nutrition.Edible `json:"edible"`
	Weight   nutrition.Weight `json:"weight"`
	Consumer string           `json:"consumer"`
}

// EatQueueParam is an EatParam delivered through the message queue.
type EatQueueParam struct {
	EatParam
	TaskID    uint   `json:"task_id"`
	QueueType string `json:"queue_type"`
}

type MacroQueryParam struct {
	Type   string  `form:"type" binding:"required"`
	ID     int64   `form:"id"`
	SeqNum int     `form:"seq_num"`
	Amount float64 `form:"amount"`
}

type IntakeQueryParam struct {
	Consumer string `form:"consumer" binding:"required"`
	Date     string `form:"date"`
	Start    string `form:"start"`
	End      string `form:"end"`
}

type SearchQueryParam struct {
	For        string `form:"for"`
	RestrictTo string `form:"restrict_to"`
}

type FoodNutrientParam struct {
	NutrientID int64   `json:"nutrient_id"`
	Amount     float64 `json:"amount"`
}

type FoodUnitParam struct {
	Name  string  `json:"name"`
	Grams float64 `json:"grams"`
}

type FoodParam struct {
	Name      string              `json:"name"`
	Nutrients []FoodNutrientParam `json:"nutrients"`
	Units     []FoodUnitParam     `json:"units"`
}

type IngredientParam struct {
	Edible nutrition.Edible `json:"edible"`
	Weight nutrition.Weight `json:"weight"`
}

type RecipeParam struct {
	Name        string            `json:"name"`
	Ingredients []IngredientParam `json:"ingredients"`
}
