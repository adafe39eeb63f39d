package nutrition

import (
	"fmt"
	"macro-traco-backend/enums"
)

// Edible references either a food or a recipe.
type Edible struct {
	Type string `json:"type" form:"type"`
	ID   int64  `json:"id" form:"id"`
}

type Weight struct {
	SeqNum int     `json:"seq_num" form:"seq_num"`
	Amount float64 `json:"amount" form:"amount"`
}

// EdibleCalculator is the single place that branches on the edible type.
type EdibleCalculator struct {
	foods   *FoodCalculator
	recipes *RecipeCalculator
}

func NewEdibleCalculator(store Store) *EdibleCalculator {
	weights := NewWeightResolver(store)
	foods := NewFoodCalculator(store, weights)
	return &EdibleCalculator{
		foods:   foods,
		recipes: NewRecipeCalculator(store, foods, weights),
	}
}

func (e *EdibleCalculator) Calculate(edible Edible, q Quantity) (Fact, error) {
	switch edible.Type {
	case enums.FoodEdible:
		return e.foods.Calculate(edible.ID, q)
	case enums.RecipeEdible:
		return e.recipes.Calculate(edible.ID, q)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdibleType, edible.Type)
	}
}

func (e *EdibleCalculator) CalculateWeight(edible Edible, weight Weight) (Fact, error) {
	q, err := QuantityFromWeight(edible.Type, weight.SeqNum, weight.Amount)
	if err != nil {
		return nil, err
	}
	return e.Calculate(edible, q)
}
