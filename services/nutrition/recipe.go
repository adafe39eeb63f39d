package nutrition

import "fmt"

type RecipeCalculator struct {
	store   RecipeStore
	foods   *FoodCalculator
	weights *WeightResolver
}

func NewRecipeCalculator(store RecipeStore, foods *FoodCalculator, weights *WeightResolver) *RecipeCalculator {
	return &RecipeCalculator{store: store, foods: foods, weights: weights}
}

// Calculate totals the nutrients of every ingredient, then scales the total
// to the consumed share of the recipe. Any failing ingredient fails the
// whole recipe.
func (r *RecipeCalculator) Calculate(recipeID int64, q Quantity) (Fact, error) {
	total, totalGrams, err := r.whole(recipeID)
	if err != nil {
		return nil, err
	}

	var ratio float64
	switch v := q.(type) {
	case Grams:
		if totalGrams == 0 {
			return nil, fmt.Errorf("%w: recipe %d", ErrZeroWeightRecipe, recipeID)
		}
		ratio = float64(v) / totalGrams
	case RecipeFraction:
		ratio = float64(v)
	default:
		return nil, fmt.Errorf("%w: %T for recipe %d", ErrInvalidQuantity, q, recipeID)
	}
	if !finite(ratio) {
		return nil, fmt.Errorf("%w: share %v of recipe %d", ErrInvalidQuantity, ratio, recipeID)
	}

	fact := total.Scale(ratio)
	if !fact.finite() {
		return nil, fmt.Errorf("%w: share %v of recipe %d overflows", ErrInvalidQuantity, ratio, recipeID)
	}
	return fact, nil
}

func (r *RecipeCalculator) whole(recipeID int64) (Fact, float64, error) {
	ingredients, err := r.store.GetIngredients(recipeID)
	if err != nil {
		return nil, 0, err
	}
	if len(ingredients) == 0 {
		exists, err := r.store.RecipeExists(recipeID)
		if err != nil {
			return nil, 0, err
		}
		if !exists {
			return nil, 0, fmt.Errorf("%w: %d", ErrUnknownRecipe, recipeID)
		}
	}

	total := Fact{}
	totalGrams := 0.0
	for _, ingredient := range ingredients {
		perUnit, err := r.weights.GramsPerUnit(ingredient.FoodID, ingredient.SeqNum)
		if err != nil {
			return nil, 0, fmt.Errorf("recipe %d: %w", recipeID, err)
		}
		grams := perUnit * ingredient.Amount

		fact, err := r.foods.CalculateGrams(ingredient.FoodID, grams)
		if err != nil {
			return nil, 0, fmt.Errorf("recipe %d: %w", recipeID, err)
		}
		if total, err = total.Add(fact); err != nil {
			return nil, 0, fmt.Errorf("recipe %d: %w", recipeID, err)
		}
		totalGrams += grams
	}
	return total, totalGrams, nil
}
