package nutrition

import "fmt"

type FoodCalculator struct {
	store   FoodStore
	weights *WeightResolver
}

func NewFoodCalculator(store FoodStore, weights *WeightResolver) *FoodCalculator {
	return &FoodCalculator{store: store, weights: weights}
}

// Calculate returns the common nutrients in quantity q of the food.
func (f *FoodCalculator) Calculate(foodID int64, q Quantity) (Fact, error) {
	grams, err := f.consumedGrams(foodID, q)
	if err != nil {
		return nil, err
	}
	if !finite(grams) {
		return nil, fmt.Errorf("%w: %v grams of food %d", ErrInvalidQuantity, grams, foodID)
	}
	fact, err := f.CalculateGrams(foodID, grams)
	if err != nil {
		return nil, err
	}
	if !fact.finite() {
		return nil, fmt.Errorf("%w: %v grams of food %d overflows", ErrInvalidQuantity, grams, foodID)
	}
	return fact, nil
}

func (f *FoodCalculator) consumedGrams(foodID int64, q Quantity) (float64, error) {
	switch v := q.(type) {
	case Grams:
		return float64(v), nil
	case UnitCount:
		perUnit, err := f.weights.GramsPerUnit(foodID, int(v.SeqNum))
		if err != nil {
			return 0, err
		}
		return perUnit * v.Count, nil
	default:
		return 0, fmt.Errorf("%w: %T for food %d", ErrInvalidQuantity, q, foodID)
	}
}

// CalculateGrams scales the stored per 100g values to grams. A food that
// exists but has no common nutrients yields an empty fact.
func (f *FoodCalculator) CalculateGrams(foodID int64, grams float64) (Fact, error) {
	values, err := f.store.GetCommonNutrientValues(foodID)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		exists, err := f.store.FoodExists(foodID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %d", ErrUnknownFood, foodID)
		}
	}

	fact := make(Fact, len(values))
	for _, value := range values {
		fact[value.Name] = Amount{Value: value.AmountPer100g / 100 * grams, Unit: value.Unit}
	}
	return fact, nil
}
