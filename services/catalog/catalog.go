package catalog

import (
	"errors"
	"fmt"
	"macro-traco-backend/enums"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/services/store"
	"macro-traco-backend/structs"
	"strings"
)

var (
	ErrInvalidSearchTerm  = errors.New("search terms must be letters")
	ErrInvalidRestriction = errors.New("restrict_to must be food or recipe")
	ErrInvalidIngredient  = errors.New("invalid ingredient")
	ErrInvalidFood        = errors.New("invalid food")
	ErrEmptyName          = errors.New("name is required")
)

type Store interface {
	InsertFood(name string, nutrients []store.NutrientAmount, units []store.UnitWeight) (int64, error)
	InsertRecipe(name string, ingredients []nutrition.Ingredient) (int64, error)
	SearchFoodsAndRecipes(words []string, restrictTo []string) ([]store.SearchResult, error)
	ListWeightUnits(foodID int64) ([]nutrition.WeightUnit, error)
	FoodExists(foodID int64) (bool, error)
}

// Service registers foods and recipes and finds them by name.
type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// IsInvalidInput reports whether err is the caller's fault.
func IsInvalidInput(err error) bool {
	for _, target := range []error{ErrInvalidSearchTerm, ErrInvalidRestriction, ErrInvalidIngredient, ErrInvalidFood, ErrEmptyName} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Search returns foods and recipes whose name contains every term, case
// insensitively. An empty restrictTo searches both kinds.
func (s *Service) Search(terms []string, restrictTo string) ([]store.SearchResult, error) {
	kinds, err := restriction(restrictTo)
	if err != nil {
		return nil, err
	}
	words, err := SearchWords(terms)
	if err != nil {
		return nil, err
	}
	return s.store.SearchFoodsAndRecipes(words, kinds)
}

func restriction(restrictTo string) ([]string, error) {
	switch restrictTo {
	case "":
		return []string{enums.FoodEdible, enums.RecipeEdible}, nil
	case enums.FoodEdible, enums.RecipeEdible:
		return []string{restrictTo}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRestriction, restrictTo)
	}
}

// SearchWords lower-cases the terms and drops empty ones. Every remaining
// word must be made of the letters a to z.
func SearchWords(terms []string) ([]string, error) {
	var words []string
	for _, term := range terms {
		word := strings.ToLower(strings.TrimSpace(term))
		if word == "" {
			continue
		}
		for _, c := range word {
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("%w: %q", ErrInvalidSearchTerm, term)
			}
		}
		words = append(words, word)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no terms", ErrInvalidSearchTerm)
	}
	return words, nil
}

func (s *Service) Weights(foodID int64) ([]nutrition.WeightUnit, error) {
	return s.store.ListWeightUnits(foodID)
}

func (s *Service) RegisterFood(param structs.FoodParam) (int64, error) {
	name := strings.TrimSpace(param.Name)
	if name == "" {
		return 0, ErrEmptyName
	}

	nutrients := make([]store.NutrientAmount, 0, len(param.Nutrients))
	for _, nutrient := range param.Nutrients {
		if nutrient.Amount < 0 {
			return 0, fmt.Errorf("%w: nutrient %d has negative amount", ErrInvalidFood, nutrient.NutrientID)
		}
		nutrients = append(nutrients, store.NutrientAmount{NutrientID: nutrient.NutrientID, Amount: nutrient.Amount})
	}
	units := make([]store.UnitWeight, 0, len(param.Units))
	for _, unit := range param.Units {
		if unit.Grams <= 0 {
			return 0, fmt.Errorf("%w: unit %q must weigh more than 0g", ErrInvalidFood, unit.Name)
		}
		units = append(units, store.UnitWeight{Name: unit.Name, Grams: unit.Grams})
	}
	return s.store.InsertFood(name, nutrients, units)
}

// RegisterRecipe stores a recipe made only of existing foods.
func (s *Service) RegisterRecipe(param structs.RecipeParam) (int64, error) {
	name := strings.TrimSpace(param.Name)
	if name == "" {
		return 0, ErrEmptyName
	}

	ingredients := make([]nutrition.Ingredient, 0, len(param.Ingredients))
	for i, ingredient := range param.Ingredients {
		if ingredient.Edible.Type != enums.FoodEdible {
			return 0, fmt.Errorf("%w %d: type %q, recipes hold foods only", ErrInvalidIngredient, i, ingredient.Edible.Type)
		}
		if ingredient.Weight.SeqNum < 0 {
			return 0, fmt.Errorf("%w %d: sequence number %d", ErrInvalidIngredient, i, ingredient.Weight.SeqNum)
		}
		exists, err := s.store.FoodExists(ingredient.Edible.ID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, fmt.Errorf("%w %d: unknown food %d", ErrInvalidIngredient, i, ingredient.Edible.ID)
		}
		ingredients = append(ingredients, nutrition.Ingredient{
			FoodID: ingredient.Edible.ID,
			Amount: ingredient.Weight.Amount,
			SeqNum: ingredient.Weight.SeqNum,
		})
	}
	return s.store.InsertRecipe(name, ingredients)
}
