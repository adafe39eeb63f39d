package catalog

import (
	"errors"
	"reflect"
	"testing"

	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/services/store"
	"macro-traco-backend/structs"
)

type fakeStore struct {
	foods       map[int64]bool
	words       []string
	restrictTo  []string
	recipe      []nutrition.Ingredient
	foodUnits   []store.UnitWeight
	insertCalls int
}

func (f *fakeStore) InsertFood(name string, nutrients []store.NutrientAmount, units []store.UnitWeight) (int64, error) {
	f.insertCalls++
	f.foodUnits = units
	return 42, nil
}

func (f *fakeStore) InsertRecipe(name string, ingredients []nutrition.Ingredient) (int64, error) {
	f.insertCalls++
	f.recipe = ingredients
	return 7, nil
}

func (f *fakeStore) SearchFoodsAndRecipes(words []string, restrictTo []string) ([]store.SearchResult, error) {
	f.words = words
	f.restrictTo = restrictTo
	return []store.SearchResult{}, nil
}

func (f *fakeStore) ListWeightUnits(foodID int64) ([]nutrition.WeightUnit, error) {
	return nil, nil
}

func (f *fakeStore) FoodExists(foodID int64) (bool, error) {
	return f.foods[foodID], nil
}

func TestSearchWords(t *testing.T) {
	cases := []struct {
		name    string
		terms   []string
		want    []string
		wantErr bool
	}{
		{name: "lower cases", terms: []string{"Chick", "BREAST"}, want: []string{"chick", "breast"}},
		{name: "drops empty", terms: []string{"", "chick", ""}, want: []string{"chick"}},
		{name: "digit", terms: []string{"chick3n"}, wantErr: true},
		{name: "punctuation", terms: []string{"chick'"}, wantErr: true},
		{name: "accent", terms: []string{"jalapeño"}, wantErr: true},
		{name: "nothing", terms: []string{" "}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SearchWords(tc.terms)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidSearchTerm) {
					t.Fatalf("want ErrInvalidSearchTerm, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("want=%v got=%v", tc.want, got)
			}
		})
	}
}

func TestSearchRestriction(t *testing.T) {
	fake := &fakeStore{}
	s := New(fake)

	if _, err := s.Search([]string{"chick"}, "food"); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !reflect.DeepEqual(fake.restrictTo, []string{"food"}) {
		t.Fatalf("restrict: %v", fake.restrictTo)
	}

	if _, err := s.Search([]string{"chick"}, ""); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !reflect.DeepEqual(fake.restrictTo, []string{"food", "recipe"}) {
		t.Fatalf("restrict: %v", fake.restrictTo)
	}

	if _, err := s.Search([]string{"chick"}, "drink"); !errors.Is(err, ErrInvalidRestriction) {
		t.Fatalf("want ErrInvalidRestriction, got %v", err)
	}
	if _, err := s.Search([]string{"chick1"}, "food"); !errors.Is(err, ErrInvalidSearchTerm) {
		t.Fatalf("want ErrInvalidSearchTerm, got %v", err)
	}
}

func TestRegisterRecipe(t *testing.T) {
	fake := &fakeStore{foods: map[int64]bool{1: true, 2: true}}
	s := New(fake)

	id, err := s.RegisterRecipe(structs.RecipeParam{
		Name: "chicken dinner",
		Ingredients: []structs.IngredientParam{
			{Edible: nutrition.Edible{Type: "food", ID: 1}, Weight: nutrition.Weight{SeqNum: 3, Amount: 1}},
			{Edible: nutrition.Edible{Type: "food", ID: 2}, Weight: nutrition.Weight{SeqNum: 0, Amount: 150}},
		},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id != 7 {
		t.Fatalf("id: %d", id)
	}
	want := []nutrition.Ingredient{{FoodID: 1, Amount: 1, SeqNum: 3}, {FoodID: 2, Amount: 150, SeqNum: 0}}
	if !reflect.DeepEqual(fake.recipe, want) {
		t.Fatalf("ingredients: %+v", fake.recipe)
	}
}

func TestRegisterRecipeRejects(t *testing.T) {
	cases := []struct {
		name    string
		param   structs.RecipeParam
		wantErr error
	}{
		{
			name:    "no name",
			param:   structs.RecipeParam{Name: " "},
			wantErr: ErrEmptyName,
		},
		{
			name: "nested recipe",
			param: structs.RecipeParam{Name: "stew", Ingredients: []structs.IngredientParam{
				{Edible: nutrition.Edible{Type: "recipe", ID: 1}, Weight: nutrition.Weight{SeqNum: -1, Amount: 1}},
			}},
			wantErr: ErrInvalidIngredient,
		},
		{
			name: "negative sequence",
			param: structs.RecipeParam{Name: "stew", Ingredients: []structs.IngredientParam{
				{Edible: nutrition.Edible{Type: "food", ID: 1}, Weight: nutrition.Weight{SeqNum: -1, Amount: 1}},
			}},
			wantErr: ErrInvalidIngredient,
		},
		{
			name: "unknown food",
			param: structs.RecipeParam{Name: "stew", Ingredients: []structs.IngredientParam{
				{Edible: nutrition.Edible{Type: "food", ID: 404}, Weight: nutrition.Weight{SeqNum: 0, Amount: 1}},
			}},
			wantErr: ErrInvalidIngredient,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeStore{foods: map[int64]bool{1: true}}
			_, err := New(fake).RegisterRecipe(tc.param)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if !IsInvalidInput(err) {
				t.Fatalf("want invalid input for %v", err)
			}
			if fake.insertCalls != 0 {
				t.Fatalf("nothing should be stored")
			}
		})
	}
}

func TestRegisterFood(t *testing.T) {
	fake := &fakeStore{}
	s := New(fake)

	id, err := s.RegisterFood(structs.FoodParam{
		Name:      "Granola bar",
		Nutrients: []structs.FoodNutrientParam{{NutrientID: 203, Amount: 10}},
		Units:     []structs.FoodUnitParam{{Name: "bar", Grams: 40}},
	})
	if err != nil || id != 42 {
		t.Fatalf("register: id=%d err=%v", id, err)
	}
	if !reflect.DeepEqual(fake.foodUnits, []store.UnitWeight{{Name: "bar", Grams: 40}}) {
		t.Fatalf("units: %+v", fake.foodUnits)
	}

	if _, err := s.RegisterFood(structs.FoodParam{Name: "Air", Units: []structs.FoodUnitParam{{Name: "breath", Grams: 0}}}); !errors.Is(err, ErrInvalidFood) {
		t.Fatalf("want ErrInvalidFood, got %v", err)
	}
	if _, err := s.RegisterFood(structs.FoodParam{}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("want ErrEmptyName, got %v", err)
	}
}
