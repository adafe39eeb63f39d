package nutrition

import (
	"math"
	"sort"
	"testing"
	"time"
)

type weightKey struct {
	foodID int64
	seqNum int
}

type intakeRow struct {
	consumer string
	at       time.Time
	fact     Fact
}

type fakeStore struct {
	foods       map[int64][]NutrientValue
	weights     map[weightKey]WeightUnit
	recipes     map[int64][]Ingredient
	intake      []intakeRow
	weightCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		foods:   map[int64][]NutrientValue{},
		weights: map[weightKey]WeightUnit{},
		recipes: map[int64][]Ingredient{},
	}
}

func (f *fakeStore) GetWeightUnit(foodID int64, seqNum int) (*WeightUnit, error) {
	f.weightCalls++
	unit, ok := f.weights[weightKey{foodID, seqNum}]
	if !ok {
		return nil, nil
	}
	return &unit, nil
}

func (f *fakeStore) GetCommonNutrientValues(foodID int64) ([]NutrientValue, error) {
	return f.foods[foodID], nil
}

func (f *fakeStore) FoodExists(foodID int64) (bool, error) {
	_, ok := f.foods[foodID]
	return ok, nil
}

func (f *fakeStore) GetIngredients(recipeID int64) ([]Ingredient, error) {
	return f.recipes[recipeID], nil
}

func (f *fakeStore) RecipeExists(recipeID int64) (bool, error) {
	_, ok := f.recipes[recipeID]
	return ok, nil
}

func (f *fakeStore) AppendIntakeRecord(consumer string, nutrients Fact, at time.Time) error {
	f.intake = append(f.intake, intakeRow{consumer: consumer, at: at, fact: nutrients.ToMap()})
	return nil
}

func (f *fakeStore) QueryIntakeRecords(consumer string, start, end time.Time) ([]Fact, error) {
	var facts []Fact
	for _, row := range f.intake {
		if row.consumer == consumer && !row.at.Before(start) && row.at.Before(end) {
			facts = append(facts, row.fact)
		}
	}
	return facts, nil
}

// breadStore has food 1 (20g protein per 100g, "1 slice" = 30g) and
// recipe 5 made of two slices of it.
func breadStore() *fakeStore {
	store := newFakeStore()
	store.foods[1] = []NutrientValue{
		{Name: "Protein", Unit: "g", AmountPer100g: 20},
		{Name: "Energy", Unit: "kcal", AmountPer100g: 250},
	}
	store.weights[weightKey{1, 1}] = WeightUnit{SeqNum: 1, GramWeight: 30, Amount: 1, Description: "slice"}
	store.weights[weightKey{1, 2}] = WeightUnit{SeqNum: 2, GramWeight: 30, Amount: 3, Description: "crackers"}
	store.recipes[5] = []Ingredient{{FoodID: 1, Amount: 2, SeqNum: 1}}
	return store
}

func assertFact(t *testing.T, got, want Fact) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("fact size: want=%d got=%d (%v)", len(want), len(got), got)
	}
	for name, w := range want {
		g, ok := got[name]
		if !ok {
			t.Fatalf("missing nutrient %q in %v", name, got)
		}
		if g.Unit != w.Unit {
			t.Fatalf("%s unit: want=%q got=%q", name, w.Unit, g.Unit)
		}
		if math.Abs(g.Value-w.Value) > 1e-9 {
			t.Fatalf("%s amount: want=%v got=%v", name, w.Value, g.Value)
		}
	}
}

func sortedConsumers(rows []intakeRow) []string {
	var names []string
	for _, row := range rows {
		names = append(names, row.consumer)
	}
	sort.Strings(names)
	return names
}
