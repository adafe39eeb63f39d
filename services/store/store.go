package store

import (
	"encoding/json"
	"fmt"
	"macro-traco-backend/enums"
	"macro-traco-backend/models"
	"macro-traco-backend/services/nutrition"
	"time"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

const bulkChunkSize = 3000

type NutrientAmount struct {
	NutrientID int64
	Amount     float64
}

type UnitWeight struct {
	Name  string
	Grams float64
}

type SearchResult struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Store reads and writes the USDA tables, recipes and the intake log.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetWeightUnit(foodID int64, seqNum int) (*nutrition.WeightUnit, error) {
	var weight models.Weight
	err := s.db.Where("food_id = ? AND sequence_num = ?", foodID, seqNum).Take(&weight).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("weight of food %d sequence %d: %w", foodID, seqNum, err)
	}
	unit := toWeightUnit(weight)
	return &unit, nil
}

func (s *Store) ListWeightUnits(foodID int64) ([]nutrition.WeightUnit, error) {
	var weights []models.Weight
	if err := s.db.Where("food_id = ?", foodID).Order("sequence_num").Find(&weights).Error; err != nil {
		return nil, fmt.Errorf("weights of food %d: %w", foodID, err)
	}
	units := make([]nutrition.WeightUnit, 0, len(weights))
	for _, weight := range weights {
		units = append(units, toWeightUnit(weight))
	}
	return units, nil
}

func toWeightUnit(weight models.Weight) nutrition.WeightUnit {
	return nutrition.WeightUnit{
		SeqNum:      weight.SequenceNum,
		GramWeight:  weight.GmWeight,
		Amount:      weight.Amount,
		Description: weight.Description,
	}
}

type nutrientValueRow struct {
	Name   string  `gorm:"column:name"`
	Units  string  `gorm:"column:units"`
	Amount float64 `gorm:"column:amount"`
}

// GetCommonNutrientValues returns the per 100g values of the food's common
// nutrients. Nutrients outside common_nutrient are skipped.
func (s *Store) GetCommonNutrientValues(foodID int64) ([]nutrition.NutrientValue, error) {
	var rows []nutrientValueRow
	err := s.db.Table("nutrition").
		Select("nutrient.name, nutrient.units, nutrition.amount").
		Joins("JOIN nutrient ON nutrient.id = nutrition.nutrient_id").
		Joins("JOIN common_nutrient ON common_nutrient.id = nutrient.id").
		Where("nutrition.food_id = ?", foodID).
		Order("nutrient.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("nutrients of food %d: %w", foodID, err)
	}

	values := make([]nutrition.NutrientValue, 0, len(rows))
	for _, row := range rows {
		values = append(values, nutrition.NutrientValue{Name: row.Name, Unit: row.Units, AmountPer100g: row.Amount})
	}
	return values, nil
}

func (s *Store) FoodExists(foodID int64) (bool, error) {
	var count int
	if err := s.db.Model(&models.Food{}).Where("id = ?", foodID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("food %d: %w", foodID, err)
	}
	return count > 0, nil
}

func (s *Store) RecipeExists(recipeID int64) (bool, error) {
	var count int
	if err := s.db.Model(&models.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("recipe %d: %w", recipeID, err)
	}
	return count > 0, nil
}

// GetIngredients returns the recipe's ingredients in insertion order.
func (s *Store) GetIngredients(recipeID int64) ([]nutrition.Ingredient, error) {
	var rows []models.Ingredient
	if err := s.db.Where("recipe_id = ?", recipeID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("ingredients of recipe %d: %w", recipeID, err)
	}
	ingredients := make([]nutrition.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, nutrition.Ingredient{FoodID: row.FoodID, Amount: row.Amount, SeqNum: row.SeqNum})
	}
	return ingredients, nil
}

// InsertFood stores the food with its nutrients and units in one
// transaction. Units get sequence numbers 1..n in the given order.
func (s *Store) InsertFood(name string, nutrients []NutrientAmount, units []UnitWeight) (id int64, err error) {
	err = s.transaction(func(tx *gorm.DB) error {
		food := models.Food{LongDesc: name}
		if err := tx.Create(&food).Error; err != nil {
			return err
		}

		var nutritionRecords []interface{}
		for _, nutrient := range nutrients {
			nutritionRecords = append(nutritionRecords, models.Nutrition{FoodID: food.ID, NutrientID: nutrient.NutrientID, Amount: nutrient.Amount})
		}
		if err := bulkInsert(tx, nutritionRecords); err != nil {
			return err
		}

		var weightRecords []interface{}
		for i, unit := range units {
			weightRecords = append(weightRecords, models.Weight{
				FoodID:      food.ID,
				SequenceNum: i + 1,
				Amount:      1,
				GmWeight:    unit.Grams,
				Description: unit.Name,
			})
		}
		if err := bulkInsert(tx, weightRecords); err != nil {
			return err
		}

		id = food.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("insert food %q: %w", name, err)
	}
	return id, nil
}

// InsertRecipe stores the recipe and its ingredients in one transaction.
func (s *Store) InsertRecipe(name string, ingredients []nutrition.Ingredient) (id int64, err error) {
	err = s.transaction(func(tx *gorm.DB) error {
		recipe := models.Recipe{Name: name}
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}

		var records []interface{}
		for _, ingredient := range ingredients {
			records = append(records, models.Ingredient{
				RecipeID: recipe.ID,
				FoodID:   ingredient.FoodID,
				Amount:   ingredient.Amount,
				SeqNum:   ingredient.SeqNum,
			})
		}
		if err := bulkInsert(tx, records); err != nil {
			return err
		}

		id = recipe.ID
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("insert recipe %q: %w", name, err)
	}
	return id, nil
}

func bulkInsert(tx *gorm.DB, records []interface{}) error {
	if len(records) == 0 {
		return nil
	}
	return gormbulk.BulkInsert(tx, records, bulkChunkSize)
}

// transaction commits when fn succeeds and rolls back on error or panic.
func (s *Store) transaction(fn func(tx *gorm.DB) error) (err error) {
	tx := s.db.Begin()
	if err := tx.Error; err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (s *Store) AppendIntakeRecord(consumer string, nutrients nutrition.Fact, at time.Time) error {
	data, err := json.Marshal(nutrients.ToMap())
	if err != nil {
		return fmt.Errorf("encode nutrients of %s: %w", consumer, err)
	}
	record := models.MacroTraco{Consumer: consumer, NutrientsJSON: string(data), Timestamp: at.UTC()}
	if err := s.db.Create(&record).Error; err != nil {
		return fmt.Errorf("log intake of %s: %w", consumer, err)
	}
	return nil
}

// QueryIntakeRecords returns what consumer ate in [start, end), oldest first.
// Consumer matching is exact.
func (s *Store) QueryIntakeRecords(consumer string, start, end time.Time) ([]nutrition.Fact, error) {
	var records []models.MacroTraco
	err := s.db.Where("consumer = ? AND timestamp >= ? AND timestamp < ?", consumer, start.UTC(), end.UTC()).
		Order("timestamp").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("intake of %s: %w", consumer, err)
	}

	facts := make([]nutrition.Fact, 0, len(records))
	for _, record := range records {
		var fact nutrition.Fact
		if err := json.Unmarshal([]byte(record.NutrientsJSON), &fact); err != nil {
			return nil, fmt.Errorf("decode intake %d of %s: %w", record.ID, consumer, err)
		}
		facts = append(facts, fact)
	}
	return facts, nil
}

// SearchFoodsAndRecipes lists recipes then foods whose name contains every
// word. Words must already be validated lower-case letters.
func (s *Store) SearchFoodsAndRecipes(words []string, restrictTo []string) ([]SearchResult, error) {
	results := []SearchResult{}
	if contains(restrictTo, enums.RecipeEdible) {
		var recipes []models.Recipe
		if err := likeAll(s.db.Model(&models.Recipe{}), "name", words).Limit(enums.SearchLimit).Find(&recipes).Error; err != nil {
			return nil, fmt.Errorf("search recipes: %w", err)
		}
		for _, recipe := range recipes {
			results = append(results, SearchResult{ID: recipe.ID, Type: enums.RecipeEdible, Name: recipe.Name})
		}
	}
	if contains(restrictTo, enums.FoodEdible) {
		var foods []models.Food
		if err := likeAll(s.db.Model(&models.Food{}), "long_desc", words).Limit(enums.SearchLimit).Find(&foods).Error; err != nil {
			return nil, fmt.Errorf("search foods: %w", err)
		}
		for _, food := range foods {
			results = append(results, SearchResult{ID: food.ID, Type: enums.FoodEdible, Name: food.LongDesc})
		}
	}
	return results, nil
}

func likeAll(db *gorm.DB, column string, words []string) *gorm.DB {
	for _, word := range words {
		db = db.Where("LOWER("+column+") LIKE ?", "%"+word+"%")
	}
	return db
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
