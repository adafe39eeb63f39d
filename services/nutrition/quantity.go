package nutrition

import (
	"fmt"
	"math"
	"macro-traco-backend/enums"
)

// Quantity is how much of an edible was consumed. It is one of Grams,
// UnitCount or RecipeFraction.
type Quantity interface {
	isQuantity()
}

// Grams is an absolute weight.
type Grams float64

// UnitCount is a number of servings of a food's weight unit.
type UnitCount struct {
	SeqNum uint
	Count  float64
}

// RecipeFraction is the share of a whole recipe, 0.5 being half of it.
type RecipeFraction float64

func (Grams) isQuantity()          {}
func (UnitCount) isQuantity()      {}
func (RecipeFraction) isQuantity() {}

// QuantityFromWeight converts the wire (seq_num, amount) pair. Sequence
// number 0 means amount is grams for both edible types. For foods a positive
// sequence number names a weight unit; for recipes any other sequence number
// means amount is a fraction of the recipe.
func QuantityFromWeight(edibleType string, seqNum int, amount float64) (Quantity, error) {
	if !finite(amount) {
		return nil, fmt.Errorf("%w: amount %v", ErrInvalidQuantity, amount)
	}
	switch edibleType {
	case enums.FoodEdible:
		switch {
		case seqNum == enums.PerGramSeqNum:
			return Grams(amount), nil
		case seqNum > 0:
			return UnitCount{SeqNum: uint(seqNum), Count: amount}, nil
		default:
			return nil, fmt.Errorf("%w: %d for a food", ErrInvalidSequenceNumber, seqNum)
		}
	case enums.RecipeEdible:
		if seqNum == enums.PerGramSeqNum {
			return Grams(amount), nil
		}
		return RecipeFraction(amount), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdibleType, edibleType)
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
