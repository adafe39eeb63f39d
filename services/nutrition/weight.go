package nutrition

import (
	"fmt"
	"macro-traco-backend/enums"
)

type WeightResolver struct {
	store WeightStore
}

func NewWeightResolver(store WeightStore) *WeightResolver {
	return &WeightResolver{store: store}
}

// GramsPerUnit returns the weight of a single item of the unit. A stored
// row may describe several items ("30g for 3 crackers"), so its gram weight
// is divided by its amount.
func (w *WeightResolver) GramsPerUnit(foodID int64, seqNum int) (float64, error) {
	if seqNum < 0 {
		return 0, fmt.Errorf("%w: %d for food %d", ErrInvalidSequenceNumber, seqNum, foodID)
	}
	if seqNum == enums.PerGramSeqNum {
		return 1, nil
	}

	unit, err := w.store.GetWeightUnit(foodID, seqNum)
	if err != nil {
		return 0, err
	}
	if unit == nil {
		return 0, fmt.Errorf("%w: food %d sequence %d", ErrUnknownWeightUnit, foodID, seqNum)
	}
	if unit.Amount <= 0 {
		return unit.GramWeight, nil
	}
	return unit.GramWeight / unit.Amount, nil
}
