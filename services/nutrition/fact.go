package nutrition

import (
	"encoding/json"
	"fmt"
)

// Amount is a nutrient quantity and its unit. On the wire and in the
// intake log it is the two element array [amount, unit].
type Amount struct {
	Value float64
	Unit  string
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{a.Value, a.Unit})
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("nutrient amount: want [amount, unit], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &a.Value); err != nil {
		return fmt.Errorf("nutrient amount value: %w", err)
	}
	if err := json.Unmarshal(raw[1], &a.Unit); err != nil {
		return fmt.Errorf("nutrient amount unit: %w", err)
	}
	return nil
}

// Fact maps a nutrient name to the amount of it. Add and Scale never modify
// their receiver.
type Fact map[string]Amount

func NewFact(values map[string]Amount) Fact {
	fact := make(Fact, len(values))
	for name, amount := range values {
		fact[name] = amount
	}
	return fact
}

// Add returns the union of both facts. Nutrients present in both are summed
// and must carry the same unit.
func (f Fact) Add(other Fact) (Fact, error) {
	total := NewFact(f)
	for name, amount := range other {
		current, ok := total[name]
		if !ok {
			total[name] = amount
			continue
		}
		if current.Unit != amount.Unit {
			return nil, fmt.Errorf("%w: %s is %q and %q", ErrUnitMismatch, name, current.Unit, amount.Unit)
		}
		total[name] = Amount{Value: current.Value + amount.Value, Unit: current.Unit}
	}
	return total, nil
}

func (f Fact) Scale(factor float64) Fact {
	scaled := make(Fact, len(f))
	for name, amount := range f {
		scaled[name] = Amount{Value: amount.Value * factor, Unit: amount.Unit}
	}
	return scaled
}

// finite reports whether every amount is a real number, which JSON
// encoding requires.
func (f Fact) finite() bool {
	for _, amount := range f {
		if !finite(amount.Value) {
			return false
		}
	}
	return true
}

// ToMap returns an independent copy suitable for serialization.
func (f Fact) ToMap() map[string]Amount {
	return NewFact(f)
}

// Sum folds facts with Add starting from the empty fact.
func Sum(facts ...Fact) (Fact, error) {
	total := Fact{}
	for _, fact := range facts {
		var err error
		if total, err = total.Add(fact); err != nil {
			return nil, err
		}
	}
	return total, nil
}
