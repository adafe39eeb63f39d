package nutrition

import "errors"

var (
	ErrUnitMismatch          = errors.New("nutrient unit mismatch")
	ErrUnknownWeightUnit     = errors.New("unknown weight unit")
	ErrUnknownFood           = errors.New("unknown food")
	ErrUnknownRecipe         = errors.New("unknown recipe")
	ErrInvalidSequenceNumber = errors.New("invalid sequence number")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrZeroWeightRecipe      = errors.New("recipe has zero total weight")
	ErrInvalidEdibleType     = errors.New("invalid edible type")
	ErrNoConsumer            = errors.New("no consumer")
)

// IsInvalidEdible reports whether err was caused by the caller's edible or
// weight rather than by storage.
func IsInvalidEdible(err error) bool {
	for _, target := range []error{
		ErrUnitMismatch,
		ErrUnknownWeightUnit,
		ErrUnknownFood,
		ErrUnknownRecipe,
		ErrInvalidSequenceNumber,
		ErrInvalidQuantity,
		ErrZeroWeightRecipe,
		ErrInvalidEdibleType,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
