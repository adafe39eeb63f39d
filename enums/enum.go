package enums

const (
	FoodEdible   = "food"
	RecipeEdible = "recipe"

	// virtual weight sequence numbers
	PerGramSeqNum        = 0
	RecipeFractionSeqNum = -1

	MacroTracoQueue = "macro-traco"
	EatQueueType    = "eat"

	JobInitLog     = "macro.traco.init"
	JobReceivedLog = "macro.traco.eat"

	SearchLimit = 100
	DateLayout  = "2006-01-02"
)
