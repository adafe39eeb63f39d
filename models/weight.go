package models

type Weight struct {
	FoodID      int64   `gorm:"column:food_id;unique_index:idx_weight_food_sequence" json:"food_id"`
	SequenceNum int     `gorm:"column:sequence_num;unique_index:idx_weight_food_sequence" json:"sequence_num"`
	Amount      float64 `gorm:"column:amount" json:"amount"`
	GmWeight    float64 `gorm:"column:gm_weight" json:"gm_weight"`
	Description string  `gorm:"column:description" json:"description"`
}

// TableName sets the insert table name for this struct type
func (w *Weight) TableName() string {
	return "weight"
}
