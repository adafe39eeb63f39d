package models

// CommonNutrient lists the nutrients reported by calculations.
type CommonNutrient struct {
	ID int64 `gorm:"column:id;primary_key;auto_increment:false" json:"id"`
}

// TableName sets the insert table name for this struct type
func (c *CommonNutrient) TableName() string {
	return "common_nutrient"
}
