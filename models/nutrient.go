package models

type Nutrient struct {
	ID    int64  `gorm:"column:id;primary_key;auto_increment:false" json:"id"`
	Name  string `gorm:"column:name" json:"name"`
	Units string `gorm:"column:units" json:"units"`
}

// TableName sets the insert table name for this struct type
func (n *Nutrient) TableName() string {
	return "nutrient"
}
