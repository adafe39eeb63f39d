package models

type Recipe struct {
	ID   int64  `gorm:"column:id;primary_key" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

// TableName sets the insert table name for this struct type
func (r *Recipe) TableName() string {
	return "recipe"
}
