package models

type Food struct {
	ID       int64  `gorm:"column:id;primary_key" json:"id"`
	LongDesc string `gorm:"column:long_desc" json:"long_desc"`
}

// TableName sets the insert table name for this struct type
func (f *Food) TableName() string {
	return "food"
}
