package models

import "time"

// MacroTraco is one logged consumption: the nutrients a consumer ate at a
// point in time. Rows are never updated.
type MacroTraco struct {
	ID            int64     `gorm:"column:id;primary_key" json:"id"`
	Consumer      string    `gorm:"column:consumer;index:idx_macro_traco_consumer_time" json:"consumer"`
	NutrientsJSON string    `gorm:"column:nutrients_json;type:text" json:"nutrients_json"`
	Timestamp     time.Time `gorm:"column:timestamp;index:idx_macro_traco_consumer_time" json:"timestamp"`
}

// TableName sets the insert table name for this struct type
func (m *MacroTraco) TableName() string {
	return "macro_traco"
}
