package database

import (
	"macro-traco-backend/models"
	"macro-traco-backend/structs"
	"testing"
)

func TestDataSourceName(t *testing.T) {
	cases := []struct {
		name   string
		config structs.DatabaseModel
		want   string
		err    bool
	}{
		{"sqlite", structs.DatabaseModel{Client: "sqlite3", Db: "usda.sql3"}, "usda.sql3", false},
		{"sqlite without file", structs.DatabaseModel{Client: "sqlite3"}, "", true},
		{"mysql", structs.DatabaseModel{Client: "mysql", User: "u", Password: "p", Host: "db", Port: "3306", Db: "usda"}, "u:p@tcp(db:3306)/usda", false},
		{"mysql params", structs.DatabaseModel{Client: "mysql", User: "u", Password: "p", Host: "db", Port: "3306", Db: "usda", Params: "parseTime=true"}, "u:p@tcp(db:3306)/usda?parseTime=true", false},
		{"unknown", structs.DatabaseModel{Client: "postgres"}, "", true},
	}
	for _, tc := range cases {
		got, err := dataSourceName(tc.config)
		if (err != nil) != tc.err {
			t.Fatalf("%s: err=%v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: want=%q got=%q", tc.name, tc.want, got)
		}
	}
}

func TestInitDatabasePoolAndMigrate(t *testing.T) {
	db, err := InitDatabasePool(structs.DatabaseModel{Client: "sqlite3", Db: ":memory:", MaxOpenConn: 1, MaxLifeTime: "1h"})
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range []interface{}{&models.Food{}, &models.Weight{}, &models.MacroTraco{}, &models.ActivityLog{}} {
		if !db.HasTable(table) {
			t.Fatalf("missing table for %T", table)
		}
	}

	if _, err := InitDatabasePool(structs.DatabaseModel{Client: "sqlite3", Db: ":memory:", MaxLifeTime: "soon"}); err == nil {
		t.Fatal("want error for bad max_life_time")
	}
}
