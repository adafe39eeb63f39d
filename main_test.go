package main

import (
	"macro-traco-backend/structs"
	"macro-traco-backend/utils"
	"strings"
	"testing"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	saved := utils.EnvConfig
	defer func() { utils.EnvConfig = saved }()

	utils.EnvConfig = &structs.EnviromentModel{Database: structs.DatabaseModel{Client: "postgres"}}
	err := run()
	if err == nil || !strings.HasPrefix(err.Error(), "open database") {
		t.Fatalf("unsupported client: want open database error, got %v", err)
	}

	utils.EnvConfig = &structs.EnviromentModel{Database: structs.DatabaseModel{Client: "sqlite3", Db: ":memory:", MaxLifeTime: "soon"}}
	if err := run(); err == nil {
		t.Fatal("bad max_life_time: want error")
	}
}
