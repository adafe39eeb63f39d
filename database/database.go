package database

import (
	"fmt"
	"macro-traco-backend/models"
	"macro-traco-backend/structs"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// InitDatabasePool opens the connection pool for the configured client.
// The pool is safe for concurrent use; callers own it and must Close it.
func InitDatabasePool(config structs.DatabaseModel) (*gorm.DB, error) {
	dsn, err := dataSourceName(config)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(config.Client, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", config.Client, err)
	}
	db.LogMode(config.LogEnable == 1)

	if config.MaxIdle > 0 {
		db.DB().SetMaxIdleConns(int(config.MaxIdle))
	}
	if config.MaxOpenConn > 0 {
		db.DB().SetMaxOpenConns(int(config.MaxOpenConn))
	}
	if config.MaxLifeTime != "" {
		lifeTime, err := time.ParseDuration(config.MaxLifeTime)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("database.max_life_time: %w", err)
		}
		db.DB().SetConnMaxLifetime(lifeTime)
	}
	return db, nil
}

func dataSourceName(config structs.DatabaseModel) (string, error) {
	switch config.Client {
	case "sqlite3":
		if config.Db == "" {
			return "", fmt.Errorf("database.name is required for sqlite3")
		}
		return config.Db, nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", config.User, config.Password, config.Host, config.Port, config.Db)
		if config.Params != "" {
			dsn += "?" + config.Params
		}
		return dsn, nil
	default:
		return "", fmt.Errorf("unsupported database client %q", config.Client)
	}
}

// Migrate creates the tables that do not exist yet. Existing USDA tables
// are left untouched.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Food{},
		&models.Nutrient{},
		&models.CommonNutrient{},
		&models.Nutrition{},
		&models.Weight{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.MacroTraco{},
		&models.ActivityLog{},
	).Error
}
