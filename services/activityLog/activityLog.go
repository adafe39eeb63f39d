package activityLog

import (
	"encoding/json"
	"macro-traco-backend/models"
	"time"

	"github.com/jinzhu/gorm"
)

// Insert records a worker event in the activity_log table.
func Insert(db *gorm.DB, jobname string, data interface{}) error {
	activityLogJSON, err := json.Marshal(data)
	if err != nil {
		return err
	}

	insertTime := time.Now().UTC()
	var activityLogEntity models.ActivityLog
	activityLogEntity.CreatedAt = &insertTime
	activityLogEntity.UpdatedAt = &insertTime
	activityLogEntity.LogName = jobname
	activityLogEntity.Description = "macro-traco log"
	activityLogEntity.Properties = string(activityLogJSON)

	return db.Create(&activityLogEntity).Error
}
