package check

import (
	"encoding/json"
	"fmt"
	"macro-traco-backend/enums"
	"macro-traco-backend/services/rabbitmq"
	"macro-traco-backend/services/trackLog"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string   `json:"database"`
	Queues     []string `json:"queue"`
	RoutineNum int      `json:"routine_num"`
}

// CheckAlive reports the database and, when the worker consumes a queue,
// the amqp connection. A lost amqp connection is reconnected.
func CheckAlive(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		resMsg := "main thread alive"
		success := true
		checkInfo := CheckInfo{Database: "ok"}

		if err := db.DB().Ping(); err != nil {
			success = false
			resMsg = fmt.Sprintf("database ping fail: %s", err.Error())
			checkInfo.Database = err.Error()
			trackLog.Error(resMsg, true)
		}

		if rabbitConn := rabbitmq.GetConnection(enums.MacroTracoQueue); rabbitConn != nil {
			if msg := checkQueues(rabbitConn, &checkInfo); msg != "" {
				resMsg = msg
			}
		}

		checkInfo.RoutineNum = runtime.NumGoroutine()
		trackLog.Info(fmt.Sprintf("goroutine number: %d", checkInfo.RoutineNum), false)

		status := http.StatusOK
		if !success {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, AliveResponse{success, resMsg, checkInfo})
	}
}

func checkQueues(rabbitConn *rabbitmq.Connection, checkInfo *CheckInfo) string {
	resMsg := ""
	if rabbitConn.Conn == nil {
		resMsg = "Api detect Connection lost, Reconnecting.."
		trackLog.Error(resMsg, false)
		if err := rabbitConn.Reconnect(); err != nil {
			resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
			trackLog.Error(resMsg, false)
		}
	}

	if rabbitConn.Channel != nil {
		for _, q := range rabbitConn.Queues {
			queue, queueErr := rabbitConn.Channel.QueueInspect(q)
			if queueErr != nil {
				resMsg = fmt.Sprintf("Queue[%s] error: %s", q, queueErr.Error())
				trackLog.Error(resMsg, false)
			} else {
				queueJson, _ := json.Marshal(queue)
				checkInfo.Queues = append(checkInfo.Queues, string(queueJson))
				trackLog.Info(fmt.Sprintf("Queue[%s]: %s", q, queueJson), false)
			}
		}
	} else {
		resMsg = "Channel get fail"
		trackLog.Error(resMsg, false)
	}

	// wait a second for a close notification
	select {
	case err := <-rabbitConn.ApiErr:
		trackLog.Error(fmt.Sprintf("api error: %s", err.Error()), false)
		if err := rabbitConn.Reconnect(); err != nil {
			resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
			trackLog.Error(resMsg, false)
		}
	case <-time.After(time.Second * 1):
	}
	return resMsg
}
