package eatQueue

import (
	"encoding/json"
	"fmt"
	"macro-traco-backend/enums"
	"macro-traco-backend/services/activityLog"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/services/rabbitmq"
	"macro-traco-backend/services/trackLog"
	"macro-traco-backend/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
)

// EatQueueService logs intake delivered as queue messages.
type EatQueueService struct {
	db     *gorm.DB
	intake *nutrition.IntakeService
	slots  chan struct{}
}

func New(db *gorm.DB, intake *nutrition.IntakeService, concurrentAmount int) *EatQueueService {
	if concurrentAmount < 1 {
		concurrentAmount = 1
	}
	return &EatQueueService{db: db, intake: intake, slots: make(chan struct{}, concurrentAmount)}
}

// Handler consumes deliveries until the channel closes. At most
// concurrentAmount messages are processed at once.
func (e *EatQueueService) Handler(c rabbitmq.Connection, q string, deliveries <-chan amqp.Delivery) {
	for d := range deliveries {
		e.slots <- struct{}{}
		go func(d amqp.Delivery) {
			defer func() { <-e.slots }()
			trackLog.Info(fmt.Sprintf("Queue[%s] received: %s", q, string(d.Body)), true)
			e.Process(q, d.Body)
			if err := d.Ack(false); err != nil {
				trackLog.Error(fmt.Sprintf("Queue[%s] ack failed: %s", q, err.Error()), true)
			}
		}(d)
	}
}

// Process handles one message body and records the outcome in the
// activity log. Bad messages are logged and dropped.
func (e *EatQueueService) Process(q string, body []byte) structs.ActivityLogJsonModel {
	result := structs.ActivityLogJsonModel{Type: enums.EatQueueType}

	var param structs.EatQueueParam
	if err := json.Unmarshal(body, &param); err != nil {
		result.Message = fmt.Sprintf("decode message: %s", err.Error())
		return e.finish(result)
	}
	result.TaskID = param.TaskID

	if param.QueueType != enums.EatQueueType {
		result.Message = fmt.Sprintf("queue %s got queue_type %q", q, param.QueueType)
		return e.finish(result)
	}

	_, consumers, err := e.intake.Eat(param.Edible, param.Weight, param.Consumer)
	result.Consumers = consumers
	if err != nil {
		result.Message = err.Error()
		return e.finish(result)
	}

	result.Result = true
	result.Message = "logged"
	return e.finish(result)
}

func (e *EatQueueService) finish(result structs.ActivityLogJsonModel) structs.ActivityLogJsonModel {
	fields := logrus.Fields{"task": enums.EatQueueType, "task_id": result.TaskID, "consumers": result.Consumers}
	if result.Result {
		trackLog.WithFields(fields).Info(result.Message)
	} else {
		trackLog.WithFields(fields).Error(result.Message)
	}
	if err := activityLog.Insert(e.db, enums.JobReceivedLog, result); err != nil {
		trackLog.WithFields(fields).Error("insert activity log: ", err.Error())
	}
	return result
}
