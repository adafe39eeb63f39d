package main

import (
	"fmt"
	"log"
	"macro-traco-backend/database"
	"macro-traco-backend/enums"
	"macro-traco-backend/router"
	"macro-traco-backend/services"
	"macro-traco-backend/services/activityLog"
	"macro-traco-backend/services/eatQueue"
	logLib "macro-traco-backend/services/log"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/services/rabbitmq"
	"macro-traco-backend/services/store"
	"macro-traco-backend/services/trackLog"
	"macro-traco-backend/utils"
	"net/http"
	"os"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

func main() {

	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("config loaded...")

	trackLog.LogTrackInit()

	err := run()

	var logService logLib.LogService
	logwr := logService.LoggerInit("main")
	if err != nil {
		logwr.WithFields(logrus.Fields{"task": "main"}).Error(err.Error())
	}
	logwr.WithFields(logrus.Fields{"task": "main"}).Error("server shutdown")
	crashEmailAlert()

	fmt.Println("server shutdown")
	if err != nil {
		os.Exit(1)
	}
}

// run serves until the router stops. The database pool is closed on every
// return path.
func run() error {
	db, err := database.InitDatabasePool(utils.EnvConfig.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := activityLog.Insert(db, enums.JobInitLog, "macro-traco init"); err != nil {
		trackLog.Error(err.Error(), true)
	}

	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		go MacroTracoQueue(db)
	}

	route, err := router.Router(db, utils.Location(), utils.EnvConfig.Server)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}
	return route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port))
}

// MacroTracoQueue logs intake sent to the eat queue.
func MacroTracoQueue(db *gorm.DB) {
	queue := utils.EnvConfig.RabbitMQ.Queue
	conn := rabbitmq.NewConnection(enums.MacroTracoQueue, utils.EnvConfig.RabbitMQ.Domain, []string{queue})

	if err := conn.Connect(); err != nil {
		trackLog.Error(err.Error(), true)
		return
	}
	if err := conn.BindQueue(); err != nil {
		trackLog.Error(err.Error(), true)
		return
	}
	deliveries, err := conn.Consume()
	if err != nil {
		trackLog.Error(err.Error(), true)
		return
	}

	s := store.New(db)
	intake := nutrition.NewIntakeService(nutrition.NewEdibleCalculator(s), s)
	worker := eatQueue.New(db, intake, utils.EnvConfig.ConcurrentAmount)

	for q, d := range deliveries {
		go conn.HandleConsumedDeliveries(q, d, worker.Handler)
	}
	log.Printf(" [ %s ] [ %s ] Waiting for messages.", enums.MacroTracoQueue, queue)
}

func crashEmailAlert() {
	api := utils.EnvConfig.Email.APIUrl
	if api == "" {
		return
	}
	if _, err := services.HttpRequest(http.MethodPost, api, nil, map[string]string{"service": "macro-traco-backend", "event": "shutdown"}); err != nil {
		trackLog.Error(fmt.Sprintf("crash alert failed: %s", err.Error()), true)
	}
}
