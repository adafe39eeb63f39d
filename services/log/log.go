package log

import (
	"fmt"
	"macro-traco-backend/utils"
	"net"
	"os"
	"path"
	"time"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const appName = "macro-traco-backend"

type LogService struct{}

// LoggerInit returns a logger writing to logs/<date>/<name>.log, shipping
// entries to Elasticsearch and logstash when they are enabled.
func (l *LogService) LoggerInit(name string) *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if src, err := openLogFile(name, time.Now()); err != nil {
		fmt.Println(err.Error())
	} else {
		logger.Out = src
	}

	if utils.EnvConfig == nil {
		return logger
	}

	if utils.EnvConfig.Log.ElkEnable == 1 {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{utils.EnvConfig.Log.ElkURL},
		})
		if err != nil {
			logger.Debug(err.Error())
		} else {
			hook, err := elogrus.NewAsyncElasticHook(client, appName, logrus.DebugLevel, utils.EnvConfig.Log.ElkIndex)
			if err != nil {
				logger.Debug(err.Error())
			} else {
				logger.Hooks.Add(hook)
			}
		}
	}

	if utils.EnvConfig.Log.LogstashEnable == 1 {
		conn, err := net.Dial("udp", utils.EnvConfig.Log.LogstashURL)
		if err != nil {
			logger.Debug(err)
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName}))
			logger.Hooks.Add(hook)
		}
	}

	return logger
}

func openLogFile(name string, now time.Time) (*os.File, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	logFilePath := path.Join(dir, "logs", now.Format("2006-01-02"))
	if err := os.MkdirAll(logFilePath, 0777); err != nil {
		return nil, err
	}
	return os.OpenFile(path.Join(logFilePath, name+".log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
}
