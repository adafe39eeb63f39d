package trackLog

import (
	"fmt"
	"macro-traco-backend/services/log"

	"github.com/sirupsen/logrus"
)

var logTracker = logrus.NewEntry(logrus.StandardLogger())

func LogTrackInit() {
	var trackerService log.LogService
	temp := trackerService.LoggerInit("tracker")
	logTracker = temp.WithFields(logrus.Fields{"task": "track"})
}

// WithFields returns the tracker entry with extra fields for structured
// logging.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logTracker.WithFields(fields)
}

func Info(message string, needWriteLog bool) {
	if needWriteLog {
		logTracker.Info(message)
	}
	fmt.Println(message)
}

func Error(message string, needWriteLog bool) {
	if needWriteLog {
		logTracker.Error(message)
	}
	fmt.Println(message)
}
