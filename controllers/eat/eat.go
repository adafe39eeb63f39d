package eat

import (
	"errors"
	"macro-traco-backend/controllers"
	"macro-traco-backend/enums"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/services/trackLog"
	"macro-traco-backend/structs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type EatController struct {
	intake   *nutrition.IntakeService
	location *time.Location
}

func New(intake *nutrition.IntakeService, location *time.Location) *EatController {
	return &EatController{intake: intake, location: location}
}

// Eat logs an eaten edible for every consumer in the space separated
// consumer field.
func (e *EatController) Eat(c *gin.Context) {
	var param structs.EatParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}

	_, consumers, err := e.intake.Eat(param.Edible, param.Weight, param.Consumer)
	if errors.Is(err, nutrition.ErrNoConsumer) {
		controllers.BadRequest(c, "missing consumer")
		return
	}
	if nutrition.IsInvalidEdible(err) {
		controllers.BadRequest(c, "invalid edible")
		return
	}
	if err != nil {
		controllers.ServerError(c, "eat", err)
		return
	}

	trackLog.WithFields(logrus.Fields{
		"task":        "eat",
		"edible_type": param.Edible.Type,
		"edible_id":   param.Edible.ID,
		"consumer":    consumers,
	}).Info("intake logged")
	c.JSON(http.StatusOK, gin.H{})
}

// Intake sums what a consumer ate on a day, or in [start, end) when both
// RFC3339 bounds are given.
func (e *EatController) Intake(c *gin.Context) {
	var param structs.IntakeQueryParam
	if err := c.ShouldBindQuery(&param); err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}

	consumer := strings.ToLower(strings.TrimSpace(param.Consumer))
	if consumer == "" {
		controllers.BadRequest(c, "missing consumer")
		return
	}

	start, end, err := e.window(param)
	if err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}

	fact, err := e.intake.Sum(consumer, start, end)
	if err != nil {
		controllers.ServerError(c, "intake", err)
		return
	}
	c.JSON(http.StatusOK, fact.ToMap())
}

func (e *EatController) window(param structs.IntakeQueryParam) (time.Time, time.Time, error) {
	if param.Start != "" || param.End != "" {
		start, err := time.Parse(time.RFC3339, param.Start)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("start must be an RFC3339 time")
		}
		end, err := time.Parse(time.RFC3339, param.End)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("end must be an RFC3339 time")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, errors.New("end is before start")
		}
		return start, end, nil
	}

	day, err := time.ParseInLocation(enums.DateLayout, param.Date, e.location)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("date must be YYYY-MM-DD")
	}
	start, end := nutrition.DayWindow(day, e.location)
	return start, end, nil
}
