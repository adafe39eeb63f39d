package controllers

import (
	"macro-traco-backend/services/trackLog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// BadRequest answers 400 with a message for the caller.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}

// ServerError logs err and answers 500 without exposing it.
func ServerError(c *gin.Context, task string, err error) {
	trackLog.WithFields(logrus.Fields{"task": task, "path": c.Request.URL.Path}).Error(err.Error())
	c.JSON(http.StatusInternalServerError, MessageResponse{Message: "internal server error"})
}
