package food

import (
	"macro-traco-backend/controllers"
	"macro-traco-backend/services/catalog"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/structs"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	catalog *catalog.Service
}

func New(catalog *catalog.Service) *FoodController {
	return &FoodController{catalog: catalog}
}

type WeightsResponse struct {
	Weights []nutrition.WeightUnit `json:"weights"`
}

// Weights lists the serving units of a food.
func (f *FoodController) Weights(c *gin.Context) {
	foodID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		controllers.BadRequest(c, "food id must be an integer")
		return
	}

	weights, err := f.catalog.Weights(foodID)
	if err != nil {
		controllers.ServerError(c, "weights", err)
		return
	}
	c.JSON(http.StatusOK, WeightsResponse{Weights: weights})
}

func (f *FoodController) Create(c *gin.Context) {
	var param structs.FoodParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}

	id, err := f.catalog.RegisterFood(param)
	if catalog.IsInvalidInput(err) {
		controllers.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		controllers.ServerError(c, "food", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
