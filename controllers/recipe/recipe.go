package recipe

import (
	"macro-traco-backend/controllers"
	"macro-traco-backend/services/catalog"
	"macro-traco-backend/structs"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	catalog *catalog.Service
}

func New(catalog *catalog.Service) *RecipeController {
	return &RecipeController{catalog: catalog}
}

func (r *RecipeController) Create(c *gin.Context) {
	var param structs.RecipeParam
	if err := c.ShouldBindJSON(&param); err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}

	id, err := r.catalog.RegisterRecipe(param)
	if catalog.IsInvalidInput(err) {
		controllers.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		controllers.ServerError(c, "recipe", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}
