package macro

import (
	"macro-traco-backend/controllers"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/structs"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MacroController struct {
	edibles *nutrition.EdibleCalculator
}

func New(edibles *nutrition.EdibleCalculator) *MacroController {
	return &MacroController{edibles: edibles}
}

// Macros answers the nutrients in a quantity of a food or recipe.
func (m *MacroController) Macros(c *gin.Context) {
	var param structs.MacroQueryParam
	if err := c.ShouldBindQuery(&param); err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}

	fact, err := m.edibles.CalculateWeight(
		nutrition.Edible{Type: param.Type, ID: param.ID},
		nutrition.Weight{SeqNum: param.SeqNum, Amount: param.Amount},
	)
	if nutrition.IsInvalidEdible(err) {
		controllers.BadRequest(c, "invalid edible")
		return
	}
	if err != nil {
		controllers.ServerError(c, "macros", err)
		return
	}
	c.JSON(http.StatusOK, fact.ToMap())
}
