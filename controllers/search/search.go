package search

import (
	"macro-traco-backend/controllers"
	"macro-traco-backend/services/catalog"
	"macro-traco-backend/services/store"
	"macro-traco-backend/structs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	catalog *catalog.Service
}

func New(catalog *catalog.Service) *SearchController {
	return &SearchController{catalog: catalog}
}

type SearchResponse struct {
	Results []store.SearchResult `json:"results"`
}

func (s *SearchController) Search(c *gin.Context) {
	var param structs.SearchQueryParam
	if err := c.ShouldBindQuery(&param); err != nil {
		controllers.BadRequest(c, err.Error())
		return
	}
	if _, ok := c.GetQuery("for"); !ok {
		controllers.BadRequest(c, `missing query string parameter "for"`)
		return
	}

	results, err := s.catalog.Search(strings.Split(param.For, " "), param.RestrictTo)
	if catalog.IsInvalidInput(err) {
		controllers.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		controllers.ServerError(c, "search", err)
		return
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results})
}
