package router

import (
	"macro-traco-backend/controllers/check"
	"macro-traco-backend/controllers/devProxy"
	"macro-traco-backend/controllers/eat"
	"macro-traco-backend/controllers/food"
	"macro-traco-backend/controllers/macro"
	"macro-traco-backend/controllers/readProbe"
	"macro-traco-backend/controllers/recipe"
	"macro-traco-backend/controllers/search"
	"macro-traco-backend/services/catalog"
	"macro-traco-backend/services/nutrition"
	"macro-traco-backend/services/store"
	"macro-traco-backend/structs"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

// Router wires every controller to one store over db. Intake days are
// cut at midnight in location.
func Router(db *gorm.DB, location *time.Location, server structs.ServerModel) (*gin.Engine, error) {
	route := gin.Default()

	s := store.New(db)
	edibles := nutrition.NewEdibleCalculator(s)
	intake := nutrition.NewIntakeService(edibles, s)
	catalogService := catalog.New(s)

	macroController := macro.New(edibles)
	eatController := eat.New(intake, location)
	foodController := food.New(catalogService)
	recipeController := recipe.New(catalogService)
	searchController := search.New(catalogService)

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive(db))

	route.GET("/macros", macroController.Macros)
	route.GET("/eat", eatController.Intake)
	route.POST("/eat", eatController.Eat)
	route.GET("/search", searchController.Search)
	route.GET("/food/:id/weights", foodController.Weights)
	route.POST("/foods", foodController.Create)
	route.POST("/recipes", recipeController.Create)

	if server.Dev {
		proxy, err := devProxy.Proxy(server.DevServerHost)
		if err != nil {
			return nil, err
		}
		route.NoRoute(proxy)
	} else if server.StaticDir != "" {
		route.NoRoute(devProxy.Static(server.StaticDir))
	}

	return route, nil
}
