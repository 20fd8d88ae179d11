package routes

import (
	"gravitas_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/materials", catalogHandler.ListMaterials)
		catalog.GET("/materials/:id/price", catalogHandler.GetMaterialPrice)
		catalog.GET("/locations", catalogHandler.ListLocations)
		catalog.GET("/project-types", catalogHandler.ListProjectTypes)
		catalog.GET("/plans", catalogHandler.ListPlans)
	}
}
