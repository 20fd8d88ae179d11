package routes

import (
	"gravitas_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathUsers     = "/users"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("/calculate", estimateHandler.CalculateEstimate)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.POST("/bulk", estimateHandler.BulkEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:user_id/estimates", estimateHandler.ListEstimatesByUser)
	}
}
