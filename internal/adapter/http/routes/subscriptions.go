package routes

import (
	"gravitas_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSubscriptions = "/subscriptions"

func addSubscriptionRoutes(rg *gin.RouterGroup, subscriptionHandler *handlers.SubscriptionHandler) {
	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.POST("/checkout", subscriptionHandler.CreateCheckout)
		subscriptions.POST("/webhook", subscriptionHandler.HandleWebhook)
	}
}
