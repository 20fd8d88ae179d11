package routes

import (
	"log"
	"os"
	"strconv"

	_ "gravitas_estimator/docs" // This will be auto-generated
	"gravitas_estimator/internal/adapter/http/handlers"
	"gravitas_estimator/internal/adapter/persistence/repository"
	"gravitas_estimator/internal/infrastructure/database"
	"gravitas_estimator/internal/infrastructure/payments"
	"gravitas_estimator/internal/usecase"
	"gravitas_estimator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	subscriptionRepo := repository.NewSubscriptionDynamoRepository(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, userRepo)

	var paymentGateway interfaces.IPaymentGateway
	pmGateway, err := payments.NewPayMongoGateway(os.Getenv("PAYMONGO_SECRET_KEY"))
	if err != nil {
		log.Printf("PayMongo gateway not configured: %v", err)
	} else {
		paymentGateway = pmGateway
	}

	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo, userRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler()
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addEstimateRoutes(v1, estimateHandler)
	addSubscriptionRoutes(v1, subscriptionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
