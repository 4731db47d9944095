package routes

import (
	"log"
	"strconv"

	_ "advancedtech_backoffice/docs" // This will be auto-generated
	"advancedtech_backoffice/internal/adapter/http/handlers"
	repository2 "advancedtech_backoffice/internal/adapter/persistence/repository"
	"advancedtech_backoffice/internal/domain/receipt"
	"advancedtech_backoffice/internal/infrastructure/database"
	"advancedtech_backoffice/internal/usecase"

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

	jobOrderRepo := repository2.NewJobOrderDynamoRepository(ddb)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb)
	mechanicRepo := repository2.NewMechanicDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	jobOrderUseCase := usecase.NewJobOrderUseCase(jobOrderRepo, receipt.DefaultIdentity)
	serviceUseCase := usecase.NewServiceUseCase(serviceRepo)
	mechanicUseCase := usecase.NewMechanicUseCase(mechanicRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(jobOrderRepo, mechanicRepo)

	jobOrderHandler := handlers.NewJobOrderHandler(jobOrderUseCase)
	serviceHandler := handlers.NewServiceHandler(serviceUseCase)
	mechanicHandler := handlers.NewMechanicHandler(mechanicUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBackofficeRoutes(v1, jobOrderHandler, serviceHandler, mechanicHandler, userHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
