package routes

import (
	"advancedtech_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobOrders = "/job-orders"
	PathServices  = "/services"
	PathMechanics = "/mechanics"
	PathUsers     = "/users"
	PathDashboard = "/dashboard"
)

func addBackofficeRoutes(
	rg *gin.RouterGroup,
	jobOrderHandler *handlers.JobOrderHandler,
	serviceHandler *handlers.ServiceHandler,
	mechanicHandler *handlers.MechanicHandler,
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	jobOrders := rg.Group(PathJobOrders)
	{
		jobOrders.POST("", jobOrderHandler.CreateJobOrder)
		jobOrders.GET("", jobOrderHandler.ListJobOrders)
		jobOrders.GET("/table", jobOrderHandler.ListJobOrdersTable)
		jobOrders.POST("/totals", jobOrderHandler.PreviewTotals)
		jobOrders.GET("/:id", jobOrderHandler.GetJobOrder)
		jobOrders.PUT("/:id", jobOrderHandler.UpdateJobOrder)
		jobOrders.DELETE("/:id", jobOrderHandler.DeleteJobOrder)
		jobOrders.GET("/:id/receipt", jobOrderHandler.GetReceipt)
		jobOrders.GET("/:id/receipt.html", jobOrderHandler.GetReceiptHTML)
		jobOrders.GET("/:id/receipt.pdf", jobOrderHandler.GetReceiptPDF)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", serviceHandler.CreateService)
		services.GET("", serviceHandler.ListServices)
		services.GET("/table", serviceHandler.ListServicesTable)
		services.GET("/:id", serviceHandler.GetService)
		services.PUT("/:id", serviceHandler.UpdateService)
		services.DELETE("/:id", serviceHandler.DeleteService)
	}

	mechanics := rg.Group(PathMechanics)
	{
		mechanics.POST("", mechanicHandler.CreateMechanic)
		mechanics.GET("", mechanicHandler.ListMechanics)
		mechanics.GET("/:id", mechanicHandler.GetMechanic)
		mechanics.PUT("/:id", mechanicHandler.UpdateMechanic)
		mechanics.DELETE("/:id", mechanicHandler.DeleteMechanic)
	}

	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
	}
}
