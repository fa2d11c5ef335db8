package routes

import (
	"manufacturing-mcp/config"
	"manufacturing-mcp/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	controller := controllers.NewReportController(db)
	api := app.Group(config.MAIN_ROUTES)

	api.Get("/factories", controller.ListFactories)
	api.Get("/machines", controller.GetMachines)
	api.Get("/work-orders", controller.GetWorkOrders)
	api.Get("/quality", controller.QualitySummary)
	api.Get("/maintenance", controller.MaintenanceReport)
	api.Get("/inventory", controller.InventoryStatus)
	api.Get("/inventory/export", controller.ExportInventoryExcel)
	api.Get("/suppliers/performance", controller.SupplierPerformance)
	api.Get("/operators/performance", controller.OperatorPerformance)
	api.Get("/schema", controller.GetSchema)
}
