package routes

import (
	"limpamais-api/config"
	"limpamais-api/controllers"
	"limpamais-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)
	api := app.Group(config.MAIN_ROUTES+"/orders", middleware.AuthMiddleware)

	api.Get("/", orderController.GetAllOrders)
	api.Post("/", orderController.CreateOrder)
	api.Put("/:id/advance", orderController.AdvanceOrder)
	api.Put("/:id/cancel", orderController.CancelOrder)
	api.Put("/:id/produce", orderController.RecordProduction)
}
