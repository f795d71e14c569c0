package routes

import (
	"limpamais-api/config"
	"limpamais-api/controllers"
	"limpamais-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeliveryRoutes(app *fiber.App, db *gorm.DB) {
	deliveryController := controllers.NewDeliveryController(db)
	api := app.Group(config.MAIN_ROUTES+"/deliveries", middleware.AuthMiddleware)

	api.Get("/", deliveryController.GetAllDeliveries)
	api.Get("/export", deliveryController.ExportExcel)
	api.Post("/", deliveryController.CreateDelivery)
}
