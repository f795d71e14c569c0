package routes

import (
	"limpamais-api/config"
	"limpamais-api/controllers"
	"limpamais-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSaleRoutes(app *fiber.App, db *gorm.DB) {
	saleController := controllers.NewSaleController(db)
	api := app.Group(config.MAIN_ROUTES+"/sales", middleware.AuthMiddleware)

	api.Get("/", saleController.GetAllSales)
	api.Post("/", saleController.CreateSale)
}
