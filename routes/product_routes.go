package routes

import (
	"limpamais-api/config"
	"limpamais-api/controllers"
	"limpamais-api/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB) {
	productController := controllers.NewProductController(db)
	api := app.Group(config.MAIN_ROUTES+"/products", middleware.AuthMiddleware)

	api.Get("/", productController.GetAllProducts)
	api.Post("/", productController.CreateProduct)
	api.Get("/:id", productController.GetProductByID)
	api.Put("/:id", productController.UpdateProduct)
	api.Delete("/:id", productController.DeleteProduct)
}
