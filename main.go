package main

import (
	"log"

	"limpamais-api/config"
	"limpamais-api/controllers/idgen"
	"limpamais-api/database"
	"limpamais-api/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	// Connect to database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto migrate models
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.Seed(db)

	idgen.Init()

	// Setup CORS middleware
	config.SetupCORS(app)

	// Setup routes
	routes.SetupAuthRoutes(app, db)
	routes.SetupProductRoutes(app, db)
	routes.SetupDeliveryRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	routes.SetupSaleRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	port := config.APP_PORT
	config.GetLogger().Info("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
