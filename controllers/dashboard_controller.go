package controllers

import (
	"limpamais-api/models"
	"limpamais-api/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// recentWindow bounds the sales and deliveries shown on the dashboard; the
// sales value is summed over this window, not over all time.
const recentWindow = 5

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GetDashboard computes the summary on demand; nothing is cached.
func (c *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	repo := repositories.NewDashboardRepository(c.DB)

	totalProducts, err := repo.TotalProducts()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load dashboard", "error": err.Error()})
	}

	lowStockCount, err := repo.LowStockCount()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load dashboard", "error": err.Error()})
	}

	activeOrders, err := repo.ActiveOrders()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load dashboard", "error": err.Error()})
	}

	recentSales, err := repo.RecentSales(recentWindow)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load dashboard", "error": err.Error()})
	}

	recentDeliveries, err := repo.RecentDeliveries(recentWindow)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load dashboard", "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Dashboard found",
		"data": fiber.Map{
			"total_products":    totalProducts,
			"low_stock_count":   lowStockCount,
			"total_sales_value": models.SumTotals(recentSales),
			"active_orders":     activeOrders,
			"recent_sales":      recentSales,
			"recent_deliveries": recentDeliveries,
		},
	})
}
