package controllers

import (
	"errors"

	"limpamais-api/models"
	"limpamais-api/notifier"
	"limpamais-api/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaleController struct {
	DB *gorm.DB
}

func NewSaleController(DB *gorm.DB) *SaleController {
	return &SaleController{DB: DB}
}

func (c *SaleController) CreateSale(ctx *fiber.Ctx) error {
	var input struct {
		ProductID uint   `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`
		Customer  string `json:"customer"`
		Total     string `json:"total" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	total, err := models.NormalizeTotal(input.Total)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	sale := models.Sale{
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Customer:  input.Customer,
		Total:     total,
	}

	repo := repositories.NewStockRepository(c.DB)
	if err := repo.RecordSale(&sale); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to record sale", "error": err.Error()})
	}

	if sale.Product.LowStock() {
		go notifier.NotifyLowStock(sale.Product)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Sale recorded successfully", "data": sale})
}

func (c *SaleController) GetAllSales(ctx *fiber.Ctx) error {
	var sales []models.Sale
	if err := c.DB.Preload("Product").Order("id ASC").Find(&sales).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch sales", "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Sales found", "data": sales})
}
