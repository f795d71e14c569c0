package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"limpamais-api/controllers/idgen"
	"limpamais-api/models"
	"limpamais-api/notifier"
	"limpamais-api/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type DeliveryController struct {
	DB *gorm.DB
}

func NewDeliveryController(DB *gorm.DB) *DeliveryController {
	return &DeliveryController{DB: DB}
}

func (c *DeliveryController) CreateDelivery(ctx *fiber.Ctx) error {
	var input struct {
		ProductID   uint   `json:"product_id" validate:"required"`
		Type        string `json:"type" validate:"required,oneof=incoming outgoing production_incoming production_outgoing"`
		Quantity    int    `json:"quantity" validate:"required,gt=0"`
		Description string `json:"description"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	delivery := models.Delivery{
		RefCode:     idgen.RefCode("DLV"),
		ProductID:   input.ProductID,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Description: input.Description,
	}

	repo := repositories.NewStockRepository(c.DB)
	if err := repo.RecordMovement(&delivery); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to record delivery", "error": err.Error()})
	}

	if delivery.CurrentStock < delivery.PreviousStock && delivery.Product.LowStock() {
		go notifier.NotifyLowStock(delivery.Product)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Delivery recorded successfully", "data": delivery})
}

func (c *DeliveryController) GetAllDeliveries(ctx *fiber.Ctx) error {
	var deliveries []models.Delivery
	if err := c.DB.Preload("Product").Order("id ASC").Find(&deliveries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch deliveries", "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Deliveries found", "data": deliveries})
}

// ExportExcel streams the ledger as an Excel workbook.
func (c *DeliveryController) ExportExcel(ctx *fiber.Ctx) error {
	var deliveries []models.Delivery
	if err := c.DB.Preload("Product").Order("id ASC").Find(&deliveries).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch deliveries", "error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Ref Code")
	f.SetCellValue(sheet, "B1", "Product")
	f.SetCellValue(sheet, "C1", "Type")
	f.SetCellValue(sheet, "D1", "Quantity")
	f.SetCellValue(sheet, "E1", "Description")
	f.SetCellValue(sheet, "F1", "Date")
	f.SetCellValue(sheet, "G1", "Previous Stock")
	f.SetCellValue(sheet, "H1", "Current Stock")

	for i, d := range deliveries {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), d.RefCode)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), d.Product.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), d.Type)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), d.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), d.Description)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), d.Date.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), d.PreviousStock)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", i+2), d.CurrentStock)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="deliveries.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
