package controllers

import (
	"errors"
	"time"

	"limpamais-api/controllers/idgen"
	"limpamais-api/models"
	"limpamais-api/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(DB *gorm.DB) *OrderController {
	return &OrderController{DB: DB}
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	var input struct {
		ProductID uint   `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required,gt=0"`
		DueDate   string `json:"due_date" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var product models.Product
	if err := c.DB.First(&product, input.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create order", "error": err.Error()})
	}

	order := models.Order{
		RefCode:   idgen.RefCode("ORD"),
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
		Status:    models.OrderPending,
		DueDate:   dueDate,
	}

	if err := c.DB.Create(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create order", "error": err.Error()})
	}

	order.Product = product
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Order created successfully", "data": order})
}

func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	var orders []models.Order
	if err := c.DB.Preload("Product").Order("id ASC").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch orders", "error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Orders found", "data": orders})
}

// AdvanceOrder moves a pending order into production.
func (c *OrderController) AdvanceOrder(ctx *fiber.Ctx) error {
	return c.transition(ctx, func(order *models.Order) error {
		return order.Advance()
	})
}

// CancelOrder aborts an order that is pending or in production.
func (c *OrderController) CancelOrder(ctx *fiber.Ctx) error {
	return c.transition(ctx, func(order *models.Order) error {
		return order.Cancel()
	})
}

// RecordProduction adds produced units to an order in production; the order
// completes automatically when the target quantity is reached.
func (c *OrderController) RecordProduction(ctx *fiber.Ctx) error {
	var input struct {
		Amount int `json:"amount" validate:"required,gt=0"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body", "error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.transition(ctx, func(order *models.Order) error {
		return order.RecordProduction(input.Amount)
	})
}

func (c *OrderController) transition(ctx *fiber.Ctx, apply func(*models.Order) error) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid ID"})
	}

	repo := repositories.NewOrderRepository(c.DB)
	order, err := repo.Transition(uint(id), apply)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrOrderNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		case errors.Is(err, models.ErrInvalidTransition):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update order", "error": err.Error()})
		}
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order updated successfully", "data": order})
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
