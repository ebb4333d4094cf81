package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brasserie/internal/middleware"
	"github.com/example/brasserie/internal/models"
	"github.com/example/brasserie/internal/utils"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	db *gorm.DB
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

// Create converts the caller's cart into an order. The order insert and
// the cart reset happen in one transaction: either both succeed or
// neither does.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	var order models.Order
	err := h.db.Transaction(func(tx *gorm.DB) error {
		cart, err := getOrCreateCart(tx, user.ID)
		if err != nil {
			return err
		}

		if cart.IsEmpty() {
			return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
		}

		order = models.NewOrderFromCart(cart)
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		cart.Clear()
		return tx.Save(cart).Error
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "order created",
		"data":    order,
	})
}

// Get returns a single order. Owner or admin.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	if !middleware.OwnerOrAdmin(user, order.UserID) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// ListByUser returns all orders of the given user. Owner or admin.
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid user id")
	}

	if !middleware.OwnerOrAdmin(user, userID) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	return h.listForUser(c, userID)
}

// ListCurrent returns the caller's orders.
func (h *OrderHandler) ListCurrent(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	return h.listForUser(c, user.ID)
}

// ListAll returns every order. Admin only.
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return err
	}

	var orders []models.Order
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// UpdateStatus sets an order's status. Admin only; any status may follow
// any other.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	status := c.Query("status")
	if !models.ValidStatus(status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	var order models.Order
	if err := h.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	order.Status = status
	if err := h.db.Save(&order).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "order status updated", "data": order})
}

func (h *OrderHandler) listForUser(c *fiber.Ctx, userID uuid.UUID) error {
	var orders []models.Order
	if err := h.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}
