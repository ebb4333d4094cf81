package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brasserie/internal/middleware"
	"github.com/example/brasserie/internal/models"
)

// CartHandler manages the caller's shopping cart. Every mutation is a
// read-modify-write of the whole cart row; last writer wins.
type CartHandler struct {
	db *gorm.DB
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

// Get returns the caller's cart, creating an empty one on first access.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	cart, err := getOrCreateCart(h.db, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": cart})
}

// Add puts one more unit of the product into the caller's cart.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	product, err := h.getProduct(productID)
	if err != nil {
		return err
	}

	cart, err := getOrCreateCart(h.db, user.ID)
	if err != nil {
		return err
	}

	if err := cart.AddProduct(product.ID, product.Price); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Save(cart).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "product added", "data": cart})
}

// SetQuantity sets the exact quantity for a product line via the quantity
// query parameter.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	raw := c.Query("quantity")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing quantity parameter")
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quantity")
	}

	product, err := h.getProduct(productID)
	if err != nil {
		return err
	}

	cart, err := getOrCreateCart(h.db, user.ID)
	if err != nil {
		return err
	}

	if err := cart.SetQuantity(product.ID, quantity, product.Price); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Save(cart).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "quantity set", "data": cart})
}

// Remove takes one unit of the product out of the caller's cart. The
// product row is consulted only when a line is decremented, so removing
// the last unit of a product that has since left the catalog still works.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	cart, err := getOrCreateCart(h.db, user.ID)
	if err != nil {
		return err
	}

	line, ok := cart.Products[productID.String()]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("there is no product with id %s in user cart", productID))
	}

	var unitPrice float64
	if line.Quantity > 1 {
		product, err := h.getProduct(productID)
		if err != nil {
			return err
		}
		unitPrice = product.Price
	}

	if err := cart.RemoveOne(productID, unitPrice); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := h.db.Save(cart).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "product removed", "data": cart})
}

func getOrCreateCart(tx *gorm.DB, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := tx.First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.NewCart(userID)
	if err := tx.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (h *CartHandler) getProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}
