package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brasserie/internal/config"
	"github.com/example/brasserie/internal/middleware"
	"github.com/example/brasserie/internal/models"
	"github.com/example/brasserie/internal/utils"
	"github.com/example/brasserie/internal/validation"
)

// UserHandler manages user accounts.
type UserHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

type createUserRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
	Name        string `json:"name" validate:"omitempty,person_name"`
	Password    string `json:"password" validate:"required"`
}

type createAdminRequest struct {
	createUserRequest
	Secret string `json:"secret" validate:"required"`
}

// Register creates a regular user account.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return h.create(c, req, models.RoleUser)
}

// RegisterAdmin creates an admin account gated by the configured secret.
func (h *UserHandler) RegisterAdmin(c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if req.Secret != h.cfg.AdminSecret {
		return fiber.NewError(fiber.StatusForbidden, "invalid secret")
	}

	return h.create(c, req.createUserRequest, models.RoleAdmin)
}

func (h *UserHandler) create(c *fiber.Ctx, req createUserRequest, role string) error {
	var existing models.User
	if err := h.db.Where("phone_number = ?", req.PhoneNumber).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusConflict, "user with this phone number already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		PhoneNumber:  req.PhoneNumber,
		Name:         req.Name,
		Role:         role,
		PasswordHash: passwordHash,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": user})
}

// Current returns the authenticated user.
func (h *UserHandler) Current(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// List returns all users. Admin only.
func (h *UserHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return err
	}

	var users []models.User
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Order("created_at desc").
		Find(&users).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    users,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Get returns a user by ID. Owner or admin.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if !middleware.OwnerOrAdmin(requester, id) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// GetByPhone returns a user by phone number. Only the owner of the number
// or an admin may look it up.
func (h *UserHandler) GetByPhone(c *fiber.Ctx) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	phone := c.Params("phone_number")
	if !validation.ValidPhoneNumber(phone) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid phone_number format")
	}

	if !requester.IsAdmin() && requester.PhoneNumber != phone {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	var user models.User
	if err := h.db.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

type updateUserRequest struct {
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	Name        *string `json:"name" validate:"omitempty,person_name"`
	Password    *string `json:"password"`
}

// Update applies a partial update to name, phone number, or password. Role
// is never touched here. Owner or admin.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if !middleware.OwnerOrAdmin(requester, id) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	var req updateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := validation.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	if req.PhoneNumber != nil && *req.PhoneNumber != user.PhoneNumber {
		var count int64
		if err := h.db.Model(&models.User{}).
			Where("phone_number = ?", *req.PhoneNumber).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "user with this phone number already exists")
		}
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil && *req.Password != "" {
		passwordHash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
		}
		user.PasswordHash = passwordHash
	}

	if err := h.db.Save(&user).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// Delete removes a user and, via cascade, their cart, orders, and
// reservations. Owner or admin.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	requester, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if !middleware.OwnerOrAdmin(requester, id) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return err
	}

	if err := h.db.Delete(&user).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
