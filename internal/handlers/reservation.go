package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/brasserie/internal/middleware"
	"github.com/example/brasserie/internal/models"
	"github.com/example/brasserie/internal/utils"
)

// ReservationHandler manages table reservations.
type ReservationHandler struct {
	db *gorm.DB
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(db *gorm.DB) *ReservationHandler {
	return &ReservationHandler{db: db}
}

// Create books a table slot from the time query parameter (ISO 8601). The
// slot must be more than 24 hours away.
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	raw := c.Query("time")
	if raw == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing time parameter")
	}

	slot, err := parseReservationTime(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid time format")
	}

	if !models.LeadTimeSatisfied(slot, time.Now()) {
		return fiber.NewError(fiber.StatusBadRequest, "less than 24 hours left until the reservation time")
	}

	reservation := models.Reservation{UserID: user.ID, Time: slot}
	if err := h.db.Create(&reservation).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "reservation created",
		"data":    reservation,
	})
}

// Get returns a single reservation. Owner or admin.
func (h *ReservationHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	reservation, err := h.find(id)
	if err != nil {
		return err
	}

	if !middleware.OwnerOrAdmin(user, reservation.UserID) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	return c.JSON(fiber.Map{"success": true, "data": reservation})
}

// ListByUser returns all reservations of the given user. Owner or admin.
func (h *ReservationHandler) ListByUser(c *fiber.Ctx) error {
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

// ListCurrent returns the caller's reservations.
func (h *ReservationHandler) ListCurrent(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	return h.listForUser(c, user.ID)
}

// ListAll returns every reservation. Admin only.
func (h *ReservationHandler) ListAll(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Reservation{}).Count(&total).Error; err != nil {
		return err
	}

	var reservations []models.Reservation
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).Order("time asc").
		Find(&reservations).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    reservations,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// Delete cancels a reservation identified by the id query parameter.
// Owner or admin.
func (h *ReservationHandler) Delete(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	reservation, err := h.find(id)
	if err != nil {
		return err
	}

	if !middleware.OwnerOrAdmin(user, reservation.UserID) {
		return fiber.NewError(fiber.StatusForbidden, "access denied")
	}

	if err := h.db.Delete(reservation).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReservationHandler) find(id uuid.UUID) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := h.db.First(&reservation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "reservation not found")
		}
		return nil, err
	}
	return &reservation, nil
}

func (h *ReservationHandler) listForUser(c *fiber.Ctx, userID uuid.UUID) error {
	var reservations []models.Reservation
	if err := h.db.Where("user_id = ?", userID).
		Order("time asc").Find(&reservations).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": reservations})
}

// parseReservationTime accepts RFC 3339 or a naive local timestamp
// without offset, e.g. 2026-01-02T19:30:00.
func parseReservationTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local)
}
