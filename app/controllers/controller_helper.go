package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/payment"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parseUintParam reads a positive integer route parameter
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(v), nil
}

// parsePagination reads page/limit query parameters with sane bounds
func parsePagination(c *fiber.Ctx) (offset, limit int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return (page - 1) * limit, limit
}

// badRequest renders a 400 with a message
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "bad_request",
		"message": message,
	})
}

// notFound renders a 404 with a message
func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "not_found",
		"message": message,
	})
}

// internalError renders a 500; the cause is intentionally not leaked
func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal_error",
		"message": "something went wrong",
	})
}

// mapPaymentError translates payment service errors to HTTP responses
func mapPaymentError(c *fiber.Ctx, err error) error {
	var gwErr *payment.GatewayError
	switch {
	case errors.Is(err, payment.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": err.Error(),
		})
	case errors.Is(err, payment.ErrPaymentNotFound),
		errors.Is(err, payment.ErrPlanNotFound),
		errors.Is(err, payment.ErrAnnouncementNotFound):
		return notFound(c, err.Error())
	case errors.As(err, &gwErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "gateway_error",
			"message": err.Error(),
		})
	default:
		return internalError(c)
	}
}

// uniqueSlug derives a slug from the title and disambiguates collisions with
// a short random suffix.
func uniqueSlug(repo repository.AnnouncementRepository, slug string) (string, error) {
	exists, err := repo.SlugExists(slug)
	if err != nil {
		return "", err
	}
	if !exists {
		return slug, nil
	}

	b := make([]byte, 3)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return slug + "-" + hex.EncodeToString(b), nil
}

// isRecordNotFound reports a missing row
func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation reports whether err is a unique constraint violation.
// The gorm config enables TranslateError; the raw-message check covers paths
// that bypass translation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}
