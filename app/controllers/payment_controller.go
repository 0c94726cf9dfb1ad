package controllers

import (
	"strings"
	"sync"

	"github.com/adboardhq/adboard/internal/pkg/database"
	"github.com/adboardhq/adboard/internal/pkg/payment"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

var (
	paymentServiceOnce sync.Once
	paymentService     *payment.Service
)

func getPaymentService() *payment.Service {
	paymentServiceOnce.Do(func() {
		paymentService = payment.NewServiceFromDB(database.GetDB())
	})
	return paymentService
}

// SetPaymentService overrides the service instance, used by tests
func SetPaymentService(s *payment.Service) {
	paymentServiceOnce.Do(func() {})
	paymentService = s
}

type paymentCreateRequest struct {
	AnnouncementID uint `json:"announcement_id"`
	PlanID         uint `json:"plan_id"`
}

// HandleCreatePayment starts a plan purchase for an owned announcement. Free
// plans are applied immediately; paid plans return the gateway confirmation
// URL the client must redirect to.
func HandleCreatePayment(c *fiber.Ctx) error {
	var req paymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if req.AnnouncementID == 0 || req.PlanID == 0 {
		return badRequest(c, "announcement_id and plan_id are required")
	}

	result, err := getPaymentService().Initiate(c.Context(), usercontext.GetUserID(c), req.AnnouncementID, req.PlanID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	if result.FreePlanApplied {
		return c.JSON(fiber.Map{"detail": "free plan applied"})
	}
	return c.JSON(result)
}

// HandleCheckPaymentStatus polls the gateway for the caller's payment and
// settles it locally when it has succeeded. A definitively failed payment is
// reported as a client error; the local record stays unpaid.
func HandleCheckPaymentStatus(c *fiber.Ctx) error {
	providerPaymentID := strings.TrimSpace(c.Params("payment_id"))
	if providerPaymentID == "" {
		return badRequest(c, "payment_id is required")
	}

	result, err := getPaymentService().CheckStatus(c.Context(), usercontext.GetUserID(c), providerPaymentID)
	if err != nil {
		return mapPaymentError(c, err)
	}

	if result.Status != payment.StatusSucceeded && result.Status != payment.StatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	return c.JSON(result)
}
