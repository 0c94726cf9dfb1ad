package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/adboardhq/adboard/app/models"
	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/payment"
	"github.com/adboardhq/adboard/internal/pkg/usercontext"
	"github.com/gofiber/fiber/v2"
)

const recommendationLimit = 5

type announcementCreateRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	CategoryID     *uint      `json:"category_id"`
	Condition      string     `json:"condition"`
	Location       string     `json:"location"`
	City           string     `json:"city"`
	Phone          string     `json:"phone"`
	Status         string     `json:"status"`
	PlanID         *uint      `json:"plan_id"`
	Price          float64    `json:"price"`
	IsNegotiable   bool       `json:"is_negotiable"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Images         []string   `json:"images"`
}

type announcementUpdateRequest struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	CategoryID     *uint      `json:"category_id"`
	Condition      *string    `json:"condition"`
	Location       *string    `json:"location"`
	City           *string    `json:"city"`
	Phone          *string    `json:"phone"`
	Status         *string    `json:"status"`
	PlanID         *uint      `json:"plan_id"`
	Price          *float64   `json:"price"`
	IsNegotiable   *bool      `json:"is_negotiable"`
	ExpirationDate *time.Time `json:"expiration_date"`
}

var errPaidPlanDirectEdit = errors.New("paid plans are applied through the payment flow")

// applyPlanEdit attaches a plan to an announcement directly, bypassing the
// payment flow, and recomputes the ranking priority. Owners may only attach
// free plans this way; admins may attach any. A nil plan detaches and resets
// the priority to the default.
func applyPlanEdit(a *models.Announcement, plan *models.Plan, isAdmin bool) error {
	if plan != nil && plan.Amount > 0 && !isAdmin {
		return errPaidPlanDirectEdit
	}
	payment.AssignPriority(a, plan)
	return nil
}

// HandleListAnnouncements returns published listings, filtered and paginated.
// The default order is the board ranking: paid plans first, newest first
// within the same priority.
func HandleListAnnouncements(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	status := c.Query("status", models.AnnouncementStatusPublished)
	filter := repository.AnnouncementFilter{
		Condition: c.Query("condition"),
		Status:    status,
		Query:     strings.TrimSpace(c.Query("q")),
		OrderBy:   c.Query("order_by"),
		Offset:    offset,
		Limit:     limit,
	}
	if id := c.QueryInt("category_id", 0); id > 0 {
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if id := c.QueryInt("plan_id", 0); id > 0 {
		planID := uint(id)
		filter.PlanID = &planID
	}

	annRepo := repository.GetGlobalFactory().GetAnnouncementRepository()
	announcements, err := annRepo.List(filter)
	if err != nil {
		return internalError(c)
	}
	total, err := annRepo.Count(filter)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"items": announcements,
		"total": total,
	})
}

// HandleCreateAnnouncement creates a listing for the caller. A plan may be
// attached directly only when it is free; paid plans are applied through the
// payment flow.
func HandleCreateAnnouncement(c *fiber.Ctx) error {
	var req announcementCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status := req.Status
	if status == "" {
		status = models.AnnouncementStatusDraft
	}

	a := &models.Announcement{
		UserID:         usercontext.GetUserID(c),
		CategoryID:     req.CategoryID,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Condition:      req.Condition,
		Location:       req.Location,
		City:           req.City,
		Phone:          req.Phone,
		Status:         status,
		Price:          req.Price,
		IsNegotiable:   req.IsNegotiable,
		ExpirationDate: req.ExpirationDate,
	}

	if req.CategoryID != nil {
		if _, err := repository.GetGlobalFactory().GetCategoryRepository().GetByID(*req.CategoryID); err != nil {
			return badRequest(c, "category does not exist")
		}
	}

	if req.PlanID != nil {
		plan, err := repository.GetGlobalFactory().GetPlanRepository().GetByID(*req.PlanID)
		if err != nil {
			return badRequest(c, "plan does not exist")
		}
		if err := applyPlanEdit(a, plan, usercontext.GetUserContext(c).IsAdmin); err != nil {
			return badRequest(c, err.Error())
		}
	} else {
		payment.AssignPriority(a, nil)
	}

	for _, url := range req.Images {
		a.Images = append(a.Images, models.AnnouncementImage{ImageURL: url})
	}

	if err := a.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	annRepo := repository.GetGlobalFactory().GetAnnouncementRepository()
	slug, err := uniqueSlug(annRepo, models.Slugify(a.Title))
	if err != nil {
		return internalError(c)
	}
	a.Slug = slug

	if err := annRepo.Create(a); err != nil {
		return internalError(c)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

// HandleGetAnnouncement returns one listing and counts the view
func HandleGetAnnouncement(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	annRepo := repository.GetGlobalFactory().GetAnnouncementRepository()
	a, err := annRepo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	// fire and forget; a lost view count is not worth failing the request
	_ = annRepo.IncrementViews(id)

	return c.JSON(fiber.Map{
		"announcement": a,
		"position":     a.PositionLabel(),
	})
}

// HandleUpdateAnnouncement applies a partial update to an owned listing.
// Plan changes here are the direct edit channel: free plans for owners, any
// plan for admins; paid plans for owners go through the payment flow. The
// priority itself is never writable, it is always recomputed from the plan.
func HandleUpdateAnnouncement(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	annRepo := repository.GetGlobalFactory().GetAnnouncementRepository()
	a, err := annRepo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	ctx := usercontext.GetUserContext(c)
	if a.UserID != ctx.UserID && !ctx.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "may only edit own announcement",
		})
	}

	var req announcementUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title != a.Title {
			slug, err := uniqueSlug(annRepo, models.Slugify(title))
			if err != nil {
				return internalError(c)
			}
			a.Title = title
			a.Slug = slug
		}
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.CategoryID != nil {
		if *req.CategoryID == 0 {
			a.CategoryID = nil
		} else {
			if _, err := repository.GetGlobalFactory().GetCategoryRepository().GetByID(*req.CategoryID); err != nil {
				return badRequest(c, "category does not exist")
			}
			a.CategoryID = req.CategoryID
		}
	}
	if req.Condition != nil {
		a.Condition = *req.Condition
	}
	if req.Location != nil {
		a.Location = *req.Location
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.PlanID != nil {
		if *req.PlanID == 0 {
			payment.AssignPriority(a, nil)
		} else {
			plan, err := repository.GetGlobalFactory().GetPlanRepository().GetByID(*req.PlanID)
			if err != nil {
				return badRequest(c, "plan does not exist")
			}
			if err := applyPlanEdit(a, plan, ctx.IsAdmin); err != nil {
				return badRequest(c, err.Error())
			}
		}
	}
	if req.Price != nil {
		a.Price = *req.Price
	}
	if req.IsNegotiable != nil {
		a.IsNegotiable = *req.IsNegotiable
	}
	if req.ExpirationDate != nil {
		a.ExpirationDate = req.ExpirationDate
	}

	if err := a.Validate(); err != nil {
		return badRequest(c, err.Error())
	}
	if err := annRepo.Update(a); err != nil {
		return internalError(c)
	}
	return c.JSON(a)
}

// HandleDeleteAnnouncement removes an owned listing
func HandleDeleteAnnouncement(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	annRepo := repository.GetGlobalFactory().GetAnnouncementRepository()
	a, err := annRepo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	ctx := usercontext.GetUserContext(c)
	if a.UserID != ctx.UserID && !ctx.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "forbidden",
			"message": "may only delete own announcement",
		})
	}

	if err := annRepo.Delete(id); err != nil {
		return internalError(c)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRecommendations returns a few random published listings from the same
// category, excluding the listing itself.
func HandleRecommendations(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	annRepo := repository.GetGlobalFactory().GetAnnouncementRepository()
	a, err := annRepo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "announcement not found")
		}
		return internalError(c)
	}

	if a.CategoryID == nil {
		return c.JSON([]models.Announcement{})
	}

	recommendations, err := annRepo.RandomInCategory(*a.CategoryID, a.ID, recommendationLimit)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(recommendations)
}
