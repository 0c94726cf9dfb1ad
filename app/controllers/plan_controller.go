package controllers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/adboardhq/adboard/app/repository"
	"github.com/adboardhq/adboard/internal/pkg/cache"
	"github.com/gofiber/fiber/v2"
)

const (
	planListCacheKey = "plans:all"
	planListCacheTTL = 10 * time.Minute
)

// HandleListPlans returns all pricing tiers ordered by priority. The list
// changes only on deployment, so it is served from the cache when possible.
func HandleListPlans(c *fiber.Ctx) error {
	if cached, err := cache.Get(planListCacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	plans, err := repository.GetGlobalFactory().GetPlanRepository().GetAll()
	if err != nil {
		return internalError(c)
	}

	if body, err := json.Marshal(plans); err == nil {
		if err := cache.Set(planListCacheKey, string(body), planListCacheTTL); err != nil {
			log.Printf("Warning: could not cache plan list: %v", err)
		}
	}

	return c.JSON(plans)
}

// HandleGetPlan returns a single pricing tier
func HandleGetPlan(c *fiber.Ctx) error {
	id, err := parseUintParam(c, "id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	plan, err := repository.GetGlobalFactory().GetPlanRepository().GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return notFound(c, "plan not found")
		}
		return internalError(c)
	}
	return c.JSON(plan)
}
