package controllers

import (
	"github.com/adboardhq/adboard/app/repository"
	"github.com/gofiber/fiber/v2"
)

// HandleListNews returns all news posts, newest first
func HandleListNews(c *fiber.Ctx) error {
	news, err := repository.GetGlobalFactory().GetNewsRepository().GetAll()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(news)
}

// HandleListBanners returns the landing page banners
func HandleListBanners(c *fiber.Ctx) error {
	banners, err := repository.GetGlobalFactory().GetBannerRepository().GetAll()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(banners)
}
