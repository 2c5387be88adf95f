package handlers

import (
	"NutriSense-Backend/domain"
	"NutriSense-Backend/internal/api/presenters"
	"NutriSense-Backend/pkg/admin"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetStats(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
	}
)

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandler{adminService: adminService}
}

func (h *adminHandler) GetStats(c *fiber.Ctx) error {
	res, err := h.adminService.GetStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAdminStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAdminStats)
}
