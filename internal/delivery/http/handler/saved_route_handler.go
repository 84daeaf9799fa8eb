package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/delivery/http/middleware"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/pkg/validator"
	"github.com/accessnav-service/internal/usecase"
	"github.com/accessnav-service/internal/usecase/dto"
)

// SavedRouteHandler serves per-user route bookmarks.
type SavedRouteHandler struct {
	savedRouteUC *usecase.SavedRouteUseCase
	logger       *zap.Logger
}

func NewSavedRouteHandler(savedRouteUC *usecase.SavedRouteUseCase, logger *zap.Logger) *SavedRouteHandler {
	return &SavedRouteHandler{
		savedRouteUC: savedRouteUC,
		logger:       logger,
	}
}

// Save godoc
// @Summary Bookmark a route
// @Tags Routes
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Owner id"
// @Param request body dto.SaveRouteRequest true "Route payload"
// @Success 201 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *SavedRouteHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	route, err := h.savedRouteUC.Save(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, route, nil)
}

// List godoc
// @Summary List the caller's saved routes
// @Tags Routes
// @Produce json
// @Param X-User-ID header string true "Owner id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *SavedRouteHandler) List(c *fiber.Ctx) error {
	routes, err := h.savedRouteUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, routes, &utils.Meta{
		Total: len(routes),
	})
}

// Delete godoc
// @Summary Delete a saved route
// @Tags Routes
// @Produce json
// @Param X-User-ID header string true "Owner id"
// @Param id path string true "Route id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [delete]
func (h *SavedRouteHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"id": "must be a UUID"}))
	}

	if err := h.savedRouteUC.Delete(c.Context(), middleware.UserID(c), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
