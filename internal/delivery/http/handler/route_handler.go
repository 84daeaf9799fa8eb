package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/pkg/validator"
	"github.com/accessnav-service/internal/usecase"
	"github.com/accessnav-service/internal/usecase/dto"
)

// RouteHandler serves annotated route planning.
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// PlanRoute godoc
// @Summary Plan an accessible route
// @Description Returns route geometry annotated with nearby hazards and profile-specific guidance
// @Tags Navigation
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Route request"
// @Success 200 {object} dto.RouteResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/navigation/route [post]
func (h *RouteHandler) PlanRoute(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.PlanRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(result)
}
