package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/pkg/validator"
	"github.com/accessnav-service/internal/usecase"
	"github.com/accessnav-service/internal/usecase/dto"
)

// AlertHandler serves the area alerts feed.
type AlertHandler struct {
	alertUC *usecase.AlertUseCase
	logger  *zap.Logger
}

func NewAlertHandler(alertUC *usecase.AlertUseCase, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{
		alertUC: alertUC,
		logger:  logger,
	}
}

// List godoc
// @Summary List area alerts
// @Description Returns recent alerts, plus simulated alerts around lat/lng when provided
// @Tags Alerts
// @Produce json
// @Param lat query number false "Caller latitude"
// @Param lng query number false "Caller longitude"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}

	alerts, err := h.alertUC.ListArea(c.Context(), lat, lng)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, alerts, &utils.Meta{
		Total: len(alerts),
	})
}

// Create godoc
// @Summary Create an alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body dto.CreateAlertRequest true "Alert payload"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/alerts [post]
func (h *AlertHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	alert, err := h.alertUC.CreateAlert(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, alert, nil)
}
