package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/accessnav-service/internal/delivery/http/middleware"
	"github.com/accessnav-service/internal/domain"
	"github.com/accessnav-service/internal/pkg/errors"
	"github.com/accessnav-service/internal/pkg/utils"
	"github.com/accessnav-service/internal/pkg/validator"
	"github.com/accessnav-service/internal/usecase"
	"github.com/accessnav-service/internal/usecase/dto"
)

// ReportHandler serves hazard report submission and community validation.
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// Submit godoc
// @Summary Submit a hazard report
// @Description Creates a hazard report with an initial trust score
// @Tags Reports
// @Accept json
// @Produce json
// @Param X-User-ID header string false "Submitter id"
// @Param request body dto.SubmitReportRequest true "Report payload"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/reports [post]
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.reportUC.SubmitReport(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, report, nil)
}

// List godoc
// @Summary List recent active reports
// @Tags Reports
// @Produce json
// @Param types query string false "Comma-separated hazard types"
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	var types []domain.HazardType
	if raw := c.Query("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, domain.HazardType(t))
			}
		}
	}

	reports, err := h.reportUC.ListReports(c.Context(), types)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, reports, &utils.Meta{
		Total: len(reports),
	})
}

// Get godoc
// @Summary Get a report by id
// @Tags Reports
// @Produce json
// @Param id path string true "Report id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"id": "must be a UUID"}))
	}

	report, err := h.reportUC.GetReport(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}

// Vote godoc
// @Summary Vote on a report
// @Description Confirms or denies a report, adjusting its trust score
// @Tags Reports
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Voter id"
// @Param id path string true "Report id"
// @Param request body dto.VoteRequest true "Vote payload"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/reports/{id}/validate [post]
func (h *ReportHandler) Vote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"id": "must be a UUID"}))
	}

	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.reportUC.Vote(c.Context(), id, middleware.UserID(c), req.Vote)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, report, nil)
}
