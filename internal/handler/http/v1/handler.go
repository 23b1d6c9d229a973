package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/firstaidhub/first_aid_response_system/internal/config"
	"github.com/firstaidhub/first_aid_response_system/internal/content"
	"github.com/firstaidhub/first_aid_response_system/internal/models"
	"github.com/firstaidhub/first_aid_response_system/internal/service"
)

type Handler struct {
	caseService service.CaseService
	content     *content.Service
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(caseService service.CaseService, contentService *content.Service, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		caseService: caseService,
		content:     contentService,
		logger:      logger,
		validate:    newValidator(),
		cfg:         cfg,
	}
}

// @Summary Register a new emergency case
// @Description Register a new emergency case. Status defaults to "pending" when omitted.
// @Tags Emergency Cases
// @Accept json
// @Produce json
// @Param case body CreateEmergencyCaseRequest true "Emergency case creation request"
// @Success 201 {object} EmergencyCaseResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-cases [post]
func (h *Handler) createCase(c *gin.Context) {
	var input CreateEmergencyCaseRequest
	log := h.logger.WithField("method", "createCase")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid data"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid data",
			Errors:  fieldErrors(err),
		})
		return
	}

	model := RequestToCaseModel(input)
	if err := h.caseService.CreateCase(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create emergency case in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create emergency case"})
		return
	}
	c.JSON(http.StatusCreated, ModelToCaseResponse(model))
}

// @Summary List all emergency cases
// @Description Get all registered emergency cases in creation order.
// @Tags Emergency Cases
// @Produce json
// @Success 200 {array} EmergencyCaseResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-cases [get]
func (h *Handler) listCases(c *gin.Context) {
	log := h.logger.WithField("method", "listCases")

	cases, err := h.caseService.ListCases(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list emergency cases from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch emergency cases"})
		return
	}

	c.JSON(http.StatusOK, ModelsToCaseResponses(cases))
}

// @Summary Get emergency case by ID
// @Description Get a single emergency case by its numeric ID.
// @Tags Emergency Cases
// @Produce json
// @Param id path int true "Emergency case ID"
// @Success 200 {object} EmergencyCaseResponse
// @Failure 404 {object} ErrorResponse "Emergency case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-cases/{id} [get]
func (h *Handler) getCase(c *gin.Context) {
	// Нечисловой id трактуется как несуществующий, а не как ошибка запроса
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Emergency case not found"})
		return
	}
	log := h.logger.WithField("method", "getCase").WithField("id", id)

	emergencyCase, err := h.caseService.GetCase(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Emergency case not found"})
			return
		}
		log.WithError(err).Error("Failed to get emergency case from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch emergency case"})
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(emergencyCase))
}

// @Summary Update emergency case status
// @Description Move an emergency case to a new status (pending, dispatched or resolved).
// @Tags Emergency Cases
// @Accept json
// @Produce json
// @Param id path int true "Emergency case ID"
// @Param status body UpdateCaseStatusRequest true "Status update request"
// @Success 200 {object} EmergencyCaseResponse
// @Failure 400 {object} ErrorResponse "Status missing or invalid"
// @Failure 404 {object} ErrorResponse "Emergency case not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-cases/{id}/status [patch]
func (h *Handler) updateCaseStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Emergency case not found"})
		return
	}
	log := h.logger.WithField("method", "updateCaseStatus").WithField("id", id)

	var input UpdateCaseStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid data"})
		return
	}

	if input.Status == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Status is required"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid data",
			Errors:  fieldErrors(err),
		})
		return
	}

	updated, err := h.caseService.UpdateCaseStatus(c.Request.Context(), id, models.CaseStatus(input.Status))
	if err != nil {
		if errors.Is(err, models.ErrCaseNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Emergency case not found"})
			return
		}
		log.WithError(err).Error("Failed to update emergency case status in service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to update emergency case status"})
		return
	}
	c.JSON(http.StatusOK, ModelToCaseResponse(updated))
}

// @Summary Get emergency case statistics
// @Description Get case totals grouped by status and severity.
// @Tags Emergency Cases
// @Produce json
// @Success 200 {object} CaseStatsResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /emergency-cases/stats [get]
func (h *Handler) getCaseStats(c *gin.Context) {
	log := h.logger.WithField("method", "getCaseStats")

	stats, err := h.caseService.GetStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch emergency case stats"})
		return
	}

	c.JSON(http.StatusOK, StatsToResponse(stats))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
