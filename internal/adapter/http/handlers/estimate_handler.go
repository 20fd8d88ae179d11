package handlers

import (
	"errors"
	"log"
	"net/http"

	request "gravitas_estimator/internal/adapter/http/dto/request"
	response "gravitas_estimator/internal/adapter/http/dto/response"
	"gravitas_estimator/internal/usecase"
	"gravitas_estimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for cost estimates: stateless
// previews, saved estimates and premium bulk runs.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CalculateEstimate runs the engine without persisting anything. Previews do
// not consume the monthly quota.
func (h *EstimateHandler) CalculateEstimate(c *gin.Context) {
	var payload request.CalculateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), payload.ResolveUserID(), payload.ToInputs())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculationResult(result))
}

// CreateEstimate calculates and saves an estimate, consuming one monthly slot.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ResolveUserID(), payload.ToInputs(), payload.Notes)
	if err != nil {
		log.Printf("[estimate][handler] create failed user_id=%s err=%v", payload.ResolveUserID(), err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// GetEstimate returns a saved estimate by id.
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ListEstimatesByUser returns every estimate a user has saved.
func (h *EstimateHandler) ListEstimatesByUser(c *gin.Context) {
	estimates, err := h.usecase.ListByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimates(estimates))
}

// DeleteEstimate removes a saved estimate. The caller identifies itself via
// the user_id query parameter and must own the estimate.
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	id := c.Param("id")
	userID := c.Query("user_id")

	if err := h.usecase.DeleteByID(c.Request.Context(), id, userID); err != nil {
		log.Printf("[estimate][handler] delete failed estimate_id=%s user_id=%s err=%v", id, userID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// BulkEstimate totals a batch of projects in one call. Premium only.
func (h *EstimateHandler) BulkEstimate(c *gin.Context) {
	var payload request.BulkEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CalculateBulk(c.Request.Context(), payload.ResolveUserID(), payload.ToInputs())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBulkResult(result))
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidMeasurements),
		errors.Is(err, usecase.ErrEmptyBulkBatch),
		errors.Is(err, usecase.ErrInvalidBulkEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProjectTypeRestricted):
		return pkg.NewDomainErrorSimple("PROJECT_TYPE_RESTRICTED", "Project type requires a higher plan", http.StatusForbidden)
	case errors.Is(err, usecase.ErrPremiumRequired):
		return pkg.NewDomainErrorSimple("PREMIUM_REQUIRED", "This feature requires the premium plan", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEstimateNotOwned):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_OWNED", "Estimate belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEstimateQuotaReached):
		return pkg.NewDomainErrorSimple("ESTIMATE_QUOTA_REACHED", "Monthly estimate limit reached for this plan", http.StatusTooManyRequests)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
