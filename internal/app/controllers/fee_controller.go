package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/middleware"
)

// FeeController handles fee record endpoints
type FeeController struct {
	feeService *services.FeeService
	logger     zerolog.Logger
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService, logger zerolog.Logger) *FeeController {
	return &FeeController{
		feeService: feeService,
		logger:     logger,
	}
}

// CreateFee creates a fee record
// @Summary Create a fee record
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee information"
// @Success 201 {object} dto.APIResponse{data=dto.FeeResponse}
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.CreateFee(ctx, middleware.GetActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(fee))
}

// GetFee retrieves a fee record
// @Summary Get a fee record
// @Description The status in the response is derived against today's date.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse}
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	fee, err := c.feeService.GetFee(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fee))
}

// ListFees lists fee records
// @Summary List fees
// @Description Students always get their own fees; the status filter matches the derived status including overdue.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student filter (staff only)"
// @Param status query string false "Derived status filter" Enums(pending, overdue, paid)
// @Success 200 {object} dto.APIResponse{data=[]dto.FeeResponse}
// @Router /fees [get]
func (c *FeeController) ListFees(ctx *gin.Context) {
	var filter dto.FeeListFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}

	fees, err := c.feeService.ListFees(ctx, middleware.GetActor(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fees))
}

// UpdateFee updates a fee record
// @Summary Update a fee record
// @Description The status is not settable here; use mark-paid.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param request body dto.UpdateFeeRequest true "Fee fields"
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse}
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.UpdateFee(ctx, middleware.GetActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fee))
}

// MarkFeePaid records a payment
// @Summary Mark a fee as paid
// @Description Paid is terminal; a second payment attempt returns 409 and leaves the record untouched.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param request body dto.MarkFeePaidRequest true "Payment method"
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse}
// @Failure 409 {object} dto.ErrorResponse "Fee already settled"
// @Router /fees/{id}/mark-paid [post]
func (c *FeeController) MarkFeePaid(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.MarkFeePaidRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.MarkFeePaid(ctx, middleware.GetActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("feeId", id).Str("method", req.PaymentMethod).Msg("Fee marked paid")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(fee))
}

// DeleteFee deletes a fee record
// @Summary Delete a fee record
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feeService.DeleteFee(ctx, middleware.GetActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Fee deleted successfully"}))
}
