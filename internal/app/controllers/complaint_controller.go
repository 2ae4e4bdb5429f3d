package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/middleware"
)

// ComplaintController handles complaint endpoints
type ComplaintController struct {
	complaintService *services.ComplaintService
	logger           zerolog.Logger
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService, logger zerolog.Logger) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// FileComplaint files a complaint
// @Summary File a complaint
// @Description Students file for themselves; staff may set studentId.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Router /complaints [post]
func (c *ComplaintController) FileComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.FileComplaint(ctx, middleware.GetActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(complaint))
}

// GetComplaint retrieves a complaint
// @Summary Get a complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	complaint, err := c.complaintService.GetComplaint(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaint))
}

// ListComplaints lists complaints
// @Summary List complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student filter (staff only)"
// @Param status query string false "Status filter" Enums(pending, in_progress, resolved)
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse}
// @Router /complaints [get]
func (c *ComplaintController) ListComplaints(ctx *gin.Context) {
	var filter dto.ComplaintListFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}

	complaints, err := c.complaintService.ListComplaints(ctx, middleware.GetActor(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaints))
}

// StartComplaint moves a complaint into progress
// @Summary Start working on a complaint
// @Description Only pending complaints can be started; the flow is forward-only.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Failure 409 {object} dto.ErrorResponse "Already in progress or resolved"
// @Router /complaints/{id}/start [post]
func (c *ComplaintController) StartComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	complaint, err := c.complaintService.StartComplaint(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaint))
}

// ResolveComplaint closes a complaint
// @Summary Resolve a complaint
// @Description Resolution notes are mandatory; resolved is terminal.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body dto.ResolveComplaintRequest true "Resolution notes"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Router /complaints/{id}/resolve [post]
func (c *ComplaintController) ResolveComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResolveComplaintRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.ResolveComplaint(ctx, middleware.GetActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("complaintId", id).Msg("Complaint resolved")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(complaint))
}
