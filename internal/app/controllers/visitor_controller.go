package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/middleware"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

// VisitorController handles visitor log endpoints
type VisitorController struct {
	visitorService *services.VisitorService
	logger         zerolog.Logger
}

// NewVisitorController creates a new VisitorController
func NewVisitorController(visitorService *services.VisitorService, logger zerolog.Logger) *VisitorController {
	return &VisitorController{
		visitorService: visitorService,
		logger:         logger,
	}
}

// CheckIn registers a visitor arrival
// @Summary Check a visitor in
// @Tags visitors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateVisitorRequest true "Visitor information"
// @Success 201 {object} dto.APIResponse{data=dto.VisitorResponse}
// @Router /visitors [post]
func (c *VisitorController) CheckIn(ctx *gin.Context) {
	var req dto.CreateVisitorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	visitor, err := c.visitorService.CheckIn(ctx, middleware.GetActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(visitor))
}

// ListVisitors lists visitor entries
// @Summary List visitor entries
// @Description Students see only visitors logged against themselves.
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Host student filter (staff only)"
// @Param today query bool false "Only today's check-ins"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.VisitorResponse}}
// @Router /visitors [get]
func (c *VisitorController) ListVisitors(ctx *gin.Context) {
	var filter dto.VisitorListFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}
	filter.Page, filter.Size = helpers.ParsePaginationParams(ctx)

	visitors, total, err := c.visitorService.ListVisitors(ctx, middleware.GetActor(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      visitors,
		Pagination: dto.NewPaginationInfo(total, filter.Page, filter.Size),
	}))
}

// CheckOut stamps the visitor's departure
// @Summary Check a visitor out
// @Description Closing an already-closed visit returns 409 and keeps the original out time.
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visitor entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.VisitorResponse}
// @Failure 409 {object} dto.ErrorResponse "Visit already closed"
// @Router /visitors/{id}/check-out [post]
func (c *VisitorController) CheckOut(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	visitor, err := c.visitorService.CheckOut(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(visitor))
}

// DeleteVisitor removes a visitor entry
// @Summary Delete a visitor entry
// @Tags visitors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Visitor entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /visitors/{id} [delete]
func (c *VisitorController) DeleteVisitor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.visitorService.DeleteVisitor(ctx, middleware.GetActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Visitor entry deleted successfully"}))
}
