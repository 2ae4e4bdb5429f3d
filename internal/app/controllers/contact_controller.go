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

// ContactController handles the public contact form and the admin inbox
type ContactController struct {
	contactService *services.ContactService
	logger         zerolog.Logger
}

// NewContactController creates a new ContactController
func NewContactController(contactService *services.ContactService, logger zerolog.Logger) *ContactController {
	return &ContactController{
		contactService: contactService,
		logger:         logger,
	}
}

// SubmitMessage accepts a public contact form submission
// @Summary Submit a contact message
// @Description Public endpoint; no authentication. The claimed role is stored as plain text.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.ContactMessageResponse}
// @Router /contact [post]
func (c *ContactController) SubmitMessage(ctx *gin.Context) {
	var req dto.CreateContactMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	msg, err := c.contactService.SubmitMessage(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("Contact message received")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(msg))
}

// ListMessages lists contact messages
// @Summary List contact messages
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param is_resolved query bool false "Resolved filter"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.ContactMessageResponse}}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Router /contact [get]
func (c *ContactController) ListMessages(ctx *gin.Context) {
	var filter dto.ContactListFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}
	filter.Page, filter.Size = helpers.ParsePaginationParams(ctx)

	messages, total, err := c.contactService.ListMessages(ctx, middleware.GetActor(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      messages,
		Pagination: dto.NewPaginationInfo(total, filter.Page, filter.Size),
	}))
}

// ResolveMessage marks a contact message as handled
// @Summary Resolve a contact message
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContactMessageResponse}
// @Router /contact/{id}/resolve [post]
func (c *ContactController) ResolveMessage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	msg, err := c.contactService.ResolveMessage(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(msg))
}
