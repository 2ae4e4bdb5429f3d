package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/middleware"
	"github.com/okan/hostelhub/internal/pkg/helpers"
)

// MessMenuController handles mess menu endpoints
type MessMenuController struct {
	menuService *services.MessMenuService
	logger      zerolog.Logger
}

// NewMessMenuController creates a new MessMenuController
func NewMessMenuController(menuService *services.MessMenuService, logger zerolog.Logger) *MessMenuController {
	return &MessMenuController{
		menuService: menuService,
		logger:      logger,
	}
}

// CreateMenu creates a menu for a date
// @Summary Create a daily menu
// @Tags mess-menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMessMenuRequest true "Menu"
// @Success 201 {object} dto.APIResponse{data=dto.MessMenuResponse}
// @Failure 409 {object} dto.ErrorResponse "Menu already exists for this date"
// @Router /mess-menu [post]
func (c *MessMenuController) CreateMenu(ctx *gin.Context) {
	var req dto.CreateMessMenuRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	menu, err := c.menuService.CreateMenu(ctx, middleware.GetActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(menu))
}

// GetTodayMenu retrieves today's menu
// @Summary Get today's menu
// @Tags mess-menu
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MessMenuResponse}
// @Failure 404 {object} dto.ErrorResponse "No menu for today"
// @Router /mess-menu/today [get]
func (c *MessMenuController) GetTodayMenu(ctx *gin.Context) {
	menu, err := c.menuService.GetTodayMenu(ctx, middleware.GetActor(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(menu))
}

// GetMenu retrieves a menu by its id
// @Summary Get a daily menu
// @Tags mess-menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessMenuResponse}
// @Failure 404 {object} dto.ErrorResponse "Menu not found"
// @Router /mess-menu/{id} [get]
func (c *MessMenuController) GetMenu(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	menu, err := c.menuService.GetMenu(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(menu))
}

// ListMenus lists menus over a date range
// @Summary List menus
// @Description Defaults to the current week when no range is given.
// @Tags mess-menu
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.MessMenuResponse}
// @Router /mess-menu [get]
func (c *MessMenuController) ListMenus(ctx *gin.Context) {
	var query struct {
		From string `form:"from"`
		To   string `form:"to"`
	}
	if !middleware.BindQuery(ctx, &query) {
		return
	}

	var from, to *time.Time
	if query.From != "" {
		parsed, err := helpers.ParseDate(query.From)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid from date, expected YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		from = &parsed
	}
	if query.To != "" {
		parsed, err := helpers.ParseDate(query.To)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid to date, expected YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		to = &parsed
	}

	menus, err := c.menuService.ListMenus(ctx, middleware.GetActor(ctx), from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(menus))
}

// UpdateMenu updates a menu
// @Summary Update a daily menu
// @Tags mess-menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Param request body dto.UpdateMessMenuRequest true "Meal slots"
// @Success 200 {object} dto.APIResponse{data=dto.MessMenuResponse}
// @Router /mess-menu/{id} [put]
func (c *MessMenuController) UpdateMenu(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMessMenuRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	menu, err := c.menuService.UpdateMenu(ctx, middleware.GetActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(menu))
}

// DeleteMenu deletes a menu
// @Summary Delete a daily menu
// @Tags mess-menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /mess-menu/{id} [delete]
func (c *MessMenuController) DeleteMenu(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.menuService.DeleteMenu(ctx, middleware.GetActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Menu deleted successfully"}))
}
