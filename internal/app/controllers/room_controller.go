package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/hostelhub/internal/app/models/dto"
	"github.com/okan/hostelhub/internal/app/services"
	"github.com/okan/hostelhub/internal/middleware"
)

// RoomController handles room management endpoints
type RoomController struct {
	roomService *services.RoomService
	logger      zerolog.Logger
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService *services.RoomService, logger zerolog.Logger) *RoomController {
	return &RoomController{
		roomService: roomService,
		logger:      logger,
	}
}

// parseIDParam reads a positive int64 path parameter; writes the standard
// validation error and returns false when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateRoom creates a room
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin only"
// @Failure 409 {object} dto.ErrorResponse "Room number already exists"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.CreateRoom(ctx, middleware.GetActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("roomNo", room.RoomNo).Msg("Room created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(room))
}

// GetRoom retrieves a room
// @Summary Get a room with its derived status
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.roomService.GetRoom(ctx, middleware.GetActor(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room))
}

// ListRooms lists rooms
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Derived status filter" Enums(vacant, occupied, maintenance)
// @Param type query string false "Room type filter" Enums(single, double, triple)
// @Success 200 {object} dto.APIResponse{data=[]dto.RoomResponse}
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	var filter dto.RoomListFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}

	rooms, err := c.roomService.ListRooms(ctx, middleware.GetActor(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(rooms))
}

// UpdateRoom updates a room
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Room fields"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Failure 409 {object} dto.ErrorResponse "Capacity below current occupancy"
// @Router /rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.UpdateRoom(ctx, middleware.GetActor(ctx), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room))
}

// UpdateRoomStatus toggles the maintenance tag
// @Summary Set or clear the maintenance tag
// @Description Vacant/occupied are derived from occupancy; only the maintenance tag is settable.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param request body dto.UpdateRoomStatusRequest true "Maintenance tag"
// @Success 200 {object} dto.APIResponse{data=dto.RoomResponse}
// @Router /rooms/{id}/status [patch]
func (c *RoomController) UpdateRoomStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.SetRoomMaintenance(ctx, middleware.GetActor(ctx), id, req.UnderMaintenance)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(room))
}

// DeleteRoom deletes a room
// @Summary Delete a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 409 {object} dto.ErrorResponse "Room has assigned students"
// @Router /rooms/{id} [delete]
func (c *RoomController) DeleteRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.roomService.DeleteRoom(ctx, middleware.GetActor(ctx), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("roomId", id).Msg("Room deleted")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.SuccessResponse{Message: "Room deleted successfully"}))
}
