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

// AttendanceController handles attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// MarkAttendance marks a student's attendance for a day
// @Summary Mark attendance
// @Description One record per student per day; a duplicate mark returns 409.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance record"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceResponse}
// @Failure 409 {object} dto.ErrorResponse "Already marked for this date"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.attendanceService.MarkAttendance(ctx, middleware.GetActor(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// ListAttendance lists attendance records
// @Summary List attendance records
// @Description Students always get their own records regardless of filters.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student filter (staff only)"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param status query string false "Status filter" Enums(present, absent, leave)
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.AttendanceResponse}}
// @Router /attendance [get]
func (c *AttendanceController) ListAttendance(ctx *gin.Context) {
	var filter dto.AttendanceListFilter
	if !middleware.BindQuery(ctx, &filter) {
		return
	}
	filter.Page, filter.Size = helpers.ParsePaginationParams(ctx)

	records, total, err := c.attendanceService.ListAttendance(ctx, middleware.GetActor(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{
		Items:      records,
		Pagination: dto.NewPaginationInfo(total, filter.Page, filter.Size),
	}))
}

// UpdateAttendance corrects an attendance record
// @Summary Correct an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance ID"
// @Param request body dto.UpdateAttendanceRequest true "Corrected status"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceResponse}
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.attendanceService.UpdateAttendance(ctx, middleware.GetActor(ctx), id, req.Status, req.Notes)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// GetSummary returns a student's attendance summary
// @Summary Attendance summary over a date range
// @Description Defaults to the last 30 days. Students get their own summary only.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Student (staff only; required for staff)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceSummaryResponse}
// @Router /attendance/summary [get]
func (c *AttendanceController) GetSummary(ctx *gin.Context) {
	var query struct {
		StudentID int64  `form:"student_id"`
		From      string `form:"from"`
		To        string `form:"to"`
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

	summary, err := c.attendanceService.GetSummary(ctx, middleware.GetActor(ctx), query.StudentID, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(summary))
}
