package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/services"
	"fixitfast/pkg/utils"
)

type AttendanceController struct {
	attendanceService services.AttendanceServiceInterface
}

func NewAttendanceController(attendanceService services.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// Record logs a check-in/out (or other entry) for the calling labour.
func (ac *AttendanceController) Record(c *gin.Context) {
	labourID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := ac.attendanceService.Record(c.Request.Context(), labourID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, entry, "Attendance recorded")
}

func (ac *AttendanceController) Status(c *gin.Context) {
	labourID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := ac.attendanceService.CurrentStatus(c.Request.Context(), labourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, status, "")
}

func (ac *AttendanceController) ListMine(c *gin.Context) {
	labourID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q request_models.AttendanceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, total, err := ac.attendanceService.ListForLabour(c.Request.Context(), labourID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.AttendanceList{
		Entries:    entries,
		Pagination: response_models.NewPagination(q.Page, q.Limit, total),
	}, "")
}

func (ac *AttendanceController) Summary(c *gin.Context) {
	labourID, ok := currentUserID(c)
	if !ok {
		return
	}
	ac.respondSummary(c, labourID)
}

// AdminList shows a labour's attendance log to an admin.
func (ac *AttendanceController) AdminList(c *gin.Context) {
	labourID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var q request_models.AttendanceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, total, err := ac.attendanceService.ListForLabour(c.Request.Context(), labourID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.AttendanceList{
		Entries:    entries,
		Pagination: response_models.NewPagination(q.Page, q.Limit, total),
	}, "")
}

// AdminCorrect appends an admin-recorded entry (a correction) to a labour's
// attendance log.
func (ac *AttendanceController) AdminCorrect(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	labourID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.CorrectAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := ac.attendanceService.RecordCorrection(c.Request.Context(), adminID, labourID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, entry, "Attendance correction recorded")
}

func (ac *AttendanceController) AdminSummary(c *gin.Context) {
	labourID, ok := pathID(c, "id")
	if !ok {
		return
	}
	ac.respondSummary(c, labourID)
}

func (ac *AttendanceController) respondSummary(c *gin.Context, labourID uuid.UUID) {
	var q request_models.AttendanceSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := ac.attendanceService.MonthlySummary(c.Request.Context(), labourID, q.Month, q.Year)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "")
}
