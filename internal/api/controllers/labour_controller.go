package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/services"
	"fixitfast/pkg/utils"
)

// LabourController exposes the field-worker surface: the assigned queue and
// the status-change request that opens the approval round-trip.
type LabourController struct {
	complaintService services.ComplaintServiceInterface
}

func NewLabourController(complaintService services.ComplaintServiceInterface) *LabourController {
	return &LabourController{complaintService: complaintService}
}

func (lc *LabourController) ListAssigned(c *gin.Context) {
	labourID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q request_models.ComplaintListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaints, total, err := lc.complaintService.ListAssigned(c.Request.Context(), labourID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ComplaintList{
		Complaints: complaints,
		Pagination: response_models.NewPagination(q.Page, q.Limit, total),
	}, "")
}

// RequestStatus proposes a status change on an assigned complaint. The change
// does not apply until an admin approves it.
func (lc *LabourController) RequestStatus(c *gin.Context) {
	labourID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.RequestStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := lc.complaintService.RequestStatusChange(c.Request.Context(), labourID, id, req.Status, req.Remarks)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaint, "Status update submitted for review")
}
