package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/services"
	"fixitfast/pkg/utils"
)

type ComplaintController struct {
	complaintService services.ComplaintServiceInterface
}

func NewComplaintController(complaintService services.ComplaintServiceInterface) *ComplaintController {
	return &ComplaintController{complaintService: complaintService}
}

// Create files a new complaint for the authenticated citizen.
func (cc *ComplaintController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := cc.complaintService.CreateComplaint(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, complaint, "Complaint registered")
}

func (cc *ComplaintController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var q request_models.ComplaintListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaints, total, err := cc.complaintService.ListMine(c.Request.Context(), userID, q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ComplaintList{
		Complaints: complaints,
		Pagination: response_models.NewPagination(q.Page, q.Limit, total),
	}, "")
}

func (cc *ComplaintController) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	complaint, err := cc.complaintService.GetComplaint(c.Request.Context(), userID, c.GetString("role"), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaint, "")
}

func (cc *ComplaintController) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := cc.complaintService.UpdateComplaint(c.Request.Context(), userID, id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaint, "Complaint updated")
}

func (cc *ComplaintController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := cc.complaintService.DeleteComplaint(c.Request.Context(), userID, c.GetString("role"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Complaint deleted")
}

// ToggleLike flips the caller's like on a complaint.
func (cc *ComplaintController) ToggleLike(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	complaint, liked, err := cc.complaintService.ToggleLike(c.Request.Context(), userID, id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{
		"liked":       liked,
		"likes_count": complaint.LikesCount(),
	}, "")
}
