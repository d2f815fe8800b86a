package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/services"
	"fixitfast/pkg/utils"
)

// AdminController covers complaint oversight (approval queue, assignment,
// direct status changes) and labour management.
type AdminController struct {
	complaintService services.ComplaintServiceInterface
	accountService   services.AccountServiceInterface
}

func NewAdminController(
	complaintService services.ComplaintServiceInterface,
	accountService services.AccountServiceInterface,
) *AdminController {
	return &AdminController{
		complaintService: complaintService,
		accountService:   accountService,
	}
}

func (ac *AdminController) ListComplaints(c *gin.Context) {
	var q request_models.ComplaintListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaints, total, err := ac.complaintService.ListAll(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ComplaintList{
		Complaints: complaints,
		Pagination: response_models.NewPagination(q.Page, q.Limit, total),
	}, "")
}

// ListPendingUpdates is the review queue: complaints with a worker request
// awaiting an admin decision.
func (ac *AdminController) ListPendingUpdates(c *gin.Context) {
	page, limit := pageQuery(c)

	complaints, total, err := ac.complaintService.ListPendingUpdates(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ComplaintList{
		Complaints: complaints,
		Pagination: response_models.NewPagination(page, limit, total),
	}, "")
}

// ApproveStatus decides a pending status request. Approve applies the
// requested status; reject discards it. Either way the slot is cleared and
// the decision lands in the history.
func (ac *AdminController) ApproveStatus(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.ApproveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := ac.complaintService.ResolvePendingRequest(c.Request.Context(), adminID, id, *req.Approve, req.AdminNote)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	msg := "Status update rejected"
	if *req.Approve {
		msg = "Status update approved"
	}
	utils.RespondSuccess(c, complaint, msg)
}

// SetStatus changes a complaint's status directly, bypassing the worker
// request flow.
func (ac *AdminController) SetStatus(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.DirectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	complaint, err := ac.complaintService.SetStatusDirect(c.Request.Context(), adminID, id, req.Status, req.AdminNote)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaint, "Status updated")
}

func (ac *AdminController) Assign(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.AssignComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	labourID, err := uuid.Parse(req.LabourID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid labour id")
		return
	}

	complaint, err := ac.complaintService.Assign(c.Request.Context(), adminID, id, labourID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, complaint, "Complaint assigned")
}

func (ac *AdminController) CreateLabour(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateLabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := ac.accountService.CreateLabour(c.Request.Context(), adminID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, account, "Labour account created")
}

func (ac *AdminController) ListLabours(c *gin.Context) {
	page, limit := pageQuery(c)

	accounts, total, err := ac.accountService.ListLabours(c.Request.Context(), page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.AccountList{
		Accounts:   accounts,
		Pagination: response_models.NewPagination(page, limit, total),
	}, "")
}

func (ac *AdminController) UpdateLabour(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateLabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := ac.accountService.UpdateLabour(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, account, "Labour updated")
}

func (ac *AdminController) DeleteLabour(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ac.accountService.DeleteLabour(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Labour deleted")
}

// UpdateRole changes any account's role. Superadmin only.
func (ac *AdminController) UpdateRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	account, err := ac.accountService.UpdateRole(c.Request.Context(), c.GetString("role"), id, req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, account, "Role updated")
}

func pageQuery(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
