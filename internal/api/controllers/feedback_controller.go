package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fixitfast/internal/models/request_models"
	"fixitfast/internal/models/response_models"
	"fixitfast/internal/services"
	"fixitfast/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Submit files feedback for a resolved complaint owned by the caller.
func (fc *FeedbackController) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	feedback, err := fc.feedbackService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, feedback, "Feedback submitted")
}

func (fc *FeedbackController) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page, limit := pageQuery(c)

	items, total, err := fc.feedbackService.ListMine(c.Request.Context(), userID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.FeedbackList{
		Feedback:   items,
		Pagination: response_models.NewPagination(page, limit, total),
	}, "")
}

// ListForComplaint returns a complaint's feedback plus aggregate stats.
// Admins see hidden entries too; owners only the visible ones.
func (fc *FeedbackController) ListForComplaint(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	complaintID, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, limit := pageQuery(c)

	items, total, stats, err := fc.feedbackService.ListForComplaint(c.Request.Context(), userID, c.GetString("role"), complaintID, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{
		"feedback":   items,
		"pagination": response_models.NewPagination(page, limit, total),
		"stats":      stats,
	}, "")
}

// ListAll is the admin moderation queue, optionally filtered by ?visible=.
func (fc *FeedbackController) ListAll(c *gin.Context) {
	page, limit := pageQuery(c)

	var visible *bool
	if raw := c.Query("visible"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid visible filter")
			return
		}
		visible = &v
	}

	items, total, err := fc.feedbackService.ListAll(c.Request.Context(), visible, page, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.FeedbackList{
		Feedback:   items,
		Pagination: response_models.NewPagination(page, limit, total),
	}, "")
}

func (fc *FeedbackController) Moderate(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req request_models.ModerateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	feedback, err := fc.feedbackService.Moderate(c.Request.Context(), adminID, id, *req.Visible, req.Note)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, feedback, "Feedback moderated")
}

func (fc *FeedbackController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := fc.feedbackService.Delete(c.Request.Context(), userID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Feedback deleted")
}
