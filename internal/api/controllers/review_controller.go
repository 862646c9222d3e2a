package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptmart/internal/models/request_models"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview godoc
// @Summary Review a purchased prompt
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews [post]
func (ct *ReviewController) CreateReview(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := ct.reviewService.CreateReview(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review created successfully")
}

// UpdateReview godoc
// @Summary Update the caller's review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body request_models.UpdateReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [put]
func (ct *ReviewController) UpdateReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := ct.reviewService.UpdateReview(c.Request.Context(), reviewID, caller, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review updated successfully")
}

// DeleteReview godoc
// @Summary Delete the caller's review
// @Tags Reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (ct *ReviewController) DeleteReview(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := ct.reviewService.DeleteReview(c.Request.Context(), reviewID, caller); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review deleted successfully")
}

// ListPromptReviews godoc
// @Summary List reviews for a prompt, newest first
// @Tags Reviews
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Router /prompts/{id}/reviews [get]
func (ct *ReviewController) ListPromptReviews(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	reviews, err := ct.reviewService.ListPromptReviews(c.Request.Context(), promptID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
