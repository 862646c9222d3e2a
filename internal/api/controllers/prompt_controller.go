package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptmart/internal/models/request_models"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface) *PromptController {
	return &PromptController{
		promptService: promptService,
	}
}

// ListPrompts godoc
// @Summary List active prompts with filters, sorting and pagination
// @Tags Prompts
// @Produce json
// @Param category_id query string false "Category ID"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param is_featured query boolean false "Featured only"
// @Param search query string false "Search in title, description and content"
// @Param sort_by query string false "Sort column" Enums(price, rating, sales_count, views_count, created_at, title)
// @Param sort_order query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /prompts [get]
func (ct *PromptController) ListPrompts(c *gin.Context) {
	var filter request_models.PromptFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	page, err := ct.promptService.ListPrompts(c.Request.Context(), filter, viewerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, page, "Prompts fetched successfully")
}

// GetPrompt godoc
// @Summary Get prompt detail and bump its view counter
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /prompts/{id} [get]
func (ct *PromptController) GetPrompt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := ct.promptService.GetPromptByID(c.Request.Context(), id, viewerID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Prompt fetched successfully")
}

// GetSimilarPrompts godoc
// @Summary List prompts similar to the given one
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Router /prompts/{id}/similar [get]
func (ct *PromptController) GetSimilarPrompts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	similar, err := ct.promptService.GetSimilarPrompts(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "Similar prompts fetched successfully")
}

// ListMyPrompts godoc
// @Summary List the caller's own prompts, inactive ones included
// @Tags Prompts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/me [get]
func (ct *PromptController) ListMyPrompts(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	prompts, err := ct.promptService.ListSellerPrompts(c.Request.Context(), sellerID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompts, "Prompts fetched successfully")
}

// CreatePrompt godoc
// @Summary Create a prompt (seller)
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePromptRequest true "Prompt payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts [post]
func (ct *PromptController) CreatePrompt(c *gin.Context) {
	sellerID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.CreatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := ct.promptService.CreatePrompt(c.Request.Context(), sellerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Prompt created successfully")
}

// UpdatePrompt godoc
// @Summary Update a prompt (owner or admin)
// @Tags Prompts
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body request_models.UpdatePromptRequest true "Prompt payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id} [put]
func (ct *PromptController) UpdatePrompt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdatePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ct.promptService.UpdatePrompt(c.Request.Context(), id, caller, c.GetString("role"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Prompt updated successfully")
}

// DeletePrompt godoc
// @Summary Deactivate a prompt (owner or admin)
// @Tags Prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id} [delete]
func (ct *PromptController) DeletePrompt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	caller, ok := callerID(c)
	if !ok {
		return
	}

	if err := ct.promptService.DeletePrompt(c.Request.Context(), id, caller, c.GetString("role")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Prompt deleted successfully")
}
