package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptmart/internal/models/request_models"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

type UsageController struct {
	usageService services.UsageServiceInterface
}

func NewUsageController(usageService services.UsageServiceInterface) *UsageController {
	return &UsageController{
		usageService: usageService,
	}
}

// RunPrompt godoc
// @Summary Run a purchased prompt against the configured model
// @Tags Usage
// @Accept json
// @Produce json
// @Param id path string true "Prompt ID"
// @Param request body request_models.RunPromptRequest true "Run payload"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id}/run [post]
func (ct *UsageController) RunPrompt(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.RunPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := ct.usageService.RunPrompt(c.Request.Context(), userID, promptID, req.Input)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Prompt executed successfully")
}

// ListMyUsage godoc
// @Summary List the caller's prompt runs, newest first
// @Tags Usage
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /usage/me [get]
func (ct *UsageController) ListMyUsage(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	usage, err := ct.usageService.ListMyUsage(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, usage, "Usage history fetched successfully")
}
