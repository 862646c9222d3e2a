package controllers

import (
	"github.com/gin-gonic/gin"

	"promptmart/internal/models/response_models"
	"promptmart/internal/services"
	"promptmart/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{
		favoriteService: favoriteService,
	}
}

// AddFavorite godoc
// @Summary Favorite a prompt (idempotent)
// @Tags Favorites
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id}/favorite [post]
func (ct *FavoriteController) AddFavorite(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := ct.favoriteService.AddFavorite(c.Request.Context(), userID, promptID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Prompt favorited successfully")
}

// RemoveFavorite godoc
// @Summary Remove a prompt from the caller's favorites
// @Tags Favorites
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id}/favorite [delete]
func (ct *FavoriteController) RemoveFavorite(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := ct.favoriteService.RemoveFavorite(c.Request.Context(), userID, promptID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Favorite removed successfully")
}

// CheckFavorite godoc
// @Summary Check whether the caller has favorited a prompt
// @Tags Favorites
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts/{id}/favorite [get]
func (ct *FavoriteController) CheckFavorite(c *gin.Context) {
	promptID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := callerID(c)
	if !ok {
		return
	}

	favorited, err := ct.favoriteService.IsFavorited(c.Request.Context(), userID, promptID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FavoriteCheckResponse{IsFavorited: favorited}, "Favorite check completed")
}

// ListFavorites godoc
// @Summary List the caller's favorited prompts
// @Tags Favorites
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [get]
func (ct *FavoriteController) ListFavorites(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	page, pageSize, ok := parsePagination(c)
	if !ok {
		return
	}

	prompts, err := ct.favoriteService.ListFavorites(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, prompts, "Favorites fetched successfully")
}
