package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"promptmart/internal/models/request_models"
	"promptmart/internal/models/response_models"
)

// capturingPromptService records the filter ListPrompts receives so tests can
// assert what the query binding produced.
type capturingPromptService struct {
	gotFilter request_models.PromptFilter
	calls     int
}

func (s *capturingPromptService) ListPrompts(_ context.Context, filter request_models.PromptFilter, _ *uuid.UUID) (*response_models.PromptPage, error) {
	s.gotFilter = filter
	s.calls++
	return &response_models.PromptPage{Items: []response_models.PromptListItem{}, Page: filter.Page, PageSize: filter.PageSize}, nil
}

func (s *capturingPromptService) GetPromptByID(context.Context, uuid.UUID, *uuid.UUID) (*response_models.PromptDetail, error) {
	return nil, nil
}

func (s *capturingPromptService) GetSimilarPrompts(context.Context, uuid.UUID) ([]response_models.SimilarPrompt, error) {
	return nil, nil
}

func (s *capturingPromptService) ListSellerPrompts(context.Context, uuid.UUID, int, int) ([]response_models.PromptListItem, error) {
	return nil, nil
}

func (s *capturingPromptService) CreatePrompt(context.Context, uuid.UUID, request_models.CreatePromptRequest) (*response_models.PromptDetail, error) {
	return nil, nil
}

func (s *capturingPromptService) UpdatePrompt(context.Context, uuid.UUID, uuid.UUID, string, request_models.UpdatePromptRequest) error {
	return nil
}

func (s *capturingPromptService) DeletePrompt(context.Context, uuid.UUID, uuid.UUID, string) error {
	return nil
}

func newListPromptsRouter(svc *capturingPromptService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/prompts", NewPromptController(svc).ListPrompts)
	return router
}

func TestListPrompts_BindsQueryFilters(t *testing.T) {
	svc := &capturingPromptService{}
	router := newListPromptsRouter(svc)

	categoryID := uuid.New()
	url := "/prompts?category_id=" + categoryID.String() +
		"&min_price=1.5&is_featured=true&sort_by=price&sort_order=asc"
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, url, nil)

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, categoryID.String(), svc.gotFilter.CategoryID)
	if assert.NotNil(t, svc.gotFilter.MinPrice) {
		assert.Equal(t, 1.5, *svc.gotFilter.MinPrice)
	}
	if assert.NotNil(t, svc.gotFilter.IsFeatured) {
		assert.True(t, *svc.gotFilter.IsFeatured)
	}
	assert.Equal(t, "price", svc.gotFilter.SortBy)
	assert.Equal(t, "asc", svc.gotFilter.SortOrder)
	assert.Equal(t, 1, svc.gotFilter.Page)
	assert.Equal(t, 20, svc.gotFilter.PageSize)
}

func TestListPrompts_RejectsMalformedCategoryID(t *testing.T) {
	svc := &capturingPromptService{}
	router := newListPromptsRouter(svc)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/prompts?category_id=not-a-uuid", nil)

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, 0, svc.calls)
}
