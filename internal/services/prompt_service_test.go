package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/pkg/utils"
)

func newPromptService(prompts *MockPromptRepository, categories *MockCategoryRepository, favorites *MockFavoriteRepository, embeddings *MockEmbeddingRepository, ai *MockEmbeddingClient) PromptServiceInterface {
	if categories == nil {
		categories = new(MockCategoryRepository)
	}
	if favorites == nil {
		favorites = new(MockFavoriteRepository)
	}
	if embeddings == nil {
		embeddings = new(MockEmbeddingRepository)
	}
	if ai == nil {
		ai = new(MockEmbeddingClient)
	}
	return NewPromptService(prompts, categories, favorites, embeddings, ai)
}

func TestPromptService_ListPrompts_Validation(t *testing.T) {
	tests := []struct {
		name    string
		filter  request_models.PromptFilter
		wantErr error
	}{
		{"zero page", request_models.PromptFilter{Page: 0, PageSize: 20}, utils.ErrInvalidPage},
		{"negative page", request_models.PromptFilter{Page: -1, PageSize: 20}, utils.ErrInvalidPage},
		{"zero page size", request_models.PromptFilter{Page: 1, PageSize: 0}, utils.ErrInvalidPageSize},
		{"oversized page", request_models.PromptFilter{Page: 1, PageSize: 101}, utils.ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newPromptService(new(MockPromptRepository), nil, nil, nil, nil)
			_, err := service.ListPrompts(context.Background(), tt.filter, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPromptService_ListPrompts_Pagination(t *testing.T) {
	prompts := new(MockPromptRepository)
	rows := []db_models.Prompt{*activePrompt(uuid.New(), 1), *activePrompt(uuid.New(), 2)}
	filter := request_models.PromptFilter{Page: 2, PageSize: 2}
	normalized := filter
	normalized.Normalize()
	prompts.On("List", mock.Anything, normalized).Return(rows, int64(5), nil)

	service := newPromptService(prompts, nil, nil, nil, nil)
	page, err := service.ListPrompts(context.Background(), filter, nil)

	assert.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPromptService_ListPrompts_SortNormalization(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		wantBy    string
		wantOrder string
	}{
		{"omitted sort falls back", "", "", "created_at", "desc"},
		{"unknown column falls back", "password_hash", "asc", "created_at", "desc"},
		{"unknown direction falls back", "price", "sideways", "price", "desc"},
		{"valid sort passes through", "price", "asc", "price", "asc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts := new(MockPromptRepository)
			prompts.On("List", mock.Anything, mock.MatchedBy(func(f request_models.PromptFilter) bool {
				return f.SortBy == tt.wantBy && f.SortOrder == tt.wantOrder
			})).Return([]db_models.Prompt{}, int64(0), nil)

			service := newPromptService(prompts, nil, nil, nil, nil)
			filter := request_models.PromptFilter{Page: 1, PageSize: 20, SortBy: tt.sortBy, SortOrder: tt.sortOrder}
			_, err := service.ListPrompts(context.Background(), filter, nil)

			assert.NoError(t, err)
			prompts.AssertExpectations(t)
		})
	}
}

func TestPromptService_ListPrompts_FavoriteAnnotation(t *testing.T) {
	viewer := uuid.New()
	favoritedID := uuid.New()
	otherID := uuid.New()
	rows := []db_models.Prompt{*activePrompt(favoritedID, 1), *activePrompt(otherID, 2)}
	filter := request_models.PromptFilter{Page: 1, PageSize: 20}
	normalized := filter
	normalized.Normalize()

	prompts := new(MockPromptRepository)
	prompts.On("List", mock.Anything, normalized).Return(rows, int64(2), nil)
	favorites := new(MockFavoriteRepository)
	favorites.On("FilterFavoritedIDs", mock.Anything, viewer, []uuid.UUID{favoritedID, otherID}).
		Return([]uuid.UUID{favoritedID}, nil)

	service := newPromptService(prompts, nil, favorites, nil, nil)
	page, err := service.ListPrompts(context.Background(), filter, &viewer)

	assert.NoError(t, err)
	assert.True(t, page.Items[0].IsFavorited)
	assert.False(t, page.Items[1].IsFavorited)
	favorites.AssertExpectations(t)
}

func TestPromptService_GetPromptByID(t *testing.T) {
	promptID := uuid.New()

	t.Run("unknown prompt", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		prompts.On("GetActiveByID", mock.Anything, promptID).Return(nil, nil)
		service := newPromptService(prompts, nil, nil, nil, nil)

		_, err := service.GetPromptByID(context.Background(), promptID, nil)
		assert.ErrorIs(t, err, utils.ErrPromptNotFound)
	})

	t.Run("view counted once per call", func(t *testing.T) {
		prompt := activePrompt(promptID, 9.99)
		prompt.ViewsCount = 7

		prompts := new(MockPromptRepository)
		prompts.On("GetActiveByID", mock.Anything, promptID).Return(prompt, nil)
		prompts.On("IncrementViews", mock.Anything, promptID).Return(nil)
		service := newPromptService(prompts, nil, nil, nil, nil)

		detail, err := service.GetPromptByID(context.Background(), promptID, nil)
		assert.NoError(t, err)
		assert.Equal(t, 8, detail.ViewsCount)
		prompts.AssertNumberOfCalls(t, "IncrementViews", 1)
	})
}

func TestPromptService_GetSimilarPrompts(t *testing.T) {
	promptID := uuid.New()
	prompt := activePrompt(promptID, 9.99)
	prompt.Description = "helps with tests"

	vector := pgvector.NewVector([]float32{0.1, 0.2})

	prompts := new(MockPromptRepository)
	prompts.On("GetActiveByID", mock.Anything, promptID).Return(prompt, nil)
	ai := new(MockEmbeddingClient)
	ai.On("Embed", mock.Anything, "Test prompt\nhelps with tests").Return(vector, nil)
	embeddings := new(MockEmbeddingRepository)
	embeddings.On("GetSimilarByVector", vector, promptID.String()).Return([]db_models.PromptEmbedding{
		{PromptID: "aaa", Title: "Neighbour"},
	}, nil)

	service := newPromptService(prompts, nil, nil, embeddings, ai)
	similar, err := service.GetSimilarPrompts(context.Background(), promptID)

	assert.NoError(t, err)
	assert.Len(t, similar, 1)
	assert.Equal(t, "Neighbour", similar[0].Title)
}

func TestPromptService_UpdatePrompt_Ownership(t *testing.T) {
	promptID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	owned := func() *db_models.Prompt {
		p := activePrompt(promptID, 9.99)
		p.SellerID = ownerID
		return p
	}

	newTitle := "Renamed"

	t.Run("stranger denied", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		prompts.On("GetByID", mock.Anything, promptID).Return(owned(), nil)
		service := newPromptService(prompts, nil, nil, nil, nil)

		err := service.UpdatePrompt(context.Background(), promptID, strangerID, "seller", request_models.UpdatePromptRequest{Title: &newTitle})
		assert.ErrorIs(t, err, utils.ErrPermissionDenied)
	})

	t.Run("admin bypasses ownership", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		prompts.On("GetByID", mock.Anything, promptID).Return(owned(), nil)
		prompts.On("Update", mock.Anything, mock.MatchedBy(func(p *db_models.Prompt) bool {
			return p.Title == "Renamed"
		})).Return(nil)
		// reindexing is best effort, a failed embedding must not fail the update
		ai := new(MockEmbeddingClient)
		ai.On("Embed", mock.Anything, mock.Anything).Return(pgvector.Vector{}, errors.New("provider offline"))
		service := newPromptService(prompts, nil, nil, nil, ai)

		err := service.UpdatePrompt(context.Background(), promptID, strangerID, "admin", request_models.UpdatePromptRequest{Title: &newTitle})
		assert.NoError(t, err)
		prompts.AssertExpectations(t)
	})
}
