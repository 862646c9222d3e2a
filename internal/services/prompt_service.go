package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/repositories"
	"promptmart/pkg/utils"
)

type PromptServiceInterface interface {
	ListPrompts(ctx context.Context, filter request_models.PromptFilter, viewerID *uuid.UUID) (*response_models.PromptPage, error)
	GetPromptByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*response_models.PromptDetail, error)
	GetSimilarPrompts(ctx context.Context, id uuid.UUID) ([]response_models.SimilarPrompt, error)
	ListSellerPrompts(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]response_models.PromptListItem, error)

	CreatePrompt(ctx context.Context, sellerID uuid.UUID, request request_models.CreatePromptRequest) (*response_models.PromptDetail, error)
	UpdatePrompt(ctx context.Context, id, callerID uuid.UUID, callerRole string, request request_models.UpdatePromptRequest) error
	DeletePrompt(ctx context.Context, id, callerID uuid.UUID, callerRole string) error
}

type PromptService struct {
	promptRepo    repositories.PromptRepository
	categoryRepo  repositories.CategoryRepository
	favoriteRepo  repositories.FavoriteRepository
	embeddingRepo repositories.IPromptEmbeddingRepository
	aiClient      utils.EmbeddingClientInterface
}

func NewPromptService(
	promptRepo repositories.PromptRepository,
	categoryRepo repositories.CategoryRepository,
	favoriteRepo repositories.FavoriteRepository,
	embeddingRepo repositories.IPromptEmbeddingRepository,
	aiClient utils.EmbeddingClientInterface,
) PromptServiceInterface {
	return &PromptService{
		promptRepo:    promptRepo,
		categoryRepo:  categoryRepo,
		favoriteRepo:  favoriteRepo,
		embeddingRepo: embeddingRepo,
		aiClient:      aiClient,
	}
}

// ListPrompts produces one page of the catalog under the given filter, with
// the total match count for pagination and a per-row is_favorited annotation
// when a viewer is authenticated.
func (p *PromptService) ListPrompts(ctx context.Context, filter request_models.PromptFilter, viewerID *uuid.UUID) (*response_models.PromptPage, error) {
	if filter.Page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	filter.Normalize()

	prompts, total, err := p.promptRepo.List(ctx, filter)
	if err != nil {
		log.Printf("Error listing prompts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.PromptListItem, 0, len(prompts))
	for i := range prompts {
		items = append(items, toPromptListItem(&prompts[i]))
	}

	if viewerID != nil && len(items) > 0 {
		if err := p.annotateFavorites(ctx, *viewerID, prompts, items); err != nil {
			return nil, err
		}
	}

	totalPages := int((total + int64(filter.PageSize) - 1) / int64(filter.PageSize))

	return &response_models.PromptPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// GetPromptByID increments the view counter by exactly one per call before
// returning the row.
func (p *PromptService) GetPromptByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (*response_models.PromptDetail, error) {
	prompt, err := p.promptRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrPromptNotFound
	}

	if err := p.promptRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("Error incrementing views for prompt %s: %v", id, err)
	} else {
		prompt.ViewsCount++
	}

	detail := toPromptDetail(prompt)

	if viewerID != nil {
		favorite, err := p.favoriteRepo.GetByUserAndPrompt(ctx, *viewerID, id)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		detail.IsFavorited = favorite != nil
	}

	return detail, nil
}

func (p *PromptService) GetSimilarPrompts(ctx context.Context, id uuid.UUID) ([]response_models.SimilarPrompt, error) {
	prompt, err := p.promptRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrPromptNotFound
	}

	vector, err := p.aiClient.Embed(ctx, prompt.Title+"\n"+prompt.Description)
	if err != nil {
		log.Printf("Error embedding prompt %s: %v", id, err)
		return nil, utils.ErrUpstreamAI
	}

	neighbours, err := p.embeddingRepo.GetSimilarByVector(vector, id.String())
	if err != nil {
		log.Printf("Error querying similar prompts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.SimilarPrompt, 0, len(neighbours))
	for _, n := range neighbours {
		results = append(results, response_models.SimilarPrompt{
			PromptID: n.PromptID,
			Title:    n.Title,
		})
	}
	return results, nil
}

func (p *PromptService) ListSellerPrompts(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]response_models.PromptListItem, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	prompts, err := p.promptRepo.ListBySeller(ctx, sellerID, page, pageSize)
	if err != nil {
		log.Printf("Error listing seller prompts: %v", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.PromptListItem, 0, len(prompts))
	for i := range prompts {
		items = append(items, toPromptListItem(&prompts[i]))
	}
	return items, nil
}

func (p *PromptService) CreatePrompt(ctx context.Context, sellerID uuid.UUID, request request_models.CreatePromptRequest) (*response_models.PromptDetail, error) {
	category, err := p.categoryRepo.GetActiveByID(ctx, request.CategoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	newPrompt := &db_models.Prompt{
		Title:         request.Title,
		Description:   request.Description,
		Content:       request.Content,
		PreviewResult: request.PreviewResult,
		Price:         request.Price,
		IsActive:      true,
		IsFeatured:    false,
		IsSequence:    request.IsSequence,
		SellerID:      sellerID,
		CategoryID:    request.CategoryID,
	}

	id, err := p.promptRepo.Create(ctx, newPrompt)
	if err != nil {
		log.Printf("Error creating prompt: %v", err)
		return nil, utils.ErrDatabaseError
	}

	for _, step := range request.Steps {
		stepContent := step.StepContent
		child := &db_models.Prompt{
			Title:       request.Title,
			Content:     stepContent,
			StepContent: &stepContent,
			OrderIndex:  step.OrderIndex,
			ParentID:    &id,
			Price:       0,
			IsActive:    true,
			SellerID:    sellerID,
			CategoryID:  request.CategoryID,
		}
		if _, err := p.promptRepo.Create(ctx, child); err != nil {
			log.Printf("Error creating prompt step: %v", err)
			return nil, utils.ErrDatabaseError
		}
	}

	p.indexPrompt(ctx, newPrompt)

	created, err := p.promptRepo.GetByID(ctx, id)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}
	return toPromptDetail(created), nil
}

func (p *PromptService) UpdatePrompt(ctx context.Context, id, callerID uuid.UUID, callerRole string, request request_models.UpdatePromptRequest) error {
	prompt, err := p.promptRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if prompt == nil {
		return utils.ErrPromptNotFound
	}

	if prompt.SellerID != callerID && callerRole != string(db_models.RoleAdmin) {
		return utils.ErrPermissionDenied
	}

	if request.Title != nil {
		prompt.Title = *request.Title
	}
	if request.Description != nil {
		prompt.Description = *request.Description
	}
	if request.Content != nil {
		prompt.Content = *request.Content
	}
	if request.PreviewResult != nil {
		prompt.PreviewResult = request.PreviewResult
	}
	if request.Price != nil {
		prompt.Price = *request.Price
	}
	if request.CategoryID != nil {
		category, err := p.categoryRepo.GetActiveByID(ctx, *request.CategoryID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if category == nil {
			return utils.ErrCategoryNotFound
		}
		prompt.CategoryID = *request.CategoryID
	}
	if request.IsActive != nil {
		prompt.IsActive = *request.IsActive
	}
	if request.IsFeatured != nil {
		if callerRole != string(db_models.RoleAdmin) {
			return utils.ErrPermissionDenied
		}
		prompt.IsFeatured = *request.IsFeatured
	}

	if err := p.promptRepo.Update(ctx, prompt); err != nil {
		log.Printf("Error updating prompt: %v", err)
		return utils.ErrDatabaseError
	}

	p.indexPrompt(ctx, prompt)

	return nil
}

// DeletePrompt soft-deletes: the row stays, the listing stops showing it.
func (p *PromptService) DeletePrompt(ctx context.Context, id, callerID uuid.UUID, callerRole string) error {
	prompt, err := p.promptRepo.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if prompt == nil {
		return utils.ErrPromptNotFound
	}

	if prompt.SellerID != callerID && callerRole != string(db_models.RoleAdmin) {
		return utils.ErrPermissionDenied
	}

	if err := p.promptRepo.Deactivate(ctx, id); err != nil {
		log.Printf("Error deactivating prompt: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// indexPrompt refreshes the similarity index. Best effort: a failed embedding
// never fails the write that triggered it.
func (p *PromptService) indexPrompt(ctx context.Context, prompt *db_models.Prompt) {
	vector, err := p.aiClient.Embed(ctx, prompt.Title+"\n"+prompt.Description)
	if err != nil {
		log.Printf("Error embedding prompt %s: %v", prompt.ID, err)
		return
	}

	embedding := db_models.PromptEmbedding{
		PromptID:   prompt.ID.String(),
		Title:      prompt.Title,
		CategoryID: prompt.CategoryID.String(),
		Keywords:   strings.Fields(strings.ToLower(prompt.Title)),
		Embedding:  vector,
	}
	if err := p.embeddingRepo.UpsertEmbedding(embedding); err != nil {
		log.Printf("Error indexing prompt %s: %v", prompt.ID, err)
	}
}

func (p *PromptService) annotateFavorites(ctx context.Context, viewerID uuid.UUID, prompts []db_models.Prompt, items []response_models.PromptListItem) error {
	ids := make([]uuid.UUID, 0, len(prompts))
	for i := range prompts {
		ids = append(ids, prompts[i].ID)
	}

	favorited, err := p.favoriteRepo.FilterFavoritedIDs(ctx, viewerID, ids)
	if err != nil {
		return utils.ErrDatabaseError
	}

	favoritedSet := make(map[uuid.UUID]struct{}, len(favorited))
	for _, id := range favorited {
		favoritedSet[id] = struct{}{}
	}
	for i := range prompts {
		if _, ok := favoritedSet[prompts[i].ID]; ok {
			items[i].IsFavorited = true
		}
	}
	return nil
}

func toPromptListItem(prompt *db_models.Prompt) response_models.PromptListItem {
	return response_models.PromptListItem{
		ID:          prompt.ID.String(),
		Title:       prompt.Title,
		Description: prompt.Description,
		Price:       prompt.Price,
		IsFeatured:  prompt.IsFeatured,
		ViewsCount:  prompt.ViewsCount,
		SalesCount:  prompt.SalesCount,
		Rating:      prompt.Rating,
		CategoryID:  prompt.CategoryID.String(),
		Seller: response_models.PromptSeller{
			Username: prompt.Seller.Username,
			FullName: prompt.Seller.FullName,
		},
		CreatedAt: prompt.CreatedAt,
	}
}

func toPromptDetail(prompt *db_models.Prompt) *response_models.PromptDetail {
	detail := &response_models.PromptDetail{
		PromptListItem: toPromptListItem(prompt),
		Content:        prompt.Content,
		PreviewResult:  prompt.PreviewResult,
		CategoryName:   prompt.Category.Name,
		IsSequence:     prompt.IsSequence,
	}

	for i := range prompt.Steps {
		step := response_models.PromptStep{
			ID:         prompt.Steps[i].ID.String(),
			OrderIndex: prompt.Steps[i].OrderIndex,
		}
		if prompt.Steps[i].StepContent != nil {
			step.StepContent = *prompt.Steps[i].StepContent
		}
		detail.Steps = append(detail.Steps, step)
	}

	return detail
}
