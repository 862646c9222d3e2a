package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/repositories"
	"promptmart/pkg/utils"
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, page, pageSize int) ([]response_models.CategoryResponse, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, request request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) ListCategories(ctx context.Context, page, pageSize int) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListActive(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for i := range categories {
		count, err := s.categoryRepo.CountActivePrompts(ctx, categories[i].ID)
		if err != nil {
			log.Printf("Error counting prompts for category %s: %v", categories[i].ID, err)
			return nil, utils.ErrDatabaseError
		}
		responses = append(responses, toCategoryResponse(&categories[i], count))
	}

	return responses, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountActivePrompts(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toCategoryResponse(category, count)
	return &response, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	existing, err := s.categoryRepo.FindByNameOrSlug(ctx, request.Name, request.Slug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrSlugAlreadyExists
	}

	category := &db_models.Category{
		Name:        request.Name,
		Slug:        request.Slug,
		Description: request.Description,
		IsActive:    true,
	}

	if _, err := s.categoryRepo.Create(ctx, category); err != nil {
		log.Printf("Error creating category: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := toCategoryResponse(category, 0)
	return &response, nil
}

// UpdateCategory loads the row regardless of its active flag so admins can
// reactivate a deactivated category through IsActive.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, request request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	if request.Name != nil {
		category.Name = *request.Name
	}
	if request.Slug != nil {
		category.Slug = *request.Slug
	}
	if request.Description != nil {
		category.Description = *request.Description
	}
	if request.IsActive != nil {
		category.IsActive = *request.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		log.Printf("Error updating category: %v", err)
		return nil, utils.ErrDatabaseError
	}

	count, err := s.categoryRepo.CountActivePrompts(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	response := toCategoryResponse(category, count)
	return &response, nil
}

// DeleteCategory flips the active flag; rows are never removed once in use.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetActiveByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if category == nil {
		return utils.ErrCategoryNotFound
	}

	if err := s.categoryRepo.Deactivate(ctx, id); err != nil {
		log.Printf("Error deactivating category: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toCategoryResponse(category *db_models.Category, promptsCount int64) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		PromptsCount: promptsCount,
	}
}
