package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/repositories"
	"promptmart/pkg/utils"
)

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, userID, promptID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, promptID uuid.UUID) error
	IsFavorited(ctx context.Context, userID, promptID uuid.UUID) (bool, error)
	ListFavorites(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.PromptListItem, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
	promptRepo   repositories.PromptRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository, promptRepo repositories.PromptRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		promptRepo:   promptRepo,
	}
}

// AddFavorite is idempotent: favoriting an already-favorited prompt keeps the
// existing row.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, promptID uuid.UUID) error {
	prompt, err := s.promptRepo.GetActiveByID(ctx, promptID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if prompt == nil {
		return utils.ErrPromptNotFound
	}

	existing, err := s.favoriteRepo.GetByUserAndPrompt(ctx, userID, promptID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return nil
	}

	favorite := &db_models.Favorite{
		UserID:   userID,
		PromptID: promptID,
	}
	if _, err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		log.Printf("Error creating favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, promptID uuid.UUID) error {
	existing, err := s.favoriteRepo.GetByUserAndPrompt(ctx, userID, promptID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrFavoriteNotFound
	}

	if err := s.favoriteRepo.Delete(ctx, userID, promptID); err != nil {
		log.Printf("Error removing favorite: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FavoriteService) IsFavorited(ctx context.Context, userID, promptID uuid.UUID) (bool, error) {
	favorite, err := s.favoriteRepo.GetByUserAndPrompt(ctx, userID, promptID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return favorite != nil, nil
}

func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.PromptListItem, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	prompts, err := s.favoriteRepo.ListPromptsByUser(ctx, userID, page, pageSize)
	if err != nil {
		log.Printf("Error listing favorites: %v", err)
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.PromptListItem, 0, len(prompts))
	for i := range prompts {
		item := toPromptListItem(&prompts[i])
		item.IsFavorited = true
		items = append(items, item)
	}
	return items, nil
}
