package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promptmart/internal/models/db_models"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *db_models.Favorite) (uuid.UUID, error)
	Delete(ctx context.Context, userID, promptID uuid.UUID) error

	GetByUserAndPrompt(ctx context.Context, userID, promptID uuid.UUID) (*db_models.Favorite, error)
	ListPromptsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Prompt, error)
	FilterFavoritedIDs(ctx context.Context, userID uuid.UUID, promptIDs []uuid.UUID) ([]uuid.UUID, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *db_models.Favorite) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return uuid.Nil, err
	}
	return favorite.ID, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, promptID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Unscoped().
		Delete(&db_models.Favorite{}, "user_id = ? AND prompt_id = ?", userID, promptID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *favoriteRepository) GetByUserAndPrompt(ctx context.Context, userID, promptID uuid.UUID) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := r.db.WithContext(ctx).
		First(&favorite, "user_id = ? AND prompt_id = ?", userID, promptID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListPromptsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Prompt, error) {
	var prompts []db_models.Prompt
	err := r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
		Preload("Seller").
		Joins("JOIN favorites ON favorites.prompt_id = prompts.id").
		Where("favorites.user_id = ? AND prompts.is_active = TRUE", userID).
		Order("favorites.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// FilterFavoritedIDs returns the subset of promptIDs the user has favorited.
// Powers the per-row is_favorited annotation on catalog pages.
func (r *favoriteRepository) FilterFavoritedIDs(ctx context.Context, userID uuid.UUID, promptIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(promptIDs) == 0 {
		return nil, nil
	}
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ? AND prompt_id IN ?", userID, promptIDs).
		Pluck("prompt_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
