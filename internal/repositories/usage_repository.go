package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promptmart/internal/models/db_models"
)

type UsageRepositoryInterface interface {
	CreateUsage(ctx context.Context, usage *db_models.PromptUsage) error
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.PromptUsage, error)
}

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) CreateUsage(ctx context.Context, usage *db_models.PromptUsage) error {
	return r.db.WithContext(ctx).Create(usage).Error
}

func (r *UsageRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.PromptUsage, error) {
	var usages []db_models.PromptUsage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&usages).Error
	return usages, err
}
