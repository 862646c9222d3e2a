package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promptmart/internal/models/db_models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *db_models.Category) (uuid.UUID, error)
	Update(ctx context.Context, category *db_models.Category) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	FindByNameOrSlug(ctx context.Context, name, slug string) (*db_models.Category, error)
	ListActive(ctx context.Context, page, pageSize int) ([]db_models.Category, error)
	CountActivePrompts(ctx context.Context, categoryID uuid.UUID) (int64, error)

	Deactivate(ctx context.Context, id uuid.UUID) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *db_models.Category) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return uuid.Nil, err
	}
	return category.ID, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	result := r.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID fetches a category regardless of its active flag so admin updates
// can reach deactivated rows.
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		First(&category, "id = ? AND is_active = TRUE", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByNameOrSlug(ctx context.Context, name, slug string) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).
		First(&category, "name = ? OR slug = ?", name, slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListActive(ctx context.Context, page, pageSize int) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountActivePrompts(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
		Where("category_id = ? AND is_active = TRUE", categoryID).
		Count(&count).Error
	return count, err
}

func (r *categoryRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Category{}).
		Where("id = ?", id).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
