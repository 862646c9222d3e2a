package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *db_models.Prompt) (uuid.UUID, error)
	Update(ctx context.Context, prompt *db_models.Prompt) error

	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Prompt, error)
	GetActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Prompt, error)
	List(ctx context.Context, filter request_models.PromptFilter) ([]db_models.Prompt, int64, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]db_models.Prompt, error)

	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementSales(ctx context.Context, id uuid.UUID) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *db_models.Prompt) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(prompt).Error; err != nil {
		return uuid.Nil, err
	}
	return prompt.ID, nil
}

func (r *promptRepository) Update(ctx context.Context, prompt *db_models.Prompt) error {
	result := r.db.WithContext(ctx).Save(prompt)
	if result.Error != nil {
		return fmt.Errorf("failed to update prompt: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *promptRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Prompt, error) {
	var prompt db_models.Prompt
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&prompt, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Prompt, error) {
	var prompt db_models.Prompt
	err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&prompt, "id = ? AND is_active = TRUE", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

// List builds the filtered, searched, sorted, paginated catalog query and
// returns the page plus the total match count. Only active rows and top-level
// prompts (not sequence steps) participate.
func (r *promptRepository) List(ctx context.Context, filter request_models.PromptFilter) ([]db_models.Prompt, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
		Where("is_active = TRUE").
		Where("parent_id IS NULL")

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR description ILIKE ? OR content ILIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	filter.Normalize()
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	var prompts []db_models.Prompt
	err := query.
		Preload("Seller").
		// id tiebreak keeps pages deterministic and disjoint across calls
		Order(fmt.Sprintf("%s %s, id ASC", filter.SortBy, direction)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&prompts).Error
	if err != nil {
		return nil, 0, err
	}

	return prompts, total, nil
}

func (r *promptRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]db_models.Prompt, error) {
	var prompts []db_models.Prompt
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("seller_id = ? AND parent_id IS NULL", sellerID).
		Order("created_at DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

// IncrementViews is a single atomic update so concurrent fetches never lose
// a count.
func (r *promptRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *promptRepository) IncrementSales(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
		Where("id = ?", id).
		UpdateColumn("sales_count", gorm.Expr("sales_count + 1")).Error
}

func (r *promptRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
		Where("id = ?", id).
		UpdateColumn("rating", rating).Error
}

func (r *promptRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Prompt{}).
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
