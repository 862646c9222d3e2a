package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"promptmart/internal/models/db_models"
)

type IPromptEmbeddingRepository interface {
	UpsertEmbedding(embedding db_models.PromptEmbedding) error
	GetSimilarByVector(vector pgvector.Vector, excludeID string) ([]db_models.PromptEmbedding, error)
}

type PromptEmbeddingRepository struct {
	db *gorm.DB
}

func NewPromptEmbeddingRepository(db *gorm.DB) IPromptEmbeddingRepository {
	return &PromptEmbeddingRepository{
		db: db,
	}
}

func (p *PromptEmbeddingRepository) UpsertEmbedding(embedding db_models.PromptEmbedding) error {
	return p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "prompt_id"}},
		UpdateAll: true,
	}).Create(&embedding).Error
}

func (p *PromptEmbeddingRepository) GetSimilarByVector(vector pgvector.Vector, excludeID string) ([]db_models.PromptEmbedding, error) {
	var results []db_models.PromptEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM prompt_embeddings
        WHERE prompt_id <> $2
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 15
    `

	err := p.db.Raw(query, vecStr, excludeID).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}
