package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type PromptEmbedding struct {
	PromptID   string `gorm:"primaryKey;column:prompt_id"`
	Title      string
	CategoryID string
	Keywords   pq.StringArray  `gorm:"type:text[]"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}
