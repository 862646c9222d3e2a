package request_models

import "github.com/google/uuid"

// Columns the catalog listing may sort on.
var promptSortColumns = map[string]bool{
	"price":       true,
	"rating":      true,
	"sales_count": true,
	"views_count": true,
	"created_at":  true,
	"title":       true,
}

// PromptFilter collects the catalog listing query parameters. All filters
// combine conjunctively; zero values mean "not set". CategoryID binds as a
// string since query binding cannot fill a uuid value; the format check
// lives in the binding tag.
type PromptFilter struct {
	CategoryID string   `form:"category_id" binding:"omitempty,uuid"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	IsFeatured *bool    `form:"is_featured"`
	Search     string   `form:"search"`
	SortBy     string   `form:"sort_by"`
	SortOrder  string   `form:"sort_order"`
	Page       int      `form:"page,default=1"`
	PageSize   int      `form:"page_size,default=20"`
}

// Normalize clamps SortBy to the whitelisted columns and SortOrder to
// asc/desc. Unknown or omitted sorts fall back to created_at descending.
// Idempotent, so both the service and the repository may call it.
func (f *PromptFilter) Normalize() {
	if !promptSortColumns[f.SortBy] {
		f.SortBy = "created_at"
		f.SortOrder = "desc"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
}

type CreatePromptRequest struct {
	Title         string    `json:"title" binding:"required,min=3,max=200"`
	Description   string    `json:"description"`
	Content       string    `json:"content" binding:"required"`
	PreviewResult *string   `json:"preview_result"`
	Price         float64   `json:"price" binding:"required,gt=0"`
	CategoryID    uuid.UUID `json:"category_id" binding:"required"`

	IsSequence bool                `json:"is_sequence"`
	Steps      []PromptStepRequest `json:"steps"`
}

type PromptStepRequest struct {
	OrderIndex  int    `json:"order_index"`
	StepContent string `json:"step_content" binding:"required"`
}

type UpdatePromptRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Content       *string    `json:"content"`
	PreviewResult *string    `json:"preview_result"`
	Price         *float64   `json:"price"`
	CategoryID    *uuid.UUID `json:"category_id"`
	IsActive      *bool      `json:"is_active"`
	IsFeatured    *bool      `json:"is_featured"`
}

type RunPromptRequest struct {
	Input string `json:"input" binding:"required"`
}
