package request_models

import "github.com/google/uuid"

type CreateReviewRequest struct {
	PromptID uuid.UUID `json:"prompt_id" binding:"required"`
	Rating   float64   `json:"rating" binding:"required,min=1,max=5"`
	Comment  string    `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *float64 `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string  `json:"comment"`
}
