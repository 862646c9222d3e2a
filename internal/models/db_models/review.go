package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	Rating  float64 `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment string  `gorm:"type:text"`

	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_prompt"`
	PromptID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_review_user_prompt"`

	User   User   `gorm:"foreignKey:UserID"`
	Prompt Prompt `gorm:"foreignKey:PromptID"`
}
