package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_prompt"`
	PromptID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorite_user_prompt"`

	User   User   `gorm:"foreignKey:UserID"`
	Prompt Prompt `gorm:"foreignKey:PromptID"`
}
