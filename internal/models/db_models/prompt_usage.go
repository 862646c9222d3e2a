package db_models

import "github.com/google/uuid"

// PromptUsage records one attempted invocation of a purchased prompt.
type PromptUsage struct {
	BaseModel
	UsageDate    int64  `gorm:"autoCreateTime"`
	InputText    string `gorm:"type:text"`
	OutputText   string `gorm:"type:text"`
	Success      bool   `gorm:"default:true"`
	ErrorMessage string `gorm:"type:text"`

	UserID   uuid.UUID `gorm:"type:uuid;index;not null"`
	PromptID uuid.UUID `gorm:"type:uuid;index;not null"`

	User   User   `gorm:"foreignKey:UserID"`
	Prompt Prompt `gorm:"foreignKey:PromptID"`
}
