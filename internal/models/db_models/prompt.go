package db_models

import "github.com/google/uuid"

type Prompt struct {
	BaseModel
	Title         string  `gorm:"index;not null"`
	Description   string  `gorm:"type:text"`
	Content       string  `gorm:"type:text;not null"`
	PreviewResult *string `gorm:"type:text"`
	Price         float64 `gorm:"not null"`
	IsActive      bool    `gorm:"default:true;not null"`
	IsFeatured    bool    `gorm:"default:false;not null"`
	ViewsCount    int     `gorm:"default:0;not null"`
	SalesCount    int     `gorm:"default:0;not null"`
	Rating        float64 `gorm:"default:0;not null"`

	// Fields for multi-step prompt sequences. A step row points at its
	// parent and carries its own content plus a position in the sequence.
	IsSequence  bool       `gorm:"default:false"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index"`
	OrderIndex  int        `gorm:"default:0"`
	StepContent *string    `gorm:"type:text"`

	SellerID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null"`

	Seller   User     `gorm:"foreignKey:SellerID"`
	Category Category `gorm:"foreignKey:CategoryID"`
	Steps    []Prompt `gorm:"foreignKey:ParentID"`
}
