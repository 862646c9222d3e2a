package db_models

type Category struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null"`
	Slug        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"default:true;not null"`

	Prompts []Prompt `gorm:"foreignKey:CategoryID"`
}
