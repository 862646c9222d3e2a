package db_models

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	BaseModel
	Email         string   `gorm:"uniqueIndex;not null"`
	Username      string   `gorm:"uniqueIndex;not null"`
	PasswordHash  string   `gorm:"not null"`
	FullName      string   `gorm:"not null"`
	Role          UserRole `gorm:"type:varchar(16);default:'user';not null"`
	IsActive      bool     `gorm:"default:true;not null"`
	IsVerified    bool     `gorm:"default:false"`
	WalletAddress *string

	Prompts   []Prompt   `gorm:"foreignKey:SellerID"`
	Orders    []Order    `gorm:"foreignKey:UserID"`
	Reviews   []Review   `gorm:"foreignKey:UserID"`
	Favorites []Favorite `gorm:"foreignKey:UserID"`
}
