package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/repositories"
	"promptmart/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*response_models.AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserSummary, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserSummary, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, request request_models.ChangePasswordRequest) error
	ListUsers(ctx context.Context, role string, page, pageSize int) ([]response_models.UserSummary, error)
	DeactivateUser(ctx context.Context, userID uuid.UUID) error
}

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthServiceInterface {
	return &AuthService{
		userRepo: userRepo,
	}
}

func (a *AuthService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	existing, err = a.userRepo.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	role := db_models.RoleUser
	if request.Role == string(db_models.RoleSeller) {
		role = db_models.RoleSeller
	}

	newUser := &db_models.User{
		Email:        request.Email,
		Username:     request.Username,
		FullName:     request.FullName,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if _, err := a.userRepo.Create(ctx, newUser); err != nil {
		log.Printf("Error creating user: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return a.issueTokens(newUser)
}

func (a *AuthService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {

	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	return a.issueTokens(user)
}

// Refresh validates a refresh token and issues a fresh pair. The email/role
// snapshot on the new access token comes from the current user row, not from
// the old token.
func (a *AuthService) Refresh(ctx context.Context, refreshToken string) (*response_models.AuthResponse, error) {

	claims, err := utils.ValidateToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDisabled
	}

	return a.issueTokens(user)
}

func (a *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserSummary, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	summary := toUserSummary(user)
	return &summary, nil
}

func (a *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserSummary, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.FullName != nil {
		user.FullName = *request.FullName
	}
	if request.WalletAddress != nil {
		user.WalletAddress = request.WalletAddress
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating user: %v", err)
		return nil, utils.ErrDatabaseError
	}

	summary := toUserSummary(user)
	return &summary, nil
}

func (a *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, request request_models.ChangePasswordRequest) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.CurrentPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	user.PasswordHash = hashed

	if err := a.userRepo.Update(ctx, user); err != nil {
		log.Printf("Error updating password: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AuthService) ListUsers(ctx context.Context, role string, page, pageSize int) ([]response_models.UserSummary, error) {
	users, err := a.userRepo.List(ctx, role, page, pageSize)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, toUserSummary(&users[i]))
	}
	return summaries, nil
}

func (a *AuthService) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	if err := a.userRepo.Deactivate(ctx, userID); err != nil {
		return utils.ErrUserNotFound
	}
	return nil
}

func (a *AuthService) issueTokens(user *db_models.User) (*response_models.AuthResponse, error) {
	pair, err := utils.CreateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Printf("Error issuing tokens: %v", err)
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    pair.ExpiresIn,
		User:         toUserSummary(user),
	}, nil
}

func toUserSummary(user *db_models.User) response_models.UserSummary {
	return response_models.UserSummary{
		ID:            user.ID.String(),
		Email:         user.Email,
		Username:      user.Username,
		FullName:      user.FullName,
		Role:          string(user.Role),
		IsActive:      user.IsActive,
		IsVerified:    user.IsVerified,
		WalletAddress: user.WalletAddress,
	}
}
