package utils

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPromptNotFound   = errors.New("prompt not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFavoriteNotFound = errors.New("favorite not found")

	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrSlugAlreadyExists     = errors.New("category slug already exists")
	ErrReviewAlreadyExists   = errors.New("review already exists for this prompt")
	ErrPaymentAlreadyExists  = errors.New("order already has a payment")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPurchaseRequired   = errors.New("purchase required")

	ErrInvalidPage              = errors.New("invalid page parameter")
	ErrInvalidPageSize          = errors.New("invalid page size parameter")
	ErrAmountMismatch           = errors.New("amount does not match prompt price")
	ErrTokenAmountRequired      = errors.New("token amount required for token orders")
	ErrInvalidStatusTransition  = errors.New("illegal status transition")

	ErrUpstreamAI    = errors.New("ai provider error")
	ErrDatabaseError = errors.New("database error")
)
