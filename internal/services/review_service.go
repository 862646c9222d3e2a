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

type ReviewServiceInterface interface {
	CreateReview(ctx context.Context, userID uuid.UUID, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID, callerID uuid.UUID, request request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, callerID uuid.UUID) error
	ListPromptReviews(ctx context.Context, promptID uuid.UUID, page, pageSize int) ([]response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	promptRepo repositories.PromptRepository
	orderRepo  repositories.OrderRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	promptRepo repositories.PromptRepository,
	orderRepo repositories.OrderRepository,
) ReviewServiceInterface {
	return &ReviewService{
		reviewRepo: reviewRepo,
		promptRepo: promptRepo,
		orderRepo:  orderRepo,
	}
}

// CreateReview enforces, in order: the prompt exists, the caller has a paid
// order for it, and the caller has not reviewed it before.
func (s *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	prompt, err := s.promptRepo.GetActiveByID(ctx, request.PromptID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrPromptNotFound
	}

	purchased, err := s.orderRepo.HasPaidOrder(ctx, userID, request.PromptID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !purchased {
		return nil, utils.ErrPurchaseRequired
	}

	existing, err := s.reviewRepo.GetByUserAndPrompt(ctx, userID, request.PromptID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrReviewAlreadyExists
	}

	review := &db_models.Review{
		Rating:   request.Rating,
		Comment:  request.Comment,
		UserID:   userID,
		PromptID: request.PromptID,
	}

	if _, err := s.reviewRepo.Create(ctx, review); err != nil {
		log.Printf("Error creating review: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if err := s.recomputeRating(ctx, request.PromptID); err != nil {
		return nil, err
	}

	response := toReviewResponse(review, "")
	return &response, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, reviewID, callerID uuid.UUID, request request_models.UpdateReviewRequest) (*response_models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}

	if review.UserID != callerID {
		return nil, utils.ErrPermissionDenied
	}

	if request.Rating != nil {
		review.Rating = *request.Rating
	}
	if request.Comment != nil {
		review.Comment = *request.Comment
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		log.Printf("Error updating review: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if err := s.recomputeRating(ctx, review.PromptID); err != nil {
		return nil, err
	}

	response := toReviewResponse(review, "")
	return &response, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, reviewID, callerID uuid.UUID) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}

	if review.UserID != callerID {
		return utils.ErrPermissionDenied
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		log.Printf("Error deleting review: %v", err)
		return utils.ErrDatabaseError
	}

	return s.recomputeRating(ctx, review.PromptID)
}

func (s *ReviewService) ListPromptReviews(ctx context.Context, promptID uuid.UUID, page, pageSize int) ([]response_models.ReviewResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	reviews, err := s.reviewRepo.ListByPrompt(ctx, promptID, page, pageSize)
	if err != nil {
		log.Printf("Error listing reviews: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, toReviewResponse(&reviews[i], reviews[i].User.Username))
	}
	return responses, nil
}

// recomputeRating keeps the prompt's denormalized rating equal to the mean of
// its current reviews, 0 when none remain.
func (s *ReviewService) recomputeRating(ctx context.Context, promptID uuid.UUID) error {
	avg, err := s.reviewRepo.AverageRating(ctx, promptID)
	if err != nil {
		log.Printf("Error averaging ratings for prompt %s: %v", promptID, err)
		return utils.ErrDatabaseError
	}
	if err := s.promptRepo.UpdateRating(ctx, promptID, avg); err != nil {
		log.Printf("Error writing rating for prompt %s: %v", promptID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func toReviewResponse(review *db_models.Review, username string) response_models.ReviewResponse {
	return response_models.ReviewResponse{
		ID:        review.ID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		UserID:    review.UserID.String(),
		Username:  username,
		PromptID:  review.PromptID.String(),
		CreatedAt: review.CreatedAt,
	}
}
