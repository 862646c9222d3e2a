package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/repositories"
	"promptmart/pkg/utils"
)

type UsageServiceInterface interface {
	RunPrompt(ctx context.Context, userID, promptID uuid.UUID, input string) (*response_models.RunPromptResponse, error)
	ListMyUsage(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.UsageResponse, error)
}

type UsageService struct {
	usageRepo  repositories.UsageRepositoryInterface
	promptRepo repositories.PromptRepository
	orderRepo  repositories.OrderRepository
	aiClient   utils.CompletionClientInterface
}

func NewUsageService(
	usageRepo repositories.UsageRepositoryInterface,
	promptRepo repositories.PromptRepository,
	orderRepo repositories.OrderRepository,
	aiClient utils.CompletionClientInterface,
) UsageServiceInterface {
	return &UsageService{
		usageRepo:  usageRepo,
		promptRepo: promptRepo,
		orderRepo:  orderRepo,
		aiClient:   aiClient,
	}
}

// RunPrompt executes a purchased prompt against the configured provider and
// records the attempt, success or not. Sellers may run their own prompts
// without buying them.
func (s *UsageService) RunPrompt(ctx context.Context, userID, promptID uuid.UUID, input string) (*response_models.RunPromptResponse, error) {
	prompt, err := s.promptRepo.GetActiveByID(ctx, promptID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrPromptNotFound
	}

	if prompt.SellerID != userID {
		purchased, err := s.orderRepo.HasPaidOrder(ctx, userID, promptID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !purchased {
			return nil, utils.ErrPurchaseRequired
		}
	}

	rendered := prompt.Content + "\n\n" + input

	output, completionErr := s.aiClient.Complete(ctx, rendered)

	usage := &db_models.PromptUsage{
		InputText:  input,
		OutputText: output,
		Success:    completionErr == nil,
		UserID:     userID,
		PromptID:   promptID,
	}
	if completionErr != nil {
		usage.ErrorMessage = completionErr.Error()
	}

	if err := s.usageRepo.CreateUsage(ctx, usage); err != nil {
		log.Printf("Error recording prompt usage: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if completionErr != nil {
		log.Printf("Completion failed for prompt %s: %v", promptID, completionErr)
		return nil, utils.ErrUpstreamAI
	}

	return &response_models.RunPromptResponse{
		Output:  output,
		Success: true,
	}, nil
}

func (s *UsageService) ListMyUsage(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.UsageResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	usages, err := s.usageRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		log.Printf("Error listing usage: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.UsageResponse, 0, len(usages))
	for i := range usages {
		responses = append(responses, response_models.UsageResponse{
			ID:           usages[i].ID.String(),
			PromptID:     usages[i].PromptID.String(),
			InputText:    usages[i].InputText,
			OutputText:   usages[i].OutputText,
			Success:      usages[i].Success,
			ErrorMessage: usages[i].ErrorMessage,
			UsageDate:    usages[i].UsageDate,
		})
	}
	return responses, nil
}
