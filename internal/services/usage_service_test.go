package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"promptmart/internal/models/db_models"
	"promptmart/pkg/utils"
)

func TestUsageService_RunPrompt(t *testing.T) {
	promptID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	sellersPrompt := func() *db_models.Prompt {
		p := activePrompt(promptID, 9.99)
		p.SellerID = sellerID
		return p
	}

	t.Run("purchase required", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		orders := new(MockOrderRepository)
		prompts.On("GetActiveByID", mock.Anything, promptID).Return(sellersPrompt(), nil)
		orders.On("HasPaidOrder", mock.Anything, buyerID, promptID).Return(false, nil)
		service := NewUsageService(new(MockUsageRepository), prompts, orders, new(MockCompletionClient))

		_, err := service.RunPrompt(context.Background(), buyerID, promptID, "hello")
		assert.ErrorIs(t, err, utils.ErrPurchaseRequired)
	})

	t.Run("seller runs own prompt without buying", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		orders := new(MockOrderRepository)
		usage := new(MockUsageRepository)
		ai := new(MockCompletionClient)
		prompts.On("GetActiveByID", mock.Anything, promptID).Return(sellersPrompt(), nil)
		ai.On("Complete", mock.Anything, "Do the thing\n\nhello").Return("done", nil)
		usage.On("CreateUsage", mock.Anything, mock.MatchedBy(func(u *db_models.PromptUsage) bool {
			return u.Success && u.OutputText == "done" && u.UserID == sellerID
		})).Return(nil)
		service := NewUsageService(usage, prompts, orders, ai)

		resp, err := service.RunPrompt(context.Background(), sellerID, promptID, "hello")
		assert.NoError(t, err)
		assert.Equal(t, "done", resp.Output)
		orders.AssertNotCalled(t, "HasPaidOrder", mock.Anything, mock.Anything, mock.Anything)
		usage.AssertExpectations(t)
	})

	t.Run("buyer run is recorded", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		orders := new(MockOrderRepository)
		usage := new(MockUsageRepository)
		ai := new(MockCompletionClient)
		prompts.On("GetActiveByID", mock.Anything, promptID).Return(sellersPrompt(), nil)
		orders.On("HasPaidOrder", mock.Anything, buyerID, promptID).Return(true, nil)
		ai.On("Complete", mock.Anything, "Do the thing\n\nhello").Return("done", nil)
		usage.On("CreateUsage", mock.Anything, mock.Anything).Return(nil)
		service := NewUsageService(usage, prompts, orders, ai)

		resp, err := service.RunPrompt(context.Background(), buyerID, promptID, "hello")
		assert.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("provider failure still recorded", func(t *testing.T) {
		prompts := new(MockPromptRepository)
		orders := new(MockOrderRepository)
		usage := new(MockUsageRepository)
		ai := new(MockCompletionClient)
		prompts.On("GetActiveByID", mock.Anything, promptID).Return(sellersPrompt(), nil)
		orders.On("HasPaidOrder", mock.Anything, buyerID, promptID).Return(true, nil)
		ai.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))
		usage.On("CreateUsage", mock.Anything, mock.MatchedBy(func(u *db_models.PromptUsage) bool {
			return !u.Success && u.ErrorMessage == "rate limited"
		})).Return(nil)
		service := NewUsageService(usage, prompts, orders, ai)

		_, err := service.RunPrompt(context.Background(), buyerID, promptID, "hello")
		assert.ErrorIs(t, err, utils.ErrUpstreamAI)
		usage.AssertExpectations(t)
	})
}
