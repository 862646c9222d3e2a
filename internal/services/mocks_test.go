package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *db_models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *db_models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, role string, page, pageSize int) ([]db_models.User, error) {
	args := m.Called(ctx, role, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.User), args.Error(1)
}

func (m *MockUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPromptRepository struct {
	mock.Mock
}

func (m *MockPromptRepository) Create(ctx context.Context, prompt *db_models.Prompt) (uuid.UUID, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockPromptRepository) Update(ctx context.Context, prompt *db_models.Prompt) error {
	args := m.Called(ctx, prompt)
	return args.Error(0)
}

func (m *MockPromptRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Prompt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) List(ctx context.Context, filter request_models.PromptFilter) ([]db_models.Prompt, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]db_models.Prompt), args.Get(1).(int64), args.Error(2)
}

func (m *MockPromptRepository) ListBySeller(ctx context.Context, sellerID uuid.UUID, page, pageSize int) ([]db_models.Prompt, error) {
	args := m.Called(ctx, sellerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Prompt), args.Error(1)
}

func (m *MockPromptRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromptRepository) IncrementSales(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromptRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockPromptRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *db_models.Order) (uuid.UUID, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderDetail(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Order, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status db_models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) CreatePayment(ctx context.Context, payment *db_models.Payment) (uuid.UUID, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockOrderRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Payment), args.Error(1)
}

func (m *MockOrderRepository) GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*db_models.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Payment), args.Error(1)
}

func (m *MockOrderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status db_models.PaymentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) HasPaidOrder(ctx context.Context, userID, promptID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, promptID)
	return args.Bool(0), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *db_models.Review) (uuid.UUID, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetByUserAndPrompt(ctx context.Context, userID, promptID uuid.UUID) (*db_models.Review, error) {
	args := m.Called(ctx, userID, promptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByPrompt(ctx context.Context, promptID uuid.UUID, page, pageSize int) ([]db_models.Review, error) {
	args := m.Called(ctx, promptID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Review), args.Error(1)
}

func (m *MockReviewRepository) AverageRating(ctx context.Context, promptID uuid.UUID) (float64, error) {
	args := m.Called(ctx, promptID)
	return args.Get(0).(float64), args.Error(1)
}

type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *db_models.Favorite) (uuid.UUID, error) {
	args := m.Called(ctx, favorite)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, promptID uuid.UUID) error {
	args := m.Called(ctx, userID, promptID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByUserAndPrompt(ctx context.Context, userID, promptID uuid.UUID) (*db_models.Favorite, error) {
	args := m.Called(ctx, userID, promptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ListPromptsByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Prompt, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Prompt), args.Error(1)
}

func (m *MockFavoriteRepository) FilterFavoritedIDs(ctx context.Context, userID uuid.UUID, promptIDs []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, promptIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *db_models.Category) (uuid.UUID, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *db_models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetActiveByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByNameOrSlug(ctx context.Context, name, slug string) (*db_models.Category, error) {
	args := m.Called(ctx, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db_models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListActive(ctx context.Context, page, pageSize int) ([]db_models.Category, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountActivePrompts(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) CreateUsage(ctx context.Context, usage *db_models.PromptUsage) error {
	args := m.Called(ctx, usage)
	return args.Error(0)
}

func (m *MockUsageRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.PromptUsage, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PromptUsage), args.Error(1)
}

type MockEmbeddingRepository struct {
	mock.Mock
}

func (m *MockEmbeddingRepository) UpsertEmbedding(embedding db_models.PromptEmbedding) error {
	args := m.Called(embedding)
	return args.Error(0)
}

func (m *MockEmbeddingRepository) GetSimilarByVector(vector pgvector.Vector, excludeID string) ([]db_models.PromptEmbedding, error) {
	args := m.Called(vector, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.PromptEmbedding), args.Error(1)
}

type MockEmbeddingClient struct {
	mock.Mock
}

func (m *MockEmbeddingClient) Embed(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
