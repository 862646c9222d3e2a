package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"promptmart/internal/models/db_models"
	"promptmart/internal/models/request_models"
	"promptmart/internal/models/response_models"
	"promptmart/internal/repositories"
	"promptmart/pkg/utils"
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error)
	CreatePayment(ctx context.Context, orderID, callerID uuid.UUID, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.OrderResponse, error)
	GetOrderDetail(ctx context.Context, orderID, callerID uuid.UUID, callerRole string) (*response_models.OrderDetailResponse, error)

	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) (*response_models.OrderResponse, error)
	UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status db_models.PaymentStatus) (*response_models.PaymentResponse, error)

	HasPurchased(ctx context.Context, userID, promptID uuid.UUID) (bool, error)
}

type OrderService struct {
	orderRepo  repositories.OrderRepository
	promptRepo repositories.PromptRepository
}

func NewOrderService(orderRepo repositories.OrderRepository, promptRepo repositories.PromptRepository) OrderServiceInterface {
	return &OrderService{
		orderRepo:  orderRepo,
		promptRepo: promptRepo,
	}
}

// CreateOrder mints an order number and persists the order as pending. The
// amount must match the prompt's listed price; token orders additionally
// carry a token amount.
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {
	prompt, err := s.promptRepo.GetActiveByID(ctx, request.PromptID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if prompt == nil {
		return nil, utils.ErrPromptNotFound
	}

	if request.Amount != prompt.Price {
		return nil, utils.ErrAmountMismatch
	}

	paymentType := db_models.PaymentType(request.PaymentType)
	if paymentType == db_models.PaymentTypeToken && request.TokenAmount == nil {
		return nil, utils.ErrTokenAmountRequired
	}

	order := &db_models.Order{
		OrderNumber: utils.NewOrderNumber(),
		Amount:      request.Amount,
		TokenAmount: request.TokenAmount,
		PaymentType: paymentType,
		Status:      db_models.OrderStatusPending,
		Notes:       request.Notes,
		UserID:      userID,
		PromptID:    request.PromptID,
	}

	if _, err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		log.Printf("Error creating order: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := toOrderResponse(order)
	return &response, nil
}

// CreatePayment attaches the single payment slot of an order. The amounts are
// snapshotted from the order row, never taken from the request.
func (s *OrderService) CreatePayment(ctx context.Context, orderID, callerID uuid.UUID, request request_models.CreatePaymentRequest) (*response_models.PaymentResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	if order.UserID != callerID {
		return nil, utils.ErrPermissionDenied
	}

	existing, err := s.orderRepo.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPaymentAlreadyExists
	}

	payment := &db_models.Payment{
		TransactionID: utils.NewTransactionID(),
		Amount:        order.Amount,
		Method:        db_models.PaymentMethod(request.Method),
		Status:        db_models.PaymentStatusPending,
		OrderID:       orderID,
	}

	if request.PaymentDetails != "" {
		payment.PaymentDetails = datatypes.JSON(request.PaymentDetails)
	}

	if payment.Method == db_models.MethodToken {
		payment.TokenAmount = order.TokenAmount
		payment.WalletAddress = request.WalletAddress
		payment.ChainTxID = request.ChainTxID
	}

	if _, err := s.orderRepo.CreatePayment(ctx, payment); err != nil {
		log.Printf("Error creating payment: %v", err)
		return nil, utils.ErrDatabaseError
	}

	response := toPaymentResponse(payment)
	return &response, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]response_models.OrderResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}
	return responses, nil
}

// GetOrderDetail joins in prompt title/description and buyer email. Only the
// owning buyer or an admin may read it.
func (s *OrderService) GetOrderDetail(ctx context.Context, orderID, callerID uuid.UUID, callerRole string) (*response_models.OrderDetailResponse, error) {
	order, err := s.orderRepo.GetOrderDetail(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	if order.UserID != callerID && callerRole != string(db_models.RoleAdmin) {
		return nil, utils.ErrPermissionDenied
	}

	return &response_models.OrderDetailResponse{
		OrderResponse:     toOrderResponse(order),
		PromptTitle:       order.Prompt.Title,
		PromptDescription: order.Prompt.Description,
		UserID:            order.UserID.String(),
		UserEmail:         order.User.Email,
	}, nil
}

// UpdateOrderStatus is the admin-only direct override; the normal path
// derives order status from its payment.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status db_models.OrderStatus) (*response_models.OrderResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if order == nil {
		return nil, utils.ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		log.Printf("Error updating order status: %v", err)
		return nil, utils.ErrDatabaseError
	}
	order.Status = status

	response := toOrderResponse(order)
	return &response, nil
}

// UpdatePaymentStatus settles a payment and derives the order's status from
// it: completed -> paid, failed -> failed, refunded -> refunded. Re-applying
// the current status is a no-op; moving out of a terminal state to a
// different one is rejected.
func (s *OrderService) UpdatePaymentStatus(ctx context.Context, paymentID uuid.UUID, status db_models.PaymentStatus) (*response_models.PaymentResponse, error) {
	payment, err := s.orderRepo.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if payment == nil {
		return nil, utils.ErrPaymentNotFound
	}

	if payment.Status == status {
		response := toPaymentResponse(payment)
		return &response, nil
	}
	if payment.Status.IsTerminal() {
		return nil, utils.ErrInvalidStatusTransition
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, paymentID, status); err != nil {
		log.Printf("Error updating payment status: %v", err)
		return nil, utils.ErrDatabaseError
	}
	payment.Status = status

	var orderStatus db_models.OrderStatus
	switch status {
	case db_models.PaymentStatusCompleted:
		orderStatus = db_models.OrderStatusPaid
	case db_models.PaymentStatusFailed:
		orderStatus = db_models.OrderStatusFailed
	case db_models.PaymentStatusRefunded:
		orderStatus = db_models.OrderStatusRefunded
	default:
		// pending has no side effect on the order
		response := toPaymentResponse(payment)
		return &response, nil
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, payment.OrderID, orderStatus); err != nil {
		log.Printf("Error deriving order status: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if status == db_models.PaymentStatusCompleted {
		order, err := s.orderRepo.GetOrderByID(ctx, payment.OrderID)
		if err == nil && order != nil {
			if err := s.promptRepo.IncrementSales(ctx, order.PromptID); err != nil {
				log.Printf("Error incrementing sales for prompt %s: %v", order.PromptID, err)
			}
		}
	}

	response := toPaymentResponse(payment)
	return &response, nil
}

func (s *OrderService) HasPurchased(ctx context.Context, userID, promptID uuid.UUID) (bool, error) {
	purchased, err := s.orderRepo.HasPaidOrder(ctx, userID, promptID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return purchased, nil
}

func toOrderResponse(order *db_models.Order) response_models.OrderResponse {
	response := response_models.OrderResponse{
		ID:          order.ID.String(),
		OrderNumber: order.OrderNumber,
		Amount:      order.Amount,
		TokenAmount: order.TokenAmount,
		PaymentType: string(order.PaymentType),
		Status:      string(order.Status),
		Notes:       order.Notes,
		PromptID:    order.PromptID.String(),
		CreatedAt:   order.CreatedAt,
	}
	if order.Payment != nil {
		payment := toPaymentResponse(order.Payment)
		response.Payment = &payment
	}
	return response
}

func toPaymentResponse(payment *db_models.Payment) response_models.PaymentResponse {
	return response_models.PaymentResponse{
		ID:            payment.ID.String(),
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        string(payment.Status),
		TokenAmount:   payment.TokenAmount,
		WalletAddress: payment.WalletAddress,
		ChainTxID:     payment.ChainTxID,
		CreatedAt:     payment.CreatedAt,
	}
}
