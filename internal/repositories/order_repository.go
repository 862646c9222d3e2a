package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promptmart/internal/models/db_models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *db_models.Order) (uuid.UUID, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	GetOrderDetail(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status db_models.OrderStatus) error

	CreatePayment(ctx context.Context, payment *db_models.Payment) (uuid.UUID, error)
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error)
	GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*db_models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status db_models.PaymentStatus) error

	HasPaidOrder(ctx context.Context, userID, promptID uuid.UUID) (bool, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *db_models.Order) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return uuid.Nil, err
	}
	return order.ID, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Payment").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderDetail joins in the prompt, buyer and payment rows for the detail
// projection.
func (r *orderRepository) GetOrderDetail(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Prompt").
		Preload("User").
		Preload("Payment").
		First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Order, error) {
	var orders []db_models.Order
	err := r.db.WithContext(ctx).
		Preload("Payment").
		Preload("Prompt").
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status db_models.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepository) CreatePayment(ctx context.Context, payment *db_models.Payment) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return uuid.Nil, err
	}
	return payment.ID, nil
}

func (r *orderRepository) GetPaymentByID(ctx context.Context, id uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *orderRepository) GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*db_models.Payment, error) {
	var payment db_models.Payment
	err := r.db.WithContext(ctx).First(&payment, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status db_models.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasPaidOrder reports whether the user holds at least one paid order for the
// prompt. Drives the review purchase gate.
func (r *orderRepository) HasPaidOrder(ctx context.Context, userID, promptID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Order{}).
		Where("user_id = ? AND prompt_id = ? AND status = ?",
			userID, promptID, db_models.OrderStatusPaid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
