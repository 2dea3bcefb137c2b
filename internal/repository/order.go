package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create 创建订单
func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	return conn(ctx, r.db).Create(order).Error
}

// ListActiveByUser 获取用户的有效订单，最新的在前
func (r *OrderRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Order, error) {
	var orders []*model.Order
	err := conn(ctx, r.db).
		Where("user_id = ? AND is_active", userID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

// FindActiveForUser 查找属于该用户的有效订单
func (r *OrderRepository) FindActiveForUser(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := conn(ctx, r.db).
		Where("id = ? AND user_id = ? AND is_active", orderID, userID).
		First(&order).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
