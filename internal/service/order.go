package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/queue"
	"github.com/user/moviestore/internal/repository"
	"go.uber.org/zap"
)

// OrderHandler 订单命令与查询
type OrderHandler struct {
	deps Deps
}

func NewOrderHandler(deps Deps) *OrderHandler {
	return &OrderHandler{deps: deps.withDefaults()}
}

// Create 下单时快照电影标题、价格和用户信息，提交后发布 order.placed 事件
func (h *OrderHandler) Create(ctx context.Context, cmd CreateOrder) (*OrderResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	order, err := repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*model.Order, error) {
		user, err := h.deps.Repos.User.FindActiveByID(ctx, cmd.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, model.NotFound("user %s not found", cmd.UserID)
		}
		movie, err := h.deps.Repos.Movie.FindByID(ctx, cmd.MovieID)
		if err != nil {
			return nil, err
		}
		if movie == nil || !movie.IsActive {
			return nil, model.NotFound("movie %s not found", cmd.MovieID)
		}

		order := &model.Order{
			ID:               uuid.New(),
			UserID:           user.ID,
			MovieID:          movie.ID,
			MovieTitle:       movie.Title,
			Price:            movie.Price,
			CustomerFullName: user.FullName(),
			CustomerEmail:    user.Email,
			IsActive:         true,
			OrderDate:        h.deps.Now().UTC(),
		}
		if err := h.deps.Repos.Order.Create(ctx, order); err != nil {
			return nil, err
		}
		return order, nil
	})
	if err != nil {
		return nil, err
	}

	event := queue.OrderPlaced{
		OrderID:          order.ID,
		UserID:           order.UserID,
		MovieID:          order.MovieID,
		MovieTitle:       order.MovieTitle,
		Price:            order.Price,
		CustomerFullName: order.CustomerFullName,
		CustomerEmail:    order.CustomerEmail,
		OrderDate:        order.OrderDate,
	}
	if err := h.deps.Publisher.PublishOrderPlaced(ctx, event); err != nil {
		h.deps.Logger.Warn("发布下单事件失败",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}
	return toOrderResponse(order), nil
}

// List 用户的有效订单，最新的在前
func (h *OrderHandler) List(ctx context.Context, q ListOrdersForUser) ([]*OrderResponse, error) {
	orders, err := h.deps.Repos.Order.ListActiveByUser(ctx, q.UserID)
	if err != nil {
		return nil, err
	}
	return mapAll(orders, toOrderResponse), nil
}

// Get 只能查到自己的有效订单，其它情况一律 NotFound
func (h *OrderHandler) Get(ctx context.Context, q GetOrderForUser) (*OrderResponse, error) {
	order, err := h.deps.Repos.Order.FindActiveForUser(ctx, q.OrderID, q.UserID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, model.NotFound("order %s not found", q.OrderID)
	}
	return toOrderResponse(order), nil
}
