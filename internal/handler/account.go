package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/user/moviestore/internal/service"
	"github.com/user/moviestore/internal/utils"
)

// ==================== 用户 ====================

// Register 注册
func (h *Handler) Register(c *gin.Context) {
	var cmd service.RegisterUser
	if !bindJSON(c, &cmd) {
		return
	}
	if res, ok := send[*service.UserResponse](h, c, cmd); ok {
		utils.Created(c, res)
	}
}

// Login 登录，成功返回令牌
func (h *Handler) Login(c *gin.Context) {
	var cmd service.LoginUser
	if !bindJSON(c, &cmd) {
		return
	}
	if res, ok := send[*service.LoginResponse](h, c, cmd); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	if res, ok := send[[]*service.UserResponse](h, c, service.ListUsers{}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.UserResponse](h, c, service.GetUserByID{ID: id}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := send[struct{}](h, c, service.DeleteUser{ID: id}); ok {
		utils.NoContent(c)
	}
}

// ==================== 订单（需要登录）====================

// CreateOrder 以令牌中的用户下单
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var cmd service.CreateOrder
	if !bindJSON(c, &cmd) {
		return
	}
	cmd.UserID = userID
	if res, ok := send[*service.OrderResponse](h, c, cmd); ok {
		utils.Created(c, res)
	}
}

// ListOrders 当前用户的订单
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if res, ok := send[[]*service.OrderResponse](h, c, service.ListOrdersForUser{UserID: userID}); ok {
		utils.Success(c, res)
	}
}

// GetOrder 只能查看自己的订单
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.OrderResponse](h, c, service.GetOrderForUser{OrderID: orderID, UserID: userID}); ok {
		utils.Success(c, res)
	}
}
