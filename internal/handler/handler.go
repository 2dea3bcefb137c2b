package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/user/moviestore/internal/config"
	"github.com/user/moviestore/internal/dispatch"
	"github.com/user/moviestore/internal/middleware"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/utils"
	"go.uber.org/zap"
)

// Handler HTTP 处理器：解析请求为命令/查询，交给调度器，再把结果写回响应
type Handler struct {
	Dispatcher *dispatch.Dispatcher
	Config     *config.Config
	Tokens     *middleware.TokenManager
	Logger     *zap.Logger
}

// NewHandler 创建处理器
func NewHandler(d *dispatch.Dispatcher, cfg *config.Config, tokens *middleware.TokenManager, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		Dispatcher: d,
		Config:     cfg,
		Tokens:     tokens,
		Logger:     logger,
	}
}

// send 分发请求，失败时写入错误响应并返回 false
func send[Res any](h *Handler, c *gin.Context, req any) (Res, bool) {
	res, err := dispatch.Send[Res](c.Request.Context(), h.Dispatcher, req)
	if err != nil {
		h.respondError(c, err)
		var zero Res
		return zero, false
	}
	return res, true
}

// respondError 业务错误类别到状态码的唯一映射
func (h *Handler) respondError(c *gin.Context, err error) {
	switch model.KindOf(err) {
	case model.ErrNotFound:
		utils.NotFound(c, err.Error())
	case model.ErrConflict:
		utils.Conflict(c, err.Error())
	case model.ErrValidation:
		var me *model.Error
		errors.As(err, &me)
		utils.ValidationError(c, err.Error(), me.Fields)
	case model.ErrUnauthorized:
		utils.Unauthorized(c, err.Error())
	default:
		if errors.Is(err, context.Canceled) {
			h.Logger.Warn("请求已取消", zap.String("path", c.Request.URL.Path))
		} else {
			h.Logger.Error("请求处理失败",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}
		_ = c.Error(err)
		utils.InternalServerError(c, h.errorDetail(err))
	}
}

// errorDetail 生产环境不向客户端暴露内部错误
func (h *Handler) errorDetail(err error) string {
	if h.Config == nil || h.Config.IsProduction() {
		return ""
	}
	return err.Error()
}

// pathID 解析路径中的 UUID，非法时返回 400
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON 解析请求体，格式错误时返回 400
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// currentUser 取已认证用户，RequireAuth 之后调用
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		utils.Unauthorized(c, "")
		return uuid.Nil, false
	}
	return id, true
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
