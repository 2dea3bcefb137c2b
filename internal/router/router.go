package router

import (
	"github.com/gin-gonic/gin"
	"github.com/user/moviestore/internal/handler"
	"github.com/user/moviestore/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", h.Health)

	// ==================== 演员 ====================
	actors := r.Group("/actors")
	{
		actors.POST("", h.CreateActor)
		actors.GET("", h.ListActors)
		actors.GET("/:id", h.GetActor)
		actors.PUT("/:id", h.UpdateActor)
		actors.DELETE("/:id", h.DeleteActor)
		actors.GET("/:id/movies", h.ActorMovies)
	}

	// ==================== 电影 ====================
	movies := r.Group("/movies")
	{
		movies.POST("", h.CreateMovie)
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.PUT("/:id", h.UpdateMovie)
		movies.DELETE("/:id", h.DeleteMovie)

		movies.POST("/:id/actors", h.LinkActor)
		movies.GET("/:id/actors", h.MovieActors)
		movies.DELETE("/:id/actors/:actorId", h.UnlinkActor)
	}

	// ==================== 导演 ====================
	directors := r.Group("/directors")
	{
		directors.POST("", h.CreateDirector)
		directors.GET("", h.ListDirectors)
		directors.GET("/:id", h.GetDirector)
		directors.PUT("/:id", h.UpdateDirector)
		directors.DELETE("/:id", h.DeleteDirector)
	}

	// ==================== 用户 ====================
	users := r.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	// ==================== 订单（需要登录）====================
	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth(h.Tokens))
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
	}
}
