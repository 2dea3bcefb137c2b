package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/moviestore/internal/config"
	"github.com/user/moviestore/internal/handler"
	"github.com/user/moviestore/internal/middleware"
	"github.com/user/moviestore/internal/queue"
	"github.com/user/moviestore/internal/repository"
	"github.com/user/moviestore/internal/repository/memory"
	"github.com/user/moviestore/internal/router"
	"github.com/user/moviestore/internal/service"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()

	logger, err := middleware.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("服务异常退出", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	// 初始化仓库
	repos, closeRepos, err := openRepositories(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	tokens := middleware.NewTokenManager(cfg.AppSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTExpiry)
	dispatcher, err := service.NewDispatcher(service.Deps{
		Repos:      repos,
		Tokens:     tokens,
		Publisher:  queue.NewPublisher(cfg.AMQPURL),
		Logger:     logger,
		BcryptCost: cfg.BcryptCost,
	})
	if err != nil {
		return err
	}

	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 中间件
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	// 注册路由
	router.RegisterRoutes(r, handler.NewHandler(dispatcher, cfg, tokens, logger))

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// kill 默认发送 SIGTERM，Ctrl+C 为 SIGINT
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("服务器启动", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("正在关闭服务器...")

		// 5 秒超时上下文用于关闭过程
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("服务器已退出")
	return nil
}

// openRepositories 按 STORE 选择存储实现
func openRepositories(cfg *config.Config, logger *zap.Logger) (*repository.Repositories, func(), error) {
	if cfg.Store == "memory" {
		logger.Warn("使用内存存储，重启后数据丢失")
		return memory.New(), func() {}, nil
	}

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("关闭数据库失败", zap.Error(err))
		}
	}
	return repository.NewRepositories(db), closeFn, nil
}
