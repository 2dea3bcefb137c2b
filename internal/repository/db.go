package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/user/moviestore/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// uniqueViolation PostgreSQL 唯一约束冲突错误码
const uniqueViolation = "23505"

// InitDB 初始化数据库连接
func InitDB(databaseURL string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm 初始化失败: %w", err)
	}
	return db, nil
}

// Migrate 建表并创建部分唯一索引
// 启用状态下的导演姓名、用户名、邮箱唯一，软删除的记录不参与约束
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Director{},
		&model.Actor{},
		&model.Movie{},
		&model.MovieActor{},
		&model.User{},
		&model.Order{},
	); err != nil {
		return fmt.Errorf("自动迁移失败: %w", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_directors_active_name ON directors (name, surname) WHERE is_active`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_active_username ON users (username) WHERE is_active`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_users_active_email ON users (email) WHERE is_active`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("创建索引失败: %w", err)
		}
	}
	return nil
}

// NewRepositories 创建基于 gorm 的仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Tx:         NewGormScope(db),
		Actor:      NewActorRepository(db),
		Director:   NewDirectorRepository(db),
		Movie:      NewMovieRepository(db),
		MovieActor: NewMovieActorRepository(db),
		User:       NewUserRepository(db),
		Order:      NewOrderRepository(db),
	}
}

// translate 将唯一约束冲突转换为 Conflict，其它错误原样返回
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return model.Conflict("%s already exists", entity)
	}
	return err
}

// notFound 统一 gorm 未找到的判定：返回 (nil, nil)
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
