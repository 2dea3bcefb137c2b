package repository

import (
	"context"

	"gorm.io/gorm"
)

// Scope 事务边界：fn 返回 nil 时提交，否则回滚。
// 传给 fn 的 ctx 携带事务，仓库通过它取得连接。
type Scope interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecuteWithResult 在事务内执行 fn 并返回结果
func ExecuteWithResult[T any](ctx context.Context, scope Scope, fn func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := scope.Execute(ctx, func(ctx context.Context) error {
		var fnErr error
		result, fnErr = fn(ctx)
		return fnErr
	})
	return result, err
}

type txKey struct{}

// GormScope 基于 gorm 的事务
type GormScope struct {
	db *gorm.DB
}

func NewGormScope(db *gorm.DB) *GormScope {
	return &GormScope{db: db}
}

// Execute 开启事务。已在事务中时直接复用外层事务。
func (s *GormScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn 优先使用 ctx 中的事务
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
