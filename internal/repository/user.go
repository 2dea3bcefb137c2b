package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) first(q *gorm.DB) (*model.User, error) {
	var user model.User
	err := q.First(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID 根据 ID 查找用户（含停用）
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.first(conn(ctx, r.db).Where("id = ?", id))
}

// FindActiveByID 根据 ID 查找启用用户
func (r *UserRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.first(conn(ctx, r.db).Where("id = ? AND is_active", id))
}

// FindActiveByLogin 根据用户名或邮箱查找启用用户
func (r *UserRepository) FindActiveByLogin(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	return r.first(conn(ctx, r.db).
		Where("(username = ? OR email = ?) AND is_active", usernameOrEmail, usernameOrEmail))
}

// ActiveUsernameExists 用户名是否已被启用用户占用
func (r *UserRepository) ActiveUsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.User{}).Where("username = ? AND is_active", username).Count(&count).Error
	return count > 0, err
}

// ActiveEmailExists 邮箱是否已被启用用户占用
func (r *UserRepository) ActiveEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&model.User{}).Where("email = ? AND is_active", email).Count(&count).Error
	return count > 0, err
}

// ListActive 获取启用用户列表
func (r *UserRepository) ListActive(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := conn(ctx, r.db).Where("is_active").Order("created_at ASC").Find(&users).Error
	return users, err
}

// Create 创建用户
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(conn(ctx, r.db).Create(user).Error, "username or email")
}

// Save 保存用户
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	return translate(conn(ctx, r.db).Save(user).Error, "username or email")
}
