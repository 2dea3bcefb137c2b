package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials 用户不存在与密码错误返回同一消息
const invalidCredentials = "invalid username/email or password"

// UserHandler 注册、登录与用户管理
type UserHandler struct {
	deps Deps
	// dummyHash 用户不存在时也做一次同等代价的比较，响应时间不暴露账号是否存在
	dummyHash []byte
	compare   func(hash, password []byte) error
}

func NewUserHandler(deps Deps) *UserHandler {
	deps = deps.withDefaults()
	dummy, err := bcrypt.GenerateFromPassword([]byte("moviestore-dummy-password"), deps.BcryptCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy hash: %v", err))
	}
	return &UserHandler{
		deps:      deps,
		dummyHash: dummy,
		compare:   bcrypt.CompareHashAndPassword,
	}
}

// Register 用户名或邮箱被启用用户占用时返回 Conflict
func (h *UserHandler) Register(ctx context.Context, cmd RegisterUser) (*UserResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	return repository.ExecuteWithResult(ctx, h.deps.Repos.Tx, func(ctx context.Context) (*UserResponse, error) {
		taken, err := h.deps.Repos.User.ActiveUsernameExists(ctx, cmd.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.Conflict("username %s is already taken", cmd.Username)
		}
		taken, err = h.deps.Repos.User.ActiveEmailExists(ctx, cmd.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, model.Conflict("email %s is already registered", cmd.Email)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), h.deps.BcryptCost)
		if err != nil {
			return nil, err
		}
		user := &model.User{
			ID:           uuid.New(),
			FirstName:    cmd.FirstName,
			LastName:     cmd.LastName,
			Username:     cmd.Username,
			Email:        cmd.Email,
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    h.deps.Now().UTC(),
		}
		user.SetGenres(cmd.FavoriteGenres)
		if err := h.deps.Repos.User.Create(ctx, user); err != nil {
			return nil, err
		}
		return toUserResponse(user), nil
	})
}

// Login 校验用户名/邮箱与密码并签发令牌
func (h *UserHandler) Login(ctx context.Context, cmd LoginUser) (*LoginResponse, error) {
	if err := h.deps.Validator.Struct(ctx, cmd); err != nil {
		return nil, err
	}
	user, err := h.deps.Repos.User.FindActiveByLogin(ctx, cmd.UsernameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = h.compare(h.dummyHash, []byte(cmd.Password))
		return nil, model.Unauthorized(invalidCredentials)
	}
	if err := h.compare([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, model.Unauthorized(invalidCredentials)
		}
		return nil, err
	}

	if h.deps.Tokens == nil {
		return nil, errors.New("token issuer not configured")
	}
	token, expiresAt, err := h.deps.Tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		Token:      token,
		Expiration: expiresAt,
		UserID:     user.ID,
		UserName:   user.Username,
		FullName:   user.FullName(),
	}, nil
}

// Get 只返回启用用户
func (h *UserHandler) Get(ctx context.Context, q GetUserByID) (*UserResponse, error) {
	user, err := h.deps.Repos.User.FindActiveByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.NotFound("user %s not found", q.ID)
	}
	return toUserResponse(user), nil
}

func (h *UserHandler) List(ctx context.Context, _ ListUsers) ([]*UserResponse, error) {
	users, err := h.deps.Repos.User.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return mapAll(users, toUserResponse), nil
}

// Delete 软删除，已停用时返回 Conflict
func (h *UserHandler) Delete(ctx context.Context, cmd DeleteUser) (struct{}, error) {
	err := h.deps.Repos.Tx.Execute(ctx, func(ctx context.Context) error {
		user, err := h.deps.Repos.User.FindByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if user == nil {
			return model.NotFound("user %s not found", cmd.ID)
		}
		if !user.IsActive {
			return model.Conflict("user %s is already deleted", cmd.ID)
		}
		user.IsActive = false
		return h.deps.Repos.User.Save(ctx, user)
	})
	return struct{}{}, err
}
