// Package service 命令/查询处理器。
//
// 每个处理器在一个事务内完成：先校验请求，再读写仓库，最后映射为响应 DTO。
// 业务错误以 model.Error 返回，由 HTTP 层统一映射状态码。
package service

import (
	"time"

	"github.com/user/moviestore/internal/dispatch"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/queue"
	"github.com/user/moviestore/internal/repository"
	"github.com/user/moviestore/internal/validation"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer 登录成功后签发令牌
type TokenIssuer interface {
	Issue(user *model.User) (token string, expiresAt time.Time, err error)
}

// Deps 处理器依赖
type Deps struct {
	Repos      *repository.Repositories
	Validator  *validation.Validator
	Tokens     TokenIssuer
	Publisher  queue.Publisher
	Logger     *zap.Logger
	BcryptCost int
	// Now 默认 time.Now
	Now func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Validator == nil {
		d.Validator = validation.New()
	}
	if d.Publisher == nil {
		d.Publisher = queue.NopPublisher{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.BcryptCost == 0 {
		d.BcryptCost = bcrypt.DefaultCost
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// Register 注册全部处理器
func Register(reg *dispatch.Registry, deps Deps) {
	deps = deps.withDefaults()

	actors := NewActorHandler(deps)
	dispatch.Handle(reg, actors.Create)
	dispatch.Handle(reg, actors.Update)
	dispatch.Handle(reg, actors.Delete)
	dispatch.Handle(reg, actors.Get)
	dispatch.Handle(reg, actors.List)

	directors := NewDirectorHandler(deps)
	dispatch.Handle(reg, directors.Create)
	dispatch.Handle(reg, directors.Update)
	dispatch.Handle(reg, directors.Delete)
	dispatch.Handle(reg, directors.Get)
	dispatch.Handle(reg, directors.List)

	movies := NewMovieHandler(deps)
	dispatch.Handle(reg, movies.Create)
	dispatch.Handle(reg, movies.Update)
	dispatch.Handle(reg, movies.Delete)
	dispatch.Handle(reg, movies.Get)
	dispatch.Handle(reg, movies.List)

	links := NewMovieActorHandler(deps)
	dispatch.Handle(reg, links.Link)
	dispatch.Handle(reg, links.Unlink)
	dispatch.Handle(reg, links.ActiveActors)
	dispatch.Handle(reg, links.ActiveMovies)

	orders := NewOrderHandler(deps)
	dispatch.Handle(reg, orders.Create)
	dispatch.Handle(reg, orders.List)
	dispatch.Handle(reg, orders.Get)

	users := NewUserHandler(deps)
	dispatch.Handle(reg, users.Register)
	dispatch.Handle(reg, users.Login)
	dispatch.Handle(reg, users.Get)
	dispatch.Handle(reg, users.List)
	dispatch.Handle(reg, users.Delete)
}

// NewDispatcher 注册并校验全部处理器
func NewDispatcher(deps Deps) (*dispatch.Dispatcher, error) {
	reg := dispatch.NewRegistry()
	Register(reg, deps)
	return reg.Build(Requests()...)
}
