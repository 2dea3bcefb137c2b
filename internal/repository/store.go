package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
)

// 查询方法约定：记录不存在时返回 (nil, nil)。

// ActorStore 演员存储
type ActorStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Actor, error)
	// FindByName 不区分启用状态
	FindByName(ctx context.Context, name, surname string) (*model.Actor, error)
	// FindActiveByName 查找启用的同名演员，except 为 uuid.Nil 时不排除
	FindActiveByName(ctx context.Context, name, surname string, except uuid.UUID) (*model.Actor, error)
	List(ctx context.Context) ([]*model.Actor, error)
	Create(ctx context.Context, actor *model.Actor) error
	Save(ctx context.Context, actor *model.Actor) error
}

// DirectorStore 导演存储
type DirectorStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error)
	FindActiveByName(ctx context.Context, name, surname string, except uuid.UUID) (*model.Director, error)
	ListActive(ctx context.Context) ([]*model.Director, error)
	Create(ctx context.Context, director *model.Director) error
	Save(ctx context.Context, director *model.Director) error
}

// MovieStore 电影存储
type MovieStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error)
	List(ctx context.Context) ([]*model.Movie, error)
	Create(ctx context.Context, movie *model.Movie) error
	Save(ctx context.Context, movie *model.Movie) error
	// Delete 物理删除
	Delete(ctx context.Context, id uuid.UUID) error
}

// MovieActorStore 电影-演员关联存储
type MovieActorStore interface {
	Find(ctx context.Context, movieID, actorID uuid.UUID) (*model.MovieActor, error)
	Create(ctx context.Context, link *model.MovieActor) error
	Save(ctx context.Context, link *model.MovieActor) error
	Delete(ctx context.Context, movieID, actorID uuid.UUID) error
	DeleteByMovie(ctx context.Context, movieID uuid.UUID) error
	// ActiveActorsForMovie 关联启用且演员启用
	ActiveActorsForMovie(ctx context.Context, movieID uuid.UUID) ([]*model.Actor, error)
	// ActiveMoviesForActor 关联启用且电影启用
	ActiveMoviesForActor(ctx context.Context, actorID uuid.UUID) ([]*model.Movie, error)
}

// UserStore 用户存储
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// FindActiveByLogin 按用户名或邮箱查找启用用户
	FindActiveByLogin(ctx context.Context, usernameOrEmail string) (*model.User, error)
	ActiveUsernameExists(ctx context.Context, username string) (bool, error)
	ActiveEmailExists(ctx context.Context, email string) (bool, error)
	ListActive(ctx context.Context) ([]*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
}

// OrderStore 订单存储
type OrderStore interface {
	Create(ctx context.Context, order *model.Order) error
	// ListActiveByUser 按下单时间倒序
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Order, error)
	FindActiveForUser(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error)
}

// Repositories 仓库集合
type Repositories struct {
	Tx         Scope
	Actor      ActorStore
	Director   DirectorStore
	Movie      MovieStore
	MovieActor MovieActorStore
	User       UserStore
	Order      OrderStore
}
