package service

import (
	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
)

// 命令与查询。HTTP 层绑定请求体后补上路径参数，再交给 dispatch.Send。

// ---- actors ----

type CreateActor struct {
	Name        string    `json:"name" validate:"required,min=2,max=50"`
	Surname     string    `json:"surname" validate:"required,min=2,max=50"`
	DateOfBirth model.Date `json:"dateOfBirth" validate:"birthdate"`
}

type UpdateActor struct {
	ID          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=2,max=50"`
	Surname     string    `json:"surname" validate:"required,min=2,max=50"`
	DateOfBirth model.Date `json:"dateOfBirth" validate:"birthdate"`
}

type DeleteActor struct {
	ID uuid.UUID
}

type GetActorByID struct {
	ID uuid.UUID
}

type ListActors struct{}

// ---- directors ----

type CreateDirector struct {
	Name        string    `json:"name" validate:"required,min=2,max=50"`
	Surname     string    `json:"surname" validate:"required,min=2,max=50"`
	DateOfBirth model.Date `json:"dateOfBirth" validate:"director_age"`
}

type UpdateDirector struct {
	ID          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required,min=2,max=50"`
	Surname     string    `json:"surname" validate:"required,min=2,max=50"`
	DateOfBirth model.Date `json:"dateOfBirth" validate:"director_age"`
}

type DeleteDirector struct {
	ID uuid.UUID
}

type GetDirectorByID struct {
	ID uuid.UUID
}

type ListDirectors struct{}

// ---- movies ----

type CreateMovie struct {
	Title      string      `json:"title" validate:"required,min=1,max=100"`
	Year       int         `json:"year" validate:"movie_year"`
	Genre      model.Genre `json:"genre" validate:"required,max=50,genre"`
	DirectorID uuid.UUID   `json:"directorId" validate:"required"`
	Price      float64     `json:"price" validate:"gt=0"`
}

type UpdateMovie struct {
	ID         uuid.UUID   `json:"-"`
	Title      string      `json:"title" validate:"required,min=1,max=100"`
	Year       int         `json:"year" validate:"movie_year"`
	Genre      model.Genre `json:"genre" validate:"required,max=50,genre"`
	DirectorID uuid.UUID   `json:"directorId" validate:"required"`
	Price      float64     `json:"price" validate:"gt=0"`
}

type DeleteMovie struct {
	ID uuid.UUID
}

type GetMovieByID struct {
	ID uuid.UUID
}

type ListMovies struct{}

// ---- movie actors ----

type LinkActorToMovie struct {
	MovieID uuid.UUID `json:"-"`
	ActorID uuid.UUID `json:"actorId" validate:"required"`
}

type UnlinkActorFromMovie struct {
	MovieID    uuid.UUID
	ActorID    uuid.UUID
	HardDelete bool
}

type GetActiveActorsForMovie struct {
	MovieID uuid.UUID
}

type GetActiveMoviesForActor struct {
	ActorID uuid.UUID
}

// ---- orders ----

type CreateOrder struct {
	UserID  uuid.UUID `json:"-"`
	MovieID uuid.UUID `json:"movieId" validate:"required"`
}

type ListOrdersForUser struct {
	UserID uuid.UUID
}

type GetOrderForUser struct {
	OrderID uuid.UUID
	UserID  uuid.UUID
}

// ---- users ----

type RegisterUser struct {
	FirstName       string        `json:"firstName" validate:"required,max=50"`
	LastName        string        `json:"lastName" validate:"required,max=50"`
	Username        string        `json:"userName" validate:"required,min=3,max=50,username"`
	Email           string        `json:"email" validate:"required,email,max=100"`
	Password        string        `json:"password" validate:"required,min=8,max=100,password"`
	ConfirmPassword string        `json:"confirmPassword" validate:"required,eqfield=Password"`
	FavoriteGenres  []model.Genre `json:"favoriteGenres" validate:"required,min=1,max=5,unique,dive,genre"`
}

type LoginUser struct {
	UsernameOrEmail string `json:"userNameOrEmail" validate:"required,max=100"`
	Password        string `json:"password" validate:"required"`
}

type GetUserByID struct {
	ID uuid.UUID
}

type ListUsers struct{}

type DeleteUser struct {
	ID uuid.UUID
}

// Requests 全部请求类型，用于 dispatch.Registry.Build 校验注册完整性
func Requests() []any {
	return []any{
		CreateActor{}, UpdateActor{}, DeleteActor{}, GetActorByID{}, ListActors{},
		CreateDirector{}, UpdateDirector{}, DeleteDirector{}, GetDirectorByID{}, ListDirectors{},
		CreateMovie{}, UpdateMovie{}, DeleteMovie{}, GetMovieByID{}, ListMovies{},
		LinkActorToMovie{}, UnlinkActorFromMovie{}, GetActiveActorsForMovie{}, GetActiveMoviesForActor{},
		CreateOrder{}, ListOrdersForUser{}, GetOrderForUser{},
		RegisterUser{}, LoginUser{}, GetUserByID{}, ListUsers{}, DeleteUser{},
	}
}
