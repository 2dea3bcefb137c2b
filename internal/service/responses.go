package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
)

type ActorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	IsActive    bool      `json:"isActive"`
}

type DirectorResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	IsActive    bool      `json:"isActive"`
}

type MovieResponse struct {
	ID         uuid.UUID   `json:"id"`
	Title      string      `json:"title"`
	Year       int         `json:"year"`
	Genre      model.Genre `json:"genre"`
	Price      float64     `json:"price"`
	DirectorID uuid.UUID   `json:"directorId"`
	IsActive   bool        `json:"isActive"`
}

type MovieActorStatusResponse struct {
	MovieID        uuid.UUID `json:"movieId"`
	ActorID        uuid.UUID `json:"actorId"`
	IsActiveInRole bool      `json:"isActiveInRole"`
}

type OrderResponse struct {
	ID               uuid.UUID `json:"id"`
	MovieID          uuid.UUID `json:"movieId"`
	MovieTitle       string    `json:"movieTitle"`
	UserID           uuid.UUID `json:"userId"`
	CustomerFullName string    `json:"customerFullName"`
	CustomerEmail    string    `json:"customerEmail"`
	Price            float64   `json:"price"`
	OrderDate        time.Time `json:"orderDate"`
	IsActive         bool      `json:"isActive"`
}

// UserResponse 不含密码哈希
type UserResponse struct {
	ID             uuid.UUID     `json:"id"`
	FirstName      string        `json:"firstName"`
	LastName       string        `json:"lastName"`
	FullName       string        `json:"fullName"`
	UserName       string        `json:"userName"`
	Email          string        `json:"email"`
	FavoriteGenres []model.Genre `json:"favoriteGenres"`
	IsActive       bool          `json:"isActive"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type LoginResponse struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
	FullName   string    `json:"fullName"`
}

func toActorResponse(a *model.Actor) *ActorResponse {
	return &ActorResponse{
		ID:          a.ID,
		Name:        a.Name,
		Surname:     a.Surname,
		DateOfBirth: a.DateOfBirth,
		IsActive:    a.IsActive,
	}
}

func toDirectorResponse(d *model.Director) *DirectorResponse {
	return &DirectorResponse{
		ID:          d.ID,
		Name:        d.Name,
		Surname:     d.Surname,
		DateOfBirth: d.DateOfBirth,
		IsActive:    d.IsActive,
	}
}

func toMovieResponse(m *model.Movie) *MovieResponse {
	return &MovieResponse{
		ID:         m.ID,
		Title:      m.Title,
		Year:       m.Year,
		Genre:      m.Genre,
		Price:      m.Price,
		DirectorID: m.DirectorID,
		IsActive:   m.IsActive,
	}
}

func toMovieActorStatus(l *model.MovieActor) *MovieActorStatusResponse {
	return &MovieActorStatusResponse{
		MovieID:        l.MovieID,
		ActorID:        l.ActorID,
		IsActiveInRole: l.IsActive,
	}
}

func toOrderResponse(o *model.Order) *OrderResponse {
	return &OrderResponse{
		ID:               o.ID,
		MovieID:          o.MovieID,
		MovieTitle:       o.MovieTitle,
		UserID:           o.UserID,
		CustomerFullName: o.CustomerFullName,
		CustomerEmail:    o.CustomerEmail,
		Price:            o.Price,
		OrderDate:        o.OrderDate,
		IsActive:         o.IsActive,
	}
}

func toUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		UserName:       u.Username,
		Email:          u.Email,
		FavoriteGenres: u.Genres(),
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}

// mapAll 批量映射，保证返回非 nil 切片
func mapAll[E, R any](items []*E, fn func(*E) *R) []*R {
	out := make([]*R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
