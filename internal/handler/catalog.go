package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/moviestore/internal/service"
	"github.com/user/moviestore/internal/utils"
)

// ==================== 演员 ====================

func (h *Handler) CreateActor(c *gin.Context) {
	var cmd service.CreateActor
	if !bindJSON(c, &cmd) {
		return
	}
	if res, ok := send[*service.ActorResponse](h, c, cmd); ok {
		utils.Created(c, res)
	}
}

func (h *Handler) ListActors(c *gin.Context) {
	if res, ok := send[[]*service.ActorResponse](h, c, service.ListActors{}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) GetActor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.ActorResponse](h, c, service.GetActorByID{ID: id}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) UpdateActor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd service.UpdateActor
	if !bindJSON(c, &cmd) {
		return
	}
	cmd.ID = id
	if res, ok := send[*service.ActorResponse](h, c, cmd); ok {
		utils.Success(c, res)
	}
}

// DeleteActor 返回停用后的演员
func (h *Handler) DeleteActor(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.ActorResponse](h, c, service.DeleteActor{ID: id}); ok {
		utils.Success(c, res)
	}
}

// ActorMovies 演员当前参演的电影
func (h *Handler) ActorMovies(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[[]*service.MovieResponse](h, c, service.GetActiveMoviesForActor{ActorID: id}); ok {
		utils.Success(c, res)
	}
}

// ==================== 导演 ====================

func (h *Handler) CreateDirector(c *gin.Context) {
	var cmd service.CreateDirector
	if !bindJSON(c, &cmd) {
		return
	}
	if res, ok := send[*service.DirectorResponse](h, c, cmd); ok {
		utils.Created(c, res)
	}
}

func (h *Handler) ListDirectors(c *gin.Context) {
	if res, ok := send[[]*service.DirectorResponse](h, c, service.ListDirectors{}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) GetDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.DirectorResponse](h, c, service.GetDirectorByID{ID: id}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) UpdateDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd service.UpdateDirector
	if !bindJSON(c, &cmd) {
		return
	}
	cmd.ID = id
	if res, ok := send[*service.DirectorResponse](h, c, cmd); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) DeleteDirector(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.DirectorResponse](h, c, service.DeleteDirector{ID: id}); ok {
		utils.Success(c, res)
	}
}

// ==================== 电影 ====================

// CreateMovie 201 并设置 Location
func (h *Handler) CreateMovie(c *gin.Context) {
	var cmd service.CreateMovie
	if !bindJSON(c, &cmd) {
		return
	}
	if res, ok := send[*service.MovieResponse](h, c, cmd); ok {
		c.Header("Location", "/movies/"+res.ID.String())
		utils.Created(c, res)
	}
}

func (h *Handler) ListMovies(c *gin.Context) {
	if res, ok := send[[]*service.MovieResponse](h, c, service.ListMovies{}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[*service.MovieResponse](h, c, service.GetMovieByID{ID: id}); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) UpdateMovie(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd service.UpdateMovie
	if !bindJSON(c, &cmd) {
		return
	}
	cmd.ID = id
	if res, ok := send[*service.MovieResponse](h, c, cmd); ok {
		utils.Success(c, res)
	}
}

func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, ok := send[struct{}](h, c, service.DeleteMovie{ID: id}); ok {
		utils.NoContent(c)
	}
}

// ==================== 电影演员 ====================

// LinkActor 新建或重新启用关联都返回 201
func (h *Handler) LinkActor(c *gin.Context) {
	movieID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var cmd service.LinkActorToMovie
	if !bindJSON(c, &cmd) {
		return
	}
	cmd.MovieID = movieID
	if res, ok := send[*service.MovieActorStatusResponse](h, c, cmd); ok {
		utils.Created(c, res)
	}
}

// UnlinkActor ?hardDelete=true 时物理删除
func (h *Handler) UnlinkActor(c *gin.Context) {
	movieID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := pathID(c, "actorId")
	if !ok {
		return
	}
	hardDelete := false
	if raw := c.Query("hardDelete"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequest(c, "invalid hardDelete")
			return
		}
		hardDelete = v
	}

	cmd := service.UnlinkActorFromMovie{MovieID: movieID, ActorID: actorID, HardDelete: hardDelete}
	if _, ok := send[struct{}](h, c, cmd); ok {
		utils.NoContent(c)
	}
}

// MovieActors 电影当前启用的演员
func (h *Handler) MovieActors(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if res, ok := send[[]*service.ActorResponse](h, c, service.GetActiveActorsForMovie{MovieID: id}); ok {
		utils.Success(c, res)
	}
}
