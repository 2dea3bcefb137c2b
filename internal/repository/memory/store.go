// Package memory 提供与 gorm 仓库行为一致的内存实现，用于测试和 STORE=memory 的本地运行。
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/user/moviestore/internal/model"
	"github.com/user/moviestore/internal/repository"
)

type linkKey struct {
	movieID uuid.UUID
	actorID uuid.UUID
}

// Store 内存数据
type Store struct {
	mu sync.RWMutex
	// txMu 串行化事务，保证快照/回滚不互相覆盖。
	// 事务外的读取持有读锁，看不到未提交的写入。
	txMu sync.RWMutex

	actors    map[uuid.UUID]model.Actor
	directors map[uuid.UUID]model.Director
	movies    map[uuid.UUID]model.Movie
	links     map[linkKey]model.MovieActor
	users     map[uuid.UUID]model.User
	orders    map[uuid.UUID]model.Order
}

// NewStore 创建空的内存数据
func NewStore() *Store {
	return &Store{
		actors:    map[uuid.UUID]model.Actor{},
		directors: map[uuid.UUID]model.Director{},
		movies:    map[uuid.UUID]model.Movie{},
		links:     map[linkKey]model.MovieActor{},
		users:     map[uuid.UUID]model.User{},
		orders:    map[uuid.UUID]model.Order{},
	}
}

// New 创建基于内存的仓库集合
func New() *repository.Repositories {
	return NewStore().Repositories()
}

// Repositories 返回共享同一份数据的仓库集合
func (s *Store) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Tx:         &scope{s: s},
		Actor:      &actorStore{s: s},
		Director:   &directorStore{s: s},
		Movie:      &movieStore{s: s},
		MovieActor: &movieActorStore{s: s},
		User:       &userStore{s: s},
		Order:      &orderStore{s: s},
	}
}

type snapshot struct {
	actors    map[uuid.UUID]model.Actor
	directors map[uuid.UUID]model.Director
	movies    map[uuid.UUID]model.Movie
	links     map[linkKey]model.MovieActor
	users     map[uuid.UUID]model.User
	orders    map[uuid.UUID]model.Order
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		actors:    cloneMap(s.actors),
		directors: cloneMap(s.directors),
		movies:    cloneMap(s.movies),
		links:     cloneMap(s.links),
		users:     cloneMap(s.users),
		orders:    cloneMap(s.orders),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actors = snap.actors
	s.directors = snap.directors
	s.movies = snap.movies
	s.links = snap.links
	s.users = snap.users
	s.orders = snap.orders
}

type txKey struct{}

// rlock 读取加锁，事务外还需等待正在执行的事务结束
func (s *Store) rlock(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		s.mu.RLock()
		return s.mu.RUnlock
	}
	s.txMu.RLock()
	s.mu.RLock()
	return func() {
		s.mu.RUnlock()
		s.txMu.RUnlock()
	}
}

type scope struct {
	s *Store
}

// Execute fn 出错时恢复到执行前的快照
func (sc *scope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	sc.s.txMu.Lock()
	defer sc.s.txMu.Unlock()

	snap := sc.s.snapshot()
	err := fn(context.WithValue(ctx, txKey{}, true))
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		sc.s.restore(snap)
		return err
	}
	return nil
}

// ---- actors ----

type actorStore struct {
	s *Store
}

func (r *actorStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Actor, error) {
	defer r.s.rlock(ctx)()
	if a, ok := r.s.actors[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *actorStore) FindByName(ctx context.Context, name, surname string) (*model.Actor, error) {
	defer r.s.rlock(ctx)()
	for _, a := range r.s.actors {
		if a.Name == name && a.Surname == surname {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *actorStore) FindActiveByName(ctx context.Context, name, surname string, except uuid.UUID) (*model.Actor, error) {
	defer r.s.rlock(ctx)()
	for _, a := range r.s.actors {
		if a.IsActive && a.Name == name && a.Surname == surname && a.ID != except {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *actorStore) List(ctx context.Context) ([]*model.Actor, error) {
	defer r.s.rlock(ctx)()
	out := make([]*model.Actor, 0, len(r.s.actors))
	for _, a := range r.s.actors {
		out = append(out, &a)
	}
	sortPeople(out, func(a *model.Actor) (string, string) { return a.Surname, a.Name })
	return out, nil
}

func (r *actorStore) Create(ctx context.Context, actor *model.Actor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.actors[actor.ID]; ok {
		return model.Conflict("actor already exists")
	}
	r.s.actors[actor.ID] = *actor
	return nil
}

func (r *actorStore) Save(ctx context.Context, actor *model.Actor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.actors[actor.ID] = *actor
	return nil
}

// ---- directors ----

type directorStore struct {
	s *Store
}

func (r *directorStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Director, error) {
	defer r.s.rlock(ctx)()
	if d, ok := r.s.directors[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (r *directorStore) FindActiveByName(ctx context.Context, name, surname string, except uuid.UUID) (*model.Director, error) {
	defer r.s.rlock(ctx)()
	return r.activeByName(name, surname, except), nil
}

// activeByName 调用方需持有锁
func (r *directorStore) activeByName(name, surname string, except uuid.UUID) *model.Director {
	for _, d := range r.s.directors {
		if d.IsActive && d.Name == name && d.Surname == surname && d.ID != except {
			return &d
		}
	}
	return nil
}

func (r *directorStore) ListActive(ctx context.Context) ([]*model.Director, error) {
	defer r.s.rlock(ctx)()
	out := make([]*model.Director, 0, len(r.s.directors))
	for _, d := range r.s.directors {
		if d.IsActive {
			out = append(out, &d)
		}
	}
	sortPeople(out, func(d *model.Director) (string, string) { return d.Surname, d.Name })
	return out, nil
}

func (r *directorStore) Create(ctx context.Context, director *model.Director) error {
	return r.put(director)
}

func (r *directorStore) Save(ctx context.Context, director *model.Director) error {
	return r.put(director)
}

// put 模拟部分唯一索引 ux_directors_active_name
func (r *directorStore) put(director *model.Director) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if director.IsActive && r.activeByName(director.Name, director.Surname, director.ID) != nil {
		return model.Conflict("active director with this name already exists")
	}
	r.s.directors[director.ID] = *director
	return nil
}

// ---- movies ----

type movieStore struct {
	s *Store
}

func (r *movieStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Movie, error) {
	defer r.s.rlock(ctx)()
	if m, ok := r.s.movies[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *movieStore) List(ctx context.Context) ([]*model.Movie, error) {
	defer r.s.rlock(ctx)()
	out := make([]*model.Movie, 0, len(r.s.movies))
	for _, m := range r.s.movies {
		out = append(out, &m)
	}
	sortMovies(out)
	return out, nil
}

func (r *movieStore) Create(ctx context.Context, movie *model.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.directors[movie.DirectorID]; !ok {
		return model.NotFound("director %s not found", movie.DirectorID)
	}
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *movieStore) Save(ctx context.Context, movie *model.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.movies[movie.ID] = *movie
	return nil
}

func (r *movieStore) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.movies, id)
	return nil
}

// ---- movie actors ----

type movieActorStore struct {
	s *Store
}

func (r *movieActorStore) Find(ctx context.Context, movieID, actorID uuid.UUID) (*model.MovieActor, error) {
	defer r.s.rlock(ctx)()
	if l, ok := r.s.links[linkKey{movieID, actorID}]; ok {
		return &l, nil
	}
	return nil, nil
}

func (r *movieActorStore) Create(ctx context.Context, link *model.MovieActor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := linkKey{link.MovieID, link.ActorID}
	if _, ok := r.s.links[key]; ok {
		return model.Conflict("movie actor link already exists")
	}
	r.s.links[key] = *link
	return nil
}

func (r *movieActorStore) Save(ctx context.Context, link *model.MovieActor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := linkKey{link.MovieID, link.ActorID}
	if l, ok := r.s.links[key]; ok {
		l.IsActive = link.IsActive
		r.s.links[key] = l
	}
	return nil
}

func (r *movieActorStore) Delete(ctx context.Context, movieID, actorID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.links, linkKey{movieID, actorID})
	return nil
}

func (r *movieActorStore) DeleteByMovie(ctx context.Context, movieID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for key := range r.s.links {
		if key.movieID == movieID {
			delete(r.s.links, key)
		}
	}
	return nil
}

func (r *movieActorStore) ActiveActorsForMovie(ctx context.Context, movieID uuid.UUID) ([]*model.Actor, error) {
	defer r.s.rlock(ctx)()
	out := []*model.Actor{}
	for key, l := range r.s.links {
		if key.movieID != movieID || !l.IsActive {
			continue
		}
		if a, ok := r.s.actors[key.actorID]; ok && a.IsActive {
			out = append(out, &a)
		}
	}
	sortPeople(out, func(a *model.Actor) (string, string) { return a.Surname, a.Name })
	return out, nil
}

func (r *movieActorStore) ActiveMoviesForActor(ctx context.Context, actorID uuid.UUID) ([]*model.Movie, error) {
	defer r.s.rlock(ctx)()
	out := []*model.Movie{}
	for key, l := range r.s.links {
		if key.actorID != actorID || !l.IsActive {
			continue
		}
		if m, ok := r.s.movies[key.movieID]; ok && m.IsActive {
			out = append(out, &m)
		}
	}
	sortMovies(out)
	return out, nil
}

// ---- users ----

type userStore struct {
	s *Store
}

func (r *userStore) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	defer r.s.rlock(ctx)()
	if u, ok := r.s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *userStore) FindActiveByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	defer r.s.rlock(ctx)()
	if u, ok := r.s.users[id]; ok && u.IsActive {
		return &u, nil
	}
	return nil, nil
}

func (r *userStore) FindActiveByLogin(ctx context.Context, usernameOrEmail string) (*model.User, error) {
	defer r.s.rlock(ctx)()
	for _, u := range r.s.users {
		if u.IsActive && (u.Username == usernameOrEmail || u.Email == usernameOrEmail) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userStore) ActiveUsernameExists(ctx context.Context, username string) (bool, error) {
	defer r.s.rlock(ctx)()
	return r.taken(username, "", uuid.Nil), nil
}

func (r *userStore) ActiveEmailExists(ctx context.Context, email string) (bool, error) {
	defer r.s.rlock(ctx)()
	return r.taken("", email, uuid.Nil), nil
}

// taken 调用方需持有锁，空字符串的条件不参与匹配
func (r *userStore) taken(username, email string, except uuid.UUID) bool {
	for _, u := range r.s.users {
		if !u.IsActive || u.ID == except {
			continue
		}
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return true
		}
	}
	return false
}

func (r *userStore) ListActive(ctx context.Context) ([]*model.User, error) {
	defer r.s.rlock(ctx)()
	out := []*model.User{}
	for _, u := range r.s.users {
		if u.IsActive {
			out = append(out, &u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Username < out[j].Username
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *userStore) Create(ctx context.Context, user *model.User) error {
	return r.put(user)
}

func (r *userStore) Save(ctx context.Context, user *model.User) error {
	return r.put(user)
}

// put 模拟 ux_users_active_username / ux_users_active_email
func (r *userStore) put(user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if user.IsActive && r.taken(user.Username, user.Email, user.ID) {
		return model.Conflict("username or email already exists")
	}
	u := *user
	u.Orders = nil
	r.s.users[user.ID] = u
	return nil
}

// ---- orders ----

type orderStore struct {
	s *Store
}

func (r *orderStore) Create(ctx context.Context, order *model.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[order.UserID]; !ok {
		return model.NotFound("user %s not found", order.UserID)
	}
	r.s.orders[order.ID] = *order
	return nil
}

func (r *orderStore) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*model.Order, error) {
	defer r.s.rlock(ctx)()
	out := []*model.Order{}
	for _, o := range r.s.orders {
		if o.UserID == userID && o.IsActive {
			out = append(out, &o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out, nil
}

func (r *orderStore) FindActiveForUser(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error) {
	defer r.s.rlock(ctx)()
	if o, ok := r.s.orders[orderID]; ok && o.UserID == userID && o.IsActive {
		return &o, nil
	}
	return nil, nil
}

// ---- ordering ----

func sortPeople[T any](items []*T, key func(*T) (string, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		si, ni := key(items[i])
		sj, nj := key(items[j])
		if si != sj {
			return si < sj
		}
		return ni < nj
	})
}

func sortMovies(movies []*model.Movie) {
	sort.SliceStable(movies, func(i, j int) bool {
		if movies[i].Year != movies[j].Year {
			return movies[i].Year > movies[j].Year
		}
		return movies[i].Title < movies[j].Title
	})
}
