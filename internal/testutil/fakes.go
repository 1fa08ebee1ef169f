// Package testutil holds in-memory repository and verifier doubles shared by
// service and handler tests. Every repository counts calls so tests can assert
// that rejected requests never reached persistence.
package testutil

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"rockroutes/internal/models/db_models"
	"rockroutes/internal/repositories"
	"rockroutes/pkg/utils"
)

type CallCounter struct {
	calls atomic.Int64
}

func (c *CallCounter) hit() { c.calls.Add(1) }

func (c *CallCounter) Calls() int64 { return c.calls.Load() }

func (c *CallCounter) Reset() { c.calls.Store(0) }

func stamp(b *db_models.BaseModel) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// AccountRepo is an in-memory repositories.AccountRepository.
type AccountRepo struct {
	CallCounter
	mu       sync.Mutex
	accounts map[uuid.UUID]db_models.Account
	Err      error
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{accounts: map[uuid.UUID]db_models.Account{}}
}

func (r *AccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	for _, existing := range r.accounts {
		if existing.Email == account.Email {
			return repositories.ErrDuplicateKey
		}
		if account.GoogleID != nil && existing.GoogleID != nil && *existing.GoogleID == *account.GoogleID {
			return repositories.ErrDuplicateKey
		}
	}
	stamp(&account.BaseModel)
	r.accounts[account.ID] = *account
	return nil
}

func (r *AccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	stored, ok := r.accounts[account.ID]
	if !ok {
		return nil
	}
	stored.GoogleID = account.GoogleID
	stored.Name = account.Name
	stored.GivenName = account.GivenName
	stored.FamilyName = account.FamilyName
	stored.Picture = account.Picture
	stored.UpdatedAt = time.Now()
	r.accounts[account.ID] = stored
	return nil
}

func (r *AccountRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	account.PasswordHash = nil
	return &account, nil
}

func (r *AccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return r.findBy(func(a db_models.Account) bool { return a.Email == email })
}

func (r *AccountRepo) FindByGoogleId(ctx context.Context, googleId string) (*db_models.Account, error) {
	return r.findBy(func(a db_models.Account) bool { return a.GoogleID != nil && *a.GoogleID == googleId })
}

func (r *AccountRepo) findBy(match func(db_models.Account) bool) (*db_models.Account, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	for _, account := range r.accounts {
		if match(account) {
			return &account, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored accounts.
func (r *AccountRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.accounts)
}

// Put stores an account as-is, bypassing the call counter.
func (r *AccountRepo) Put(account db_models.Account) db_models.Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&account.BaseModel)
	r.accounts[account.ID] = account
	return account
}

// GymRepo is an in-memory repositories.GymRepositoryInterface.
type GymRepo struct {
	CallCounter
	mu     sync.Mutex
	gyms   map[uuid.UUID]db_models.Gym
	Err    error
	routes *RouteRepo
}

func NewGymRepo() *GymRepo {
	return &GymRepo{gyms: map[uuid.UUID]db_models.Gym{}}
}

// CascadeTo makes DeleteGym remove the gym's routes, like the foreign key does.
func (r *GymRepo) CascadeTo(routes *RouteRepo) {
	r.routes = routes
}

func (r *GymRepo) CreateGym(ctx context.Context, gym *db_models.Gym) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	stamp(&gym.BaseModel)
	r.gyms[gym.ID] = *gym
	return nil
}

func (r *GymRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Gym, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	gym, ok := r.gyms[id]
	if !ok {
		return nil, nil
	}
	return &gym, nil
}

func (r *GymRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Gym, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	gyms := []db_models.Gym{}
	for _, gym := range r.gyms {
		if gym.UserID == userID {
			gyms = append(gyms, gym)
		}
	}
	sort.Slice(gyms, func(i, j int) bool { return gyms[i].CreatedAt.After(gyms[j].CreatedAt) })
	return gyms, nil
}

func (r *GymRepo) UpdateGym(ctx context.Context, gym *db_models.Gym) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	stamp(&gym.BaseModel)
	r.gyms[gym.ID] = *gym
	return nil
}

func (r *GymRepo) DeleteGym(ctx context.Context, id uuid.UUID) error {
	r.hit()
	r.mu.Lock()
	if r.Err != nil {
		r.mu.Unlock()
		return r.Err
	}
	delete(r.gyms, id)
	r.mu.Unlock()

	if r.routes != nil {
		r.routes.deleteByGym(id)
	}
	return nil
}

// Get reads a stored gym without counting a call.
func (r *GymRepo) Get(id uuid.UUID) (db_models.Gym, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	gym, ok := r.gyms[id]
	return gym, ok
}

// RouteRepo is an in-memory repositories.RouteRepositoryInterface.
type RouteRepo struct {
	CallCounter
	mu     sync.Mutex
	routes map[uuid.UUID]db_models.Route
	Err    error
	Writes int
}

func NewRouteRepo() *RouteRepo {
	return &RouteRepo{routes: map[uuid.UUID]db_models.Route{}}
}

func (r *RouteRepo) CreateRoute(ctx context.Context, route *db_models.Route) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	stamp(&route.BaseModel)
	r.routes[route.ID] = cloneRoute(*route)
	r.Writes++
	return nil
}

func (r *RouteRepo) FindById(ctx context.Context, id uuid.UUID) (*db_models.Route, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	route, ok := r.routes[id]
	if !ok {
		return nil, nil
	}
	route = cloneRoute(route)
	return &route, nil
}

func (r *RouteRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Route, error) {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}

	routes := []db_models.Route{}
	for _, route := range r.routes {
		if route.UserID == userID {
			routes = append(routes, cloneRoute(route))
		}
	}
	sort.Slice(routes, func(i, j int) bool { return routes[i].CreatedAt.After(routes[j].CreatedAt) })
	return routes, nil
}

func (r *RouteRepo) UpdateRoute(ctx context.Context, route *db_models.Route) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	stamp(&route.BaseModel)
	r.routes[route.ID] = cloneRoute(*route)
	r.Writes++
	return nil
}

func (r *RouteRepo) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	r.hit()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}

	delete(r.routes, id)
	return nil
}

// Get reads a stored route without counting a call.
func (r *RouteRepo) Get(id uuid.UUID) (db_models.Route, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	route, ok := r.routes[id]
	return cloneRoute(route), ok
}

func (r *RouteRepo) deleteByGym(gymID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, route := range r.routes {
		if route.GymID == gymID {
			delete(r.routes, id)
		}
	}
}

func cloneRoute(route db_models.Route) db_models.Route {
	if route.Attributes != nil {
		route.Attributes = append([]string(nil), route.Attributes...)
	}
	return route
}

// GoogleVerifier maps ID tokens to identities; unknown tokens fail.
type GoogleVerifier struct {
	Identities map[string]*utils.GoogleIdentity
}

func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{Identities: map[string]*utils.GoogleIdentity{}}
}

func (g *GoogleVerifier) Verify(ctx context.Context, token string) (*utils.GoogleIdentity, error) {
	identity, ok := g.Identities[token]
	if !ok {
		return nil, utils.ErrGoogleAuthFailed
	}
	copied := *identity
	return &copied, nil
}
