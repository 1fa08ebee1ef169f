package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"rockroutes/internal/models/db_models"
	"rockroutes/internal/models/request_models"
	"rockroutes/internal/repositories"
	"rockroutes/pkg/utils"
)

type RouteServiceInterface interface {
	CreateRoute(ctx context.Context, accountID uuid.UUID, request request_models.CreateRouteRequest) (*db_models.Route, error)
	ListRoutes(ctx context.Context, accountID uuid.UUID) ([]db_models.Route, error)
	GetRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error)
	UpdateRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID, request request_models.UpdateRouteRequest) (*db_models.Route, error)
	DeleteRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) error

	LogAttempt(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error)
	ToggleProject(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error)
	MarkComplete(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error)
}

type RouteService struct {
	routeRepo repositories.RouteRepositoryInterface
	gymRepo   repositories.GymRepositoryInterface
	now       func() time.Time
}

func NewRouteService(routeRepo repositories.RouteRepositoryInterface, gymRepo repositories.GymRepositoryInterface) RouteServiceInterface {
	return &RouteService{
		routeRepo: routeRepo,
		gymRepo:   gymRepo,
		now:       time.Now,
	}
}

func (s *RouteService) CreateRoute(ctx context.Context, accountID uuid.UUID, request request_models.CreateRouteRequest) (*db_models.Route, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrNotAuthenticated
	}

	gymID, err := s.resolveGym(ctx, accountID, request.Gym)
	if err != nil {
		return nil, err
	}

	route := &db_models.Route{
		Name:              strings.TrimSpace(request.Name),
		Img:               strings.TrimSpace(request.Img),
		Grade:             strings.TrimSpace(request.Grade),
		Difficulty:        request.Difficulty,
		GradeSystem:       strings.TrimSpace(request.GradeSystem),
		IsProject:         deref(request.IsProject, false),
		GymID:             gymID,
		Protection:        strings.TrimSpace(request.Protection),
		Setter:            strings.TrimSpace(request.Setter),
		DateSet:           request.DateSet,
		HoldType:          strings.TrimSpace(request.HoldType),
		HoldColor:         strings.TrimSpace(request.HoldColor),
		Attributes:        trimAll(request.Attributes),
		Notes:             strings.TrimSpace(request.Notes),
		Attempts:          deref(request.Attempts, 0),
		MostRecentAttempt: request.MostRecentAttempt,
		IsComplete:        deref(request.IsComplete, false),
		DateComplete:      request.DateComplete,
		UserID:            accountID,
	}
	if route.IsComplete {
		s.completeFields(route, request.DateComplete)
	}
	enforceCompletion(route)

	if err := utils.ValidateModel(route); err != nil {
		return nil, err
	}

	if err := s.routeRepo.CreateRoute(ctx, route); err != nil {
		return nil, persistError(err)
	}
	return route, nil
}

func (s *RouteService) ListRoutes(ctx context.Context, accountID uuid.UUID) ([]db_models.Route, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrNotAuthenticated
	}

	routes, err := s.routeRepo.ListByUser(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	return routes, nil
}

func (s *RouteService) GetRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error) {
	return s.findOwnedRoute(ctx, accountID, routeID)
}

func (s *RouteService) UpdateRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID, request request_models.UpdateRouteRequest) (*db_models.Route, error) {
	route, err := s.findOwnedRoute(ctx, accountID, routeID)
	if err != nil {
		return nil, err
	}

	if request.Attempts != nil && *request.Attempts < route.Attempts {
		return nil, utils.NewValidationError("attempts", "attempts cannot decrease")
	}
	if request.Gym != nil {
		gymID, err := s.resolveGym(ctx, accountID, *request.Gym)
		if err != nil {
			return nil, err
		}
		route.GymID = gymID
	}

	wasComplete := route.IsComplete
	applyRouteUpdate(route, request)
	if !wasComplete && route.IsComplete {
		s.completeFields(route, request.DateComplete)
	}
	enforceCompletion(route)

	if err := utils.ValidateModel(route); err != nil {
		return nil, err
	}

	if err := s.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, persistError(err)
	}
	return route, nil
}

func (s *RouteService) DeleteRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) error {
	if _, err := s.findOwnedRoute(ctx, accountID, routeID); err != nil {
		return err
	}

	if err := s.routeRepo.DeleteRoute(ctx, routeID); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *RouteService) LogAttempt(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error) {
	route, err := s.findOwnedRoute(ctx, accountID, routeID)
	if err != nil {
		return nil, err
	}

	route.LogAttempt(s.now())
	if err := s.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, dbError(err)
	}
	return route, nil
}

func (s *RouteService) ToggleProject(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error) {
	route, err := s.findOwnedRoute(ctx, accountID, routeID)
	if err != nil {
		return nil, err
	}

	route.ToggleProject()
	if err := s.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, dbError(err)
	}
	return route, nil
}

// MarkComplete is idempotent: a route that is already complete is returned
// without being written.
func (s *RouteService) MarkComplete(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error) {
	route, err := s.findOwnedRoute(ctx, accountID, routeID)
	if err != nil {
		return nil, err
	}

	if !route.MarkComplete(s.now()) {
		return route, nil
	}
	if err := s.routeRepo.UpdateRoute(ctx, route); err != nil {
		return nil, dbError(err)
	}
	return route, nil
}

func (s *RouteService) findOwnedRoute(ctx context.Context, accountID uuid.UUID, routeID uuid.UUID) (*db_models.Route, error) {
	return findOwned[db_models.Route](ctx, s.routeRepo.FindById, routeID, accountID, utils.ErrRouteNotFound, utils.ErrRouteAccessDenied)
}

// resolveGym only accepts gyms the caller owns, so a route can never hang off
// someone else's gym.
func (s *RouteService) resolveGym(ctx context.Context, accountID uuid.UUID, rawID string) (uuid.UUID, error) {
	gymID, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return uuid.Nil, utils.NewValidationError("gym", "Invalid gym ID")
	}

	gym, err := s.gymRepo.FindById(ctx, gymID)
	if err != nil {
		return uuid.Nil, dbError(err)
	}
	if gym == nil || !IsOwner(gym, accountID) {
		return uuid.Nil, utils.NewValidationError("gym", "Gym not found")
	}
	return gymID, nil
}

func (s *RouteService) completeFields(route *db_models.Route, dateComplete *time.Time) {
	route.IsProject = false
	if dateComplete == nil {
		now := s.now()
		route.DateComplete = &now
	}
}

// enforceCompletion keeps a complete route off the project list and drops a
// completion date from a route that is not complete.
func enforceCompletion(route *db_models.Route) {
	if route.IsComplete {
		route.IsProject = false
	} else {
		route.DateComplete = nil
	}
}

func applyRouteUpdate(route *db_models.Route, request request_models.UpdateRouteRequest) {
	setTrimmed(&route.Name, request.Name)
	setTrimmed(&route.Img, request.Img)
	setTrimmed(&route.Grade, request.Grade)
	setTrimmed(&route.GradeSystem, request.GradeSystem)
	setTrimmed(&route.Protection, request.Protection)
	setTrimmed(&route.Setter, request.Setter)
	setTrimmed(&route.HoldType, request.HoldType)
	setTrimmed(&route.HoldColor, request.HoldColor)
	setTrimmed(&route.Notes, request.Notes)

	if request.Difficulty != nil {
		route.Difficulty = request.Difficulty
	}
	if request.IsProject != nil {
		route.IsProject = *request.IsProject
	}
	if request.DateSet != nil {
		route.DateSet = request.DateSet
	}
	if request.Attributes != nil {
		route.Attributes = trimAll(request.Attributes)
	}
	if request.Attempts != nil {
		route.Attempts = *request.Attempts
	}
	if request.MostRecentAttempt != nil {
		route.MostRecentAttempt = request.MostRecentAttempt
	}
	if request.IsComplete != nil {
		route.IsComplete = *request.IsComplete
	}
	if request.DateComplete != nil {
		route.DateComplete = request.DateComplete
	}
}

// persistError maps a gym deleted between the ownership check and the write
// onto the same field error as an unknown gym.
func persistError(err error) error {
	if repositories.IsForeignKeyViolation(err) {
		return utils.NewValidationError("gym", "Gym not found")
	}
	return dbError(err)
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func trimAll(values []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func deref[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
