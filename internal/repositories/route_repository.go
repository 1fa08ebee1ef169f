package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rockroutes/internal/models/db_models"
)

type RouteRepositoryInterface interface {
	CreateRoute(ctx context.Context, route *db_models.Route) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Route, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Route, error)
	UpdateRoute(ctx context.Context, route *db_models.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error
}

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepositoryInterface {
	return &RouteRepository{db: db}
}

func (r *RouteRepository) CreateRoute(ctx context.Context, route *db_models.Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *RouteRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Route, error) {
	var route db_models.Route
	err := r.db.WithContext(ctx).First(&route, "id = ?", id).Error

	return optional(&route, err)
}

func (r *RouteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Route, error) {
	routes := []db_models.Route{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&routes).Error
	return routes, err
}

// UpdateRoute writes the whole row; concurrent writers are last-write-wins.
func (r *RouteRepository) UpdateRoute(ctx context.Context, route *db_models.Route) error {
	return r.db.WithContext(ctx).Save(route).Error
}

func (r *RouteRepository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Route{}, "id = ?", id).Error
}
