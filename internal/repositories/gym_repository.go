package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"rockroutes/internal/models/db_models"
)

type GymRepositoryInterface interface {
	CreateGym(ctx context.Context, gym *db_models.Gym) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Gym, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Gym, error)
	UpdateGym(ctx context.Context, gym *db_models.Gym) error
	DeleteGym(ctx context.Context, id uuid.UUID) error
}

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) GymRepositoryInterface {
	return &GymRepository{db: db}
}

func (r *GymRepository) CreateGym(ctx context.Context, gym *db_models.Gym) error {
	return r.db.WithContext(ctx).Create(gym).Error
}

func (r *GymRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Gym, error) {
	var gym db_models.Gym
	err := r.db.WithContext(ctx).First(&gym, "id = ?", id).Error

	return optional(&gym, err)
}

func (r *GymRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Gym, error) {
	gyms := []db_models.Gym{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&gyms).Error
	return gyms, err
}

func (r *GymRepository) UpdateGym(ctx context.Context, gym *db_models.Gym) error {
	return r.db.WithContext(ctx).Save(gym).Error
}

// DeleteGym relies on the foreign key to remove the gym's routes.
func (r *GymRepository) DeleteGym(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Gym{}, "id = ?", id).Error
}
