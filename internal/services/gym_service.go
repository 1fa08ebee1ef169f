package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"rockroutes/internal/models/db_models"
	"rockroutes/internal/models/request_models"
	"rockroutes/internal/repositories"
	"rockroutes/pkg/utils"
)

type GymServiceInterface interface {
	CreateGym(ctx context.Context, accountID uuid.UUID, request request_models.CreateGymRequest) (*db_models.Gym, error)
	ListGyms(ctx context.Context, accountID uuid.UUID) ([]db_models.Gym, error)
	GetGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID) (*db_models.Gym, error)
	UpdateGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID, request request_models.UpdateGymRequest) (*db_models.Gym, error)
	DeleteGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID) error
}

type GymService struct {
	gymRepo repositories.GymRepositoryInterface
}

func NewGymService(gymRepo repositories.GymRepositoryInterface) GymServiceInterface {
	return &GymService{gymRepo: gymRepo}
}

func (s *GymService) CreateGym(ctx context.Context, accountID uuid.UUID, request request_models.CreateGymRequest) (*db_models.Gym, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrNotAuthenticated
	}

	isIndoor := true
	if request.IsIndoor != nil {
		isIndoor = *request.IsIndoor
	}

	gym := &db_models.Gym{
		Name:        strings.TrimSpace(request.Name),
		Img:         strings.TrimSpace(request.Img),
		Address:     strings.TrimSpace(request.Address),
		Description: strings.TrimSpace(request.Description),
		IsIndoor:    isIndoor,
		UserID:      accountID,
	}
	if err := utils.ValidateModel(gym); err != nil {
		return nil, err
	}

	if err := s.gymRepo.CreateGym(ctx, gym); err != nil {
		return nil, dbError(err)
	}
	return gym, nil
}

func (s *GymService) ListGyms(ctx context.Context, accountID uuid.UUID) ([]db_models.Gym, error) {
	if accountID == uuid.Nil {
		return nil, utils.ErrNotAuthenticated
	}

	gyms, err := s.gymRepo.ListByUser(ctx, accountID)
	if err != nil {
		return nil, dbError(err)
	}
	return gyms, nil
}

func (s *GymService) GetGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID) (*db_models.Gym, error) {
	return s.findOwnedGym(ctx, accountID, gymID)
}

func (s *GymService) UpdateGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID, request request_models.UpdateGymRequest) (*db_models.Gym, error) {
	gym, err := s.findOwnedGym(ctx, accountID, gymID)
	if err != nil {
		return nil, err
	}

	applyGymUpdate(gym, request)
	if err := utils.ValidateModel(gym); err != nil {
		return nil, err
	}

	if err := s.gymRepo.UpdateGym(ctx, gym); err != nil {
		return nil, dbError(err)
	}
	return gym, nil
}

func (s *GymService) DeleteGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID) error {
	if _, err := s.findOwnedGym(ctx, accountID, gymID); err != nil {
		return err
	}

	if err := s.gymRepo.DeleteGym(ctx, gymID); err != nil {
		return dbError(err)
	}
	return nil
}

func (s *GymService) findOwnedGym(ctx context.Context, accountID uuid.UUID, gymID uuid.UUID) (*db_models.Gym, error) {
	return findOwned[db_models.Gym](ctx, s.gymRepo.FindById, gymID, accountID, utils.ErrGymNotFound, utils.ErrGymAccessDenied)
}

func applyGymUpdate(gym *db_models.Gym, request request_models.UpdateGymRequest) {
	if request.Name != nil {
		gym.Name = strings.TrimSpace(*request.Name)
	}
	if request.Img != nil {
		gym.Img = strings.TrimSpace(*request.Img)
	}
	if request.Address != nil {
		gym.Address = strings.TrimSpace(*request.Address)
	}
	if request.Description != nil {
		gym.Description = strings.TrimSpace(*request.Description)
	}
	if request.IsIndoor != nil {
		gym.IsIndoor = *request.IsIndoor
	}
}
