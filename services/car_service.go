package services

import (
	"context"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
)

// CarService adds the storefront listings to car CRUD.
type CarService interface {
	CrudService[models.Car]
	TopRated(ctx context.Context, limit int) ([]models.RatedCar, *ServiceError)
	NewArrivals(ctx context.Context, limit int) ([]models.Car, *ServiceError)
	BudgetFriendly(ctx context.Context, limit int) ([]models.Car, *ServiceError)
	Details(ctx context.Context, carID uint) (*models.CarDetails, *ServiceError)
}

type carServiceImpl struct {
	CrudService[models.Car]
	repo   repository.CarRepository
	logger *zap.Logger
}

func NewCarService(repo repository.CarRepository, logger *zap.Logger) CarService {
	return &carServiceImpl{
		CrudService: NewCrudService[models.Car](repo, "Car", logger),
		repo:        repo,
		logger:      logger,
	}
}

func (s *carServiceImpl) TopRated(ctx context.Context, limit int) ([]models.RatedCar, *ServiceError) {
	cars, err := s.repo.TopRated(ctx, limit)
	if err != nil {
		return nil, classify(s.logger, "Car", "list top rated", err)
	}
	return cars, nil
}

func (s *carServiceImpl) NewArrivals(ctx context.Context, limit int) ([]models.Car, *ServiceError) {
	cars, err := s.repo.NewArrivals(ctx, limit)
	if err != nil {
		return nil, classify(s.logger, "Car", "list new arrivals", err)
	}
	return cars, nil
}

func (s *carServiceImpl) BudgetFriendly(ctx context.Context, limit int) ([]models.Car, *ServiceError) {
	cars, err := s.repo.BudgetFriendly(ctx, limit)
	if err != nil {
		return nil, classify(s.logger, "Car", "list budget friendly", err)
	}
	return cars, nil
}

func (s *carServiceImpl) Details(ctx context.Context, carID uint) (*models.CarDetails, *ServiceError) {
	details, err := s.repo.Details(ctx, carID)
	if err != nil {
		return nil, classify(s.logger, "Car", "load details for", err)
	}
	return details, nil
}
