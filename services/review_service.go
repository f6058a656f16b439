package services

import (
	"context"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
)

type ReviewService interface {
	CrudService[models.Review]
	ForCar(ctx context.Context, carID uint) ([]models.CarReview, *ServiceError)
}

type reviewServiceImpl struct {
	CrudService[models.Review]
	repo   repository.ReviewRepository
	cars   repository.Repository[models.Car]
	logger *zap.Logger
}

func NewReviewService(repo repository.ReviewRepository, cars repository.Repository[models.Car], logger *zap.Logger) ReviewService {
	return &reviewServiceImpl{
		CrudService: NewCrudService[models.Review](repo, "Review", logger),
		repo:        repo,
		cars:        cars,
		logger:      logger,
	}
}

// ForCar lists a car's reviews with usernames; an unknown car is a 404.
func (s *reviewServiceImpl) ForCar(ctx context.Context, carID uint) ([]models.CarReview, *ServiceError) {
	if _, err := s.cars.FindByID(ctx, repository.ByID("car_id", carID)); err != nil {
		return nil, classify(s.logger, "Car", "get", err)
	}
	reviews, err := s.repo.FindByCar(ctx, carID)
	if err != nil {
		return nil, classify(s.logger, "Review", "list", err)
	}
	return reviews, nil
}
