package repository

import (
	"context"
	"time"

	"github.com/hasanmehediii/CSE-2211-Project/metrics"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Repository[models.Review]
	// FindByCar lists a car's reviews with the reviewer's username, newest first.
	FindByCar(ctx context.Context, carID uint) ([]models.CarReview, error)
}

type GormReviewRepository struct {
	Repository[models.Review]
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{
		Repository: NewGormRepository[models.Review](db, "review_id"),
		db:         db,
	}
}

func (r *GormReviewRepository) FindByCar(ctx context.Context, carID uint) ([]models.CarReview, error) {
	defer metrics.TrackDBOperation("reviews.find_by_car")(time.Now())
	rows := make([]models.CarReview, 0)
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, users.username").
		Joins("LEFT JOIN users ON users.user_id = reviews.user_id").
		Where("reviews.car_id = ?", carID).
		Order("reviews.created_at DESC, reviews.review_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate("reviews by car", err)
	}
	return rows, nil
}
