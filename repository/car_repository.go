package repository

import (
	"context"
	"errors"
	"time"

	"github.com/hasanmehediii/CSE-2211-Project/metrics"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"gorm.io/gorm"
)

// CarRepository adds the catalog aggregates on top of plain car CRUD.
type CarRepository interface {
	Repository[models.Car]
	TopRated(ctx context.Context, limit int) ([]models.RatedCar, error)
	NewArrivals(ctx context.Context, limit int) ([]models.Car, error)
	BudgetFriendly(ctx context.Context, limit int) ([]models.Car, error)
	Details(ctx context.Context, carID uint) (*models.CarDetails, error)
}

type GormCarRepository struct {
	Repository[models.Car]
	db *gorm.DB
}

func NewGormCarRepository(db *gorm.DB) CarRepository {
	return &GormCarRepository{
		Repository: NewGormRepository[models.Car](db, "car_id"),
		db:         db,
	}
}

// TopRated ranks cars by mean review rating. Unreviewed cars have a NULL
// average and sort after every reviewed car.
func (r *GormCarRepository) TopRated(ctx context.Context, limit int) ([]models.RatedCar, error) {
	defer metrics.TrackDBOperation("cars.top_rated")(time.Now())
	rows := make([]models.RatedCar, 0)
	err := r.db.WithContext(ctx).
		Table("cars").
		Select("cars.*, AVG(reviews.rating)::float8 AS average_rating").
		Joins("LEFT JOIN reviews ON reviews.car_id = cars.car_id").
		Group("cars.car_id").
		Order("average_rating DESC NULLS LAST, cars.car_id").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translate("top rated cars", err)
	}
	return rows, nil
}

func (r *GormCarRepository) NewArrivals(ctx context.Context, limit int) ([]models.Car, error) {
	defer metrics.TrackDBOperation("cars.new_arrivals")(time.Now())
	rows := make([]models.Car, 0)
	err := r.db.WithContext(ctx).
		Order("added_date DESC NULLS LAST, car_id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate("new arrivals", err)
	}
	return rows, nil
}

func (r *GormCarRepository) BudgetFriendly(ctx context.Context, limit int) ([]models.Car, error) {
	defer metrics.TrackDBOperation("cars.budget_friendly")(time.Now())
	rows := make([]models.Car, 0)
	err := r.db.WithContext(ctx).
		Order("price ASC NULLS LAST, car_id").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, translate("budget friendly cars", err)
	}
	return rows, nil
}

type ratingSummary struct {
	AverageRating *float64
	ReviewCount   int64
}

// Details loads a car with its rating summary, total stock and category.
func (r *GormCarRepository) Details(ctx context.Context, carID uint) (*models.CarDetails, error) {
	defer metrics.TrackDBOperation("cars.details")(time.Now())
	db := r.db.WithContext(ctx)

	var car models.Car
	if err := db.Where("car_id = ?", carID).First(&car).Error; err != nil {
		return nil, translate("car details", err)
	}

	var summary ratingSummary
	err := db.Model(&models.Review{}).
		Select("AVG(rating)::float8 AS average_rating, COUNT(*) AS review_count").
		Where("car_id = ?", carID).
		Scan(&summary).Error
	if err != nil {
		return nil, translate("car rating summary", err)
	}

	var quantity int64
	err = db.Model(&models.CarInventory{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("car_id = ?", carID).
		Scan(&quantity).Error
	if err != nil {
		return nil, translate("car stock", err)
	}

	details := &models.CarDetails{
		Car:           car,
		AverageRating: summary.AverageRating,
		ReviewCount:   summary.ReviewCount,
		Quantity:      quantity,
	}

	var category models.Category
	err = db.Where("category_id = ?", car.CategoryID).Take(&category).Error
	switch {
	case err == nil:
		details.CategoryName = category.Name
		details.Description = category.Description
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, translate("car category", err)
	}
	return details, nil
}
