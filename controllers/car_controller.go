package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/services"
)

// CarController serves car CRUD plus the storefront listings.
type CarController struct {
	*CrudController[models.Car, models.CarCreateRequest, models.CarUpdateRequest]
	carService    services.CarService
	reviewService services.ReviewService
	listLimit     int
}

// NewCarController creates a CarController. listLimit is the default size of
// the top-rated, new-arrival and budget lists.
func NewCarController(cars services.CarService, reviews services.ReviewService, listLimit int) *CarController {
	return &CarController{
		CrudController: NewCrudController[models.Car, models.CarCreateRequest, models.CarUpdateRequest](cars, "Car", "car_id"),
		carService:     cars,
		reviewService:  reviews,
		listLimit:      listLimit,
	}
}

// TopRated handles GET /cars/top-rated
func (cc *CarController) TopRated(ctx *gin.Context) {
	limit, ok := parseTopLimit(ctx, cc.listLimit)
	if !ok {
		return
	}
	cars, svcErr := cc.carService.TopRated(ctx.Request.Context(), limit)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, cars)
}

// NewArrivals handles GET /cars/new-arrivals
func (cc *CarController) NewArrivals(ctx *gin.Context) {
	limit, ok := parseTopLimit(ctx, cc.listLimit)
	if !ok {
		return
	}
	cars, svcErr := cc.carService.NewArrivals(ctx.Request.Context(), limit)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, cars)
}

// BudgetFriendly handles GET /cars/budget-friendly
func (cc *CarController) BudgetFriendly(ctx *gin.Context) {
	limit, ok := parseTopLimit(ctx, cc.listLimit)
	if !ok {
		return
	}
	cars, svcErr := cc.carService.BudgetFriendly(ctx.Request.Context(), limit)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, cars)
}

// Details handles GET /cars/:id/details
func (cc *CarController) Details(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	details, svcErr := cc.carService.Details(ctx.Request.Context(), id)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// Reviews handles GET /cars/:id/reviews
func (cc *CarController) Reviews(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	reviews, svcErr := cc.reviewService.ForCar(ctx.Request.Context(), id)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
