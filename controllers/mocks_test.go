package controllers_test

import (
	"context"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/hasanmehediii/CSE-2211-Project/services"
)

// ---- generic CRUD service mock ----

type mockCrud[T any] struct {
	created   *T
	createErr *services.ServiceError
	row       *T
	getErr    *services.ServiceError
	rows      []T
	listErr   *services.ServiceError
	updated   *T
	updateErr *services.ServiceError
	deleteErr *services.ServiceError

	lastCreate  models.Creator[T]
	lastKey     repository.Key
	lastFilter  repository.Filter
	lastPage    repository.Page
	lastChanges models.Changes
}

func (m *mockCrud[T]) Create(_ context.Context, req models.Creator[T]) (*T, *services.ServiceError) {
	m.lastCreate = req
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return req.ToModel(), nil
}

func (m *mockCrud[T]) Get(_ context.Context, key repository.Key) (*T, *services.ServiceError) {
	m.lastKey = key
	return m.row, m.getErr
}

func (m *mockCrud[T]) List(_ context.Context, filter repository.Filter, page repository.Page) ([]T, *services.ServiceError) {
	m.lastFilter, m.lastPage = filter, page
	return m.rows, m.listErr
}

func (m *mockCrud[T]) Update(_ context.Context, key repository.Key, patch models.Patch) (*T, *services.ServiceError) {
	m.lastKey, m.lastChanges = key, patch.Changes()
	return m.updated, m.updateErr
}

func (m *mockCrud[T]) Delete(_ context.Context, key repository.Key) *services.ServiceError {
	m.lastKey = key
	return m.deleteErr
}

// ---- car service mock ----

type mockCarService struct {
	*mockCrud[models.Car]
	rated     []models.RatedCar
	cars      []models.Car
	details   *models.CarDetails
	aggErr    *services.ServiceError
	lastLimit int
}

func newMockCarService() *mockCarService {
	return &mockCarService{mockCrud: &mockCrud[models.Car]{}}
}

func (m *mockCarService) TopRated(_ context.Context, limit int) ([]models.RatedCar, *services.ServiceError) {
	m.lastLimit = limit
	return m.rated, m.aggErr
}

func (m *mockCarService) NewArrivals(_ context.Context, limit int) ([]models.Car, *services.ServiceError) {
	m.lastLimit = limit
	return m.cars, m.aggErr
}

func (m *mockCarService) BudgetFriendly(_ context.Context, limit int) ([]models.Car, *services.ServiceError) {
	m.lastLimit = limit
	return m.cars, m.aggErr
}

func (m *mockCarService) Details(_ context.Context, _ uint) (*models.CarDetails, *services.ServiceError) {
	return m.details, m.aggErr
}

// ---- review service mock ----

type mockReviewService struct {
	*mockCrud[models.Review]
	forCar    []models.CarReview
	forCarErr *services.ServiceError
}

func (m *mockReviewService) ForCar(_ context.Context, _ uint) ([]models.CarReview, *services.ServiceError) {
	return m.forCar, m.forCarErr
}

// ---- user service mock ----

type mockUserService struct {
	*mockCrud[models.User]
	registered  *models.User
	registerErr *services.ServiceError
	login       *models.LoginResponse
	loginErr    *services.ServiceError
	lastLogin   *models.LoginRequest
}

func newMockUserService() *mockUserService {
	return &mockUserService{mockCrud: &mockCrud[models.User]{}}
}

func (m *mockUserService) Register(_ context.Context, req *models.UserCreateRequest) (*models.User, *services.ServiceError) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return m.registered, nil
}

func (m *mockUserService) Login(_ context.Context, req *models.LoginRequest) (*models.LoginResponse, *services.ServiceError) {
	m.lastLogin = req
	return m.login, m.loginErr
}

// ---- admin mocks ----

type mockAdminService struct {
	user      *models.UserDetail
	order     *models.OrderDetail
	orders    []models.OrderDetail
	purchase  *models.PurchaseDetail
	purchases []models.PurchaseDetail
	err       *services.ServiceError
}

func (m *mockAdminService) UserDetail(_ context.Context, _ uint) (*models.UserDetail, *services.ServiceError) {
	return m.user, m.err
}

func (m *mockAdminService) OrderDetail(_ context.Context, _ uint) (*models.OrderDetail, *services.ServiceError) {
	return m.order, m.err
}

func (m *mockAdminService) ListOrderDetails(_ context.Context, _ repository.Page) ([]models.OrderDetail, *services.ServiceError) {
	return m.orders, m.err
}

func (m *mockAdminService) PurchaseDetail(_ context.Context, _ uint) (*models.PurchaseDetail, *services.ServiceError) {
	return m.purchase, m.err
}

func (m *mockAdminService) ListPurchaseDetails(_ context.Context, _ repository.Page) ([]models.PurchaseDetail, *services.ServiceError) {
	return m.purchases, m.err
}

type mockImageService struct {
	upload      *models.ImageUpload
	err         *services.ServiceError
	filename    string
	contentType string
	expires     int64
}

func (m *mockImageService) PresignUpload(_ context.Context, _ uint, filename, contentType string, expires int64) (*models.ImageUpload, *services.ServiceError) {
	m.filename, m.contentType, m.expires = filename, contentType, expires
	return m.upload, m.err
}
