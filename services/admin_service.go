package services

import (
	"context"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"go.uber.org/zap"
)

// AdminService builds the nested views used by the back office. Related rows
// are loaded by foreign key, one level deep.
type AdminService interface {
	UserDetail(ctx context.Context, userID uint) (*models.UserDetail, *ServiceError)
	OrderDetail(ctx context.Context, orderID uint) (*models.OrderDetail, *ServiceError)
	ListOrderDetails(ctx context.Context, page repository.Page) ([]models.OrderDetail, *ServiceError)
	PurchaseDetail(ctx context.Context, purchaseID uint) (*models.PurchaseDetail, *ServiceError)
	ListPurchaseDetails(ctx context.Context, page repository.Page) ([]models.PurchaseDetail, *ServiceError)
}

// AdminRepositories are the tables the admin views read from.
type AdminRepositories struct {
	Users      repository.Repository[models.User]
	Purchases  repository.Repository[models.Purchase]
	Reviews    repository.Repository[models.Review]
	Orders     repository.Repository[models.Order]
	OrderItems repository.Repository[models.OrderItem]
}

type adminServiceImpl struct {
	repos  AdminRepositories
	logger *zap.Logger
}

func NewAdminService(repos AdminRepositories, logger *zap.Logger) AdminService {
	return &adminServiceImpl{repos: repos, logger: logger}
}

func (s *adminServiceImpl) UserDetail(ctx context.Context, userID uint) (*models.UserDetail, *ServiceError) {
	user, err := s.repos.Users.FindByID(ctx, repository.ByID("user_id", userID))
	if err != nil {
		return nil, classify(s.logger, "User", "get", err)
	}
	byUser := repository.Filter{"user_id": userID}
	purchases, err := s.repos.Purchases.FindAll(ctx, byUser, repository.Unbounded)
	if err != nil {
		return nil, classify(s.logger, "Purchase", "list", err)
	}
	reviews, err := s.repos.Reviews.FindAll(ctx, byUser, repository.Unbounded)
	if err != nil {
		return nil, classify(s.logger, "Review", "list", err)
	}
	return &models.UserDetail{User: *user, Purchases: purchases, Reviews: reviews}, nil
}

func (s *adminServiceImpl) OrderDetail(ctx context.Context, orderID uint) (*models.OrderDetail, *ServiceError) {
	order, err := s.repos.Orders.FindByID(ctx, repository.ByID("order_id", orderID))
	if err != nil {
		return nil, classify(s.logger, "Order", "get", err)
	}
	details, svcErr := s.attachOrderItems(ctx, []models.Order{*order})
	if svcErr != nil {
		return nil, svcErr
	}
	return &details[0], nil
}

func (s *adminServiceImpl) ListOrderDetails(ctx context.Context, page repository.Page) ([]models.OrderDetail, *ServiceError) {
	orders, err := s.repos.Orders.FindAll(ctx, nil, page)
	if err != nil {
		return nil, classify(s.logger, "Order", "list", err)
	}
	return s.attachOrderItems(ctx, orders)
}

// attachOrderItems loads the items of all orders in one query.
func (s *adminServiceImpl) attachOrderItems(ctx context.Context, orders []models.Order) ([]models.OrderDetail, *ServiceError) {
	details := make([]models.OrderDetail, len(orders))
	if len(orders) == 0 {
		return details, nil
	}
	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.OrderID
	}
	items, err := s.repos.OrderItems.FindAll(ctx, repository.Filter{"order_id": ids}, repository.Unbounded)
	if err != nil {
		return nil, classify(s.logger, "Order item", "list", err)
	}
	byOrder := make(map[uint][]models.OrderItem, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i, o := range orders {
		details[i] = models.OrderDetail{Order: o, OrderItems: byOrder[o.OrderID]}
		if details[i].OrderItems == nil {
			details[i].OrderItems = []models.OrderItem{}
		}
	}
	return details, nil
}

func (s *adminServiceImpl) PurchaseDetail(ctx context.Context, purchaseID uint) (*models.PurchaseDetail, *ServiceError) {
	purchase, err := s.repos.Purchases.FindByID(ctx, repository.ByID("purchase_id", purchaseID))
	if err != nil {
		return nil, classify(s.logger, "Purchase", "get", err)
	}
	details, svcErr := s.attachOrdersAndUsers(ctx, []models.Purchase{*purchase})
	if svcErr != nil {
		return nil, svcErr
	}
	return &details[0], nil
}

func (s *adminServiceImpl) ListPurchaseDetails(ctx context.Context, page repository.Page) ([]models.PurchaseDetail, *ServiceError) {
	purchases, err := s.repos.Purchases.FindAll(ctx, nil, page)
	if err != nil {
		return nil, classify(s.logger, "Purchase", "list", err)
	}
	return s.attachOrdersAndUsers(ctx, purchases)
}

func (s *adminServiceImpl) attachOrdersAndUsers(ctx context.Context, purchases []models.Purchase) ([]models.PurchaseDetail, *ServiceError) {
	details := make([]models.PurchaseDetail, len(purchases))
	if len(purchases) == 0 {
		return details, nil
	}
	purchaseIDs := make([]uint, len(purchases))
	userIDs := make([]uint, 0, len(purchases))
	seen := make(map[uint]bool, len(purchases))
	for i, p := range purchases {
		purchaseIDs[i] = p.PurchaseID
		if !seen[p.UserID] {
			seen[p.UserID] = true
			userIDs = append(userIDs, p.UserID)
		}
	}

	orders, err := s.repos.Orders.FindAll(ctx, repository.Filter{"purchase_id": purchaseIDs}, repository.Unbounded)
	if err != nil {
		return nil, classify(s.logger, "Order", "list", err)
	}
	users, err := s.repos.Users.FindAll(ctx, repository.Filter{"user_id": userIDs}, repository.Unbounded)
	if err != nil {
		return nil, classify(s.logger, "User", "list", err)
	}

	ordersByPurchase := make(map[uint][]models.Order, len(purchases))
	for _, o := range orders {
		ordersByPurchase[o.PurchaseID] = append(ordersByPurchase[o.PurchaseID], o)
	}
	usersByID := make(map[uint]*models.User, len(users))
	for i := range users {
		usersByID[users[i].UserID] = &users[i]
	}

	for i, p := range purchases {
		details[i] = models.PurchaseDetail{
			Purchase: p,
			Orders:   ordersByPurchase[p.PurchaseID],
			User:     usersByID[p.UserID],
		}
		if details[i].Orders == nil {
			details[i].Orders = []models.Order{}
		}
	}
	return details, nil
}
