package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type adminFixture struct {
	users      *fakeRepo[models.User]
	purchases  *fakeRepo[models.Purchase]
	reviews    *fakeRepo[models.Review]
	orders     *fakeRepo[models.Order]
	orderItems *fakeRepo[models.OrderItem]
	svc        AdminService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		users: newFakeRepo(userColumns, "user_id").seed(
			models.User{UserID: 1, Email: "ann@example.com", Username: "ann"},
			models.User{UserID: 2, Email: "bob@example.com", Username: "bob"},
		),
		purchases: newFakeRepo(purchaseColumns, "purchase_id").seed(
			models.Purchase{PurchaseID: 10, UserID: 1, Status: "paid"},
			models.Purchase{PurchaseID: 11, UserID: 2, Status: "pending"},
			models.Purchase{PurchaseID: 12, UserID: 1, Status: "pending"},
		),
		reviews: newFakeRepo(reviewColumns, "review_id").seed(
			models.Review{ReviewID: 1, CarID: 3, UserID: 1, Rating: 5},
		),
		orders: newFakeRepo(orderColumns, "order_id").seed(
			models.Order{OrderID: 100, PurchaseID: 10, Status: "shipped"},
			models.Order{OrderID: 101, PurchaseID: 10, Status: "processing"},
			models.Order{OrderID: 102, PurchaseID: 11, Status: "processing"},
		),
		orderItems: newFakeRepo(orderItemColumns, "order_item_id").seed(
			models.OrderItem{OrderItemID: 1, OrderID: 100, CarID: 3, Quantity: 1},
			models.OrderItem{OrderItemID: 2, OrderID: 100, CarID: 4, Quantity: 2},
			models.OrderItem{OrderItemID: 3, OrderID: 102, CarID: 3, Quantity: 1},
		),
	}
	f.svc = NewAdminService(AdminRepositories{
		Users:      f.users,
		Purchases:  f.purchases,
		Reviews:    f.reviews,
		Orders:     f.orders,
		OrderItems: f.orderItems,
	}, zap.NewNop())
	return f
}

func TestUserDetail(t *testing.T) {
	f := newAdminFixture()

	detail, svcErr := f.svc.UserDetail(context.Background(), 1)
	require.Nil(t, svcErr)
	assert.Equal(t, "ann", detail.Username)
	require.Len(t, detail.Purchases, 2)
	assert.Equal(t, uint(10), detail.Purchases[0].PurchaseID)
	assert.Equal(t, uint(12), detail.Purchases[1].PurchaseID)
	assert.Len(t, detail.Reviews, 1)

	detail, svcErr = f.svc.UserDetail(context.Background(), 2)
	require.Nil(t, svcErr)
	assert.NotNil(t, detail.Reviews)
	assert.Empty(t, detail.Reviews)
}

func TestUserDetail_NotFound(t *testing.T) {
	f := newAdminFixture()

	_, svcErr := f.svc.UserDetail(context.Background(), 99)
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Equal(t, "User not found", svcErr.Message)
}

func TestOrderDetail(t *testing.T) {
	f := newAdminFixture()

	detail, svcErr := f.svc.OrderDetail(context.Background(), 100)
	require.Nil(t, svcErr)
	assert.Equal(t, "shipped", detail.Status)
	assert.Len(t, detail.OrderItems, 2)

	_, svcErr = f.svc.OrderDetail(context.Background(), 999)
	require.NotNil(t, svcErr)
	assert.Equal(t, "Order not found", svcErr.Message)
}

func TestListOrderDetails_GroupsItems(t *testing.T) {
	f := newAdminFixture()

	details, svcErr := f.svc.ListOrderDetails(context.Background(), repository.Page{Limit: 100})
	require.Nil(t, svcErr)
	require.Len(t, details, 3)
	assert.Len(t, details[0].OrderItems, 2)
	assert.NotNil(t, details[1].OrderItems)
	assert.Empty(t, details[1].OrderItems)
	assert.Len(t, details[2].OrderItems, 1)
}

func TestListOrderDetails_ItemLoadFails(t *testing.T) {
	f := newAdminFixture()
	f.orderItems.listErr = errors.New("timeout")

	_, svcErr := f.svc.ListOrderDetails(context.Background(), repository.Page{Limit: 100})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
}

func TestPurchaseDetail(t *testing.T) {
	f := newAdminFixture()

	detail, svcErr := f.svc.PurchaseDetail(context.Background(), 10)
	require.Nil(t, svcErr)
	assert.Len(t, detail.Orders, 2)
	require.NotNil(t, detail.User)
	assert.Equal(t, "ann", detail.User.Username)

	detail, svcErr = f.svc.PurchaseDetail(context.Background(), 12)
	require.Nil(t, svcErr)
	assert.NotNil(t, detail.Orders)
	assert.Empty(t, detail.Orders)
}

func TestListPurchaseDetails(t *testing.T) {
	f := newAdminFixture()

	details, svcErr := f.svc.ListPurchaseDetails(context.Background(), repository.Page{Limit: 2})
	require.Nil(t, svcErr)
	require.Len(t, details, 2)
	assert.Equal(t, "ann", details[0].User.Username)
	assert.Equal(t, "bob", details[1].User.Username)
	assert.Len(t, details[1].Orders, 1)
}

func TestListPurchaseDetails_Empty(t *testing.T) {
	f := newAdminFixture()
	f.purchases.rows = nil

	details, svcErr := f.svc.ListPurchaseDetails(context.Background(), repository.Page{Limit: 100})
	require.Nil(t, svcErr)
	assert.NotNil(t, details)
	assert.Empty(t, details)
}
