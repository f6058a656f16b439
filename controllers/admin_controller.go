package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/hasanmehediii/CSE-2211-Project/services"
)

// AdminServices are the services behind the back-office endpoints.
type AdminServices struct {
	Cars       services.CarService
	Users      services.UserService
	Employees  services.CrudService[models.Employee]
	OrderItems services.CrudService[models.OrderItem]
	Views      services.AdminService
	Images     services.CarImageService
}

// AdminController serves /admin. Updates accept any subset of the allowed
// columns; reads of users, orders and purchases include related rows.
type AdminController struct {
	svc AdminServices
}

func NewAdminController(svc AdminServices) *AdminController {
	return &AdminController{svc: svc}
}

func carKey(id uint) repository.Key      { return repository.ByID("car_id", id) }
func userKey(id uint) repository.Key     { return repository.ByID("user_id", id) }
func employeeKey(id uint) repository.Key { return repository.ByID("emp_id", id) }

// CreateCar handles POST /admin/cars
func (ac *AdminController) CreateCar(ctx *gin.Context) {
	var req models.CarCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	car, svcErr := ac.svc.Cars.Create(ctx.Request.Context(), req)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Car created successfully", "car_id": car.CarID})
}

// ListCars handles GET /admin/cars
func (ac *AdminController) ListCars(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	cars, svcErr := ac.svc.Cars.List(ctx.Request.Context(), nil, page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, cars)
}

// GetCar handles GET /admin/cars/:id
func (ac *AdminController) GetCar(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	car, svcErr := ac.svc.Cars.Get(ctx.Request.Context(), carKey(id))
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, car)
}

// UpdateCar handles PUT /admin/cars/:id
func (ac *AdminController) UpdateCar(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req models.AdminCarUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if _, svcErr := ac.svc.Cars.Update(ctx.Request.Context(), carKey(id), req); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Car updated successfully", "car_id": id})
}

// DeleteCar handles DELETE /admin/cars/:id
func (ac *AdminController) DeleteCar(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if svcErr := ac.svc.Cars.Delete(ctx.Request.Context(), carKey(id)); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully", "car_id": id})
}

// CarImageUpload handles POST /admin/cars/:id/image-upload
func (ac *AdminController) CarImageUpload(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	filename := ctx.DefaultQuery("filename", "upload.jpg")
	contentType := ctx.DefaultQuery("content_type", "image/jpeg")
	expires, err := strconv.ParseInt(ctx.DefaultQuery("expires", "900"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid expires"})
		return
	}
	upload, svcErr := ac.svc.Images.PresignUpload(ctx.Request.Context(), id, filename, contentType, expires)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, upload)
}

// ListUsers handles GET /admin/users
func (ac *AdminController) ListUsers(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	users, svcErr := ac.svc.Users.List(ctx.Request.Context(), nil, page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser handles GET /admin/users/:id
func (ac *AdminController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	user, svcErr := ac.svc.Views.UserDetail(ctx.Request.Context(), id)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser handles PUT /admin/users/:id
func (ac *AdminController) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req models.UserUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if _, svcErr := ac.svc.Users.Update(ctx.Request.Context(), userKey(id), req); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User updated successfully", "user_id": id})
}

// DeleteUser handles DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if svcErr := ac.svc.Users.Delete(ctx.Request.Context(), userKey(id)); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully", "user_id": id})
}

// ListOrders handles GET /admin/orders
func (ac *AdminController) ListOrders(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	orders, svcErr := ac.svc.Views.ListOrderDetails(ctx.Request.Context(), page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /admin/orders/:id
func (ac *AdminController) GetOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	order, svcErr := ac.svc.Views.OrderDetail(ctx.Request.Context(), id)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// ListOrderItems handles GET /admin/order-items
func (ac *AdminController) ListOrderItems(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	items, svcErr := ac.svc.OrderItems.List(ctx.Request.Context(), nil, page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetOrderItem handles GET /admin/order-items/:id
func (ac *AdminController) GetOrderItem(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	item, svcErr := ac.svc.OrderItems.Get(ctx.Request.Context(), repository.ByID("order_item_id", id))
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// ListPurchases handles GET /admin/purchases
func (ac *AdminController) ListPurchases(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	purchases, svcErr := ac.svc.Views.ListPurchaseDetails(ctx.Request.Context(), page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, purchases)
}

// GetPurchase handles GET /admin/purchases/:id
func (ac *AdminController) GetPurchase(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	purchase, svcErr := ac.svc.Views.PurchaseDetail(ctx.Request.Context(), id)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, purchase)
}

// ListEmployees handles GET /admin/employees
func (ac *AdminController) ListEmployees(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	employees, svcErr := ac.svc.Employees.List(ctx.Request.Context(), nil, page)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, employees)
}

// CreateEmployee handles POST /admin/employees
func (ac *AdminController) CreateEmployee(ctx *gin.Context) {
	var req models.EmployeeCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	emp, svcErr := ac.svc.Employees.Create(ctx.Request.Context(), req)
	if svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Employee created successfully", "emp_id": emp.EmpID})
}

// UpdateEmployee handles PUT /admin/employees/:id
func (ac *AdminController) UpdateEmployee(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	var req models.EmployeeUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	if _, svcErr := ac.svc.Employees.Update(ctx.Request.Context(), employeeKey(id), req); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully", "emp_id": id})
}

// DeleteEmployee handles DELETE /admin/employees/:id
func (ac *AdminController) DeleteEmployee(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	if svcErr := ac.svc.Employees.Delete(ctx.Request.Context(), employeeKey(id)); svcErr != nil {
		writeError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully", "emp_id": id})
}
