package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/controllers"
	"github.com/hasanmehediii/CSE-2211-Project/metrics"
)

// entityController is the set of handlers every CRUD resource exposes.
type entityController interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
	KeyPath() string
}

// Controllers holds one controller per resource.
type Controllers struct {
	Categories    entityController
	Cars          *controllers.CarController
	Inventory     entityController
	InventoryLogs entityController
	Employees     entityController
	Users         *controllers.UserController
	Purchases     entityController
	Orders        entityController
	OrderItems    entityController
	Shipping      entityController
	Reviews       entityController
	Admin         *controllers.AdminController
}

// RegisterSystemRoutes sets up the welcome, health and metrics endpoints.
func RegisterSystemRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Car Purchase API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "car-purchase-api"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}

// RegisterRoutes mounts every resource and the admin module.
func RegisterRoutes(r *gin.Engine, c Controllers) {
	RegisterSystemRoutes(r)

	registerEntity(r.Group("/categories"), c.Categories)

	cars := r.Group("/cars")
	// Fixed paths are registered before the /:id wildcard group.
	cars.GET("/top-rated", c.Cars.TopRated)
	cars.GET("/new-arrivals", c.Cars.NewArrivals)
	cars.GET("/budget-friendly", c.Cars.BudgetFriendly)
	cars.GET("/:id/details", c.Cars.Details)
	cars.GET("/:id/reviews", c.Cars.Reviews)
	registerEntity(cars, c.Cars)

	registerEntity(r.Group("/car_inventory"), c.Inventory)
	registerEntity(r.Group("/car_inventory_logs"), c.InventoryLogs)
	registerEntity(r.Group("/employees"), c.Employees)
	RegisterUserRoutes(r, c.Users)
	registerEntity(r.Group("/purchases"), c.Purchases)
	registerEntity(r.Group("/orders"), c.Orders)
	registerEntity(r.Group("/order_items"), c.OrderItems)
	registerEntity(r.Group("/shipping"), c.Shipping)
	registerEntity(r.Group("/reviews"), c.Reviews)

	RegisterAdminRoutes(r, c.Admin)
}

// RegisterUserRoutes sets up registration, login and account CRUD.
func RegisterUserRoutes(r *gin.Engine, uc *controllers.UserController) {
	users := r.Group("/users")
	users.POST("", uc.Register)
	users.POST("/", uc.Register)
	users.POST("/login", uc.Login)
	users.GET("", uc.List)
	users.GET("/", uc.List)
	users.GET("/:id", uc.Get)
	users.PUT("/:id", uc.Update)
	users.PATCH("/:id", uc.Update)
	users.DELETE("/:id", uc.Delete)
}

// RegisterAdminRoutes sets up the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, ac *controllers.AdminController) {
	admin := r.Group("/admin")

	admin.POST("/cars", ac.CreateCar)
	admin.GET("/cars", ac.ListCars)
	admin.GET("/cars/:id", ac.GetCar)
	admin.PUT("/cars/:id", ac.UpdateCar)
	admin.DELETE("/cars/:id", ac.DeleteCar)
	admin.POST("/cars/:id/image-upload", ac.CarImageUpload)

	admin.GET("/users", ac.ListUsers)
	admin.GET("/users/:id", ac.GetUser)
	admin.PUT("/users/:id", ac.UpdateUser)
	admin.DELETE("/users/:id", ac.DeleteUser)

	admin.GET("/orders", ac.ListOrders)
	admin.GET("/orders/:id", ac.GetOrder)
	admin.GET("/order-items", ac.ListOrderItems)
	admin.GET("/order-items/:id", ac.GetOrderItem)
	admin.GET("/purchases", ac.ListPurchases)
	admin.GET("/purchases/:id", ac.GetPurchase)

	admin.GET("/employees", ac.ListEmployees)
	admin.POST("/employees", ac.CreateEmployee)
	admin.PUT("/employees/:id", ac.UpdateEmployee)
	admin.DELETE("/employees/:id", ac.DeleteEmployee)
}

// registerEntity mounts the five CRUD endpoints. The group root answers both
// with and without a trailing slash.
func registerEntity(g *gin.RouterGroup, ec entityController) {
	g.POST("", ec.Create)
	g.POST("/", ec.Create)
	g.GET("", ec.List)
	g.GET("/", ec.List)

	key := ec.KeyPath()
	g.GET(key, ec.Get)
	g.PUT(key, ec.Update)
	g.PATCH(key, ec.Update)
	g.DELETE(key, ec.Delete)
}
