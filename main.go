package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hasanmehediii/CSE-2211-Project/controllers"
	"github.com/hasanmehediii/CSE-2211-Project/database"
	"github.com/hasanmehediii/CSE-2211-Project/logger"
	"github.com/hasanmehediii/CSE-2211-Project/metrics"
	"github.com/hasanmehediii/CSE-2211-Project/middleware"
	"github.com/hasanmehediii/CSE-2211-Project/models"
	aws_pkg "github.com/hasanmehediii/CSE-2211-Project/pkg/aws"
	"github.com/hasanmehediii/CSE-2211-Project/repository"
	"github.com/hasanmehediii/CSE-2211-Project/routes"
	"github.com/hasanmehediii/CSE-2211-Project/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	metrics.InitMetrics(cfg.MetricsPrefix)

	db, err := database.Connect(cfg.DatabaseSettings(), zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	if err := database.DefaultRegistry().Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.SetupValidator()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(zapLogger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigin))

	routes.RegisterRoutes(r, buildControllers(db, cfg, zapLogger))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	zapLogger.Info("Car purchase API started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	<-quit
	zapLogger.Info("Shutting down car purchase API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exited cleanly")
}

// buildControllers wires repositories, services and controllers.
func buildControllers(db *gorm.DB, cfg *Config, logger *zap.Logger) routes.Controllers {
	categoryRepo := repository.NewGormRepository[models.Category](db, "category_id")
	carRepo := repository.NewGormCarRepository(db)
	inventoryRepo := repository.NewGormRepository[models.CarInventory](db, "inventory_id")
	inventoryLogRepo := repository.NewGormRepository[models.CarInventoryLog](db, "inventory_id", "car_id")
	employeeRepo := repository.NewGormRepository[models.Employee](db, "emp_id")
	userRepo := repository.NewGormRepository[models.User](db, "user_id")
	purchaseRepo := repository.NewGormRepository[models.Purchase](db, "purchase_id")
	orderRepo := repository.NewGormRepository[models.Order](db, "order_id")
	orderItemRepo := repository.NewGormRepository[models.OrderItem](db, "order_item_id")
	shippingRepo := repository.NewGormRepository[models.Shipping](db, "ship_id")
	reviewRepo := repository.NewGormReviewRepository(db)

	carService := services.NewCarService(carRepo, logger)
	reviewService := services.NewReviewService(reviewRepo, carRepo, logger)
	userService := services.NewUserService(userRepo, logger)
	employeeService := services.NewCrudService[models.Employee](employeeRepo, "Employee", logger)
	orderItemService := services.NewCrudService[models.OrderItem](orderItemRepo, "Order item", logger)
	adminService := services.NewAdminService(services.AdminRepositories{
		Users:      userRepo,
		Purchases:  purchaseRepo,
		Reviews:    reviewRepo,
		Orders:     orderRepo,
		OrderItems: orderItemRepo,
	}, logger)
	imageService := services.NewCarImageService(carRepo, imagePresigner(cfg, logger), logger)

	return routes.Controllers{
		Categories: controllers.NewCrudController[models.Category, models.CategoryCreateRequest, models.CategoryUpdateRequest](
			services.NewCrudService[models.Category](categoryRepo, "Category", logger), "Category", "category_id"),
		Cars: controllers.NewCarController(carService, reviewService, cfg.TopListLimit),
		Inventory: controllers.NewCrudController[models.CarInventory, models.CarInventoryCreateRequest, models.CarInventoryUpdateRequest](
			services.NewCrudService[models.CarInventory](inventoryRepo, "Inventory", logger), "Inventory", "inventory_id"),
		InventoryLogs: controllers.NewCompositeCrudController[models.CarInventoryLog, models.CarInventoryLogCreateRequest, models.CarInventoryLogUpdateRequest](
			services.NewCrudService[models.CarInventoryLog](inventoryLogRepo, "Inventory log", logger), "Inventory log", "inventory_id", "car_id"),
		Employees: controllers.NewCrudController[models.Employee, models.EmployeeCreateRequest, models.EmployeeUpdateRequest](
			employeeService, "Employee", "emp_id"),
		Users: controllers.NewUserController(userService),
		Purchases: controllers.NewCrudController[models.Purchase, models.PurchaseCreateRequest, models.PurchaseUpdateRequest](
			services.NewCrudService[models.Purchase](purchaseRepo, "Purchase", logger), "Purchase", "purchase_id"),
		Orders: controllers.NewCrudController[models.Order, models.OrderCreateRequest, models.OrderUpdateRequest](
			services.NewCrudService[models.Order](orderRepo, "Order", logger), "Order", "order_id", "purchase_id"),
		OrderItems: controllers.NewCrudController[models.OrderItem, models.OrderItemCreateRequest, models.OrderItemUpdateRequest](
			orderItemService, "Order item", "order_item_id"),
		Shipping: controllers.NewCrudController[models.Shipping, models.ShippingCreateRequest, models.ShippingUpdateRequest](
			services.NewCrudService[models.Shipping](shippingRepo, "Shipping", logger), "Shipping", "ship_id"),
		Reviews: controllers.NewCrudController[models.Review, models.ReviewCreateRequest, models.ReviewUpdateRequest](
			reviewService, "Review", "review_id", "car_id"),
		Admin: controllers.NewAdminController(controllers.AdminServices{
			Cars:       carService,
			Users:      userService,
			Employees:  employeeService,
			OrderItems: orderItemService,
			Views:      adminService,
			Images:     imageService,
		}),
	}
}

// imagePresigner returns nil when no bucket is configured or AWS is
// unreachable; image uploads then answer 503.
func imagePresigner(cfg *Config, logger *zap.Logger) services.ObjectPresigner {
	if cfg.ImageBucket == "" {
		logger.Info("S3_BUCKET_IMAGES not set, car image uploads disabled")
		return nil
	}
	awsCfg, err := aws_pkg.LoadAWSConfig(context.Background())
	if err != nil {
		logger.Warn("AWS config unavailable, car image uploads disabled", zap.Error(err))
		return nil
	}
	return aws_pkg.NewS3Presigner(awsCfg, cfg.ImageBucket, cfg.ImagePublicBase)
}
