package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/controllers"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/repositories"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/services"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/config"
)

// InitRouter собирает весь граф зависимостей: репозитории, сервисы,
// контроллеры и маршруты. Возвращает сервис каталога, чтобы main мог
// запустить стартовую синхронизацию.
func InitRouter(
	e *echo.Echo,
	dbConn *pgxpool.Pool,
	redisClient *redis.Client,
	registry catalog.RegistryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) services.CatalogServiceInterface {
	logger.Info("InitRouter: начало создания маршрутов")

	api := e.Group("/api")
	txManager := repositories.NewTxManager(dbConn)

	// --- репозитории ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	bookingRepo := repositories.NewBookingRepository(dbConn)
	userRepo := repositories.NewUserRepository(dbConn)
	reportRepo := repositories.NewReportRepository(dbConn)
	favoriteRepo := repositories.NewRedisFavoriteRepository(redisClient)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- сервисы ---
	lifecycleService := services.NewLifecycleService(equipmentRepo, txManager, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, registry, logger)
	bookingService := services.NewBookingService(
		bookingRepo, equipmentRepo, userRepo, lifecycleService, txManager,
		cfg.Booking.DefaultUserID, logger,
	)
	favoriteService := services.NewFavoriteService(favoriteRepo, equipmentRepo, logger)
	catalogService := services.NewCatalogService(registry, equipmentRepo, cacheRepo, cfg.Catalog.FiltersCacheTTL, logger)
	reportService := services.NewReportService(reportRepo, logger)

	// --- контроллеры ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, lifecycleService, logger)
	bookingCtrl := controllers.NewBookingController(bookingService, logger)
	favoriteCtrl := controllers.NewFavoriteController(favoriteService, cfg.Booking.DefaultUserID, logger)
	catalogCtrl := controllers.NewCatalogController(catalogService, logger)
	reportCtrl := controllers.NewReportController(reportService, logger)

	// --- маршруты ---
	runEquipmentRouter(api, equipmentCtrl, bookingCtrl, catalogCtrl)
	runBookingRouter(api, bookingCtrl)
	runFavoriteRouter(api, favoriteCtrl)
	runCatalogRouter(api, catalogCtrl)
	runReportRouter(api, reportCtrl)

	logger.Info("InitRouter: создание маршрутов завершено")
	return catalogService
}
