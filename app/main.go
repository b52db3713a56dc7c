package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog/mock"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/catalog/mylab"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/routes"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/config"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/customvalidator"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/database/postgresql"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	applogger "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/logger"
	appmw "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/middleware"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/utils"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Паника в обработчике запроса",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition", "X-Request-ID"},
	}))
	e.Use(appmw.RequestLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	ctx := context.Background()

	dbConn, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer dbConn.Close()

	if err := postgresql.Migrate(ctx, dbConn, cfg.Postgres.MigrationsPath); err != nil {
		logger.Fatal("Не удалось применить миграции", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Fatal("Не удалось подключиться к Redis",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
	}

	registry := catalog.NewRegistry()
	if err := registry.Register(mylab.New(cfg.Catalog.BaseURL, logger)); err != nil {
		logger.Fatal("Не удалось зарегистрировать провайдера каталога", zap.Error(err))
	}
	if err := registry.Register(mock.NewMockProvider()); err != nil {
		logger.Fatal("Не удалось зарегистрировать mock-провайдера", zap.Error(err))
	}
	if err := registry.SetActive(cfg.Catalog.ActiveProvider); err != nil {
		logger.Fatal("Не удалось выбрать активного провайдера каталога",
			zap.Error(err), zap.String("provider", cfg.Catalog.ActiveProvider))
	}

	catalogService := routes.InitRouter(e, dbConn, redisClient, registry, cfg, logger)

	// Стартовая синхронизация не блокирует подъём сервера.
	if cfg.Catalog.SyncOnStartup {
		go func() {
			syncCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			if _, err := catalogService.Sync(syncCtx); err != nil {
				logger.Warn("Стартовая синхронизация каталога не удалась", zap.Error(err))
			}
		}()
	}

	logger.Info("Сервер запущен", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
