// @title        possbien API
// @version      1.0
// @description  Backend REST del punto de venta multiempresa: catálogo, inventario, cajas y ventas.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Escriba "Bearer " seguido del token JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NotSleepp/possbien/docs"
	"github.com/NotSleepp/possbien/internal/application/analytics"
	"github.com/NotSleepp/possbien/internal/application/auth"
	"github.com/NotSleepp/possbien/internal/application/cash"
	"github.com/NotSleepp/possbien/internal/application/inventory"
	"github.com/NotSleepp/possbien/internal/application/ports"
	"github.com/NotSleepp/possbien/internal/application/sales"
	"github.com/NotSleepp/possbien/internal/application/usecase"
	"github.com/NotSleepp/possbien/internal/infrastructure/cache"
	infrapdf "github.com/NotSleepp/possbien/internal/infrastructure/pdf"
	"github.com/NotSleepp/possbien/internal/infrastructure/postgres"
	"github.com/NotSleepp/possbien/internal/infrastructure/storage"
	"github.com/NotSleepp/possbien/internal/infrastructure/telemetry"
	httpRouter "github.com/NotSleepp/possbien/internal/interfaces/http"
	"github.com/NotSleepp/possbien/pkg/config"
	"github.com/NotSleepp/possbien/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar trazas")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	registerRepo := postgres.NewCashRegisterRepository(pool)
	sessionRepo := postgres.NewCashSessionRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de permisos y lista negra de tokens: Redis si está configurado, memoria si no.
	var (
		permCache ports.PermissionCache
		blacklist ports.TokenBlacklist
	)
	if cfg.Redis.Enabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rdb.Close()
		permCache = cache.NewRedisPermissionCache(rdb, cache.PermissionTTL)
		blacklist = cache.NewRedisTokenBlacklist(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché Redis habilitada")
	} else {
		permCache = cache.NewMemoryPermissionCache(cache.PermissionTTL)
		blacklist = cache.NewMemoryTokenBlacklist()
		log.Warn().Msg("REDIS_ADDR vacío: caché y lista negra en memoria (una sola instancia)")
	}

	// Imágenes de productos. Sin MinIO el caso de uso responde ErrStorageDisabled.
	var objects ports.ObjectStorage
	if cfg.MinIO.Enabled() {
		minioStorage, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MinIO")
		}
		objects = minioStorage
		log.Info().Str("endpoint", cfg.MinIO.Endpoint).Str("bucket", cfg.MinIO.Bucket).Msg("almacenamiento de imágenes habilitado")
	}

	metrics, err := telemetry.NewMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas")
	}
	receipts := infrapdf.NewMarotoReceipts()

	permissions := auth.NewPermissionService(permissionRepo, permCache)
	authUC := auth.NewAuthUseCase(userRepo, roleRepo, companyRepo, permissions, blacklist, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	movementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo, warehouseRepo, movementRepo)
	saleUC := sales.NewSaleUseCase(txRunner, movementUC, saleRepo, companyRepo, receipts, metrics)
	sessionUC := cash.NewSessionUseCase(txRunner, registerRepo, sessionRepo, companyRepo, userRepo, receipts)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(otelfiber.Middleware())
	app.Use(httpRouter.RequestID())
	if cfg.Telemetry.MetricsEnabled {
		app.Use(httpRouter.Metrics(metrics))
	}
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + httpRouter.RequestIDHeader,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: []byte(docs.SwaggerInfo.ReadDoc()),
		Path:        "docs",
		Title:       "possbien API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degradado", "db": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Telemetry.MetricsEnabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Permissions:    permissions,
		CompanyUC:      usecase.NewCompanyUseCase(txRunner, companyRepo),
		BranchUC:       usecase.NewBranchUseCase(branchRepo),
		WarehouseUC:    usecase.NewWarehouseUseCase(warehouseRepo, branchRepo),
		UserUC:         usecase.NewUserUseCase(txRunner, userRepo, blacklist, time.Duration(cfg.JWT.Expiration)*time.Minute),
		RoleUC:         usecase.NewRoleUseCase(roleRepo, permCache),
		PermissionUC:   usecase.NewPermissionUseCase(permissionRepo, roleRepo, permCache),
		CategoryUC:     usecase.NewCategoryUseCase(categoryRepo),
		ProductUC:      usecase.NewProductUseCase(productRepo, categoryRepo),
		ProductImageUC: usecase.NewProductImageUseCase(productRepo, objects),
		StockUC:        usecase.NewStockUseCase(txRunner, stockRepo, productRepo, warehouseRepo),
		CashRegisterUC: usecase.NewCashRegisterUseCase(registerRepo, branchRepo),
		Movements:      movementUC,
		Replenishment:  inventory.NewReplenishmentUseCase(analyticsRepo),
		CashSessions:   sessionUC,
		Sales:          saleUC,
		DashboardUC:    analytics.NewDashboardUseCase(analyticsRepo),
		TokenBlacklist: blacklist,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre del exportador de trazas")
	}

	log.Info().Msg("aplicación detenida")
}
