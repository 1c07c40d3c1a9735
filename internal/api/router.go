package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/taskvault/backend/docs"
	"github.com/taskvault/backend/internal/api/handler"
	"github.com/taskvault/backend/internal/api/middleware"
	"github.com/taskvault/backend/internal/core/domain"
	"github.com/taskvault/backend/internal/core/ports"
	"github.com/taskvault/backend/internal/core/service"
	"github.com/taskvault/backend/internal/infrastructure/config"
	mongorepo "github.com/taskvault/backend/internal/infrastructure/db/mongo"
	redisstore "github.com/taskvault/backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, files ports.FileStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit("20M"))
	e.Use(echoprometheus.NewMiddleware("taskvault"))

	// --- Dependencies ---
	accountRepo := mongorepo.NewAccountRepository(db)
	taskRepo := mongorepo.NewTaskRepository(db)
	submissionRepo := mongorepo.NewSubmissionRepository(db)
	contactRepo := mongorepo.NewContactRepository(db)

	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	taskService := service.NewTaskService(taskRepo, submissionRepo, log)
	submissionService := service.NewSubmissionService(submissionRepo, taskRepo, accountRepo, files, log)
	contactService := service.NewContactService(contactRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	taskHandler := handler.NewTaskHandler(taskService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	contactHandler := handler.NewContactHandler(contactService)

	authMW := middleware.Auth(cfg.JWTSecret)
	limiter := redisstore.NewRateLimitStore(rdb)
	rateLimit := func(scope string) echo.MiddlewareFunc {
		return middleware.RateLimit(limiter, scope, cfg.RateLimit.Max, cfg.RateLimit.Window, log)
	}

	// --- Public routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/contact", contactHandler.Create, rateLimit("contact"))
	apiGroup.POST("/auth/login", authHandler.Login, rateLimit("login"))

	// --- User routes ---
	user := apiGroup.Group("/user", authMW, middleware.RBAC(domain.RoleUser))
	user.GET("/tasks", taskHandler.ListEligible)
	user.POST("/submitTask", submissionHandler.Submit)
	user.GET("/submissions", submissionHandler.ListMine)

	// --- Admin routes ---
	admin := apiGroup.Group("/admin", authMW, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/createTask", taskHandler.Create)
	admin.GET("/submissions", submissionHandler.ListAll)
	admin.GET("/submission/:id", submissionHandler.Get)
	admin.POST("/reviewSubmission", submissionHandler.Review)
	admin.POST("/addUser", authHandler.AddUser)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
