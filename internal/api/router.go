package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/classtrack/academic-records-api/internal/api/handler"
	"github.com/classtrack/academic-records-api/internal/api/middleware"
	"github.com/classtrack/academic-records-api/internal/audit"
	"github.com/classtrack/academic-records-api/internal/auth"
	"github.com/classtrack/academic-records-api/internal/core/ports"
	"github.com/classtrack/academic-records-api/internal/core/service"
	"github.com/classtrack/academic-records-api/internal/infrastructure/config"
	mongodb "github.com/classtrack/academic-records-api/internal/infrastructure/db/mongo"
	redisdb "github.com/classtrack/academic-records-api/internal/infrastructure/db/redis"
)

// Deps carries the infrastructure the router wires handlers to.
type Deps struct {
	Config   *config.Config
	Mongo    *mongo.Database
	Redis    *redis.Client
	Files    ports.FileStore
	AuditLog *audit.Logger
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("academic_records"))
	e.Use(middleware.Audit(d.AuditLog))

	// --- Auth primitives ---
	tokens := auth.NewTokenManager(d.Config.JWTSecret, d.Config.TokenTTL())
	cookies := auth.NewCookieManager(d.Config.CookieName, d.Config.CookieDomain, d.Config.CookieSecret, d.Config.TokenTTL())

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(d.Mongo)
	subjectRepo := mongodb.NewSubjectRepository(d.Mongo)
	enrollmentRepo := mongodb.NewEnrollmentRepository(d.Mongo)
	evidenceRepo := mongodb.NewEvidenceRepository(d.Mongo)
	seedRepo := mongodb.NewSeedRepository(d.Mongo)
	statsCache := redisdb.NewStatsCache(d.Redis)

	// --- Services ---
	userService := service.NewUserService(userRepo, evidenceRepo, d.Log)
	subjectService := service.NewSubjectService(subjectRepo, d.Log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, userRepo, subjectRepo, d.Log)
	evidenceService := service.NewEvidenceService(evidenceRepo, enrollmentRepo, d.Files, statsCache, d.Log)
	seedService := service.NewSeedService(seedRepo, d.Config.Env, d.Log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService, tokens, cookies)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	evidenceHandler := handler.NewEvidenceHandler(evidenceService)
	loggerHandler := handler.NewLoggerHandler(d.AuditLog)
	seedHandler := handler.NewSeedHandler(seedService)

	session := middleware.Session(cookies, tokens)
	adminOnly := middleware.AdminOnly(userRepo)

	// --- Routes ---
	apiGroup := e.Group("/api")

	users := apiGroup.Group("/users")
	users.POST("/sign-up", userHandler.SignUp)
	users.POST("/login", userHandler.Login)
	users.GET("/logout", userHandler.Logout, session)
	users.GET("/students", userHandler.Students, session, adminOnly)
	users.GET("/number-of-students", userHandler.NumberOfStudents, session, adminOnly)
	users.GET("/top-students", userHandler.TopStudents, session, adminOnly)

	subjects := apiGroup.Group("/subjects", session, adminOnly)
	subjects.POST("/new-subject", subjectHandler.Create)

	enrollments := apiGroup.Group("/students-on-subjects", session, adminOnly)
	enrollments.POST("/register-student", enrollmentHandler.Register)

	evidences := apiGroup.Group("/evidences", session)
	evidences.POST("/upload", evidenceHandler.Upload)
	evidences.GET("", evidenceHandler.All, adminOnly)
	evidences.GET("/count-by-subject/:subjectId", evidenceHandler.CountBySubject, adminOnly)
	evidences.GET("/percentage-by-file-type", evidenceHandler.PercentageByFileType, adminOnly)

	apiGroup.GET("/logger/logs-file", loggerHandler.LogsFile, session, adminOnly)
	apiGroup.GET("/seed", seedHandler.Seed)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
