package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"captura-leads.backend/internal/config"
	"captura-leads.backend/internal/infrastructure/datasources/postgres"
	"captura-leads.backend/internal/infrastructure/jobs"
	"captura-leads.backend/internal/infrastructure/models"
	"captura-leads.backend/internal/infrastructure/repositories"
	"captura-leads.backend/internal/interfaces/http/handlers"
	"captura-leads.backend/internal/interfaces/http/middleware"
	"captura-leads.backend/internal/usecases"
	"captura-leads.backend/pkg/crypto"
	"captura-leads.backend/pkg/jwt"
	"captura-leads.backend/pkg/logger"
	"captura-leads.backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = postgres.NewConnection
	migrateDB       = func(db *gorm.DB) error { return db.AutoMigrate(models.All()...) }
	newSessionStore = redis.NewSessionStore
	runServer       = serveUntilSignal
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	envErr := loadDotenv()

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	defer logger.Sync()
	if envErr != nil {
		logger.Debug(ctx, "No .env file found, using environment variables")
	}
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis backs sessions and idempotency only; the API still serves without it.
	var sessions usecases.SessionStore
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		redis.SetClient(nil)
		logger.Warn(ctx, "Redis unavailable, sessions and idempotency disabled", zap.Error(err))
	} else {
		store, err := newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		sessions = store
		logger.Info(ctx, "Redis initialized")
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := migrateDB(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	funnelJob := jobs.NewLeadFunnelGaugeJob(repositories.NewLeadRepository(db), jobs.DefaultFunnelInterval)
	go funnelJob.Start(jobCtx)

	r := newRouter(cfg, db, sessions)

	logger.Info(ctx, "Captura Leads backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// newRouter wires repositories, usecases and handlers into a gin engine.
// sessions may be nil when Redis is not available.
func newRouter(cfg *config.Config, db *gorm.DB, sessions usecases.SessionStore) *gin.Engine {
	jwtService := jwt.NewJWTService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)
	hasher := crypto.NewPasswordHasher(cfg.Security.BcryptCost)

	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	answerRepo := repositories.NewAnswerRepository(db)
	followUpRepo := repositories.NewFollowUpRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)
	uow := repositories.NewUnitOfWork(db)

	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, hasher, sessions)
	userUsecase := usecases.NewUserUsecase(userRepo, hasher)
	if revoker, ok := sessions.(usecases.SessionRevoker); ok {
		userUsecase.WithSessionRevoker(revoker)
	}
	leadUsecase := usecases.NewLeadUsecase(uow, leadRepo, answerRepo, followUpRepo)
	questionUsecase := usecases.NewQuestionUsecase(questionRepo)
	answerUsecase := usecases.NewAnswerUsecase(leadRepo, answerRepo)
	followUpUsecase := usecases.NewFollowUpUsecase(leadRepo, followUpRepo)
	inquiryUsecase := usecases.NewInquiryUsecase(inquiryRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:            handlers.NewAuthHandler(authUsecase, int(cfg.JWT.RefreshExpiry.Seconds())),
		userHandler:            handlers.NewUserHandler(userUsecase),
		leadHandler:            handlers.NewLeadHandler(leadUsecase),
		questionHandler:        handlers.NewQuestionHandler(questionUsecase),
		answerHandler:          handlers.NewAnswerHandler(answerUsecase),
		followUpHandler:        handlers.NewFollowUpHandler(followUpUsecase),
		inquiryHandler:         handlers.NewInquiryHandler(inquiryUsecase),
		authMiddleware:         middleware.AuthMiddleware(jwtService, authUsecase),
		optionalAuthMiddleware: middleware.OptionalAuthMiddleware(jwtService, authUsecase),
	})
	return r
}

// serveUntilSignal runs the HTTP server and shuts it down gracefully on SIGINT or SIGTERM
func serveUntilSignal(r *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-quit:
	}

	logger.Info(context.Background(), "Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
