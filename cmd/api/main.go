package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/config"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/handler"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/middleware"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/migration"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/repository"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/routes"
	"github.com/MarcosDataScientist/projeto-banco-de-dados/internal/service"
	pkgcache "github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/cache"
	pkglogger "github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/logger"
	pkgredis "github.com/MarcosDataScientist/projeto-banco-de-dados/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.Init(env)
	pkglogger.GetLogger().Info().
		Str("env", env).
		Strs("env_files", dotenvFiles).
		Msg("starting")

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.GetLogger().Info().
		Str("host", cfg.Database.Host).
		Str("name", cfg.Database.Name).
		Msg("connected to Postgres")

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis is optional; the dashboard cache degrades to direct reads
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			pkglogger.GetLogger().Warn().Err(err).Msg("Redis unavailable, continuing without cache")
		} else {
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.GetLogger().Info().Msg("connected to Redis")
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := cfg.CORS.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowOrigins, ","),
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID"},
		MaxAge:           86400,
	}))

	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "avaliacao-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	questionnaireRepo := repository.NewQuestionnaireRepository(db)
	classificationRepo := repository.NewClassificationRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	employeeSvc := service.NewEmployeeService(employeeRepo, evaluationRepo, trainingRepo)
	questionSvc := service.NewQuestionService(questionRepo)
	questionnaireSvc := service.NewQuestionnaireService(questionnaireRepo, classificationRepo)
	evaluationSvc := service.NewEvaluationService(evaluationRepo, dashboardRepo)
	evaluatorSvc := service.NewEvaluatorService(trainingRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cacheService)
	adminSvc := service.NewAdminService(adminRepo, cacheService)

	// Handlers
	routes.Setup(
		router,
		handler.NewEmployeeHandler(employeeSvc),
		handler.NewQuestionHandler(questionSvc),
		handler.NewQuestionnaireHandler(questionnaireSvc),
		handler.NewEvaluationHandler(evaluationSvc),
		handler.NewEvaluatorHandler(evaluatorSvc),
		handler.NewDashboardHandler(dashboardSvc),
		handler.NewAdminHandler(adminSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.GetLogger().Info().Int("port", cfg.Server.Port).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	pkglogger.GetLogger().Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Forced shutdown: %v", err)
	}
}

// initDB opens the Postgres connection and applies the pool bounds
func initDB(cfg *config.Config) (*gorm.DB, error) {
	logMode := gormlogger.Warn
	if cfg.IsDevelopment() {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetConnMaxLifetime(time.Hour)
	middleware.SetDBConnectionsActive(float64(cfg.Database.MaxConns))

	return db, nil
}
