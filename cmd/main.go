package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/avkorablev/skills-tracker/internal/db"
	"github.com/avkorablev/skills-tracker/internal/facades"
	"github.com/avkorablev/skills-tracker/internal/handlers"
	"github.com/avkorablev/skills-tracker/internal/jwt"
	"github.com/avkorablev/skills-tracker/internal/logger"
	"github.com/avkorablev/skills-tracker/internal/middlewares"
	"github.com/avkorablev/skills-tracker/internal/repositories"
	"github.com/avkorablev/skills-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title skills-tracker API
// @version 1.0.0
// @description Internal service for tracking employee skills and profiles with full change history
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddrs, kafkaTopic, logLevel,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, cacheTTLSecond,
		kafkaAddrs, kafkaTopic, logLevel,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaAddrs, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "skills")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("SUGGESTION_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty KAFKA_ADDRS disables audit event publishing
	kafkaAddrs = getEnv("KAFKA_ADDRS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "skills.audit")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaAddrs, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	database, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer database.Close()
	database.SetMaxOpenConns(pgMaxOpenConns)
	database.SetMaxIdleConns(pgMaxIdleConns)

	if err := db.RunMigrations(database, pgDB); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Audit event publisher; disabled when no brokers are configured
	var auditEvents services.AuditEventPublisher
	if kafkaAddrs != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaAddrs, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		auditFacade := facades.NewAuditEventsKafkaFacade(kafkaWriter)
		defer auditFacade.Close()
		auditEvents = auditFacade
		logger.Log.Infow("audit events enabled", "brokers", kafkaAddrs, "topic", kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(database, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(database, txGetter)
	skillReadRepo := repositories.NewSkillReadRepository(database, txGetter)
	skillWriteRepo := repositories.NewSkillWriteRepository(database, txGetter)
	skillHistoryReadRepo := repositories.NewSkillHistoryReadRepository(database)
	skillHistoryWriteRepo := repositories.NewSkillHistoryWriteRepository(database, txGetter)
	profileHistoryReadRepo := repositories.NewProfileHistoryReadRepository(database)
	profileHistoryWriteRepo := repositories.NewProfileHistoryWriteRepository(database, txGetter)
	suggestionReadRepo := repositories.NewSuggestionReadRepository(database)
	suggestionCacheRepo := repositories.NewSuggestionCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, profileHistoryReadRepo, profileHistoryWriteRepo, auditEvents)
	skillService := services.NewSkillService(skillReadRepo, skillWriteRepo, skillHistoryReadRepo, skillHistoryWriteRepo, auditEvents)
	suggestionService := services.NewSuggestionService(suggestionReadRepo, suggestionCacheRepo)
	adminService := services.NewAdminService(userReadRepo, skillReadRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))

			r.Get("/profile", handlers.NewGetProfileHandler(profileService))
			r.Get("/profile/history", handlers.NewProfileHistoryHandler(profileService))
			r.Get("/skills", handlers.NewListSkillsHandler(skillService))
			r.Get("/skills/{skillID}/history", handlers.NewSkillHistoryHandler(skillService))
			r.Get("/suggestions", handlers.NewSuggestionsHandler(suggestionService))

			// Mutations run inside one transaction per request, so history
			// rows and the entity update commit or roll back together.
			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(database))

				r.Put("/profile", handlers.NewUpdateProfileHandler(profileService))
				r.Post("/skills", handlers.NewCreateSkillHandler(skillService))
				r.Put("/skills/{skillID}", handlers.NewUpdateSkillHandler(skillService))
			})

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(middlewares.AdminMiddleware())

				r.Get("/admin/users", handlers.NewAdminUsersHandler(adminService))
				r.Get("/admin/skills", handlers.NewAdminSkillsHandler(adminService))
				r.Get("/admin/analytics", handlers.NewAnalyticsHandler(adminService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
