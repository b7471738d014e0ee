package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/Ayanroy004/Leet-lab/internal/adapter/judge0"
	"github.com/Ayanroy004/Leet-lab/internal/adapter/postgres/submissionrepository"
	"github.com/Ayanroy004/Leet-lab/internal/adapter/redis/solvedcache"
	"github.com/Ayanroy004/Leet-lab/internal/config"
	execsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/execution"
	problemsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/problem"
	subsvc "github.com/Ayanroy004/Leet-lab/internal/core/services/submission"
	logger2 "github.com/Ayanroy004/Leet-lab/internal/global/logger"
	"github.com/Ayanroy004/Leet-lab/internal/handlers"
	http2 "github.com/Ayanroy004/Leet-lab/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge orchestrator service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	executor := judge0.NewClient(sysCfg.Judge0Config, logger)
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger)
	solvedCache := solvedcache.NewSolvedCache(redisClient, logger)

	// services
	submitter := execsvc.NewSubmitter(executor, sysCfg.ExecutionCfg.MaxBatchSize, logger)
	poller := execsvc.NewPoller(executor, sysCfg.ExecutionCfg, logger)
	executionService := execsvc.NewExecutionService(submitter, poller, submissionRepo, solvedCache, logger)
	submissionService := subsvc.NewSubmissionService(submissionRepo, solvedCache, logger)
	validationService := problemsvc.NewValidationService(executor, poller, logger)
	serviceProvider := http2.NewServiceProvider(executionService, submissionService, validationService)

	// server
	middleware := handlers.NewMiddlewareProvider(sysCfg.JwtConfig)
	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, "judgeOrchestrator", *serviceProvider, middleware, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}

	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
