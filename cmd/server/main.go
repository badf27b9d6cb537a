package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"akshaya-backend/internal/auth"
	"akshaya-backend/internal/backup"
	"akshaya-backend/internal/cache"
	"akshaya-backend/internal/config"
	"akshaya-backend/internal/database"
	"akshaya-backend/internal/db"
	"akshaya-backend/internal/handlers"
	"akshaya-backend/internal/health"
	h "akshaya-backend/internal/http"
	"akshaya-backend/internal/middleware"
	"akshaya-backend/internal/monitoring"
	"akshaya-backend/internal/repositories"
	"akshaya-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Run migrations before anything touches the schema
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: report caching degrades to direct queries
	redisAddr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	if err := cache.Init(redisAddr, cfg.Redis.Password); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (reports will skip caching)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	jwtManager := auth.NewJWTManager(cfg)

	userRepo := repositories.NewUserRepository(pool)
	entryRepo := repositories.NewEntryRepository(pool)
	entryEditLogRepo := repositories.NewEntryEditLogRepository(pool)

	totpService := services.NewTOTPService(userRepo)
	userService := services.NewUserService(userRepo, jwtManager, totpService)
	entryService := services.NewEntryService(entryRepo, entryEditLogRepo)
	reportService := services.NewReportService(entryRepo)

	healthChecker := health.NewHealthChecker(pool)

	authHandler := handlers.NewAuthHandler(userService)
	entryHandler := handlers.NewEntryHandler(entryService)
	reportHandler := handlers.NewReportHandler(reportService)
	totpHandler := handlers.NewTOTPHandler(totpService, userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Operations sidecar: process stats, websocket alerts, tally watch
	if cfg.Monitoring.Enabled {
		go monitoring.NewServer(pool, reportService, cfg.Monitoring.Port).Start()
	}

	// R2 backups run only when all credentials are present
	if cfg.Backup.Enabled {
		scheduler := backup.NewScheduler(cfg, reportService)
		scheduler.Start()
		defer scheduler.Stop()
	} else {
		log.Println("[R2 Backup] Disabled (R2 credentials not configured)")
	}

	router := h.NewRouter(authHandler, entryHandler, reportHandler, totpHandler, userHandler, healthHandler, authMiddleware)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
