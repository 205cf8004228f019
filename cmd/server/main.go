package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/saransh1220/filevault/internal/config"
	"github.com/saransh1220/filevault/internal/database"
	"github.com/saransh1220/filevault/internal/events"
	"github.com/saransh1220/filevault/internal/gateway"
	"github.com/saransh1220/filevault/internal/handler"
	"github.com/saransh1220/filevault/internal/middleware"
	"github.com/saransh1220/filevault/internal/queue"
	"github.com/saransh1220/filevault/internal/repository"
	"github.com/saransh1220/filevault/internal/router"
	"github.com/saransh1220/filevault/internal/service"
	"github.com/saransh1220/filevault/internal/session"
	"github.com/saransh1220/filevault/internal/storage"
	"github.com/saransh1220/filevault/internal/worker"
	"github.com/saransh1220/filevault/pkg/migration"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.Server.MigrationsPath != "" {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
		if err := migration.AutoMigrate(cfg.Database.URL(), cfg.Server.MigrationsPath, logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	log.Println("Connecting to DB...")
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.Close()
	log.Printf("Database Connected Successfully!")

	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	blobs, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	fileRepo := repository.NewFileRepository(db)
	userRepo := repository.NewUserRepository(db)
	sessions := session.NewRedisStore(redisClient)
	jobQueue := queue.NewRedisQueue(redisClient, cfg.Worker.QueueKey)

	authService := service.NewAuthService(userRepo, sessions, cfg.Session.TTL)
	fileService := service.NewFileService(fileRepo, blobs, jobQueue)

	hub := events.NewHub()
	go hub.Run()

	workerCtx, stopWorker := context.WithCancel(ctx)
	thumbWorker := worker.NewThumbnailWorker(jobQueue, fileRepo, worker.NewThumbnailer(blobs), hub)
	go thumbWorker.Run(workerCtx)

	authMiddleware := middleware.NewAuthMiddleware(sessions)
	mux := router.SetupRoutes(router.RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService),
		FileHandler:    handler.NewFileHandler(fileService),
		AppHandler:     handler.NewAppHandler(redisClient, userRepo, fileRepo, db.Ping),
		EventsHandler:  handler.NewEventsHandler(hub),
		AuthMiddleware: authMiddleware,
	})

	server := gateway.NewServer(cfg.Server.Port, mux)
	if err := server.Start(func() {
		stopWorker()
		hub.Stop()
	}); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
