package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/handler"
	"github.com/marcos-nsantos/latlng-parcel/internal/adapter/repository/postgres"
	blobstorage "github.com/marcos-nsantos/latlng-parcel/internal/adapter/storage"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/cache"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/config"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/database"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/observability"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/server"
	"github.com/marcos-nsantos/latlng-parcel/internal/infrastructure/storage"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/archive"
	"github.com/marcos-nsantos/latlng-parcel/internal/usecase/coordinate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.String("path", cfg.Database.MigrationsPath))
	}

	// Repositories
	parcelRepo := postgres.NewParcelRepo(pool)

	// Infrastructure services
	var blobs blobstorage.BlobStorage
	if cfg.Archive.MirrorToS3 {
		s3Storage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 storage", zap.Error(err))
		}
		blobs = s3Storage
		logger.Info("mirroring parcels to s3", zap.String("bucket", cfg.S3.Bucket))
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Use cases
	coordSvc := coordinate.NewService(observability.NewCodecRecorder())
	archiveSvc := archive.NewService(parcelRepo, blobs, coordSvc)

	// Handlers
	coordinateHandler := handler.NewCoordinateHandler(coordSvc)
	parcelHandler := handler.NewParcelHandler(archiveSvc)

	// Router
	router := server.NewRouter(server.RouterConfig{
		CoordinateHandler: coordinateHandler,
		ParcelHandler:     parcelHandler,
		RateLimiter:       rateLimiter,
		Logger:            logger,
		Environment:       cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	logger.Info("server stopped")
}
