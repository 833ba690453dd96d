package main

import (
	"context" // context package is needed for startup checks
	"time"    // Timeouts for startup checks

	"career_portal/internal/api"     // Custom package for API handlers
	"career_portal/internal/config"  // Custom package for configuration
	"career_portal/internal/db"      // Database connection and bootstrap
	"career_portal/internal/storage" // Resume storage backends
	"career_portal/internal/store"   // Persistence layer
	"career_portal/internal/utils"   // Cache helpers

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Connect to the database
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	users := store.NewUserStore(gdb)
	applications := store.NewApplicationStore(gdb)

	// The default admin must exist before requests are served
	if _, err := db.EnsureDefaultAdmin(ctx, users, db.AdminSeed{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		logrus.Fatalf("failed to ensure default admin: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Setup resume storage
	resumes, err := newResumeStorage(cfg)
	if err != nil {
		logrus.Fatalf("failed to configure resume storage: %v", err)
	}
	if err := resumes.EnsureBucket(ctx); err != nil {
		logrus.Fatalf("failed to prepare resume storage: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	api.RegisterRoutes(r, api.Deps{
		Users:          users,
		Applications:   applications,
		Resumes:        resumes,
		Cache:          utils.NewRedisCache(redisClient),
		JWTSecret:      cfg.JWTSecret,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})

	logrus.WithField("port", cfg.AppPort).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// newResumeStorage picks the configured resume backend
func newResumeStorage(cfg *config.Config) (storage.ResumeStorage, error) {
	if cfg.StorageBackend == "minio" {
		m, err := storage.NewMinioStorage(storage.MinioConfig{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	l, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// corsConfig allows the headers the admin front end sends tokens in
func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	if len(origins) == 0 {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	c.AllowHeaders = []string{"Origin", "Content-Type", "token", "Authorization"}
	c.ExposeHeaders = []string{"token", "Authorization"}
	c.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"}
	return c
}
