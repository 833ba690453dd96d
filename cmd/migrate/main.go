package main

import (
	"context" // Context for the admin bootstrap

	"career_portal/internal/config" // Custom import path (Config)
	"career_portal/internal/db"     // Custom import path (Database)
	"career_portal/internal/store"  // Persistence layer

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	// Seed the default admin alongside the schema
	if _, err := db.EnsureDefaultAdmin(context.Background(), store.NewUserStore(gdb), db.AdminSeed{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		logrus.Fatalf("failed to ensure default admin: %v", err)
	}
}
