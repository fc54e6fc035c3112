package main

import (
	"context"
	"flag"

	"go-claims-service/cmd/bootstrap"
	"go-claims-service/config"
	"go-claims-service/internal/infrastructure/database"
	"go-claims-service/internal/seeder"

	"github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Int64("seed", 0, "random seed; 0 picks one from the clock")
	flag.Parse()

	bootstrap.SetupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	s := seeder.New(db, logrus.StandardLogger(), cfg.Seed, *seed)
	if err := s.Run(context.Background()); err != nil {
		logrus.Fatalf("Failed to seed database: %v", err)
	}
}
