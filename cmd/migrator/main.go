package main

import (
	"ReceiptTracker/database/migrations"
	"ReceiptTracker/database/postgres"
	"ReceiptTracker/internal/config"
	"ReceiptTracker/pkg/log"
	"flag"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	var direction string
	flag.StringVar(&direction, "direction", "up", "migration direction: up, down or version")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.NewLogger().Fatalf("Error loading .env file: %v", err)
	}

	logger := log.NewLogger()

	dbConfig, err := config.ReadDatabaseEnv()
	if err != nil {
		logger.Fatal(err)
	}

	db, err := postgres.New(postgres.Options{
		DSN:          dbConfig.DSN(),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	switch direction {
	case "up":
		if err := migrations.Up(db.DB); err != nil {
			logger.Fatal(err)
		}
		logger.Info("Migrations applied successfully")
	case "down":
		if err := migrations.Down(db.DB); err != nil {
			logger.Fatal(err)
		}
		logger.Info("Migrations rolled back successfully")
	case "version":
		version, dirty, err := migrations.Version(db.DB)
		if err != nil {
			logger.Fatal(err)
		}
		logger.Infof("Schema version %d (dirty: %t)", version, dirty)
	default:
		logger.Fatalf("Unknown direction %q", direction)
	}
}
