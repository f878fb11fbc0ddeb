package main

import (
	"context"
	"os"
	"os/signal"
	"recipe-service/cmd/config"
	migration "recipe-service/cmd/database/migrate"
	"recipe-service/internal/pkg/logger"
	"recipe-service/internal/utils"
	"syscall"
	"time"
)

func main() {
	utils.LoadConfig()

	log, err := logger.New(utils.GetConfig("LOG_MODE"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("database connection failed", "error", err)
	}

	if err := migration.Migrate(db, utils.GetConfig("SEARCH_LANGUAGE")); err != nil {
		log.Fatal("database migration failed", "error", err)
	}
	log.Info("database migration complete")

	app, closeApp, err := config.NewApp(db, log)
	if err != nil {
		log.Fatal("app setup failed", "error", err)
	}
	defer closeApp()

	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		log.Info("starting server", "addr", addr)
		if err := app.Listen(addr); err != nil {
			log.Error("server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
