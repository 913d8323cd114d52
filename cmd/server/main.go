package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pindranil/waste-wise-report/config"
	"github.com/pindranil/waste-wise-report/internal/database"
	"github.com/pindranil/waste-wise-report/internal/router"
	"github.com/pindranil/waste-wise-report/internal/store"
	"github.com/pindranil/waste-wise-report/pkg/cloudinary"
)

func main() {
	cfg := config.Load()

	var backend store.Backend
	if cfg.Storage.Driver == "redis" {
		backend = store.NewRedisBackend(cfg.Storage.DSN, cfg.Storage.RedisPassword, cfg.Storage.RedisDB)
	} else {
		db, err := database.NewDB(&cfg.Storage)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		backend = store.NewGormBackend(db)
	}

	st := store.New(backend)
	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("store: %v", err)
	}

	var cloud cloudinary.Client
	if cfg.Cloudinary.CloudName != "" {
		c, err := cloudinary.NewClientFromParams(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret)
		if err != nil {
			log.Fatalf("cloudinary: %v", err)
		}
		cloud = c
	} else {
		log.Printf("cloudinary disabled: set CLOUDINARY_CLOUD_NAME to enable image uploads")
	}

	engine := router.Setup(cfg, st, cloud)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		log.Printf("server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server shutdown:", err)
	}
	log.Println("server stopped")
}
