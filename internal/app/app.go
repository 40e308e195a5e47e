package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/ya-wallet/internal/config"
	"github.com/denmor86/ya-wallet/internal/logger"
	"github.com/denmor86/ya-wallet/internal/network/router"
	"github.com/denmor86/ya-wallet/internal/storage"
	"github.com/denmor86/ya-wallet/internal/worker"
)

func Run(config config.Config) {

	db, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	if err := db.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	defer db.Close()

	store := storage.NewStorage(db)
	router := router.NewRouter(config, store)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск воркера очистки сессий
	worker := worker.NewSessionWorker(store.Sessions, config.Sessions.PurgeInterval)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
