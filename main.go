package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Eursukkul/event-catalog/config"
	"github.com/Eursukkul/event-catalog/internal/consumer"
	"github.com/Eursukkul/event-catalog/internal/logger"
	"github.com/Eursukkul/event-catalog/internal/repository"
	"github.com/Eursukkul/event-catalog/internal/server"
	"github.com/Eursukkul/event-catalog/internal/service"
	"github.com/Eursukkul/event-catalog/pkg/database"
	"github.com/Eursukkul/event-catalog/pkg/rabbitmq"
)

func main() {
	log := logger.Default()
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.DSN(), cfg.DBPool)
	if err != nil {
		log.Error("DATABASE", err.Error())
		os.Exit(1)
	}
	log.Info("DATABASE", fmt.Sprintf("connected to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName))

	eventRepo := repository.NewEventRepository(db)
	entryTypeRepo := repository.NewEntryTypeRepository(db)

	// Optional mirror of the upstream catalog
	var (
		mq       *rabbitmq.Consumer
		syncDone <-chan struct{}
	)
	if cfg.SyncEnabled {
		mq, err = rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Error("RABBITMQ", fmt.Sprintf("failed to connect: %v", err))
			os.Exit(1)
		}

		msgs, err := mq.Consume()
		if err != nil {
			log.Error("RABBITMQ", fmt.Sprintf("failed to start consuming: %v", err))
			os.Exit(1)
		}
		log.Info("RABBITMQ", "consuming from queue "+rabbitmq.QueueName)
		syncDone = consumer.NewCatalogConsumer(eventRepo, entryTypeRepo, log).Start(msgs)
	}

	eventSvc := service.NewEventService(eventRepo, entryTypeRepo)
	entryTypeSvc := service.NewEntryTypeService(entryTypeRepo)
	e := server.New(eventSvc, entryTypeSvc, log)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("SERVER", fmt.Sprintf("%s starting on :%s", server.ServiceName, cfg.ServerPort))
		srvErr <- e.Start(":" + cfg.ServerPort)
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("SERVER", err.Error())
		}
	case <-stopCtx.Done():
		log.Info("SERVER", "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn("SERVER", fmt.Sprintf("shutdown: %v", err))
	}

	// closing the channel ends the delivery stream; the consumer drains and exits
	if mq != nil {
		mq.Close()
		select {
		case <-syncDone:
		case <-shutdownCtx.Done():
			log.Warn("SYNC", "consumer did not stop before shutdown timeout")
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("SERVER", "stopped")
}
