package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/firstaidhub/first_aid_response_system/internal/config"
	"github.com/firstaidhub/first_aid_response_system/internal/content"
	v1 "github.com/firstaidhub/first_aid_response_system/internal/handler/http/v1"
	"github.com/firstaidhub/first_aid_response_system/internal/repository"
	"github.com/firstaidhub/first_aid_response_system/internal/service"
	"github.com/firstaidhub/first_aid_response_system/internal/simulator"
	"github.com/firstaidhub/first_aid_response_system/internal/webhook"
	"github.com/firstaidhub/first_aid_response_system/pkg/logger"

	_ "github.com/firstaidhub/first_aid_response_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title First Aid Response System API
// @version 1.0
// @description Training and emergency reporting backend for the first aid platform.
// @host localhost:8080
// @BasePath /api
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище живет в памяти процесса: данные не переживают рестарт
	store := repository.NewMemoryStore()
	if cfg.DemoMode {
		if err := store.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed demo emergency cases: %v", err)
		}
		log.Info("Demo emergency cases loaded")
	}

	// Конвейер вебхуков: издатель и фоновый воркер доставки
	publisher := webhook.NewChannelPublisher(cfg.WebhookQueueSize)
	worker := webhook.NewWorker(publisher.Events(), log, cfg)
	worker.Start(ctx)

	// Инициализация сервисов
	caseService := service.NewCaseService(store, log, publisher)
	contentService := content.NewService(cfg.ContentSeed)

	// Симулятор новых случаев включается только в демо-режиме
	if cfg.DemoMode {
		sim := simulator.New(caseService, log, cfg.DemoInterval, cfg.DemoSeed)
		sim.Start(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(caseService, contentService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
