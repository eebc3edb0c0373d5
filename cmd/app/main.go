package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/auth"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/config"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/handler"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/repo"
	"github.com/EFREI-M2-Dev/Back-Web-Final-Fred-Choco-SL/internal/service"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем БД
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to Database.") // Fatal потому что дальнейшая работа теряет смысл
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Failed to ping the Database.")
	}
	logger.Info("Successfully connected to the Database!")

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Репозитории -> сервисы -> хэндлеры, без глобальных синглтонов
	authHandler := handler.NewAuthHandler(service.NewAuthService(repo.NewUserRepo(pool), tokens), logger)
	projectHandler := handler.NewProjectHandler(service.NewProjectService(repo.NewProjectRepo(pool)), logger)
	statusHandler := handler.NewStatusHandler(service.NewStatusService(repo.NewStatusRepo(pool)), logger)
	tagHandler := handler.NewTagHandler(service.NewTagService(repo.NewTagRepo(pool)), logger)
	taskHandler := handler.NewTaskHandler(service.NewTaskService(repo.NewTaskRepo(pool)), logger)

	r := handler.NewRouter(tokens, authHandler, projectHandler, statusHandler, tagHandler, taskHandler)

	srv := http.Server{ // Создаем сервер
		Addr: ":" + cfg.Port,
		Handler: r,
		ReadTimeout: 10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func ()  { // Запуск сервера и обработка ошибок
		logger.Info("Server started at ", zap.String("port", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed: ", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10 * time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Shutdown error: ", zap.Error(err))
	}
	logger.Info("Server stopped succsessfully!")
}
