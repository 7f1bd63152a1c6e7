package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/company-sales-api/internal/config"
	"github.com/company-sales-api/internal/handler"
	"github.com/company-sales-api/internal/repository"
	"github.com/company-sales-api/internal/service"
	"github.com/company-sales-api/internal/storage"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Инициализация логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg := config.Load()

	// Подключение к БД
	db, err := storage.Open(cfg.Database, gormlogger.Warn)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if err := storage.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// Инициализация репозиториев
	companyRepo := repository.NewCompanyRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Восстановление графа
	g, err := service.LoadGraph(context.Background(), snapshotRepo, cfg.SeedSampleData, logger)
	if err != nil {
		logger.Error("failed to load graph", slog.Any("error", err))
		os.Exit(1)
	}
	store := service.NewGraphStore(g)

	// Инициализация сервисов
	companyService := service.NewCompanyService(store, companyRepo)
	deptService := service.NewDepartmentService(store, deptRepo)
	empService := service.NewEmployeeService(store, empRepo)
	saleService := service.NewSaleService(store, saleRepo)
	reportService := service.NewReportService(store)

	// Инициализация хендлеров
	companyHandler := handler.NewCompanyHandler(companyService, deptService, logger)
	deptHandler := handler.NewDepartmentHandler(deptService, empService, logger)
	empHandler := handler.NewEmployeeHandler(empService, saleService, logger)
	reportHandler := handler.NewReportHandler(reportService, logger)

	// Настройка роутера
	router := handler.NewRouter(companyHandler, deptHandler, empHandler, reportHandler, logger)
	httpHandler := router.Setup()

	// Настройка HTTP сервера
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
