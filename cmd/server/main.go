package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/makeitweb/studio-backend/internal/config"
	"github.com/makeitweb/studio-backend/internal/db"
	"github.com/makeitweb/studio-backend/internal/events"
	"github.com/makeitweb/studio-backend/internal/httpserver"
	"github.com/makeitweb/studio-backend/internal/importer"
	"github.com/makeitweb/studio-backend/internal/logging"
	loggingmw "github.com/makeitweb/studio-backend/internal/middleware/logging"
	"github.com/makeitweb/studio-backend/internal/models"
	"github.com/makeitweb/studio-backend/internal/repo"
	"github.com/makeitweb/studio-backend/internal/service"
	"github.com/makeitweb/studio-backend/internal/upload"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg := config.MustLoad()

	logger := logging.New(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"environment", cfg.Environment,
	)
	slog.SetDefault(logger)

	ctx := context.Background()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("db_open_failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Error("db_migrate_failed", "error", err)
		os.Exit(1)
	}

	proc, err := upload.NewProcessor(cfg.UploadDir)
	if err != nil {
		logger.Error("upload_dir_failed", "error", err)
		os.Exit(1)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka_close_failed", "error", err)
		}
	}()

	categories := repo.NewCategoryRepo(gdb)
	cases := repo.NewCaseRepo(gdb)
	products := repo.NewProductRepo(gdb)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestID(),
		loggingmw.RequestLogger(logger),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:  cfg.CORSOrigins,
			ExposeHeaders: []string{httpserver.ContentRangeHeader},
		}),
	)
	e.Static("/uploads", cfg.UploadDir)

	deps := httpserver.Deps{
		Categories: &httpserver.CategoryHTTP{Svc: &service.CategoryService{Repo: categories}},
		Cases: &httpserver.CasesHTTP{
			Svc:      &service.CaseService{Repo: cases},
			Resource: "cases",
			Section:  models.SectionPortfolio,
		},
		CasesHome: &httpserver.CasesHTTP{
			Svc:      &service.CaseService{Repo: cases},
			Resource: "casesHome",
			Section:  models.SectionHome,
		},
		Developers:  &httpserver.DeveloperHTTP{Svc: &service.DeveloperService{Repo: repo.NewDeveloperRepo(gdb)}},
		Shops:       &httpserver.ShopHTTP{Svc: &service.ShopService{Repo: repo.NewShopRepo(gdb)}},
		Products:    &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: products, Producer: producer}},
		Discussions: &httpserver.DiscussionHTTP{Svc: &service.DiscussionService{Repo: repo.NewDiscussionRepo(gdb)}},
		Users:       &httpserver.UserHTTP{Svc: &service.UserService{Repo: repo.NewUserRepo(gdb)}},
		Uploads:     &httpserver.UploadHTTP{Proc: proc},
		Imports: &httpserver.ImportHTTP{Importer: &importer.Importer{
			Categories: categories,
			Products:   products,
			Producer:   producer,
		}},
		UploadLimit: fmt.Sprintf("%dM", cfg.MaxUploadMB),
	}
	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server_failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_failed", "error", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("db_close_failed", "error", err)
		}
	}

	logger.Info("shutdown_complete")
}
