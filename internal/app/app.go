package app

import (
	"context"

	"techtomorrow/internal/config"
	"techtomorrow/internal/db"
	"techtomorrow/internal/handlers"
	"techtomorrow/internal/logger"
	"techtomorrow/internal/pages"
	"techtomorrow/internal/repository"
	"techtomorrow/internal/repository/filerepo"
	"techtomorrow/internal/repository/pgrepo"
	"techtomorrow/internal/routes"
	"techtomorrow/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	// Стартовые учётки редакции — только в пустую коллекцию
	if err := services.SeedLogins(context.Background(), store.Logins); err != nil {
		return nil, err
	}

	renderer := pages.NewRenderer(cfg.SiteDir)

	// Сервисы
	articleSvc := services.NewArticleService(store.Articles, renderer)
	submissionSvc := services.NewSubmissionService(store.Submissions, store.Articles, renderer)
	authSvc := services.NewAuthService(store.Logins, store.Users)

	// Регенерация лент на старте: лечит устаревший HTML после падения
	// между записью в хранилище и регенерацией
	if articles, err := store.Articles.List(context.Background()); err == nil {
		renderer.RefreshAll(articles)
	} else {
		logger.Log.Warn("Не удалось прочитать статьи для стартовой регенерации", zap.Error(err))
	}

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authSvc, cfg)
	articleHandler := handlers.NewArticleHandler(articleSvc)
	submissionHandler := handlers.NewSubmissionHandler(submissionSvc)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg, authHandler, articleHandler, submissionHandler)

	return router, nil
}

func newStore(cfg *config.Config) (*repository.Store, error) {
	if cfg.Storage == "postgres" {
		conn, err := db.NewPostgresConnection(cfg)
		if err != nil {
			return nil, err
		}
		if err := pgrepo.RunMigrations(context.Background(), conn); err != nil {
			return nil, err
		}
		logger.Log.Info("Хранилище: Postgres", zap.String("dsn", cfg.GetDSNSafe()))
		return pgrepo.NewStore(conn), nil
	}

	logger.Log.Info("Хранилище: JSON-файлы", zap.String("data_dir", cfg.DataDir))
	return filerepo.NewStore(cfg.DataDir)
}
