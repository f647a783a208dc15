package main

import (
	"context"
	"log"

	"student-recordbook/internal/console"
	"student-recordbook/internal/models/config"
	group_repo "student-recordbook/internal/repository/group"
	group_service "student-recordbook/internal/service/group"
	database "student-recordbook/pkg"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	// Загружаем конфигурацию
	if err := config.Load(); err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	app := fx.New(
		fx.Provide(
			newLogger,
			newDatabase,
			group_repo.NewGroupRepository,
			group_service.NewGroupService,
			console.NewSession,
		),
		fx.Invoke(runSession),
	)

	// fx сам обрабатывает SIGINT/SIGTERM
	app.Run()
}

func newLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

func newDatabase(lc fx.Lifecycle, logger *zap.SugaredLogger) (*sqlx.DB, error) {
	db, err := database.New()
	if err != nil {
		return nil, err
	}

	cfg := config.AppConfig.Database
	logger.Infow("🗄️ Подключено к базе", "driver", cfg.Driver)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

// runSession запускает меню и останавливает приложение после выхода из него
func runSession(lc fx.Lifecycle, shutdowner fx.Shutdowner, session *console.Session) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				session.Run(context.Background())
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
	})
}
