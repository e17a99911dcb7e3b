package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/config"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/database"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/bootstrap/logging"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/domain/forms"
	sqliterepo "github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/infrastructure/persistence/sqlite/uow"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/ports"
	"github.com/acsdeveloper2025/CRM-APP-MONOREPO-sub004/internal/usecase/verification"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideEngine),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewReportArchive,
			fx.As(new(ports.ReportArchive)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(verification.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideEngine(ctx context.Context, cfg config.Config) (*forms.Engine, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	engine, err := verification.EngineFromProfile(cfg.Engine.MappingProfile)
	if err != nil {
		return nil, err
	}
	if cfg.Engine.MappingProfile != "" {
		logging.Info(logCtx, "engine built with mapping profile", slog.String("path", cfg.Engine.MappingProfile))
	}
	return engine, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}
