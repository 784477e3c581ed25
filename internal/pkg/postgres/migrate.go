package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // регистрирует драйвер "pgx" для database/sql
	"github.com/pressly/goose/v3"
	"quickship/internal/pkg/config"
	"quickship/migrations"
	"quickship/pkg/logger"
)

// RunMigrations применяет встроенные goose-миграции перед стартом сервиса.
// Используется database/sql поверх pgx stdlib, goose не умеет pgxpool напрямую.
func RunMigrations(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	db, err := sql.Open("pgx", newDsn(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("failed to close migration connection",
				logger.NewField("error", closeErr),
			)
		}
	}()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	log.With(
		logger.NewField("version", version),
	).Info("database migrations applied")

	return nil
}
