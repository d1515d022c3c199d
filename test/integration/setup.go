//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/football-registration/internal/db"
	"github.com/bagdasarian/football-registration/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Поднимаем Postgres через testcontainers
	postgresContainer, err := postgres.Run(ctx,
		"postgres:17.7",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Те же встроенные миграции, что и при запуске сервиса
	require.NoError(t, db.Migrate(database, migrations.FS), "не удалось применить миграции")

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}
