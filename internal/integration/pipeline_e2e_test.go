//go:build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	redisad "aurora_hotels/internal/adapters/redis"
	"aurora_hotels/internal/app"
	"aurora_hotels/internal/shared"
	mysqlload "aurora_hotels/internal/storage/mysql"
)

func startMySQL(t *testing.T) (*sql.DB, string) {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=aurora"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/aurora?parseTime=true&charset=utf8mb4&loc=UTC",
		resource.GetPort("3306/tcp"))
	var db *sql.DB
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		var e error
		if db, e = sql.Open("mysql", dsn); e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, dsn
}

// Generate -> manifest -> load -> query, configured through the environment like the binary.
func TestPipeline_GenerateManifestLoad(t *testing.T) {
	db, dsn := startMySQL(t)
	mr := miniredis.RunT(t)

	t.Setenv("OUTPUT_DIR", t.TempDir())
	t.Setenv("SEED", "2024")
	t.Setenv("DATE_START", "2024-01-01")
	t.Setenv("DATE_END", "2024-12-31")
	t.Setenv("N_HOTEIS", "2")
	t.Setenv("QUARTOS_POR_HOTEL", "30")
	t.Setenv("N_CLIENTES", "200")
	t.Setenv("N_RESERVAS", "500")
	t.Setenv("N_FUNCIONARIOS_POR_HOTEL", "10")
	t.Setenv("MYSQL_DSN", dsn)
	t.Setenv("LOAD_BATCH_SIZE", "50")

	cfg, err := shared.Load()
	require.NoError(t, err)
	ctx := context.Background()

	store := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	gen := app.NewGenerationService(store, &bytes.Buffer{}, zerolog.Nop())
	opts := app.GenerateOptions{OutputDir: cfg.OutputDir}

	_, err = gen.Run(ctx, cfg.Generator, opts)
	require.NoError(t, err)
	again, err := gen.Run(ctx, cfg.Generator, opts)
	require.NoError(t, err)
	require.Empty(t, again.Drift)
	require.True(t, mr.Exists("aurora:manifest:2024"))

	loader := mysqlload.New(db, mysqlload.Options{Workers: cfg.LoadWorkers, BatchSize: cfg.LoadBatchSize})
	require.NoError(t, app.NewLoadService(loader, zerolog.Nop()).Run(ctx, cfg.OutputDir))

	var bookings, orphans, unpaid int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM Reservas").Scan(&bookings))
	require.Equal(t, 500, bookings)

	require.NoError(t, db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM Reservas r LEFT JOIN Quartos q ON q.QuartoID = r.QuartoID
WHERE q.QuartoID IS NULL OR q.HotelID <> r.HotelID`).Scan(&orphans))
	require.Zero(t, orphans)

	require.NoError(t, db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM Reservas r
WHERE r.Status = 'Confirmada'
  AND (SELECT COUNT(*) FROM Pagamentos p WHERE p.ReservaID = r.ReservaID) <> 1`).Scan(&unpaid))
	require.Zero(t, unpaid)
}
