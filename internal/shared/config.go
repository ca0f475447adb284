package shared

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"aurora_hotels/internal/generator"
)

type Config struct {
	AppEnv    string
	OutputDir string
	XLSX      bool

	Generator generator.Config

	MetricsAddr    string
	PushgatewayURL string

	RedisAddr   string
	RedisPass   string
	RedisDB     int
	ManifestTTL time.Duration

	MySQLDSN      string
	LoadWorkers   int
	LoadBatchSize int
	BatchesPerSec float64
}

// Load reads .env (if present) and the environment. Unset variables keep the
// reference dataset's values; every malformed one is reported.
func Load() (Config, error) {
	_ = godotenv.Load()

	p := &parser{}
	g := generator.DefaultConfig()
	g.Seed = p.uintEnv("SEED", g.Seed)
	g.Start = p.dateEnv("DATE_START", g.Start)
	g.End = p.dateEnv("DATE_END", g.End)
	g.AsOf = p.dateEnv("DATA_REFERENCIA", g.End)
	g.HotelCount = p.intEnv("N_HOTEIS", g.HotelCount)
	g.RoomsPerHotel = p.intEnv("QUARTOS_POR_HOTEL", g.RoomsPerHotel)
	g.Customers = p.intEnv("N_CLIENTES", g.Customers)
	g.Bookings = p.intEnv("N_RESERVAS", g.Bookings)
	g.CancelRate = p.floatEnv("PCT_CANCEL", g.CancelRate)
	g.NoShowRate = p.floatEnv("PCT_NOSHOW", g.NoShowRate)
	g.MaxNights = p.intEnv("NOITES_MAX", g.MaxNights)
	g.EmployeesPerHotel = p.intEnv("N_FUNCIONARIOS_POR_HOTEL", g.EmployeesPerHotel)
	g.OccupancySampleFrac = p.floatEnv("OCUPACAO_SAMPLE_FRAC", g.OccupancySampleFrac)

	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		OutputDir:      env("OUTPUT_DIR", "hoteldb_rede_output"),
		XLSX:           p.boolEnv("EXPORT_XLSX", false),
		Generator:      g,
		MetricsAddr:    env("METRICS_ADDR", ""),
		PushgatewayURL: env("PUSHGATEWAY_URL", ""),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        p.intEnv("REDIS_DB", 0),
		ManifestTTL:    time.Duration(p.intEnv("MANIFEST_TTL_SECONDS", 0)) * time.Second,
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/aurora?parseTime=true&charset=utf8mb4&loc=UTC"),
		LoadWorkers:    p.intEnv("LOAD_WORKERS", 4),
		LoadBatchSize:  p.intEnv("LOAD_BATCH_SIZE", 1000),
		BatchesPerSec:  p.floatEnv("LOAD_BATCHES_PER_SEC", 0),
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return c, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// parser collects every malformed variable it meets.
type parser struct{ errs []error }

func (p *parser) fail(k, v string, err error) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s=%q: %w", k, v, err))
}

func (p *parser) intEnv(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(k, v, err)
		return def
	}
	return n
}

func (p *parser) uintEnv(k string, def uint64) uint64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		p.fail(k, v, err)
		return def
	}
	return n
}

func (p *parser) floatEnv(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(k, v, err)
		return def
	}
	return f
}

func (p *parser) boolEnv(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(k, v, err)
		return def
	}
	return b
}

func (p *parser) dateEnv(k string, def time.Time) time.Time {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		p.fail(k, v, err)
		return def
	}
	return t
}
