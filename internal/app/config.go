package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Драйверы хранилища.
const (
	StorageDriverMemory   = "memory"
	StorageDriverPostgres = "postgres"
)

// Экспортёры трассировки.
const (
	TracesExporterNone   = "none"
	TracesExporterStdout = "stdout"
	TracesExporterOTLP   = "otlp"
)

// Переменные окружения конфигурации.
const (
	envGRPCAddr                    = "RESTOCK_GRPC_ADDR"
	envMetricsAddr                 = "RESTOCK_METRICS_ADDR"
	envStorageDriver               = "RESTOCK_STORAGE_DRIVER"
	envPostgresDSN                 = "RESTOCK_POSTGRES_DSN"
	envPostgresAutoMigrate         = "RESTOCK_POSTGRES_AUTO_MIGRATE"
	envKafkaBrokers                = "RESTOCK_KAFKA_BROKERS"
	envCatalogAddr                 = "RESTOCK_CATALOG_ADDR"
	envIdentityAddr                = "RESTOCK_IDENTITY_ADDR"
	envResolverTimeout             = "RESTOCK_RESOLVER_TIMEOUT"
	envRepriceConcurrency          = "RESTOCK_REPRICE_CONCURRENCY"
	envSMTPAddr                    = "RESTOCK_SMTP_ADDR"
	envSMTPUsername                = "RESTOCK_SMTP_USERNAME"
	envSMTPPassword                = "RESTOCK_SMTP_PASSWORD"
	envSMTPFrom                    = "RESTOCK_SMTP_FROM"
	envOutboxPollInterval          = "RESTOCK_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize             = "RESTOCK_OUTBOX_BATCH_SIZE"
	envOutboxMaxAttempts           = "RESTOCK_OUTBOX_MAX_ATTEMPTS"
	envOutboxRetryDelay            = "RESTOCK_OUTBOX_RETRY_DELAY"
	envOutboxMaxLag                = "RESTOCK_OUTBOX_MAX_LAG"
	envIdempotencyTTL              = "RESTOCK_IDEMPOTENCY_TTL"
	envIdempotencyCleanupInterval  = "RESTOCK_IDEMPOTENCY_CLEANUP_INTERVAL"
	envIdempotencyCleanupBatchSize = "RESTOCK_IDEMPOTENCY_CLEANUP_BATCH_SIZE"
	envTracesExporter              = "RESTOCK_TRACES_EXPORTER"
	envOTLPEndpoint                = "RESTOCK_OTLP_ENDPOINT"
	envLogLevel                    = "RESTOCK_LOG_LEVEL"
)

// Config описывает настройки запуска сервиса.
type Config struct {
	GRPCAddr    string
	MetricsAddr string

	StorageDriver       string
	PostgresDSN         string
	PostgresAutoMigrate bool

	// KafkaBrokers пуст, если публикация событий в Kafka выключена.
	KafkaBrokers []string

	// Пустой адрес заменяет внешний сервис встроенной заглушкой.
	CatalogAddr        string
	IdentityAddr       string
	ResolverTimeout    time.Duration
	RepriceConcurrency int

	// SMTPAddr в формате host:port; пустой адрес включает запись писем в лог.
	SMTPAddr     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	OutboxPollInterval time.Duration
	OutboxBatchSize    int
	OutboxMaxAttempts  int
	OutboxRetryDelay   time.Duration
	OutboxMaxLag       time.Duration

	IdempotencyTTL              time.Duration
	IdempotencyCleanupInterval  time.Duration
	IdempotencyCleanupBatchSize int

	TracesExporter string
	OTLPEndpoint   string

	LogLevel string
}

// DefaultConfig возвращает настройки для локального запуска без внешних зависимостей.
func DefaultConfig() Config {
	return Config{
		GRPCAddr:                    ":50051",
		MetricsAddr:                 ":9090",
		StorageDriver:               StorageDriverMemory,
		PostgresAutoMigrate:         true,
		ResolverTimeout:             3 * time.Second,
		RepriceConcurrency:          8,
		SMTPFrom:                    "receipts@restock.local",
		OutboxPollInterval:          time.Second,
		OutboxBatchSize:             100,
		OutboxMaxAttempts:           3,
		OutboxRetryDelay:            50 * time.Millisecond,
		OutboxMaxLag:                5 * time.Minute,
		IdempotencyTTL:              24 * time.Hour,
		IdempotencyCleanupInterval:  10 * time.Minute,
		IdempotencyCleanupBatchSize: 500,
		TracesExporter:              TracesExporterNone,
		LogLevel:                    "info",
	}
}

// LookupFunc совпадает с os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadConfigFromEnv подгружает envFile, если он есть, и читает переменные окружения.
// Уже выставленные переменные окружения имеют приоритет над файлом.
func LoadConfigFromEnv(envFile string) (Config, []string, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg, warnings := LoadConfig(os.LookupEnv)
	return cfg, warnings, nil
}

// LoadConfig накладывает переменные окружения на DefaultConfig.
// Некорректные значения пропускаются, а описание проблемы попадает в warnings.
func LoadConfig(lookup LookupFunc) (Config, []string) {
	cfg := DefaultConfig()
	r := envReader{lookup: lookup}

	r.str(envGRPCAddr, &cfg.GRPCAddr)
	r.str(envMetricsAddr, &cfg.MetricsAddr)
	r.str(envPostgresDSN, &cfg.PostgresDSN)
	r.boolean(envPostgresAutoMigrate, &cfg.PostgresAutoMigrate)

	driverSet := r.str(envStorageDriver, &cfg.StorageDriver)
	cfg.StorageDriver = strings.ToLower(cfg.StorageDriver)
	if !driverSet && cfg.PostgresDSN != "" {
		cfg.StorageDriver = StorageDriverPostgres
	}

	var brokers string
	if r.str(envKafkaBrokers, &brokers) {
		cfg.KafkaBrokers = splitList(brokers)
	}

	r.str(envCatalogAddr, &cfg.CatalogAddr)
	r.str(envIdentityAddr, &cfg.IdentityAddr)
	r.duration(envResolverTimeout, &cfg.ResolverTimeout, false)
	r.integer(envRepriceConcurrency, &cfg.RepriceConcurrency, false)

	r.str(envSMTPAddr, &cfg.SMTPAddr)
	r.str(envSMTPUsername, &cfg.SMTPUsername)
	r.str(envSMTPPassword, &cfg.SMTPPassword)
	r.str(envSMTPFrom, &cfg.SMTPFrom)

	r.duration(envOutboxPollInterval, &cfg.OutboxPollInterval, false)
	r.integer(envOutboxBatchSize, &cfg.OutboxBatchSize, false)
	r.integer(envOutboxMaxAttempts, &cfg.OutboxMaxAttempts, false)
	r.duration(envOutboxRetryDelay, &cfg.OutboxRetryDelay, true)
	r.duration(envOutboxMaxLag, &cfg.OutboxMaxLag, true)

	r.duration(envIdempotencyTTL, &cfg.IdempotencyTTL, false)
	r.duration(envIdempotencyCleanupInterval, &cfg.IdempotencyCleanupInterval, false)
	r.integer(envIdempotencyCleanupBatchSize, &cfg.IdempotencyCleanupBatchSize, false)

	r.str(envTracesExporter, &cfg.TracesExporter)
	cfg.TracesExporter = strings.ToLower(cfg.TracesExporter)
	r.str(envOTLPEndpoint, &cfg.OTLPEndpoint)
	r.str(envLogLevel, &cfg.LogLevel)

	return cfg, r.warnings
}

// Validate проверяет сочетание настроек перед запуском.
func (c Config) Validate() error {
	var errs []error
	switch c.StorageDriver {
	case StorageDriverMemory:
	case StorageDriverPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			errs = append(errs, fmt.Errorf("%s is required for postgres storage", envPostgresDSN))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported storage driver %q", c.StorageDriver))
	}
	switch c.TracesExporter {
	case "", TracesExporterNone, TracesExporterStdout, TracesExporterOTLP:
	default:
		errs = append(errs, fmt.Errorf("unsupported traces exporter %q", c.TracesExporter))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

type envReader struct {
	lookup   LookupFunc
	warnings []string
}

func (r *envReader) raw(key string) (string, bool) {
	if r.lookup == nil {
		return "", false
	}
	v, ok := r.lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func (r *envReader) str(key string, dst *string) bool {
	v, ok := r.raw(key)
	if ok {
		*dst = v
	}
	return ok
}

func (r *envReader) boolean(key string, dst *bool) {
	v, ok := r.raw(key)
	if !ok {
		return
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		*dst = true
	case "0", "false", "no", "off":
		*dst = false
	default:
		r.warnings = append(r.warnings, fmt.Sprintf("%s: invalid boolean %q, using %t", key, v, *dst))
	}
}

func (r *envReader) integer(key string, dst *int, allowZero bool) {
	v, ok := r.raw(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		r.warnings = append(r.warnings, fmt.Sprintf("%s: invalid value %q, using %d", key, v, *dst))
		return
	}
	*dst = n
}

func (r *envReader) duration(key string, dst *time.Duration, allowZero bool) {
	v, ok := r.raw(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 || (d == 0 && !allowZero) {
		r.warnings = append(r.warnings, fmt.Sprintf("%s: invalid duration %q, using %s", key, v, *dst))
		return
	}
	*dst = d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
