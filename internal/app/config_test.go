package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, warnings := LoadConfig(lookupFrom(nil))
	require.Empty(t, warnings)
	require.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, warnings := LoadConfig(lookupFrom(map[string]string{
		envGRPCAddr:            ":6000",
		envKafkaBrokers:        " kafka-1:9092, ,kafka-2:9092 ",
		envResolverTimeout:     "750ms",
		envRepriceConcurrency:  "4",
		envPostgresAutoMigrate: "off",
		envOutboxRetryDelay:    "0s",
		envTracesExporter:      "STDOUT",
		envIdempotencyTTL:      "2h",
		envSMTPAddr:            "smtp.local:25",
		envLogLevel:            "debug",
	}))
	require.Empty(t, warnings)
	require.Equal(t, ":6000", cfg.GRPCAddr)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 750*time.Millisecond, cfg.ResolverTimeout)
	require.Equal(t, 4, cfg.RepriceConcurrency)
	require.False(t, cfg.PostgresAutoMigrate)
	require.Zero(t, cfg.OutboxRetryDelay)
	require.Equal(t, TracesExporterStdout, cfg.TracesExporter)
	require.Equal(t, 2*time.Hour, cfg.IdempotencyTTL)
	require.Equal(t, "smtp.local:25", cfg.SMTPAddr)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DSNSelectsPostgres(t *testing.T) {
	cfg, _ := LoadConfig(lookupFrom(map[string]string{
		envPostgresDSN: "postgres://restock@localhost/restock",
	}))
	require.Equal(t, StorageDriverPostgres, cfg.StorageDriver)

	cfg, _ = LoadConfig(lookupFrom(map[string]string{
		envPostgresDSN:   "postgres://restock@localhost/restock",
		envStorageDriver: "memory",
	}))
	require.Equal(t, StorageDriverMemory, cfg.StorageDriver)
}

func TestLoadConfig_InvalidValuesKeepDefaults(t *testing.T) {
	cfg, warnings := LoadConfig(lookupFrom(map[string]string{
		envResolverTimeout:     "soon",
		envRepriceConcurrency:  "0",
		envOutboxBatchSize:     "-5",
		envPostgresAutoMigrate: "maybe",
	}))
	require.Len(t, warnings, 4)

	def := DefaultConfig()
	require.Equal(t, def.ResolverTimeout, cfg.ResolverTimeout)
	require.Equal(t, def.RepriceConcurrency, cfg.RepriceConcurrency)
	require.Equal(t, def.OutboxBatchSize, cfg.OutboxBatchSize)
	require.True(t, cfg.PostgresAutoMigrate)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "postgres without dsn", mutate: func(c *Config) { c.StorageDriver = StorageDriverPostgres }, wantErr: envPostgresDSN},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "sqlite" }, wantErr: "unsupported storage driver"},
		{name: "unknown exporter", mutate: func(c *Config) { c.TracesExporter = "jaeger" }, wantErr: "unsupported traces exporter"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadConfigFromEnv_File(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RESTOCK_METRICS_ADDR=:9191\n"), 0o600))
	t.Setenv(envMetricsAddr, "")
	require.NoError(t, os.Unsetenv(envMetricsAddr))

	cfg, warnings, err := LoadConfigFromEnv(envFile)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, ":9191", cfg.MetricsAddr)
}

func TestLoadConfigFromEnv_MissingFile(t *testing.T) {
	_, _, err := LoadConfigFromEnv(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}
