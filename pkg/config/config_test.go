package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "facturacion-api", cfg.App.Name)
	assert.Equal(t, "America/Bogota", cfg.App.Timezone)
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "America/Bogota", cfg.App.Location().String())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "UTC", cfg.App.Timezone)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalida(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"zona horaria", "APP_TIMEZONE", "Marte/Olympus"},
		{"driver", "STORE_DRIVER", "mongo"},
		{"pool", "DB_MAX_CONNS", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "facturacion", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/facturacion?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
