package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "http://localhost:1337/api", cfg.StrapiURL)
	assert.False(t, cfg.PurchaseRollback)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STRAPI_URL", "http://strapi:1337/api")
	t.Setenv("PURCHASE_ROLLBACK_ENABLED", "true")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://strapi:1337/api", cfg.StrapiURL)
	assert.True(t, cfg.PurchaseRollback)
}

func TestDatabaseURL(t *testing.T) {
	cfg := &AppConfig{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "pos",
		DBPassword: "secret",
		DBName:     "pos_db",
	}

	assert.Equal(t, "postgres://pos:secret@db:5432/pos_db?sslmode=disable", cfg.DatabaseURL())
}
