package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DB", "testdb")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("DATA_DIR", "/tmp/quanngon")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "testdb", cfg.MongoDB)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "/tmp/quanngon", cfg.DataDir)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DB", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("DATA_DIR", "")

		cfg := LoadConfig()

		assert.Equal(t, "quanngon", cfg.MongoDB)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "data", cfg.DataDir)
	})
}
