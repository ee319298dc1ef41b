package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("SUPABASE_URL", "https://project.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "anon-key")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "https://project.supabase.co", cfg.SupabaseURL)
		assert.Equal(t, "anon-key", cfg.SupabaseAnonKey)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Port falls back to the default", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://project.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "anon-key")
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
	})
}
