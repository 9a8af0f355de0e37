package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, false, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, false, cfg.GRPC.Enabled)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "secret", cfg.JWT.Secret)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 10, cfg.Password.BcryptCost)
	assert.Equal(t, "noreply@calendar.com", cfg.Mail.From)
	assert.Equal(t, "Hi Salam kenal - New Calendar Entry Created", cfg.Mail.Subject)
	assert.Equal(t, "", cfg.SMTP.Host)
	assert.Equal(t, 2, cfg.Notify.Workers)
	assert.Equal(t, 64, cfg.Notify.QueueSize)
	assert.Equal(t, false, cfg.Storage.Enabled)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name:    "log level override",
			envVars: map[string]string{"LOG_LEVEL": "-4"},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                 "8080",
				"HTTP_REQUEST_TIMEOUT":      "3s",
				"HTTP_ENABLE_HTTPS":         "true",
				"HTTP_CORS_ALLOWED_ORIGINS": "http://a.test,http://b.test",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.HTTP.Port)
				assert.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
				assert.True(t, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSAllowedOrigins)
			},
		},
		{
			name: "database config override",
			envVars: map[string]string{
				"DATABASE_DRIVER": "sqlite",
				"DATABASE_DSN":    "file:calendar.db",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "sqlite", cfg.Database.Driver)
				assert.Equal(t, "file:calendar.db", cfg.Database.DSN)
			},
		},
		{
			name: "jwt config override",
			envVars: map[string]string{
				"JWT_SECRET": "customsecret",
				"JWT_TTL":    "1h",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "customsecret", cfg.JWT.Secret)
				assert.Equal(t, time.Hour, cfg.JWT.TTL)
			},
		},
		{
			name: "smtp config override",
			envVars: map[string]string{
				"SMTP_HOST":     "smtp.example.com",
				"SMTP_PORT":     "2525",
				"SMTP_USERNAME": "user",
				"SMTP_PASSWORD": "pass",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
				assert.Equal(t, 2525, cfg.SMTP.Port)
				assert.Equal(t, "user", cfg.SMTP.Username)
				assert.Equal(t, "pass", cfg.SMTP.Password)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
http:
  port: "9090"
  request_timeout: 5s
database:
  driver: sqlite
  dsn: ":memory:"
notify:
  workers: 4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HTTP_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":memory:", cfg.Database.DSN)
	assert.Equal(t, 4, cfg.Notify.Workers)
	assert.Equal(t, "noreply@calendar.com", cfg.Mail.From)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("http: [unclosed"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("unsupported driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})
}
