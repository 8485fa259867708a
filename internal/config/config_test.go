package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable ApplyEnv reads so the host environment
// does not leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "LOG_JSON", "DEBUG", "MAX_INPUT_BYTES", "STORAGE_BACKEND",
		"SPACES_ENDPOINT", "SPACES_KEY", "SPACES_SECRET", "SPACES_REGION", "SPACES_BUCKET",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"max_lines": 200,
		"debug": true,
		"storage": {"backend": "s3", "bucket": "cvs", "presign_ttl": "30m"}
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 200, cfg.MaxLines)
	assert.True(t, cfg.Debug)
	assert.Equal(t, BackendS3, cfg.Storage.Backend)
	assert.Equal(t, Duration(30*time.Minute), cfg.Storage.PresignTTL)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"storage": {"presign_ttl": "soon"}}`))
	assert.Error(t, err)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "'port'"},
		{name: "negative max lines", mutate: func(c *Config) { c.MaxLines = -1 }, wantErr: "'max_lines'"},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -2 }, wantErr: "'workers'"},
		{name: "s3 without bucket", mutate: func(c *Config) { c.Storage.Backend = BackendS3 }, wantErr: "'storage.bucket'"},
		{name: "unknown backend", mutate: func(c *Config) { c.Storage.Backend = "ftp" }, wantErr: "unknown storage backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{
		Port:    9000,
		Storage: StorageConfig{Bucket: "cvs"},
	}

	result := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, result.Port)
	assert.Equal(t, 5<<20, result.MaxInputBytes)
	assert.Equal(t, 5000, result.MaxLines)
	assert.Equal(t, 4, result.Workers)
	assert.Equal(t, 5, result.HistorySize)
	assert.Equal(t, "cvs", result.Storage.Bucket)
	assert.Equal(t, "resumes/", result.Storage.Prefix)
	assert.Equal(t, Duration(time.Hour), result.Storage.PresignTTL)

	// Original is not modified
	assert.Equal(t, 0, cfg.MaxLines)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := &Config{Port: 1234}
	result := cfg.MergeWithDefaults(Config{})
	assert.Equal(t, *cfg, result)
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_INPUT_BYTES", "1024")
	t.Setenv("SPACES_BUCKET", "cvs")
	t.Setenv("SPACES_REGION", "nyc3")
	t.Setenv("SPACES_ENDPOINT", "https://nyc3.digitaloceanspaces.com")
	t.Setenv("SPACES_KEY", "key")
	t.Setenv("SPACES_SECRET", "secret")

	cfg := &Config{}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, 3000, cfg.Port)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 1024, cfg.MaxInputBytes)
	assert.Equal(t, StorageConfig{
		Backend:   BackendS3,
		Bucket:    "cvs",
		Region:    "nyc3",
		Endpoint:  "https://nyc3.digitaloceanspaces.com",
		AccessKey: "key",
		SecretKey: "secret",
	}, cfg.Storage)
}

func TestApplyEnv_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	assert.Error(t, (&Config{}).ApplyEnv())

	clearEnv(t)
	t.Setenv("DEBUG", "maybe")
	assert.Error(t, (&Config{}).ApplyEnv())
}

func TestLoad(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)

	t.Setenv("PORT", "7000")
	cfg, err = Load(writeConfig(t, `{"port": 9090, "workers": 8}`))
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)

	_, err = Load(writeConfig(t, `{"storage": {"backend": "s3"}}`))
	assert.Error(t, err)
}
