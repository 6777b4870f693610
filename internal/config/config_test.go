package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: dev
data_dir: /tmp/registros
http_server:
  address: 0.0.0.0:8080
  timeout: 10s
auth:
  token_secret: segredo
  token_ttl: 1h
reports:
  index: json
  artifacts: fs
  dir: /tmp/relatorios
admin_login: chefe
admin_pass: senha
`), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "/tmp/registros", cfg.DataDir)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "chefe", cfg.AdminLogin)
	assert.Equal(t, 3306, cfg.MySQL.DBPort)
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nao-existe.yaml"))
	t.Setenv("TOKEN_SECRET", "segredo")
	t.Setenv("DATA_DIR", "dados")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dados", cfg.DataDir)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, IndexJSON, cfg.Reports.Index)
	assert.Equal(t, ArtifactsFS, cfg.Reports.Artifacts)
}

func TestLoad_MySQLIndexNeedsCredentials(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nao-existe.yaml"))
	t.Setenv("TOKEN_SECRET", "segredo")
	t.Setenv("REPORTS_INDEX", "mysql")

	_, err := Load()
	assert.Error(t, err)
}
