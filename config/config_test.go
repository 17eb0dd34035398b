package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/rotolog/core"
	"github.com/philipp01105/rotolog/handler/filehandler"
	"github.com/philipp01105/rotolog/logger"
)

func TestParse_FullDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")

	doc := `
[handlers.console]
type = "console"
level = "DEBUG"
colors = "never"

[handlers.file]
type = "rotating_file"
path = "` + path + `"
mode = "truncate"
max_bytes = 4096
max_backups = 3

[loggers.default]
level = "INFO"
handlers = ["console", "file"]

[loggers.audit]
level = "DEBUG"
handlers = ["file"]
`
	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	defer func() {
		for _, h := range cfg.Handlers {
			h.Close()
		}
	}()

	require.Len(t, cfg.Handlers, 2)
	require.Len(t, cfg.Loggers, 2)
	assert.Equal(t, "INFO", cfg.Loggers["default"].Level)
	assert.Equal(t, []string{"console", "file"}, cfg.Loggers["default"].Handlers)
	assert.Equal(t, core.DebugLevel, cfg.Handlers["console"].Level())

	// The built config wires straight into a manager.
	m := logger.NewManager()
	require.NoError(t, m.Configure(cfg))

	_, err = m.GetLogger("audit").Debug("from config")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG][audit] from config")
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "logging.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[handlers.console]
type = "console"
colors = "always"

[loggers.default]
handlers = ["console"]
`), 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "NOTSET", cfg.Loggers["default"].Level, "missing level defaults to NOTSET")
	assert.Len(t, cfg.Handlers, 1)
}

func TestParse_UnknownHandlerType(t *testing.T) {
	_, err := Parse([]byte(`
[handlers.syslog]
type = "syslog"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "syslog"`)
}

func TestParse_UnknownColorMode(t *testing.T) {
	_, err := Parse([]byte(`
[handlers.console]
type = "console"
colors = "rainbow"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")
}

func TestParse_BadHandlerLevel(t *testing.T) {
	_, err := Parse([]byte(`
[handlers.console]
type = "console"
level = "SHOUT"
`))
	assert.ErrorIs(t, err, core.ErrUnknownLevelName)
}

func TestBuild_FileHandlerErrorsPropagate(t *testing.T) {
	dir := t.TempDir()
	_, err := Parse([]byte(`
[handlers.file]
type = "rotating_file"
path = "` + filepath.Join(dir, "app.log") + `"
max_bytes = 0
max_backups = 1
`))
	assert.ErrorIs(t, err, filehandler.ErrInvalidConfiguration)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
