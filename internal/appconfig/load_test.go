package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jmodule.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
app_name: shop
alert: false
show_history_index: true
modules:
  - name: Orders
    commands: [list, cancel]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "shop", cfg.AppName)
	assert.True(t, cfg.History)
	assert.True(t, cfg.Completion)
	assert.False(t, cfg.Alert)
	assert.True(t, cfg.ShowHistoryIndex)
	assert.Equal(t, []Module{{Name: "Orders", Commands: []string{"list", "cancel"}}}, cfg.Modules)
}

func TestLoadKeepsDefaultModules(t *testing.T) {
	path := writeConfig(t, "app_name: shop\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Modules, cfg.Modules)
}

func TestLoadRejectsHistoryIndexWithoutHistory(t *testing.T) {
	path := writeConfig(t, "history: false\nshow_history_index: true\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "show_history_index")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules = append(cfg.Modules, Module{Name: "Calc"})
	assert.ErrorContains(t, cfg.Validate(), "duplicate module")

	cfg = DefaultConfig()
	cfg.Modules[0].Commands = []string{"two words"}
	assert.ErrorContains(t, cfg.Validate(), "single word")

	cfg = DefaultConfig()
	cfg.Modules = nil
	assert.ErrorContains(t, cfg.Validate(), "at least one module")

	assert.NoError(t, DefaultConfig().Validate())
}
