package appconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from path. An empty path yields DefaultConfig.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("app_name", cfg.AppName)
	v.SetDefault("history", cfg.History)
	v.SetDefault("completion", cfg.Completion)
	v.SetDefault("alert", cfg.Alert)
	v.SetDefault("show_history_index", cfg.ShowHistoryIndex)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if !v.IsSet("modules") {
		loaded.Modules = cfg.Modules
	}

	if err := loaded.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return loaded, nil
}
