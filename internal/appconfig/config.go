package appconfig

import (
	"fmt"
	"strings"
)

// Module is a named group of commands the console can switch into.
type Module struct {
	Name     string   `mapstructure:"name"`
	Commands []string `mapstructure:"commands"`
}

// Config drives the demo console and the line editor behind it.
type Config struct {
	AppName          string   `mapstructure:"app_name"`
	History          bool     `mapstructure:"history"`
	Completion       bool     `mapstructure:"completion"`
	Alert            bool     `mapstructure:"alert"`
	ShowHistoryIndex bool     `mapstructure:"show_history_index"`
	Modules          []Module `mapstructure:"modules"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		AppName:    "jmodule",
		History:    true,
		Completion: true,
		Alert:      true,
		Modules: []Module{
			{Name: "Calc", Commands: []string{"add", "addall", "subtract"}},
			{Name: "Echo", Commands: []string{"say", "shout"}},
		},
	}
}

// Validate reports the first problem that would make the console unusable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return fmt.Errorf("app_name is required")
	}
	if c.ShowHistoryIndex && !c.History {
		return fmt.Errorf("show_history_index requires history to be enabled")
	}
	if len(c.Modules) == 0 {
		return fmt.Errorf("at least one module is required")
	}
	seen := map[string]bool{}
	for i, m := range c.Modules {
		if m.Name == "" || strings.ContainsAny(m.Name, " \t") {
			return fmt.Errorf("modules[%d]: name %q must be a single word", i, m.Name)
		}
		if seen[m.Name] {
			return fmt.Errorf("modules[%d]: duplicate module %q", i, m.Name)
		}
		seen[m.Name] = true
		for j, cmd := range m.Commands {
			if cmd == "" || strings.ContainsAny(cmd, " \t") {
				return fmt.Errorf("modules[%d].commands[%d]: %q must be a single word", i, j, cmd)
			}
		}
	}
	return nil
}
