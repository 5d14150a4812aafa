package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmodule/line/internal/appconfig"
)

func newTestConsole() (*console, *bytes.Buffer) {
	cfg := appconfig.DefaultConfig()
	out := &bytes.Buffer{}
	return &console{cfg: cfg, out: out, current: &cfg.Modules[0]}, out
}

func TestConsoleCandidates(t *testing.T) {
	c, _ := newTestConsole()
	assert.Equal(t, []string{"add", "addall", "subtract", "help", "exit", "Echo"}, c.candidates())
}

func TestConsolePromptBase(t *testing.T) {
	c, _ := newTestConsole()
	assert.Equal(t, "jmodule: calc ", c.promptBase())
}

func TestConsoleDispatch(t *testing.T) {
	c, out := newTestConsole()

	assert.True(t, c.dispatch(""))
	assert.Empty(t, out.String())

	assert.True(t, c.dispatch("add 1 2"))
	assert.Equal(t, "add 1 2\n", out.String())

	out.Reset()
	assert.True(t, c.dispatch("nope"))
	assert.Contains(t, out.String(), "Command 'nope' not recognized")

	out.Reset()
	assert.True(t, c.dispatch("Echo"))
	assert.Equal(t, "Echo", c.current.Name)
	assert.Contains(t, out.String(), "Switched to module 'Echo'")

	assert.False(t, c.dispatch("exit"))
}

func TestConsoleHelp(t *testing.T) {
	c, out := newTestConsole()
	assert.True(t, c.dispatch("help"))
	assert.Contains(t, out.String(), "CALC -- POSSIBLE COMMANDS")
	assert.Contains(t, out.String(), "'subtract'")
	assert.Contains(t, out.String(), "\t- 'Echo'")
}
