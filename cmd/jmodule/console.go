package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"pkt.systems/pslog"

	"github.com/jmodule/line"
	"github.com/jmodule/line/internal/appconfig"
)

type console struct {
	cfg     appconfig.Config
	out     io.Writer
	current *appconfig.Module
}

func runConsole(ctx context.Context, cfg appconfig.Config, in *os.File, out io.Writer) error {
	logger := pslog.Ctx(ctx)
	editor, err := line.New(line.Config{
		HistoryEnabled:    cfg.History,
		CompletionEnabled: cfg.Completion,
		AlertEnabled:      cfg.Alert,
		ShowHistoryIndex:  cfg.ShowHistoryIndex,
		Input:             in,
		Output:            out,
		Logger:            logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := editor.Close(); err != nil {
			logger.Warn("terminal restore failed", "err", err)
		}
	}()

	c := &console{cfg: cfg, out: out, current: &cfg.Modules[0]}
	c.printHelp()
	for {
		prompt := editor.FormatPrompt(c.promptBase())
		input, err := editor.ReadLine(c.candidates(), prompt)
		if err != nil {
			return err
		}
		if !c.dispatch(input) {
			return nil
		}
	}
}

func (c *console) promptBase() string {
	return fmt.Sprintf("%s: %s ", c.cfg.AppName, strings.ToLower(c.current.Name))
}

// candidates lists every word that means something at the current prompt.
func (c *console) candidates() []string {
	words := append([]string(nil), c.current.Commands...)
	words = append(words, "help", "exit")
	for _, m := range c.cfg.Modules {
		if m.Name != c.current.Name {
			words = append(words, m.Name)
		}
	}
	return words
}

// dispatch acts on one submitted line and reports whether to keep going.
func (c *console) dispatch(input string) bool {
	args := strings.Split(input, " ")
	reference := args[0]

	switch reference {
	case "":
		return true
	case "help":
		c.printHelp()
		return true
	case "exit":
		return false
	}

	for i := range c.cfg.Modules {
		m := &c.cfg.Modules[i]
		if m.Name == reference && m.Name != c.current.Name {
			c.current = m
			fmt.Fprintf(c.out, "Switched to module '%s'\n\n", m.Name)
			return true
		}
	}

	for _, cmd := range c.current.Commands {
		if cmd == reference {
			fmt.Fprintf(c.out, "%s %s\n", cmd, strings.Join(args[1:], " "))
			return true
		}
	}

	fmt.Fprintf(c.out, "Command '%s' not recognized. Use the 'help' command for details on usage.\n\n", reference)
	return true
}

func (c *console) printHelp() {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s -- POSSIBLE COMMANDS\n", strings.ToUpper(c.current.Name))
	for _, cmd := range c.current.Commands {
		fmt.Fprintf(&sb, "'%s'\n", cmd)
	}
	sb.WriteString("'help'\n\tDisplays the help page for the current module.\n")
	if len(c.cfg.Modules) > 1 {
		sb.WriteString("\nType the name of another module to switch to that module:\n")
		for _, m := range c.cfg.Modules {
			if m.Name != c.current.Name {
				fmt.Fprintf(&sb, "\t- '%s'\n", m.Name)
			}
		}
	}
	sb.WriteString("\nType 'exit' at any time to exit the program\n")
	fmt.Fprint(c.out, sb.String())
}
