package line

import (
	"io"
	"os"
	"strconv"

	"pkt.systems/pslog"
)

type Config struct {
	HistoryEnabled    bool
	CompletionEnabled bool
	AlertEnabled      bool
	// ShowHistoryIndex makes FormatPrompt include the history size.
	ShowHistoryIndex bool

	// Input must be a terminal. Defaults to os.Stdin.
	Input *os.File
	// Output receives the redraws and alerts. Defaults to os.Stdout.
	Output io.Writer
	Logger pslog.Logger
	// OnSignal runs after the terminal has been restored because of SIGINT,
	// SIGTERM, SIGHUP or SIGQUIT. Defaults to exiting with 128+signal.
	OnSignal func(os.Signal)
}

// Editor reads edited lines from a terminal. It owns the history shared by
// every ReadLine call made through it.
type Editor struct {
	cfg      Config
	terminal *Terminal
	history  *History
	log      pslog.Logger
}

func New(cfg Config) (*Editor, error) {
	if cfg.ShowHistoryIndex && !cfg.HistoryEnabled {
		return nil, ErrHistoryIndexWithoutHistory
	}
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	if cfg.OnSignal == nil {
		cfg.OnSignal = exitOnSignal
	}

	terminal, err := OpenTerminal(cfg.Input, cfg.Logger)
	if err != nil {
		return nil, err
	}

	return &Editor{
		cfg:      cfg,
		terminal: terminal,
		history:  NewHistory(),
		log:      cfg.Logger,
	}, nil
}

// ReadLine runs one interactive edit and returns the normalized line. The
// terminal is back in canonical mode when it returns, error or not. Errors
// are I/O failures on the terminal and leave nothing worth retrying.
func (e *Editor) ReadLine(candidates []string, prompt string) (line string, err error) {
	// Signals must be caught before the terminal goes raw.
	stop := watchSignals(e.terminal.RestoreIfRaw, e.cfg.OnSignal, e.log)
	defer stop()

	release, err := e.terminal.Acquire()
	if err != nil {
		return "", err
	}
	defer func() {
		if releaseErr := release(); releaseErr != nil && err == nil {
			err = releaseErr
		}
	}()

	s := newSession(sessionOptions{
		historyEnabled:    e.cfg.HistoryEnabled,
		completionEnabled: e.cfg.CompletionEnabled,
		alertEnabled:      e.cfg.AlertEnabled,
	}, prompt, e.history, candidates, e.cfg.Output)

	line, err = s.run(e.cfg.Input)
	if err != nil {
		e.log.Error("line edit failed", "err", err)
		return "", err
	}
	e.log.Debug("line submitted", "len", len(line), "history", e.history.Len())
	return line, nil
}

// FormatPrompt finishes a prompt prefix with "$ ", putting the number of
// history entries in front of it when ShowHistoryIndex is set.
func (e *Editor) FormatPrompt(base string) string {
	if e.cfg.ShowHistoryIndex {
		return base + strconv.Itoa(e.history.Len()) + "$ "
	}
	return base + "$ "
}

func (e *Editor) History() *History {
	return e.history
}

func (e *Editor) Terminal() *Terminal {
	return e.terminal
}

// Close restores canonical mode if a ReadLine was cut short without doing so.
func (e *Editor) Close() error {
	return e.terminal.RestoreIfRaw()
}
