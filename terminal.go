package line

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
	"pkt.systems/pslog"
)

type TerminalMode int

const (
	ModeCanonical TerminalMode = iota
	ModeRaw
)

func (m TerminalMode) String() string {
	if m == ModeRaw {
		return "raw"
	}
	return "canonical"
}

// Terminal switches a tty between canonical and raw discipline. The termios
// captured by EnterRaw is what Restore puts back, byte for byte.
type Terminal struct {
	fd  int
	log pslog.Logger

	mu    sync.Mutex
	mode  TerminalMode
	saved unix.Termios
}

func OpenTerminal(f *os.File, log pslog.Logger) (*Terminal, error) {
	if f == nil {
		return nil, ErrNoTerminal
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%w: fd %d", ErrNoTerminal, fd)
	}
	if log == nil {
		log = discardLogger()
	}
	return &Terminal{fd: fd, log: log}, nil
}

func (t *Terminal) Fd() int {
	return t.fd
}

func (t *Terminal) Mode() TerminalMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode
}

func (t *Terminal) IsRaw() bool {
	return t.Mode() == ModeRaw
}

// EnterRaw turns off line buffering and echo, delivering input one byte at a
// time. Signal generation is left alone so ^C still reaches the process.
func (t *Terminal) EnterRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode == ModeRaw {
		return ErrAlreadyRaw
	}

	current, err := getTermios(t.fd)
	if err != nil {
		return fmt.Errorf("line: read terminal attributes: %w", err)
	}
	t.saved = *current

	raw := *current
	raw.Lflag &^= unix.ECHO | unix.ICANON
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := setTermios(t.fd, &raw); err != nil {
		return fmt.Errorf("line: set raw mode: %w", err)
	}

	t.mode = ModeRaw
	t.log.Debug("terminal raw", "fd", t.fd)
	return nil
}

func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode != ModeRaw {
		return ErrNotRaw
	}
	return t.restoreLocked()
}

// RestoreIfRaw is Restore for exit paths that may run before raw mode was
// entered or after another path already restored it.
func (t *Terminal) RestoreIfRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.mode != ModeRaw {
		return nil
	}
	return t.restoreLocked()
}

func (t *Terminal) restoreLocked() error {
	if err := setTermios(t.fd, &t.saved); err != nil {
		t.log.Error("terminal restore failed", "fd", t.fd, "err", err)
		return fmt.Errorf("line: restore terminal: %w", err)
	}

	t.mode = ModeCanonical
	t.log.Debug("terminal canonical", "fd", t.fd)
	return nil
}

// Acquire enters raw mode and returns the matching release. Release restores
// at most once and is a no-op if something else already put the terminal back.
func (t *Terminal) Acquire() (func() error, error) {
	if err := t.EnterRaw(); err != nil {
		return nil, err
	}

	var (
		once       sync.Once
		releaseErr error
	)
	return func() error {
		once.Do(func() {
			releaseErr = t.RestoreIfRaw()
		})
		return releaseErr
	}, nil
}

func discardLogger() pslog.Logger {
	return pslog.NewWithOptions(io.Discard, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.ErrorLevel,
	})
}
