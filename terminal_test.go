package line

import (
	"errors"
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func openPty(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestTerminalRawRoundTrip(t *testing.T) {
	_, tty := openPty(t)
	term, err := OpenTerminal(tty, nil)
	require.NoError(t, err)

	before, err := getTermios(term.Fd())
	require.NoError(t, err)

	require.NoError(t, term.EnterRaw())
	assert.True(t, term.IsRaw())
	during, err := getTermios(term.Fd())
	require.NoError(t, err)
	assert.Zero(t, during.Lflag&unix.ICANON)
	assert.Zero(t, during.Lflag&unix.ECHO)
	assert.NotZero(t, during.Lflag&unix.ISIG)
	assert.Equal(t, uint8(1), during.Cc[unix.VMIN])

	require.NoError(t, term.Restore())
	assert.Equal(t, ModeCanonical, term.Mode())
	after, err := getTermios(term.Fd())
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
}

func TestTerminalRestoreWithoutRaw(t *testing.T) {
	_, tty := openPty(t)
	term, err := OpenTerminal(tty, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, term.Restore(), ErrNotRaw)
}

func TestTerminalEnterRawTwice(t *testing.T) {
	_, tty := openPty(t)
	term, err := OpenTerminal(tty, nil)
	require.NoError(t, err)

	require.NoError(t, term.EnterRaw())
	assert.ErrorIs(t, term.EnterRaw(), ErrAlreadyRaw)
	require.NoError(t, term.Restore())
}

func TestTerminalAcquireReleaseOnce(t *testing.T) {
	_, tty := openPty(t)
	term, err := OpenTerminal(tty, nil)
	require.NoError(t, err)

	release, err := term.Acquire()
	require.NoError(t, err)
	assert.True(t, term.IsRaw())

	require.NoError(t, release())
	require.NoError(t, release())
	assert.False(t, term.IsRaw())
}

func TestTerminalRestoreIfRaw(t *testing.T) {
	_, tty := openPty(t)
	term, err := OpenTerminal(tty, nil)
	require.NoError(t, err)

	assert.NoError(t, term.RestoreIfRaw())

	release, err := term.Acquire()
	require.NoError(t, err)
	require.NoError(t, term.RestoreIfRaw())
	assert.False(t, term.IsRaw())
	assert.NoError(t, release())
}

func TestOpenTerminalRejectsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	_, err = OpenTerminal(r, nil)
	assert.True(t, errors.Is(err, ErrNoTerminal))

	_, err = OpenTerminal(nil, nil)
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestTerminalModeString(t *testing.T) {
	assert.Equal(t, "raw", ModeRaw.String())
	assert.Equal(t, "canonical", ModeCanonical.String())
}
