package line

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"pkt.systems/pslog"
)

var restoreSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP, unix.SIGQUIT}

// watchSignals puts the terminal back before handing a terminating signal to
// onSignal. The returned stop must be called exactly once.
func watchSignals(release func() error, onSignal func(os.Signal), log pslog.Logger) func() {
	signalChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signalChan, restoreSignals...)

	go func() {
		select {
		case sig := <-signalChan:
			log.Warn("signal during line edit", "signal", sig.String())
			if err := release(); err != nil {
				log.Error("terminal restore on signal failed", "signal", sig.String(), "err", err)
			}
			onSignal(sig)
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signalChan)
		close(done)
	}
}

func exitOnSignal(sig os.Signal) {
	if s, ok := sig.(unix.Signal); ok {
		os.Exit(128 + int(s))
	}
	os.Exit(1)
}
