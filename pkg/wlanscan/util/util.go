package util

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// SetupCloseHandler returns a channel that receives the OS interrupt and terminate signals.
// Those signals no longer stop the process, so the caller must act on them
func SetupCloseHandler() chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	return c
}

// WaitForEnter blocks until a newline (or EOF) is read from r, or until ctx is done.
// A read abandoned by a cancelled ctx is left to finish on its own
func WaitForEnter(ctx context.Context, r io.Reader) error {
	if r == nil {
		return nil
	}

	read := make(chan error, 1)

	go func() {
		_, err := bufio.NewReader(r).ReadString('\n')
		if errors.Is(err, io.EOF) {
			err = nil
		}

		read <- err
	}()

	select {
	case err := <-read:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PrepareConsole makes the console render raw SSID bytes as UTF-8.
// This is currently only needed on Windows
func PrepareConsole() error {
	return prepareConsole()
}
