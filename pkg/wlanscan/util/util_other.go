//go:build !windows

package util

func prepareConsole() error {
	return nil
}
