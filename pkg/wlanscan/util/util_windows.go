package util

import (
	"fmt"

	"github.com/nik9play/wlanscan/pkg/win"
)

func prepareConsole() error {
	if err := win.SetConsoleUTF8(); err != nil {
		return fmt.Errorf("set console output code page: %w", err)
	}

	return nil
}
