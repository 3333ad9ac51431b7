package submission

import (
	"errors"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes to the host clipboard
type SystemClipboard struct{}

// WriteAll copies text to the clipboard, failing when the host has no clipboard utility
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
