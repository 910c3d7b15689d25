package systems

import (
	"fmt"

	"golang.design/x/clipboard"
)

var clipboardReady bool

// InitClipboard connects to the system clipboard. Without it the warp menu
// cannot copy positions but everything else works.
func InitClipboard() error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("init clipboard: %w", err)
	}
	clipboardReady = true
	return nil
}

// copyText puts s on the clipboard and reports whether it could.
var copyText = func(s string) bool {
	if !clipboardReady {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return true
}
