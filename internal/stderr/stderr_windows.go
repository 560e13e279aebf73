//go:build windows

package stderr

import (
	"os"

	"golang.org/x/sys/windows"
)

// redirect swaps the process error handle and os.Stderr for w. There is no
// shared descriptor 2 to overwrite, so native code only follows the swap if
// it looks the handle up after Start.
func redirect(w *os.File) (func(), error) {
	orig := os.Stderr
	if err := windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(w.Fd())); err != nil {
		return nil, err
	}
	os.Stderr = w
	return func() {
		_ = windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(orig.Fd()))
		os.Stderr = orig
	}, nil
}
