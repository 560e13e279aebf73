// Package stderr captures output that native audio code writes straight to
// the process's standard error, so it reaches the status line instead of
// tearing through the TUI.
package stderr

import "os"

var capture struct {
	r, w    *os.File
	restore func()
}

// Start points standard error at a pipe whose lines are delivered on
// Messages. It must run before the audio device is opened. Calling it again
// while a capture is active does nothing. On error nothing is redirected.
func Start() error {
	if capture.r != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	restore, err := redirect(w)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	capture.r, capture.w, capture.restore = r, w, restore
	go pump(r, Messages)
	return nil
}

// Stop puts the original standard error back and ends the capture.
func Stop() {
	if capture.r == nil {
		return
	}
	capture.restore()
	capture.w.Close()
	capture.r.Close()
	capture.r, capture.w, capture.restore = nil, nil, nil
}
