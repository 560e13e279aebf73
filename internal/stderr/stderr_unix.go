//go:build !windows

package stderr

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirect duplicates w over file descriptor 2, which is where ALSA and the
// output driver write.
func redirect(w *os.File) (func(), error) {
	fd := int(os.Stderr.Fd())
	saved, err := unix.Dup(fd)
	if err != nil {
		return nil, err
	}
	if err := unix.Dup2(int(w.Fd()), fd); err != nil {
		_ = unix.Close(saved)
		return nil, err
	}
	return func() {
		_ = unix.Dup2(saved, fd)
		_ = unix.Close(saved)
	}, nil
}
