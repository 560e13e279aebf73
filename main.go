package main

import (
	"fmt"
	"os"

	"github.com/llehouerou/announcer/internal/stderr"
)

func main() {
	// Capture stderr before the audio device opens so ALSA noise stays out
	// of the terminal.
	if err := stderr.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not capture stderr: %v\n", err)
	}

	err := newRootCommand().Execute()
	stderr.Stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
