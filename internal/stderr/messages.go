package stderr

import (
	"bufio"
	"io"
	"strings"
)

// Messages receives stderr lines captured from C libraries.
// The app forwards them to the status line.
var Messages = make(chan string, 100)

// pump sends every non-blank line read from r to out, dropping lines when
// out is full so the writer never blocks.
func pump(r io.Reader, out chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
		}
	}
}
