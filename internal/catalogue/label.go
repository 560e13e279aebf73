package catalogue

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxNameLength is the longest transcription shown in a now-playing label
// before it is truncated.
const MaxNameLength = 30

// ToName builds the now-playing label for a recording: the transcription,
// truncated with "..." past MaxNameLength characters, followed by the file
// name in parentheses.
func ToName(transcription, file string) string {
	if uniseg.GraphemeClusterCount(transcription) > MaxNameLength {
		return firstGraphemes(transcription, MaxNameLength-3) + "... (" + file + ")"
	}
	return transcription + " (" + file + ")"
}

func firstGraphemes(s string, n int) string {
	var b strings.Builder
	g := uniseg.NewGraphemes(s)
	for i := 0; i < n && g.Next(); i++ {
		b.WriteString(g.Str())
	}
	return b.String()
}
