package storage

import (
	"strings"

	"github.com/avray/skiff/internal/engine/buffer"
)

// SplitLines splits raw content into lines on \r\n, \n, or \r, with the
// separator characters trimmed. Empty content yields a single empty line.
// A trailing separator produces a final empty line, so splitting is exact:
// every separator marks one line boundary.
func SplitLines(content string) []string {
	if content == "" {
		return []string{""}
	}

	lines := make([]string, 0, strings.Count(content, "\n")+1)
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, content[start:])
}

// JoinLines joins lines with the separator for the given line ending style
// and guarantees the result ends with one. Lines must not contain separator
// characters themselves.
func JoinLines(lines []string, le buffer.LineEnding) string {
	sep := le.Sequence()
	joined := strings.Join(lines, sep)
	if !strings.HasSuffix(joined, sep) {
		joined += sep
	}
	return joined
}
