// Package text provides small line-oriented helpers shared by the markup
// pipeline and the CLI.
package text

import (
	"bufio"
	"bytes"
	"strings"
)

// IsBlank returns whether a text contains only whitespace.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// SquashBlankLines replaces successive blank lines by a single empty one.
func SquashBlankLines(text string) string {
	var result bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader(text))

	previousLineEmpty := false
	for scanner.Scan() {
		line := scanner.Text()
		if IsBlank(line) {
			if previousLineEmpty {
				continue
			}
			previousLineEmpty = true
		} else {
			previousLineEmpty = false
		}
		result.WriteString(line)
		result.WriteRune('\n')
	}

	return result.String()
}

// PrefixLines prepends prefix to every line of text, keeping a trailing
// newline if present.
func PrefixLines(text string, prefix string) string {
	trailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(prefix+line, " ")
	}
	out := strings.Join(lines, "\n")
	if trailing {
		out += "\n"
	}
	return out
}
