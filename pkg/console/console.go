// Package console renders single-line progress output for batch commands.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Progress rewrites one terminal line as steps complete.
type Progress struct {
	output    io.Writer
	total     int
	done      int
	showBar   bool
	lineWidth int
}

func NewProgress(total int, options ...func(*Progress)) *Progress {
	p := &Progress{
		output:    os.Stdout,
		total:     total,
		showBar:   true,
		lineWidth: 80,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// ToWriter redirects the output, mainly for tests.
func ToWriter(w io.Writer) func(*Progress) {
	return func(p *Progress) {
		p.output = w
	}
}

// HideBar drops the '#' bar and keeps only the step counter.
func HideBar() func(*Progress) {
	return func(p *Progress) {
		p.showBar = false
	}
}

// LineWidth caps the rendered line length.
func LineWidth(characters int) func(*Progress) {
	return func(p *Progress) {
		p.lineWidth = characters
	}
}

// Step marks one more step done and redraws the line.
func (p *Progress) Step(message string) {
	p.done++
	if p.done > p.total {
		p.done = p.total
	}

	var sb strings.Builder
	if p.showBar {
		filled := 0
		if p.total > 0 {
			filled = p.done * 10 / p.total
		}
		sb.WriteString(strings.Repeat("#", filled))
		sb.WriteString(strings.Repeat(" ", 10-filled))
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "(%d/%d) %s", p.done, p.total, message)

	fmt.Fprint(p.output, p.fit(sb.String()), "\r")
}

// Finish replaces the progress line with a final message and moves to the
// next line.
func (p *Progress) Finish(message string) {
	fmt.Fprint(p.output, p.fit(message), "\n")
}

func (p *Progress) fit(line string) string {
	if len(line) > p.lineWidth {
		return line[:p.lineWidth]
	}
	return line + strings.Repeat(" ", p.lineWidth-len(line))
}
