package text

import "strings"

// Line is one line of a text with its 1-based position.
type Line struct {
	Text   string
	Number int
}

// LineIterator walks the lines of a text in order.
type LineIterator struct {
	lines []Line
	index int
}

// NewLineIterator splits a text into lines and returns an iterator over
// them.
func NewLineIterator(text string) *LineIterator {
	var lines []Line
	for i, raw := range strings.Split(text, "\n") {
		lines = append(lines, Line{Text: raw, Number: i + 1})
	}
	return &LineIterator{lines: lines}
}

// HasNext returns whether a line remains.
func (it *LineIterator) HasNext() bool {
	return it.index < len(it.lines)
}

// Peek returns the next line without advancing.
func (it *LineIterator) Peek() (Line, bool) {
	if !it.HasNext() {
		return Line{}, false
	}
	return it.lines[it.index], true
}

// Next returns the next line and advances.
func (it *LineIterator) Next() (Line, bool) {
	line, ok := it.Peek()
	if ok {
		it.index++
	}
	return line, ok
}
