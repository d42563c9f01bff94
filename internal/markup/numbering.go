package markup

// Ordered-list numbers are delta-encoded in markup: the first item of a run
// stores its start number minus one in inputNumber, every later item of the
// run stores zero and is numbered by position. Continuation is adjacency
// based: a marker at the same indent immediately following another ordered
// item continues the run no matter what its own inputNumber says.
//
// Both states below are plain values threaded through a single parse or
// generate call. Keeping them anywhere longer-lived breaks concurrent use.

// numberDecoder assigns display numbers while building the tree.
type numberDecoder struct {
	active bool
	indent int
	next   int
}

// item consumes one ordered marker and returns its display number.
func (d numberDecoder) item(indent, inputNumber int) (int, numberDecoder) {
	if d.active && d.indent == indent {
		display := d.next
		d.next++
		return display, d
	}
	display := inputNumber + 1
	if display < 1 {
		display = 1
	}
	return display, numberDecoder{active: true, indent: indent, next: display + 1}
}

// brk ends the current run; any non-ordered block in between does this.
func (d numberDecoder) brk() numberDecoder {
	return numberDecoder{}
}

// numberEncoder produces inputNumber values while serializing the tree.
type numberEncoder struct {
	active bool
	indent int
}

// item consumes one OrderedItem and returns the inputNumber to emit.
func (e numberEncoder) item(indent, display int) (int, numberEncoder) {
	if e.active && e.indent == indent {
		return 0, e
	}
	input := display - 1
	if input < 0 {
		input = 0
	}
	return input, numberEncoder{active: true, indent: indent}
}

func (e numberEncoder) brk() numberEncoder {
	return numberEncoder{}
}
