package markup

import "fmt"

// Validate checks the document invariants a host editor must uphold when it
// builds a tree by hand: indent at least 1, the title only as the first
// block, no quote inside a quote, display numbers increasing by one inside
// a run. Parse output always passes.
func Validate(doc *Document) error {
	return validateBlocks(doc.Blocks, false)
}

func validateBlocks(blocks []BlockNode, inQuote bool) error {
	dec := -1 // display number of the previous ordered item in the current run
	decIndent := 0
	for i, block := range blocks {
		run := false
		switch block := block.(type) {
		case *Title:
			if i != 0 || inQuote {
				return fmt.Errorf("%w: title must be the first block of the document", ErrInvalidDocument)
			}
		case *Text:
			if err := checkIndent(block.Indent); err != nil {
				return err
			}
			if block.Heading < HeadingNone || block.Heading > Heading3 {
				return fmt.Errorf("%w: heading level %d out of range", ErrInvalidDocument, block.Heading)
			}
		case *BulletItem:
			if err := checkIndent(block.Indent); err != nil {
				return err
			}
		case *OrderedItem:
			if err := checkIndent(block.Indent); err != nil {
				return err
			}
			if block.Display < 1 {
				return fmt.Errorf("%w: ordered item display number %d < 1", ErrInvalidDocument, block.Display)
			}
			if dec >= 0 && decIndent == block.Indent && block.Display != dec+1 {
				return fmt.Errorf("%w: ordered run must increase by 1, got %d after %d", ErrInvalidDocument, block.Display, dec)
			}
			dec, decIndent = block.Display, block.Indent
			run = true
		case *CheckboxItem:
			if err := checkIndent(block.Indent); err != nil {
				return err
			}
		case *Quote:
			if inQuote {
				return fmt.Errorf("%w: quotes cannot nest", ErrInvalidDocument)
			}
			if err := validateBlocks(block.Blocks, true); err != nil {
				return err
			}
		}
		if !run {
			dec = -1
		}
	}
	return nil
}

func checkIndent(indent int) error {
	if indent < 1 {
		return fmt.Errorf("%w: indent %d < 1", ErrInvalidDocument, indent)
	}
	return nil
}
