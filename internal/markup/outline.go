package markup

// The outline is a flattened, tag-friendly view of a document used by the
// dump command and by anything that wants to inspect a note without
// traversing the node interfaces.

// Outline mirrors a Document with plain structs only.
type Outline struct {
	Blocks []OutlineBlock `yaml:"blocks"`
}

// OutlineBlock is one block in outline form. Kind names the block variant;
// only the fields that apply to it are set.
type OutlineBlock struct {
	Kind        string          `yaml:"kind"`
	Indent      int             `yaml:"indent,omitempty"`
	Align       string          `yaml:"align,omitempty"`
	Heading     int             `yaml:"heading,omitempty"`
	Display     int             `yaml:"display,omitempty"`
	Level       int             `yaml:"level,omitempty"`
	Checked     bool            `yaml:"checked,omitempty"`
	FileID      string          `yaml:"fileId,omitempty"`
	Source      string          `yaml:"src,omitempty"`
	Description string          `yaml:"description,omitempty"`
	Hidden      bool            `yaml:"hidden,omitempty"`
	Width       int             `yaml:"width,omitempty"`
	Height      int             `yaml:"height,omitempty"`
	Temporary   bool            `yaml:"temporary,omitempty"`
	Content     []OutlineInline `yaml:"content,omitempty"`
	Blocks      []OutlineBlock  `yaml:"blocks,omitempty"`
}

// OutlineInline is one inline node in outline form.
type OutlineInline struct {
	Kind    string          `yaml:"kind"`
	Text    string          `yaml:"text,omitempty"`
	Color   string          `yaml:"color,omitempty"`
	Content []OutlineInline `yaml:"content,omitempty"`
}

// ToOutline converts a document into its outline form.
func ToOutline(doc *Document) *Outline {
	return &Outline{Blocks: outlineBlocks(doc.Blocks)}
}

func outlineBlocks(blocks []BlockNode) []OutlineBlock {
	var out []OutlineBlock
	for _, block := range blocks {
		switch block := block.(type) {
		case *Title:
			out = append(out, OutlineBlock{Kind: "title", Content: outlineInline(block.Content)})
		case *Text:
			ob := OutlineBlock{
				Kind:    "text",
				Indent:  block.Indent,
				Heading: int(block.Heading),
				Content: outlineInline(block.Content),
			}
			if block.Align != AlignLeft {
				ob.Align = block.Align.String()
			}
			out = append(out, ob)
		case *BulletItem:
			out = append(out, OutlineBlock{Kind: "bullet", Indent: block.Indent, Content: outlineInline(block.Content)})
		case *OrderedItem:
			out = append(out, OutlineBlock{Kind: "ordered", Indent: block.Indent, Display: block.Display, Content: outlineInline(block.Content)})
		case *CheckboxItem:
			out = append(out, OutlineBlock{
				Kind:    "checkbox",
				Indent:  block.Indent,
				Level:   block.Level,
				Checked: block.Checked,
				Content: outlineInline(block.Content),
			})
		case *HorizontalRule:
			out = append(out, OutlineBlock{Kind: "rule"})
		case *Quote:
			out = append(out, OutlineBlock{Kind: "quote", Blocks: outlineBlocks(block.Blocks)})
		case *Image:
			out = append(out, OutlineBlock{
				Kind:        "image",
				FileID:      block.FileID,
				Source:      block.LegacySrc,
				Description: block.Description,
				Hidden:      !block.Show,
				Width:       block.Width,
				Height:      block.Height,
			})
		case *Audio:
			out = append(out, OutlineBlock{Kind: "audio", FileID: block.FileID, Temporary: block.Temporary})
		}
	}
	return out
}

func outlineInline(nodes []InlineNode) []OutlineInline {
	var out []OutlineInline
	for _, node := range nodes {
		switch node := node.(type) {
		case *PlainText:
			out = append(out, OutlineInline{Kind: "text", Text: node.Text})
		case *Bold:
			out = append(out, OutlineInline{Kind: "bold", Content: outlineInline(node.Content)})
		case *Italic:
			out = append(out, OutlineInline{Kind: "italic", Content: outlineInline(node.Content)})
		case *Underline:
			out = append(out, OutlineInline{Kind: "underline", Content: outlineInline(node.Content)})
		case *Strikethrough:
			out = append(out, OutlineInline{Kind: "strikethrough", Content: outlineInline(node.Content)})
		case *Highlight:
			out = append(out, OutlineInline{Kind: "highlight", Color: node.Color.String(), Content: outlineInline(node.Content)})
		}
	}
	return out
}
