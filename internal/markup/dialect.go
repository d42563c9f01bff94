package markup

// Tag and attribute names of the dialect. These spellings, together with the
// alphabetical attribute order used by the generator, are the bit-level
// contract downstream tooling depends on.
const (
	// FormatMarker optionally prefixes a persisted note.
	FormatMarker = "<new-format/>"

	tagText     = "text"
	tagTitle    = "title"
	tagBullet   = "bullet"
	tagOrder    = "order"
	tagCheckbox = "input"
	tagRule     = "hrule"
	tagQuote    = "quote"
	tagImage    = "img"
	tagAudio    = "sound"

	attrIndent      = "indent"
	attrInputNumber = "inputNumber"
	attrLevel       = "level"
	attrChecked     = "checked"
	attrColor       = "color"
	attrFileID      = "fileid"
	attrSrc         = "src"
	attrDescription = "imgdes"
	attrShow        = "imgshow"
	attrWidth       = "w"
	attrHeight      = "h"
	attrTemporary   = "temporary"
)

// MinimalDocument is what an empty document serializes to. A generated note
// is never the empty string.
const MinimalDocument = FormatMarker + "\n" + `<text indent="1"></text>`

// blockTags are the tags that open a new block-level element and therefore
// terminate a standalone marker's trailing text.
var blockTags = map[string]bool{
	tagText:     true,
	tagTitle:    true,
	tagBullet:   true,
	tagOrder:    true,
	tagCheckbox: true,
	tagRule:     true,
	tagQuote:    true,
	tagImage:    true,
	tagAudio:    true,
}
