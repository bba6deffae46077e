package converter

// ContentState is the raw document state exchanged with the rich-text editor.
type ContentState struct {
	Blocks    []Block           `json:"blocks"`
	EntityMap map[string]Entity `json:"entityMap"`
}

// Block represents a structural unit of the document (paragraph, heading, list item).
// Offsets in InlineStyleRanges and EntityRanges count UTF-16 code units.
type Block struct {
	Key               string             `json:"key"`
	Type              string             `json:"type"`
	Text              string             `json:"text"`
	Depth             int                `json:"depth"`
	InlineStyleRanges []InlineStyleRange `json:"inlineStyleRanges"`
	EntityRanges      []EntityRange      `json:"entityRanges"`
	Data              map[string]any     `json:"data,omitempty"`
}

// InlineStyleRange applies a style (BOLD, ITALIC) to a span of block text.
type InlineStyleRange struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Style  string `json:"style"`
}

// EntityRange attaches an entity from the entity map to a span of block text.
type EntityRange struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
	Key    int `json:"key"`
}

// Entity is an inline annotation such as a link or an anchor identifier.
type Entity struct {
	Type       string         `json:"type"`
	Mutability string         `json:"mutability"`
	Data       map[string]any `json:"data"`
}

const (
	BlockUnstyled          = "unstyled"
	BlockHeaderOne         = "header-one"
	BlockHeaderTwo         = "header-two"
	BlockHeaderThree       = "header-three"
	BlockHeaderFour        = "header-four"
	BlockHeaderFive        = "header-five"
	BlockHeaderSix         = "header-six"
	BlockUnorderedListItem = "unordered-list-item"
	BlockOrderedListItem   = "ordered-list-item"
	BlockBlockquote        = "blockquote"
)

const (
	EntityLink             = "LINK"
	EntityAnchorIdentifier = "ANCHOR-IDENTIFIER"

	MutabilityMutable = "MUTABLE"
)

const (
	StyleBold   = "BOLD"
	StyleItalic = "ITALIC"
)

// Linktype markers carried by stored <a> tags.
const (
	LinkTypePage = "page"
	// LinkTypeAnchorTarget marks anchor identifiers. "anchor" is avoided because
	// hosts already use it for plain fragment links.
	LinkTypeAnchorTarget = "anchor-target"
)

var headingTypes = [...]string{
	BlockHeaderOne,
	BlockHeaderTwo,
	BlockHeaderThree,
	BlockHeaderFour,
	BlockHeaderFive,
	BlockHeaderSix,
}

// HeadingLevel returns 1-6 for heading block types and 0 for anything else.
func HeadingLevel(blockType string) int {
	for i, t := range headingTypes {
		if t == blockType {
			return i + 1
		}
	}
	return 0
}

// HeadingType returns the block type for a heading level, clamped to 1-6.
func HeadingType(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(headingTypes) {
		level = len(headingTypes)
	}
	return headingTypes[level-1]
}

func isListItem(blockType string) bool {
	return blockType == BlockUnorderedListItem || blockType == BlockOrderedListItem
}
