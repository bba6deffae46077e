package converter

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
)

// Slug turns text into an anchor identifier: lowercase ASCII letters and digits,
// with each space, hyphen or underscore turned into a hyphen.
// Text with no usable characters yields "heading".
func Slug(text string) string {
	return string(parser.NewContext().IDs().Generate([]byte(text), ast.KindHeading))
}

// SyncHeadingIDs sets the id metadata of every heading block without a custom
// anchor to a slug of its text. Custom anchors are reserved first and repeated
// slugs get a numeric suffix, so ids stay unique within the document.
func SyncHeadingIDs(content *ContentState) {
	ids := parser.NewContext().IDs()

	for _, block := range content.Blocks {
		if HeadingLevel(block.Type) == 0 {
			continue
		}
		if anchor := stringValue(block.Data["anchor"]); anchor != "" {
			ids.Put([]byte(anchor))
		}
	}

	for i := range content.Blocks {
		block := &content.Blocks[i]
		if HeadingLevel(block.Type) == 0 || stringValue(block.Data["anchor"]) != "" {
			continue
		}
		if block.Data == nil {
			block.Data = map[string]any{}
		}
		block.Data["id"] = string(ids.Generate([]byte(block.Text), ast.KindHeading))
	}
}
