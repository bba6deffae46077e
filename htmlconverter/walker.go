package htmlconverter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/rgonek/draftail-anchors/converter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func (s *state) walk(node *html.Node) {
	switch node.Type {
	case html.TextNode:
		s.addText(node.Data)
	case html.ElementNode:
		s.walkElement(node)
	case html.DocumentNode:
		s.walkChildren(node)
	}
}

func (s *state) walkChildren(node *html.Node) {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		s.walk(child)
	}
}

func (s *state) walkElement(node *html.Node) {
	if skippedElements[node.DataAtom] {
		return
	}

	switch node.DataAtom {
	case atom.A:
		s.walkLink(node)
		return
	case atom.Br:
		s.addLineBreak()
		return
	case atom.Li:
		s.walkListItem(node)
		return
	}

	if itemType, ok := listElements[node.DataAtom]; ok {
		s.finishBlock()
		s.lists = append(s.lists, itemType)
		s.walkChildren(node)
		s.lists = s.lists[:len(s.lists)-1]
		s.finishBlock()
		return
	}

	if blockType, ok := blockElements[node.DataAtom]; ok {
		var data map[string]any
		if converter.HeadingLevel(blockType) > 0 {
			data = map[string]any{
				"id":     attrValue(node, "id"),
				"anchor": attrValue(node, "anchor"),
			}
		}
		s.walkBlock(node, blockType, len(s.lists), data)
		return
	}

	if style, ok := styleElements[node.DataAtom]; ok {
		s.styles = append(s.styles, style)
		s.walkChildren(node)
		s.styles = s.styles[:len(s.styles)-1]
		return
	}

	if !transparentElements[node.DataAtom] {
		s.addWarningOnce(converter.WarningUnknownBlock, node.Data,
			fmt.Sprintf("unsupported element <%s>; keeping its text", node.Data))
	}
	s.walkChildren(node)
}

func (s *state) walkBlock(node *html.Node, blockType string, depth int, data map[string]any) {
	if s.block != nil && s.block.empty() {
		if blockType == converter.BlockUnstyled {
			// A paragraph inside an empty block (li > p, div > p) adds no block.
			s.walkChildren(node)
			return
		}
		s.block = nil
	}

	s.finishBlock()
	s.startBlock(blockType, depth, data, false)
	s.walkChildren(node)
	s.finishBlock()
}

func (s *state) walkListItem(node *html.Node) {
	itemType := converter.BlockUnorderedListItem
	depth := 0
	if n := len(s.lists); n > 0 {
		itemType = s.lists[n-1]
		depth = n - 1
	}

	previous := s.implicit
	s.implicit = implicitBlock{blockType: itemType, depth: depth}
	s.walkBlock(node, itemType, depth, nil)
	s.implicit = previous
}

func (s *state) walkLink(node *html.Node) {
	attrs := attrMap(node)
	rule, ok := matchLinkRule(attrs)
	if !ok {
		s.walkChildren(node)
		return
	}

	link, missing := rule.build(attrs)
	for _, name := range missing {
		s.addWarning(converter.WarningMissingAttribute, "a",
			fmt.Sprintf("%s link has no %s attribute; using empty value", rule.name, name))
	}

	s.ensureBlock()
	key := s.addEntity(link)
	owner := s.block
	start := owner.units

	s.walkChildren(node)

	if s.block != owner {
		s.removeEntity(key)
		s.addWarning(converter.WarningDroppedFeature, "a",
			fmt.Sprintf("%s link spans several blocks; range dropped", rule.name))
		return
	}
	length := owner.units - start
	if length == 0 {
		s.removeEntity(key)
		s.addWarning(converter.WarningDroppedFeature, "a",
			fmt.Sprintf("%s link has no text", rule.name))
		return
	}
	entityKey, _ := strconv.Atoi(key)
	owner.block.EntityRanges = append(owner.block.EntityRanges, converter.EntityRange{
		Offset: start,
		Length: length,
		Key:    entityKey,
	})
}

// blockBuilder accumulates the text and ranges of the block being parsed.
type blockBuilder struct {
	block     converter.Block
	text      strings.Builder
	units     int
	implicit  bool
	lastSpace bool
}

func (b *blockBuilder) empty() bool {
	return b.units == 0 && len(b.block.EntityRanges) == 0
}

func (b *blockBuilder) append(text string, styles []string) {
	n := utf16Len(text)
	for _, style := range styles {
		if r := b.lastStyleRange(style); r != nil && r.Offset+r.Length == b.units {
			r.Length += n
			continue
		}
		b.block.InlineStyleRanges = append(b.block.InlineStyleRanges, converter.InlineStyleRange{
			Offset: b.units,
			Length: n,
			Style:  style,
		})
	}
	b.text.WriteString(text)
	b.units += n
	b.lastSpace = strings.HasSuffix(text, " ") || strings.HasSuffix(text, "\n")
}

func (b *blockBuilder) lastStyleRange(style string) *converter.InlineStyleRange {
	for i := len(b.block.InlineStyleRanges) - 1; i >= 0; i-- {
		if b.block.InlineStyleRanges[i].Style == style {
			return &b.block.InlineStyleRanges[i]
		}
	}
	return nil
}

func clipStyleRanges(ranges []converter.InlineStyleRange, limit int) []converter.InlineStyleRange {
	clipped := ranges[:0]
	for _, r := range ranges {
		if r.Offset >= limit {
			continue
		}
		if r.Offset+r.Length > limit {
			r.Length = limit - r.Offset
		}
		clipped = append(clipped, r)
	}
	return clipped
}

func clipEntityRanges(ranges []converter.EntityRange, limit int) []converter.EntityRange {
	clipped := ranges[:0]
	for _, r := range ranges {
		if r.Offset >= limit {
			continue
		}
		if r.Offset+r.Length > limit {
			r.Length = limit - r.Offset
		}
		clipped = append(clipped, r)
	}
	return clipped
}

func attrMap(node *html.Node) map[string]string {
	attrs := make(map[string]string, len(node.Attr))
	for _, a := range node.Attr {
		if a.Namespace != "" {
			continue
		}
		attrs[a.Key] = a.Val
	}
	return attrs
}

func attrValue(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func utf16Len(text string) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
