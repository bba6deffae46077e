package converter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/net/html"
)

var styleTags = map[string]string{
	StyleBold:   "b",
	StyleItalic: "i",
}

// styleOrder fixes the nesting order of style wrappers, outermost first.
var styleOrder = []string{StyleBold, StyleItalic}

type segment struct {
	start  int
	end    int
	styles map[string]bool
	entity int
}

// convertInline splits block text at every style and entity boundary and renders
// the resulting segments, grouping consecutive segments of the same entity under
// a single entity element.
func (s *state) convertInline(block Block) ([]*html.Node, error) {
	units := utf16.Encode([]rune(block.Text))
	length := len(units)

	styles, err := s.knownStyleRanges(block)
	if err != nil {
		return nil, err
	}
	entities := s.disjointEntityRanges(block, length)

	boundaries := map[int]bool{0: true, length: true}
	for _, r := range styles {
		start, end := clampRange(r.Offset, r.Length, length)
		boundaries[start] = true
		boundaries[end] = true
	}
	for _, r := range entities {
		start, end := clampRange(r.Offset, r.Length, length)
		boundaries[start] = true
		boundaries[end] = true
	}

	points := make([]int, 0, len(boundaries))
	for point := range boundaries {
		points = append(points, point)
	}
	sort.Ints(points)

	var segments []segment
	for i := 0; i+1 < len(points); i++ {
		seg := segment{start: points[i], end: points[i+1], styles: map[string]bool{}, entity: -1}
		for _, r := range styles {
			start, end := clampRange(r.Offset, r.Length, length)
			if start <= seg.start && seg.end <= end {
				seg.styles[r.Style] = true
			}
		}
		for _, r := range entities {
			start, end := clampRange(r.Offset, r.Length, length)
			if start <= seg.start && seg.end <= end {
				seg.entity = r.Key
				break
			}
		}
		segments = append(segments, seg)
	}

	var out []*html.Node
	for i := 0; i < len(segments); {
		j := i
		for j < len(segments) && segments[j].entity == segments[i].entity {
			j++
		}

		var children []*html.Node
		for _, seg := range segments[i:j] {
			children = append(children, renderSegment(units, seg)...)
		}

		if segments[i].entity < 0 {
			out = append(out, children...)
		} else {
			nodes, err := s.decorateEntity(segments[i].entity, children)
			if err != nil {
				return nil, err
			}
			out = append(out, nodes...)
		}
		i = j
	}

	return out, nil
}

// disjointEntityRanges drops entity ranges that overlap an earlier range.
// A span of text carries at most one entity.
func (s *state) disjointEntityRanges(block Block, length int) []EntityRange {
	kept := make([]EntityRange, 0, len(block.EntityRanges))
	for _, r := range block.EntityRanges {
		start, end := clampRange(r.Offset, r.Length, length)
		overlaps := false
		for _, k := range kept {
			kStart, kEnd := clampRange(k.Offset, k.Length, length)
			if start < kEnd && kStart < end {
				overlaps = true
				break
			}
		}
		if overlaps {
			s.addWarning(WarningDroppedFeature, "entity",
				fmt.Sprintf("entity range %d-%d overlaps an earlier range; entity %d dropped", start, end, r.Key))
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// knownStyleRanges filters the block's style ranges down to the styles with a tag.
func (s *state) knownStyleRanges(block Block) ([]InlineStyleRange, error) {
	var known []InlineStyleRange
	for _, r := range block.InlineStyleRanges {
		if _, ok := styleTags[r.Style]; ok {
			known = append(known, r)
			continue
		}
		if s.config.UnknownStyles == UnknownError {
			return nil, fmt.Errorf("unknown inline style: %s", r.Style)
		}
		s.addWarning(WarningUnknownStyle, r.Style, fmt.Sprintf("unsupported inline style %q dropped", r.Style))
	}
	return known, nil
}

func (s *state) decorateEntity(key int, children []*html.Node) ([]*html.Node, error) {
	entity, ok := s.content.EntityMap[strconv.Itoa(key)]
	if !ok {
		s.addWarning(WarningMissingAttribute, "entity", fmt.Sprintf("entity range references missing entity %d", key))
		return children, nil
	}

	link, ok := DecodeEntity(entity)
	if !ok {
		if s.config.UnknownEntities == UnknownError {
			return nil, fmt.Errorf("unknown entity type: %s", entity.Type)
		}
		s.addWarning(WarningUnknownEntity, entity.Type, fmt.Sprintf("unsupported entity type %q rendered as text", entity.Type))
		return children, nil
	}

	switch typed := link.(type) {
	case ExternalLink:
		if typed.URL == "" {
			s.addWarning(WarningMissingAttribute, entity.Type, fmt.Sprintf("link entity %d has no url; rendered without href", key))
		} else if _, allowed := s.config.URLSanitizer(typed.URL); !allowed {
			s.addWarning(WarningDroppedFeature, entity.Type, fmt.Sprintf("unsafe link URL %q dropped", typed.URL))
		}
	case AnchorIdentifier:
		if typed.TargetID == "" {
			s.addWarning(WarningMissingAttribute, entity.Type, fmt.Sprintf("anchor entity %d has no anchor", key))
		}
	}

	return []*html.Node{RenderEntity(link, children, s.config.URLSanitizer)}, nil
}

func renderSegment(units []uint16, seg segment) []*html.Node {
	text := string(utf16.Decode(units[seg.start:seg.end]))
	nodes := textNodes(text)

	for i := len(styleOrder) - 1; i >= 0; i-- {
		style := styleOrder[i]
		if !seg.styles[style] {
			continue
		}
		wrapper := element(styleTags[style])
		appendChildren(wrapper, nodes)
		nodes = []*html.Node{wrapper}
	}

	return nodes
}

// textNodes renders soft newlines as <br/> elements.
func textNodes(text string) []*html.Node {
	var nodes []*html.Node
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			nodes = append(nodes, element("br"))
		}
		if line != "" {
			nodes = append(nodes, textNode(line))
		}
	}
	return nodes
}

func clampRange(offset, length, limit int) (int, int) {
	start := offset
	if start < 0 {
		start = 0
	}
	if start > limit {
		start = limit
	}
	end := offset + length
	if end < start {
		end = start
	}
	if end > limit {
		end = limit
	}
	return start, end
}
