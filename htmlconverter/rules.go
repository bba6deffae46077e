package htmlconverter

import (
	"strings"

	"github.com/rgonek/draftail-anchors/converter"
	"golang.org/x/net/html/atom"
)

// linkRule maps one attribute shape of an <a> element to a link entity.
// Rules are tried in order; the first match wins.
type linkRule struct {
	name  string
	match func(attrs map[string]string) bool
	build func(attrs map[string]string) (converter.LinkEntity, []string)
}

var linkRules = []linkRule{
	{
		name: "a[linktype=page]",
		match: func(attrs map[string]string) bool {
			return attrs["linktype"] == converter.LinkTypePage
		},
		build: func(attrs map[string]string) (converter.LinkEntity, []string) {
			id, ok := attrs["id"]
			var missing []string
			if !ok {
				missing = append(missing, "id")
			}
			return converter.InternalPageLink{PageID: id, Hash: attrs["hash"]}, missing
		},
	},
	{
		name: "a[data-id]",
		match: func(attrs map[string]string) bool {
			_, hasDataID := attrs["data-id"]
			return hasDataID || attrs["linktype"] == converter.LinkTypeAnchorTarget
		},
		build: func(attrs map[string]string) (converter.LinkEntity, []string) {
			var missing []string
			href, ok := attrs["href"]
			if !ok {
				missing = append(missing, "href")
			}
			id, ok := attrs["id"]
			if !ok {
				missing = append(missing, "id")
			}
			return converter.AnchorIdentifier{
				TargetID:     strings.TrimLeft(href, "#"),
				SourceAnchor: id,
			}, missing
		},
	},
	{
		name: "a[href]",
		match: func(attrs map[string]string) bool {
			_, ok := attrs["href"]
			return ok
		},
		build: func(attrs map[string]string) (converter.LinkEntity, []string) {
			return converter.ExternalLink{URL: attrs["href"], Hash: attrs["hash"]}, nil
		},
	},
}

func matchLinkRule(attrs map[string]string) (linkRule, bool) {
	for _, rule := range linkRules {
		if rule.match(attrs) {
			return rule, true
		}
	}
	return linkRule{}, false
}

var blockElements = map[atom.Atom]string{
	atom.P:          converter.BlockUnstyled,
	atom.Div:        converter.BlockUnstyled,
	atom.Blockquote: converter.BlockBlockquote,
	atom.H1:         converter.BlockHeaderOne,
	atom.H2:         converter.BlockHeaderTwo,
	atom.H3:         converter.BlockHeaderThree,
	atom.H4:         converter.BlockHeaderFour,
	atom.H5:         converter.BlockHeaderFive,
	atom.H6:         converter.BlockHeaderSix,
}

var listElements = map[atom.Atom]string{
	atom.Ul: converter.BlockUnorderedListItem,
	atom.Ol: converter.BlockOrderedListItem,
}

var styleElements = map[atom.Atom]string{
	atom.B:      converter.StyleBold,
	atom.Strong: converter.StyleBold,
	atom.I:      converter.StyleItalic,
	atom.Em:     converter.StyleItalic,
}

// Elements whose content is walked without a warning.
var transparentElements = map[atom.Atom]bool{
	atom.Html:    true,
	atom.Body:    true,
	atom.Span:    true,
	atom.Section: true,
	atom.Article: true,
	atom.Main:    true,
	atom.Header:  true,
	atom.Footer:  true,
	atom.U:       true,
	atom.Small:   true,
}

// Elements whose content is never text.
var skippedElements = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
}
