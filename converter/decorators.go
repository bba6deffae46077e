package converter

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderEntity wraps children in the stored HTML element for a link entity.
// External URLs are passed through sanitize; a rejected URL leaves the tag without href.
func RenderEntity(link LinkEntity, children []*html.Node, sanitize URLSanitizer) *html.Node {
	if sanitize == nil {
		sanitize = CheckURL
	}

	var node *html.Node
	switch typed := link.(type) {
	case AnchorIdentifier:
		node = element("a",
			attr("id", typed.TargetID),
			attr("data-id", typed.TargetID),
			attr("href", "#"+typed.TargetID),
			attr("linktype", LinkTypeAnchorTarget),
		)
	case InternalPageLink:
		node = element("a",
			attr("linktype", LinkTypePage),
			attr("id", typed.PageID),
		)
		if typed.Hash != "" {
			node.Attr = append(node.Attr, attr("hash", typed.Hash))
		}
	case ExternalLink:
		node = element("a")
		if typed.URL != "" {
			if href, ok := sanitize(typed.URL); ok {
				node.Attr = append(node.Attr, attr("href", href))
			}
		}
		if typed.Hash != "" {
			node.Attr = append(node.Attr, attr("hash", typed.Hash))
		}
	default:
		node = element("a")
	}

	appendChildren(node, children)
	return node
}

// RenderBlock wraps children in the stored HTML element for a block.
// List items render as <li>; the caller owns the surrounding list element.
// The second result is false for block types this package does not handle.
func RenderBlock(block Block, children []*html.Node) (*html.Node, bool) {
	var node *html.Node
	switch {
	case HeadingLevel(block.Type) > 0:
		node = element("h" + strconv.Itoa(HeadingLevel(block.Type)))
		if id, ok := HeadingAnchor(block); ok {
			node.Attr = append(node.Attr, attr("id", id))
		}
		if anchor := stringValue(block.Data["anchor"]); anchor != "" {
			node.Attr = append(node.Attr, attr("anchor", anchor))
		}
	case block.Type == BlockUnstyled:
		node = element("p")
	case block.Type == BlockBlockquote:
		node = element("blockquote")
	case isListItem(block.Type):
		node = element("li")
	default:
		return nil, false
	}

	appendChildren(node, children)
	return node, true
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, value string) html.Attribute {
	return html.Attribute{Key: key, Val: value}
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

func appendChildren(parent *html.Node, children []*html.Node) {
	for _, child := range children {
		parent.AppendChild(child)
	}
}
