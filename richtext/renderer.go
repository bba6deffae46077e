// Package richtext expands stored rich-text HTML for the front end.
package richtext

import (
	"errors"
	"fmt"
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// ErrUnknownRenderer is returned when a renderer name is not registered.
var ErrUnknownRenderer = errors.New("unknown anchor renderer")

// AnchorRenderer returns the opening tag that replaces a stored anchor
// target. attrs holds the attributes of the stored <a> tag.
type AnchorRenderer func(attrs map[string]string) string

// RenderA renders an anchor target as a self-referencing link.
func RenderA(attrs map[string]string) string {
	id := html.EscapeString(attrs["id"])
	return fmt.Sprintf(`<a href="#%s" id="%s" data-id="%s">`, id, id, id)
}

// RenderSpan renders an anchor target as a plain span carrying the id.
func RenderSpan(attrs map[string]string) string {
	return fmt.Sprintf(`<span id="%s">`, html.EscapeString(attrs["id"]))
}

// DefaultRendererName names the renderer used when none is configured.
const DefaultRendererName = "a"

func namedRenderer(name string) (AnchorRenderer, bool) {
	switch name {
	case "a":
		return RenderA, true
	case "span":
		return RenderSpan, true
	default:
		return nil, false
	}
}

// RendererNames lists the registered renderer names in sorted order.
func RendererNames() []string {
	return []string{"a", "span"}
}

// ResolveAnchorRenderer picks the renderer to use: override when set, then
// the renderer registered under name, then the one named DefaultRendererName.
func ResolveAnchorRenderer(override AnchorRenderer, name string) (AnchorRenderer, error) {
	if override != nil {
		return override, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultRendererName
	}
	render, ok := namedRenderer(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownRenderer, name, strings.Join(RendererNames(), ", "))
	}
	return render, nil
}

// closingTag returns the end tag matching the element opened by tag, or ""
// when tag does not open an element.
func closingTag(tag string) string {
	z := xhtml.NewTokenizer(strings.NewReader(tag))
	if z.Next() != xhtml.StartTagToken {
		return ""
	}
	name, _ := z.TagName()
	return "</" + string(name) + ">"
}
