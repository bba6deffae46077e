package richtext

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"

	"github.com/rgonek/draftail-anchors/converter"
	"github.com/rgonek/draftail-anchors/pagelink"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PageResolver looks up page ids in a single batch.
// *pagelink.Resolver satisfies it.
type PageResolver interface {
	ResolveMany(ctx context.Context, ids []string) map[string]pagelink.ResolvedPage
}

// ExpanderConfig configures an Expander.
type ExpanderConfig struct {
	// Renderer overrides the named renderer.
	Renderer AnchorRenderer `json:"-"`
	// RendererName selects a registered renderer ("a" or "span").
	RendererName string       `json:"renderer,omitempty"`
	Logger       *slog.Logger `json:"-"`
}

// Result holds expanded front-end HTML.
type Result struct {
	HTML     string              `json:"html"`
	Warnings []converter.Warning `json:"warnings,omitempty"`
}

// Expander rewrites stored <a linktype="..."> tags into front-end markup.
// Everything else is copied through unchanged.
type Expander struct {
	resolver PageResolver
	render   AnchorRenderer
	logger   *slog.Logger
}

// NewExpander creates an Expander. The anchor renderer is resolved once here.
// A nil resolver treats every page link as missing.
func NewExpander(resolver PageResolver, config ExpanderConfig) (*Expander, error) {
	render, err := ResolveAnchorRenderer(config.Renderer, config.RendererName)
	if err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Expander{
		resolver: resolver,
		render:   render,
		logger:   logger,
	}, nil
}

type token struct {
	raw   string
	tok   xhtml.Token
	attrs map[string]string
}

func (t token) isLinkTag() bool {
	return t.tok.DataAtom == atom.A
}

// Expand rewrites stored HTML. All page ids in the document are resolved
// with one lookup.
func (e *Expander) Expand(ctx context.Context, stored string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tokens, err := tokenize(stored)
	if err != nil {
		return Result{}, err
	}

	var ids []string
	for _, t := range tokens {
		if isOpening(t) && t.isLinkTag() && t.attrs["linktype"] == converter.LinkTypePage {
			ids = append(ids, t.attrs["id"])
		}
	}

	resolved := map[string]pagelink.ResolvedPage{}
	if len(ids) > 0 && e.resolver != nil {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("expansion canceled: %w", err)
		}
		resolved = e.resolver.ResolveMany(ctx, ids)
	}

	var (
		sb       strings.Builder
		warnings []converter.Warning
		closers  []string
	)
	sb.Grow(len(stored))

	for _, t := range tokens {
		switch {
		case isOpening(t) && t.isLinkTag():
			linktype, ok := t.attrs["linktype"]
			if !ok {
				sb.WriteString(t.raw)
				closers = pushCloser(closers, t, "</a>")
				continue
			}

			var open, closer string
			switch linktype {
			case converter.LinkTypePage:
				id := t.attrs["id"]
				if href, ok := pagelink.Href(resolved[id], t.attrs["hash"]); ok {
					open = `<a href="` + html.EscapeString(href) + `">`
				} else {
					open = "<a>"
					warnings = append(warnings, converter.Warning{
						Type:     converter.WarningUnresolvedReference,
						NodeType: "a",
						Message:  fmt.Sprintf("page %q not found; rendering link without href", id),
					})
					e.logger.DebugContext(ctx, "page link target missing", "page_id", id)
				}
				closer = "</a>"
			case converter.LinkTypeAnchorTarget:
				open = e.render(t.attrs)
				closer = closingTag(open)
			default:
				open = "<a>"
				closer = "</a>"
			}

			sb.WriteString(open)
			if t.tok.Type == xhtml.SelfClosingTagToken {
				sb.WriteString(closer)
				continue
			}
			closers = append(closers, closer)

		case t.tok.Type == xhtml.EndTagToken && t.isLinkTag():
			if len(closers) == 0 {
				sb.WriteString(t.raw)
				continue
			}
			sb.WriteString(closers[len(closers)-1])
			closers = closers[:len(closers)-1]

		default:
			sb.WriteString(t.raw)
		}
	}

	return Result{HTML: sb.String(), Warnings: warnings}, nil
}

func isOpening(t token) bool {
	return t.tok.Type == xhtml.StartTagToken || t.tok.Type == xhtml.SelfClosingTagToken
}

// pushCloser records the end tag for a copied <a>; self-closing tags need none.
func pushCloser(closers []string, t token, closer string) []string {
	if t.tok.Type == xhtml.SelfClosingTagToken {
		return closers
	}
	return append(closers, closer)
}

func tokenize(stored string) ([]token, error) {
	z := xhtml.NewTokenizer(strings.NewReader(stored))
	var tokens []token
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				return tokens, nil
			}
			return nil, fmt.Errorf("failed to tokenize HTML: %w", z.Err())
		}

		raw := string(z.Raw())
		tok := z.Token()
		t := token{raw: raw, tok: tok}
		if tok.Type == xhtml.StartTagToken || tok.Type == xhtml.SelfClosingTagToken {
			t.attrs = make(map[string]string, len(tok.Attr))
			for _, a := range tok.Attr {
				if _, seen := t.attrs[a.Key]; !seen {
					t.attrs[a.Key] = a.Val
				}
			}
		}
		tokens = append(tokens, t)
	}
}
