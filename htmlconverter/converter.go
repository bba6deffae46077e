// Package htmlconverter converts stored rich-text HTML back into the editor's
// raw content state.
package htmlconverter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rgonek/draftail-anchors/converter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Converter converts stored HTML to content state.
type Converter struct {
	config Config
}

type state struct {
	ctx       context.Context
	config    Config
	content   converter.ContentState
	block     *blockBuilder
	implicit  implicitBlock
	lists     []string
	styles    []string
	pageLinks []pageLink
	entities  int
	warnings  []converter.Warning
	warned    map[string]bool
}

// implicitBlock is the block type opened for text that appears outside any
// block element.
type implicitBlock struct {
	blockType string
	depth     int
}

type pageLink struct {
	key  string
	link converter.InternalPageLink
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Converter{config: cfg}, nil
}

// Convert parses an HTML fragment and returns its content state.
// Internal page links are resolved in one batch to fill parentId.
func (c *Converter) Convert(ctx context.Context, input string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(input), body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	s := &state{
		ctx:    ctx,
		config: c.config,
		content: converter.ContentState{
			Blocks:    []converter.Block{},
			EntityMap: map[string]converter.Entity{},
		},
		implicit: implicitBlock{blockType: converter.BlockUnstyled},
		warned:   map[string]bool{},
	}

	for _, node := range nodes {
		s.walk(node)
	}
	s.finishBlock()

	if err := s.resolvePageLinks(); err != nil {
		return Result{}, err
	}

	return Result{
		ContentState: s.content,
		Warnings:     s.warnings,
	}, nil
}

func (s *state) resolvePageLinks() error {
	if s.config.Resolver == nil || len(s.pageLinks) == 0 {
		return nil
	}
	if err := s.ctx.Err(); err != nil {
		return fmt.Errorf("conversion canceled: %w", err)
	}

	ids := make([]string, 0, len(s.pageLinks))
	for _, pl := range s.pageLinks {
		ids = append(ids, pl.link.PageID)
	}
	resolved := s.config.Resolver.ResolveMany(s.ctx, ids)

	for _, pl := range s.pageLinks {
		page := resolved[pl.link.PageID]
		if !page.Exists {
			s.addWarning(converter.WarningUnresolvedReference, "a",
				fmt.Sprintf("page %q does not exist; link kept as broken", pl.link.PageID))
			continue
		}
		pl.link.ParentID = page.ParentID
		s.content.EntityMap[pl.key] = converter.EncodeEntity(pl.link)
	}
	return nil
}

func (s *state) addWarning(warnType converter.WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, converter.Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

// addWarningOnce reports a warning the first time a node type is seen.
func (s *state) addWarningOnce(warnType converter.WarningType, nodeType, message string) {
	key := string(warnType) + ":" + nodeType
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	s.addWarning(warnType, nodeType, message)
}

func (s *state) startBlock(blockType string, depth int, data map[string]any, implicit bool) {
	s.block = &blockBuilder{
		block: converter.Block{
			Type:              blockType,
			Depth:             depth,
			InlineStyleRanges: []converter.InlineStyleRange{},
			EntityRanges:      []converter.EntityRange{},
			Data:              data,
		},
		implicit:  implicit,
		lastSpace: true,
	}
}

func (s *state) ensureBlock() {
	if s.block == nil {
		s.startBlock(s.implicit.blockType, s.implicit.depth, nil, true)
	}
}

func (s *state) finishBlock() {
	b := s.block
	if b == nil {
		return
	}
	s.block = nil

	text := strings.TrimRight(b.text.String(), " ")
	if b.implicit && text == "" {
		return
	}

	limit := utf16Len(text)
	b.block.Text = text
	b.block.InlineStyleRanges = clipStyleRanges(b.block.InlineStyleRanges, limit)
	b.block.EntityRanges = clipEntityRanges(b.block.EntityRanges, limit)
	b.block.Key = s.config.KeyPrefix + strconv.Itoa(len(s.content.Blocks))
	s.content.Blocks = append(s.content.Blocks, b.block)
}

// addText appends HTML text with whitespace collapsed the way a browser
// would render it.
func (s *state) addText(raw string) {
	text := collapseWhitespace(raw)
	if text == "" {
		return
	}
	if s.block == nil {
		if strings.TrimSpace(text) == "" {
			return
		}
		s.ensureBlock()
	}
	if s.block.lastSpace {
		text = strings.TrimLeft(text, " ")
	}
	if text == "" {
		return
	}
	s.block.append(text, s.activeStyles())
}

func (s *state) addLineBreak() {
	s.ensureBlock()
	s.block.append("\n", s.activeStyles())
}

func (s *state) activeStyles() []string {
	if len(s.styles) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(s.styles))
	styles := make([]string, 0, len(s.styles))
	for _, style := range s.styles {
		if seen[style] {
			continue
		}
		seen[style] = true
		styles = append(styles, style)
	}
	return styles
}

func (s *state) addEntity(link converter.LinkEntity) string {
	key := strconv.Itoa(s.entities)
	s.entities++
	s.content.EntityMap[key] = converter.EncodeEntity(link)
	if page, ok := link.(converter.InternalPageLink); ok {
		s.pageLinks = append(s.pageLinks, pageLink{key: key, link: page})
	}
	return key
}

// removeEntity forgets an entity whose range was dropped.
func (s *state) removeEntity(key string) {
	delete(s.content.EntityMap, key)
	for i, pl := range s.pageLinks {
		if pl.key == key {
			s.pageLinks = append(s.pageLinks[:i], s.pageLinks[i+1:]...)
			break
		}
	}
}

func collapseWhitespace(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	inSpace := false
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
		default:
			sb.WriteRune(r)
			inSpace = false
		}
	}
	return sb.String()
}
