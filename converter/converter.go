package converter

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Converter converts editor content state to stored HTML.
type Converter struct {
	config Config
}

type state struct {
	config   Config
	content  ContentState
	warnings []Warning
}

type listFrame struct {
	tag      string
	node     *html.Node
	lastItem *html.Node
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
	}, nil
}

// ConvertJSON takes raw content state JSON and returns stored HTML.
func (c *Converter) ConvertJSON(input []byte) (Result, error) {
	var content ContentState
	if err := json.Unmarshal(input, &content); err != nil {
		return Result{}, fmt.Errorf("failed to parse content state JSON: %w", err)
	}
	return c.Convert(content)
}

// Convert renders a content state as stored HTML. The input is not modified.
func (c *Converter) Convert(content ContentState) (Result, error) {
	if c.config.SyncHeadingIDs {
		content = cloneContentState(content)
		SyncHeadingIDs(&content)
	}

	s := &state{
		config:  c.config,
		content: content,
	}

	nodes, err := s.convertBlocks(content.Blocks)
	if err != nil {
		return Result{}, err
	}

	var sb strings.Builder
	for _, node := range nodes {
		if err := html.Render(&sb, node); err != nil {
			return Result{}, fmt.Errorf("failed to render HTML: %w", err)
		}
	}

	return Result{
		HTML:     sb.String(),
		Warnings: s.warnings,
	}, nil
}

// convertBlocks renders blocks in order, nesting consecutive list items by depth.
func (s *state) convertBlocks(blocks []Block) ([]*html.Node, error) {
	var out []*html.Node
	var lists []*listFrame

	for _, block := range blocks {
		if !isListItem(block.Type) {
			lists = nil
			node, err := s.convertBlock(block)
			if err != nil {
				return nil, err
			}
			out = append(out, node)
			continue
		}

		tag := "ul"
		if block.Type == BlockOrderedListItem {
			tag = "ol"
		}

		// A list item can only open one level deeper than the current nesting.
		depth := block.Depth
		if depth < 0 {
			depth = 0
		}
		if depth > len(lists) {
			depth = len(lists)
		}
		if len(lists) > depth+1 {
			lists = lists[:depth+1]
		}
		if len(lists) == depth+1 && lists[depth].tag != tag {
			lists = lists[:depth]
		}
		if len(lists) == depth {
			list := element(tag)
			if depth == 0 {
				out = append(out, list)
			} else {
				lists[depth-1].lastItem.AppendChild(list)
			}
			lists = append(lists, &listFrame{tag: tag, node: list})
		}

		item, err := s.convertBlock(block)
		if err != nil {
			return nil, err
		}
		lists[depth].node.AppendChild(item)
		lists[depth].lastItem = item
	}

	return out, nil
}

func (s *state) convertBlock(block Block) (*html.Node, error) {
	children, err := s.convertInline(block)
	if err != nil {
		return nil, err
	}

	if node, ok := RenderBlock(block, children); ok {
		return node, nil
	}

	if s.config.UnknownBlocks == UnknownError {
		return nil, fmt.Errorf("unknown block type: %s", block.Type)
	}
	s.addWarning(WarningUnknownBlock, block.Type, fmt.Sprintf("unsupported block type %q rendered as paragraph", block.Type))

	node := element("p")
	appendChildren(node, children)
	return node, nil
}

func (s *state) addWarning(warnType WarningType, nodeType, message string) {
	s.warnings = append(s.warnings, Warning{
		Type:     warnType,
		NodeType: nodeType,
		Message:  message,
	})
}

func cloneContentState(content ContentState) ContentState {
	cloned := ContentState{
		Blocks:    make([]Block, len(content.Blocks)),
		EntityMap: content.EntityMap,
	}
	for i, block := range content.Blocks {
		cloned.Blocks[i] = block
		if block.Data != nil {
			data := make(map[string]any, len(block.Data))
			for key, value := range block.Data {
				data[key] = value
			}
			cloned.Blocks[i].Data = data
		}
	}
	return cloned
}
