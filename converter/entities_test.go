package converter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestDecodeEntity(t *testing.T) {
	tests := []struct {
		name   string
		entity Entity
		want   LinkEntity
		ok     bool
	}{
		{
			name:   "anchor identifier strips hash",
			entity: Entity{Type: EntityAnchorIdentifier, Data: map[string]any{"anchor": "#intro", "data-id": "legacy"}},
			want:   AnchorIdentifier{TargetID: "intro", SourceAnchor: "legacy"},
			ok:     true,
		},
		{
			name:   "page link with numeric id",
			entity: Entity{Type: EntityLink, Data: map[string]any{"id": float64(42), "hash": "faq", "parentId": float64(2)}},
			want:   InternalPageLink{PageID: "42", Hash: "faq", ParentID: "2"},
			ok:     true,
		},
		{
			name:   "null id is an external link",
			entity: Entity{Type: EntityLink, Data: map[string]any{"id": nil, "url": "https://example.com"}},
			want:   ExternalLink{URL: "https://example.com"},
			ok:     true,
		},
		{
			name:   "external link with hash",
			entity: Entity{Type: EntityLink, Data: map[string]any{"url": "https://example.com", "hash": "top"}},
			want:   ExternalLink{URL: "https://example.com", Hash: "top"},
			ok:     true,
		},
		{
			name:   "missing data defaults to empty strings",
			entity: Entity{Type: EntityAnchorIdentifier},
			want:   AnchorIdentifier{},
			ok:     true,
		},
		{
			name:   "unknown type",
			entity: Entity{Type: "IMAGE"},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeEntity(tt.entity)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeEntityRoundTripsThroughJSON(t *testing.T) {
	links := []LinkEntity{
		InternalPageLink{PageID: "42", Hash: "faq", ParentID: "2"},
		InternalPageLink{PageID: "home"},
		ExternalLink{URL: "https://example.com", Hash: "top"},
		AnchorIdentifier{TargetID: "intro", SourceAnchor: "intro"},
	}

	for _, link := range links {
		data, err := json.Marshal(EncodeEntity(link))
		require.NoError(t, err)

		var entity Entity
		require.NoError(t, json.Unmarshal(data, &entity))
		assert.Equal(t, MutabilityMutable, entity.Mutability)

		decoded, ok := DecodeEntity(entity)
		require.True(t, ok)
		assert.Equal(t, link, decoded)
	}
}

func TestAnchorIdentifierTarget(t *testing.T) {
	target := AnchorIdentifier{TargetID: "intro", SourceAnchor: "old-intro"}.Target()
	assert.Equal(t, AnchorTarget{ID: "intro", SourceAnchor: "old-intro"}, target)
}

func TestRenderEntityAndBlock(t *testing.T) {
	render := func(node *html.Node) string {
		var sb strings.Builder
		require.NoError(t, html.Render(&sb, node))
		return sb.String()
	}

	node := RenderEntity(AnchorIdentifier{TargetID: "x"}, []*html.Node{textNode("t")}, nil)
	assert.Equal(t, `<a id="x" data-id="x" href="#x" linktype="anchor-target">t</a>`, render(node))

	node = RenderEntity(ExternalLink{URL: "/local/", Hash: "h"}, nil, nil)
	assert.Equal(t, `<a href="/local/" hash="h"></a>`, render(node))

	block, ok := RenderBlock(Block{Type: BlockBlockquote}, []*html.Node{textNode("q")})
	require.True(t, ok)
	assert.Equal(t, `<blockquote>q</blockquote>`, render(block))

	_, ok = RenderBlock(Block{Type: "atomic"}, nil)
	assert.False(t, ok)
}
