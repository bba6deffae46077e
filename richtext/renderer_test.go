package richtext

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRenderers(t *testing.T) {
	attrs := map[string]string{"id": "intro", "linktype": "anchor-target"}

	assert.Equal(t, `<a href="#intro" id="intro" data-id="intro">`, RenderA(attrs))
	assert.Equal(t, `<span id="intro">`, RenderSpan(attrs))
}

func TestRenderersEscapeID(t *testing.T) {
	attrs := map[string]string{"id": `x"><script>`}

	assert.Equal(t, `<span id="x&#34;&gt;&lt;script&gt;">`, RenderSpan(attrs))
}

func TestResolveAnchorRenderer(t *testing.T) {
	custom := func(attrs map[string]string) string { return `<mark id="` + attrs["id"] + `">` }
	attrs := map[string]string{"id": "top"}

	tests := []struct {
		name     string
		override AnchorRenderer
		rname    string
		expected string
	}{
		{name: "default", expected: RenderA(attrs)},
		{name: "named a", rname: "a", expected: RenderA(attrs)},
		{name: "named span", rname: "span", expected: RenderSpan(attrs)},
		{name: "override wins over name", override: custom, rname: "span", expected: `<mark id="top">`},
		{name: "override alone", override: custom, expected: `<mark id="top">`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			render, err := ResolveAnchorRenderer(tt.override, tt.rname)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, render(attrs))
		})
	}
}

func TestResolveAnchorRendererUnknownName(t *testing.T) {
	_, err := ResolveAnchorRenderer(nil, "marquee")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRenderer))
	assert.Contains(t, err.Error(), `"marquee"`)
}

func TestResolveAnchorRendererReturnsBuiltin(t *testing.T) {
	render, err := ResolveAnchorRenderer(nil, "span")
	require.NoError(t, err)

	assert.Equal(t, reflect.ValueOf(RenderSpan).Pointer(), reflect.ValueOf(render).Pointer())
}

func TestResolveAnchorRendererDefaultName(t *testing.T) {
	byDefault, err := ResolveAnchorRenderer(nil, "  ")
	require.NoError(t, err)
	named, err := ResolveAnchorRenderer(nil, DefaultRendererName)
	require.NoError(t, err)

	assert.Equal(t, reflect.ValueOf(named).Pointer(), reflect.ValueOf(byDefault).Pointer())
}

func TestClosingTag(t *testing.T) {
	assert.Equal(t, "</span>", closingTag(`<span id="x">`))
	assert.Equal(t, "</a>", closingTag(`<a href="#x">`))
	assert.Equal(t, "", closingTag("plain text"))
}

func TestRendererNames(t *testing.T) {
	names := RendererNames()
	assert.Equal(t, []string{"a", "span"}, names)
	assert.True(t, sort.StringsAreSorted(names))

	for _, name := range names {
		_, ok := namedRenderer(name)
		assert.True(t, ok, name)
	}
}
