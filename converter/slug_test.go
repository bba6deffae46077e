package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "getting-started", Slug("Getting Started"))
	assert.Equal(t, "faq", Slug("  FAQ?  "))
	assert.Equal(t, "step-1", Slug("step_1"))
	assert.Equal(t, "heading", Slug("!!!"))
}

func TestSyncHeadingIDsSkipsOtherBlocks(t *testing.T) {
	content := ContentState{
		Blocks: []Block{
			{Type: BlockUnstyled, Text: "Paragraph"},
			{Type: BlockHeaderOne, Text: "Title"},
			{Type: BlockHeaderOne, Text: "Title"},
		},
	}

	SyncHeadingIDs(&content)

	assert.Nil(t, content.Blocks[0].Data)
	assert.Equal(t, "title", content.Blocks[1].Data["id"])
	assert.Equal(t, "title-1", content.Blocks[2].Data["id"])
}
