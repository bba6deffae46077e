package htmlconverter

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgonek/draftail-anchors/converter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGoldenFiles(t *testing.T) {
	testDataDir := "testdata"

	reverse := newTestConverter(t, Config{})
	forward, err := converter.New(converter.Config{})
	require.NoError(t, err)

	err = filepath.Walk(testDataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		t.Run(path, func(t *testing.T) {
			input, err := os.ReadFile(path)
			require.NoError(t, err)

			result := convertHTML(t, reverse, string(input))
			assert.Empty(t, result.Warnings)

			output, err := json.MarshalIndent(result.ContentState, "", "  ")
			require.NoError(t, err)

			goldenPath := strings.TrimSuffix(path, ".html") + ".json"
			if *update {
				err := os.WriteFile(goldenPath, append(output, '\n'), 0644)
				require.NoError(t, err)
				t.Logf("Updated golden file: %s", goldenPath)
			} else {
				expected, err := os.ReadFile(goldenPath)
				if os.IsNotExist(err) {
					t.Fatalf("Golden file missing: %s. Run with -update to create it.", goldenPath)
				}
				require.NoError(t, err)
				assert.Equal(t, normalizeNewlines(string(expected)), normalizeNewlines(string(output)))
			}

			rendered, err := forward.Convert(result.ContentState)
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(normalizeNewlines(string(input))), rendered.HTML)
		})
		return nil
	})
	require.NoError(t, err)
}

func normalizeNewlines(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\r\n", "\n"))
}
