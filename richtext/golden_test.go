package richtext

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGoldenFiles(t *testing.T) {
	testDataDir := "testdata"

	err := filepath.Walk(testDataDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		t.Run(path, func(t *testing.T) {
			input, err := os.ReadFile(path)
			require.NoError(t, err)

			exp := newTestExpander(t, newTestStore(), goldenConfigForPath(path))
			output := expand(t, exp, normalizeNewlines(string(input))).HTML

			goldenPath := strings.TrimSuffix(path, ".html") + ".golden"
			if *update {
				err := os.WriteFile(goldenPath, []byte(output), 0644)
				require.NoError(t, err)
				t.Logf("Updated golden file: %s", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			if os.IsNotExist(err) {
				t.Fatalf("Golden file missing: %s. Run with -update to create it.", goldenPath)
			}
			require.NoError(t, err)
			assert.Equal(t, normalizeNewlines(string(expected)), output)
		})
		return nil
	})
	require.NoError(t, err)
}

func goldenConfigForPath(path string) ExpanderConfig {
	if strings.HasSuffix(strings.TrimSuffix(filepath.Base(path), ".html"), "-span") {
		return ExpanderConfig{RendererName: "span"}
	}
	return ExpanderConfig{}
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
