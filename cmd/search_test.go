package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[
		{"n": "王者荣耀"},
		{"n": "生化危机4"},
		{"n": "生化危机8"},
		{"n": "赛博朋克2077"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	return path
}

func TestSearchCommand(t *testing.T) {
	catalogPath := writeTestCatalog(t)

	cmd := NewSearchCmd(&catalogPath)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"生化危机"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "生化危机4")
	assert.Contains(t, out.String(), "生化危机8")
	assert.NotContains(t, out.String(), "王者荣耀")
}

func TestSearchCommandLimit(t *testing.T) {
	catalogPath := writeTestCatalog(t)

	cmd := NewSearchCmd(&catalogPath)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--limit", "1", "生化危机"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "生化危机4")
	assert.NotContains(t, out.String(), "生化危机8")
}

func TestSearchCommandNoResults(t *testing.T) {
	catalogPath := writeTestCatalog(t)

	cmd := NewSearchCmd(&catalogPath)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"xyz123nonsense"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "No results.")
}

func TestSearchCommandCategoryFilter(t *testing.T) {
	catalogPath := writeTestCatalog(t)

	cmd := NewSearchCmd(&catalogPath)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--category", "恐怖游戏", "生化危机"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "生化危机4")
	assert.NotContains(t, out.String(), "赛博朋克")
}
