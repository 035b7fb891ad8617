package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/styles.md":        {Data: []byte("# Styles\n\nPath grammars")},
		"help/option-force.txt": {Data: []byte("Skip validation")},
		"help/notes.txxt":       {Data: []byte("Custom extension")},
		"help/ignore.json":      {Data: []byte("{}")},
	}
}

func TestScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), "help")
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"styles", true, "# Styles\n\nPath grammars"},
			{"force", true, "Skip validation"},
			{"--force", true, "Skip validation"},
			{"notes", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), "help", Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("missing root", func(t *testing.T) {
		tm := New(testFS(), "nowhere")
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestWriteList(t *testing.T) {
	tm := New(testFS(), "help")
	require.NoError(t, tm.scanTopics())

	var buf bytes.Buffer
	tm.WriteList(&buf, "respath")
	out := buf.String()
	assert.Contains(t, out, "General topics:\n  styles")
	assert.Contains(t, out, "Option topics:\n  --force")
	assert.Contains(t, out, "Use 'respath help <topic>'")

	var empty bytes.Buffer
	New(fstestEmpty(), "help").WriteList(&empty, "respath")
	assert.Equal(t, "No help topics available.\n", empty.String())
}

func fstestEmpty() fstest.MapFS { return fstest.MapFS{} }

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	root := &cobra.Command{Use: "respath", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "format", Short: "Format a path", Run: func(*cobra.Command, []string) {}})
	_, err := Initialize(root, testFS(), "help")
	require.NoError(t, err)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "styles"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "# Styles\n\nPath grammars", out.String())

	root, out = newRoot(t)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Available help topics:")
}

func TestTopicsCommand(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"topics", "force"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Skip validation", out.String())

	root, _ = newRoot(t)
	root.SetArgs([]string{"topics", "nope"})
	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unknown help topic"))
}

func TestRenderers(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "**x**", r.Render("**x**", ".md"))

	upper := RendererFunc(func(content, _ string) string { return strings.ToUpper(content) })
	assert.Equal(t, "ABC", upper.Render("abc", ".txt"))

	assert.Equal(t, "notty", NewGlamourRenderer(nil).Style)

	g := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain", g.Render("plain", ".txt"))
	assert.Contains(t, g.Render("# Title", ".md"), "Title")
}
