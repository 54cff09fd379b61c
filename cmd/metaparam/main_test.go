package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rgonek/editorjs-metaparam/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetConfig(t *testing.T) {
	t.Run("balanced", func(t *testing.T) {
		cfg, err := presetConfig(presetBalanced)
		require.NoError(t, err)
		assert.Equal(t, editor.Config{}, cfg)
	})

	t.Run("empty defaults to balanced", func(t *testing.T) {
		cfg, err := presetConfig("")
		require.NoError(t, err)
		assert.Equal(t, editor.Config{}, cfg)
	})

	t.Run("strict", func(t *testing.T) {
		cfg, err := presetConfig(presetStrict)
		require.NoError(t, err)
		assert.Equal(t, editor.UnknownError, cfg.UnknownTools)
		assert.Equal(t, editor.SanitizeStrict, cfg.Sanitize)
	})

	t.Run("trusted", func(t *testing.T) {
		cfg, err := presetConfig(presetTrusted)
		require.NoError(t, err)
		assert.Equal(t, editor.UnknownPreserve, cfg.UnknownTools)
		assert.Equal(t, editor.SanitizeNone, cfg.Sanitize)
	})

	t.Run("lossy", func(t *testing.T) {
		cfg, err := presetConfig(presetLossy)
		require.NoError(t, err)
		assert.Equal(t, editor.UnknownSkip, cfg.UnknownTools)
		assert.Equal(t, editor.SanitizeStrict, cfg.Sanitize)
	})

	t.Run("case insensitive", func(t *testing.T) {
		cfg, err := presetConfig(" Strict ")
		require.NoError(t, err)
		assert.Equal(t, editor.UnknownError, cfg.UnknownTools)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := presetConfig("nope")
		require.Error(t, err)
	})
}

func TestResolveConfig(t *testing.T) {
	file := editor.Config{
		Styles:   editor.Styles{Block: "theme-block"},
		Sanitize: editor.SanitizeNone,
		Tools: map[string]editor.ToolSettings{
			"metaparam": {Config: map[string]any{"titlePlaceholder": "Page title"}},
		},
	}

	cfg, err := resolveConfig(presetLossy, file, false)
	require.NoError(t, err)
	assert.Equal(t, "theme-block", cfg.Styles.Block)
	assert.Equal(t, editor.SanitizeNone, cfg.Sanitize)
	assert.Equal(t, editor.UnknownSkip, cfg.UnknownTools)
	assert.Equal(t, "Page title", cfg.Tools["metaparam"].Config["titlePlaceholder"])

	cfg, err = resolveConfig(presetLossy, file, true)
	require.NoError(t, err)
	assert.Equal(t, editor.UnknownError, cfg.UnknownTools)

	_, err = resolveConfig("nope", file, false)
	require.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "editor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
styles:
  block: theme-block
  input: theme-input
unknownTools: skip
sanitize: strict
tools:
  metaparam:
    config:
      titlePlaceholder: Page title
`), 0o600))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, editor.Styles{Block: "theme-block", Input: "theme-input"}, cfg.Styles)
	assert.Equal(t, editor.UnknownSkip, cfg.UnknownTools)
	assert.Equal(t, editor.SanitizeStrict, cfg.Sanitize)
	assert.Equal(t, "Page title", cfg.Tools["metaparam"].Config["titlePlaceholder"])

	cfg, err = loadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, editor.Config{}, cfg)

	_, err = loadConfigFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderEditSaveExport(t *testing.T) {
	docPath := writeFile(t, "doc.json", `{"blocks":[{"id":"m1","type":"metaparam","data":{"title":"A","description":"B","keywords":"C"}}]}`)

	markup, err := runCLI(t, "render", docPath)
	require.NoError(t, err)
	assert.Contains(t, markup, `<div class="ce-block" data-id="m1" data-type="metaparam">`)
	assert.Contains(t, markup, `data-placeholder="Title">A</div>`)

	edited := strings.Replace(markup, `data-placeholder="Title">A</div>`, `data-placeholder="Title">X</div>`, 1)
	htmlPath := writeFile(t, "editor.html", edited)

	saved, err := runCLI(t, "save", htmlPath)
	require.NoError(t, err)
	doc, err := editor.ParseOutputData([]byte(saved))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, map[string]any{"title": "X", "description": "B", "keywords": "C"}, doc.Blocks[0].Data)

	savedPath := writeFile(t, "saved.json", saved)
	frontMatter, err := runCLI(t, "export", savedPath)
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: X\ndescription: B\nkeywords: C\n---\n", frontMatter)
}

func TestRenderSaveKeepsUnknownBlocks(t *testing.T) {
	docPath := writeFile(t, "doc.json", `{"blocks":[{"id":"t1","type":"table","data":{"rows":[["a","b"]]}},{"id":"m1","type":"metaparam","data":{"title":"A"}}]}`)

	markup, err := runCLI(t, "render", docPath)
	require.NoError(t, err)
	htmlPath := writeFile(t, "editor.html", markup)

	saved, err := runCLI(t, "save", htmlPath)
	require.NoError(t, err)
	doc, err := editor.ParseOutputData([]byte(saved))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, editor.BlockData{
		ID:   "t1",
		Type: "table",
		Data: map[string]any{"rows": []any{[]any{"a", "b"}}},
	}, doc.Blocks[0])
}

func TestImportCommand(t *testing.T) {
	mdPath := writeFile(t, "page.md", "---\nkeywords: [go, cli]\n---\n# Hello *there*\n\nIntro text.\n")

	out, err := runCLI(t, "import", mdPath)
	require.NoError(t, err)

	doc, err := editor.ParseOutputData([]byte(out))
	require.NoError(t, err)
	block, ok := doc.FirstBlock("metaparam")
	require.True(t, ok)
	assert.NotEmpty(t, block.ID)
	assert.Equal(t, map[string]any{
		"title":       "Hello <em>there</em>",
		"description": "Intro text.",
		"keywords":    "go, cli",
	}, block.Data)
}

func TestRenderStrictUnknownTool(t *testing.T) {
	docPath := writeFile(t, "doc.json", `{"blocks":[{"id":"x","type":"table","data":{}}]}`)

	_, err := runCLI(t, "--strict", "render", docPath)
	require.Error(t, err)

	out, err := runCLI(t, "--preset", "lossy", "render", docPath)
	require.NoError(t, err)
	assert.Equal(t, `<div class="codex-editor"></div>`+"\n", out)
}

func TestSaveMissingInput(t *testing.T) {
	htmlPath := writeFile(t, "editor.html", `<div class="codex-editor"><div class="ce-block" data-id="m1" data-type="metaparam"><div class="cdx-block cdx-metaparam"></div></div></div>`)

	_, err := runCLI(t, "save", htmlPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestToolsCommand(t *testing.T) {
	out, err := runCLI(t, "tools")
	require.NoError(t, err)
	assert.Equal(t, "metaparam\ttitle=\"Metaparam\"\tlineBreaks=true\tsanitize=description,keywords,title\n", out)
}
