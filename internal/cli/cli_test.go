package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/tagpick/pkg/models"
)

func TestOutputResults(t *testing.T) {
	data := map[string]string{"name": "animals"}

	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "json", want: "\"name\": \"animals\""},
		{format: "yaml", want: "name: animals"},
		{format: "text", want: "map[name:animals]"},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			err := OutputResults(&buf, tt.format, data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("TAG", "CATEGORY")
	table.Row("cat", "Animals")
	table.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TAG"))
	assert.Contains(t, lines[2], "Animals")
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"a long description", 10, "a long ..."},
		{"abcdef", 3, "abc"},
		{"ねこねこねこ", 5, "ねこ..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TruncateString(tt.in, tt.maxLen))
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "cat  ", PadRight("cat", 5))
	assert.Equal(t, "giraffe", PadRight("giraffe", 3))
}

func TestColorizeCategoryWithoutColor(t *testing.T) {
	SetGlobalFlags(false, true, false)
	defer SetGlobalFlags(false, false, false)

	assert.Equal(t, "Animals", ColorizeCategory("Animals"))
}

func TestValidators(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tags.txt")
	require.NoError(t, os.WriteFile(file, []byte("cat\n"), 0644))

	assert.NoError(t, ValidateFilePath(file))
	assert.Error(t, ValidateFilePath(dir))
	assert.Error(t, ValidateFilePath(filepath.Join(dir, "missing.txt")))

	assert.NoError(t, ValidateImportFile(file))
	assert.Error(t, ValidateImportFile(filepath.Join(dir, "tags.xml")))

	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("toml"))

	assert.NoError(t, ValidatePromptName("portrait"))
	assert.Error(t, ValidatePromptName("  "))
	assert.Error(t, ValidatePromptName("two\nlines"))
}

func TestConfirmSkipped(t *testing.T) {
	SetGlobalFlags(false, false, true)
	defer SetGlobalFlags(false, false, false)

	ok, err := Confirm("Delete?", false)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCommandContext(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".tagpick")
	ctx := &CommandContext{ProjectPath: dir, Settings: models.DefaultSettings(), Ephemeral: true}
	defer ctx.Close()

	assert.Error(t, ctx.ValidateProject())
	require.NoError(t, os.MkdirAll(dir, 0755))
	assert.NoError(t, ctx.ValidateProject())

	s, err := ctx.Store()
	require.NoError(t, err)
	again, err := ctx.Store()
	require.NoError(t, err)
	assert.Same(t, s, again)

	src, err := ctx.BundledSource("csv")
	require.NoError(t, err)
	assert.Equal(t, models.FormatCSV, src.Format)
	_, err = ctx.BundledSource("xml")
	assert.Error(t, err)

	ctrl, err := ctx.NewController(nil, nil)
	require.NoError(t, err)
	assert.True(t, ctrl.Catalog().IsEmpty())
}
