package csscribe

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEntries(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		variables []Variable
		classes   []string
	}{
		{
			name:      "variable declaration",
			line:      "--main-color: #ff0000;",
			variables: []Variable{{Name: "--main-color", Value: "#ff0000"}},
		},
		{
			name:      "whitespace around colon and value",
			line:      "  --gap  :   12px   ;",
			variables: []Variable{{Name: "--gap", Value: "12px"}},
		},
		{
			name: "several variables, last value wins",
			line: "--a: 1; --b: 2; --a: 3;",
			variables: []Variable{
				{Name: "--a", Value: "3"},
				{Name: "--b", Value: "2"},
			},
		},
		{
			name:      "value runs to end of line without semicolon",
			line:      "--shadow: 0 1px 2px black",
			variables: []Variable{{Name: "--shadow", Value: "0 1px 2px black"}},
		},
		{
			name:    "classes in first-occurrence order",
			line:    ".card .btn--primary .card .icon_sm",
			classes: []string{".card", ".btn--primary", ".icon_sm"},
		},
		{
			name:    "non-ascii class name",
			line:    ".見出し { color: red }",
			classes: []string{".見出し"},
		},
		{
			name:      "variable and class on one line",
			line:      ".hero { --hero-bg: var(--main-color); }",
			variables: []Variable{{Name: "--hero-bg", Value: "var(--main-color)"}},
			classes:   []string{".hero"},
		},
		{
			name: "no matches",
			line: "クラス◯◯ { color: red }",
		},
		{
			name: "var() reference is not a declaration",
			line: "color: var(--main-color);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntries(tt.line)
			assert.Equal(t, tt.variables, got.Variables)
			assert.Equal(t, tt.classes, got.Classes)
		})
	}
}

func readDictionary(t *testing.T, path string) *Dictionary {
	t.Helper()
	d, err := LoadDictionary(path)
	require.NoError(t, err)
	return d
}

func TestRecord_CreatesDictionary(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(dir)
	ed := newFakeEditor(0, ".card { --card-pad: 16px; }")

	result, err := rec.Record(context.Background(), ed)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, DictionaryFile), result.Path)

	d := readDictionary(t, rec.Path)
	assert.Equal(t, map[string]string{"--card-pad": "16px"}, d.Variables)
	assert.Equal(t, []string{".card"}, d.Classes)
	assert.Equal(t, []string{
		"Registered variable --card-pad: 16px",
		"Registered class .card",
	}, ed.infos)
}

func TestRecord_IdempotentForClasses(t *testing.T) {
	rec := NewRecorder(t.TempDir())
	ctx := context.Background()

	ed := newFakeEditor(0, ".a .b .a")
	_, err := rec.Record(ctx, ed)
	require.NoError(t, err)
	first := readDictionary(t, rec.Path).Classes

	_, err = rec.Record(ctx, ed)
	require.NoError(t, err)
	assert.Equal(t, first, readDictionary(t, rec.Path).Classes)
	assert.Equal(t, []string{".a", ".b"}, first)

	// Duplicates never notify.
	assert.Len(t, ed.infos, 2)
}

func TestRecord_OverwritesVariable(t *testing.T) {
	rec := NewRecorder(t.TempDir())
	ctx := context.Background()

	_, err := rec.Record(ctx, newFakeEditor(0, "--main: red;"))
	require.NoError(t, err)

	ed := newFakeEditor(0, "--main: blue;")
	result, err := rec.Record(ctx, ed)
	require.NoError(t, err)

	d := readDictionary(t, rec.Path)
	assert.Equal(t, map[string]string{"--main": "blue"}, d.Variables)
	assert.Equal(t, []Variable{{Name: "--main", Value: "blue"}}, result.Merged.UpdatedVariables)
	assert.Empty(t, ed.infos, "overwriting a value is not a new entry")
}

func TestRecord_PreservesUntouchedFields(t *testing.T) {
	rec := NewRecorder(t.TempDir())
	ctx := context.Background()

	_, err := rec.Record(ctx, newFakeEditor(0, ".btn --x: 1;"))
	require.NoError(t, err)

	_, err = rec.Record(ctx, newFakeEditor(0, "--y: 2;"))
	require.NoError(t, err)
	_, err = rec.Record(ctx, newFakeEditor(0, ".card"))
	require.NoError(t, err)

	d := readDictionary(t, rec.Path)
	assert.Equal(t, map[string]string{"--x": "1", "--y": "2"}, d.Variables)
	assert.Equal(t, []string{".btn", ".card"}, d.Classes)
}

func TestRecord_NoMatchesStillRewrites(t *testing.T) {
	rec := NewRecorder(t.TempDir())
	ctx := context.Background()

	_, err := rec.Record(ctx, newFakeEditor(0, "plain words"))
	require.NoError(t, err)

	data, err := os.ReadFile(rec.Path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"variables\": {},\n  \"classes\": []\n}\n", string(data))
}

func TestRecord_CorruptDictionaryIsReplaced(t *testing.T) {
	rec := NewRecorder(t.TempDir())
	require.NoError(t, os.WriteFile(rec.Path, []byte(`{"variables": {"--old": "1"`), 0644))

	ed := newFakeEditor(0, ".fresh --new: 2;")
	_, err := rec.Record(context.Background(), ed)
	require.NoError(t, err)

	d := readDictionary(t, rec.Path)
	assert.Equal(t, map[string]string{"--new": "2"}, d.Variables)
	assert.Equal(t, []string{".fresh"}, d.Classes)
	assert.Empty(t, ed.errors)
}

func TestRecord_NoActiveLine(t *testing.T) {
	rec := NewRecorder(t.TempDir())
	ed := newFakeEditor(-1)

	_, err := rec.Record(context.Background(), ed)
	require.ErrorIs(t, err, ErrNoActiveLine)

	_, statErr := os.Stat(rec.Path)
	assert.True(t, os.IsNotExist(statErr), "no file is written without an active line")
	assert.Empty(t, ed.infos)
}

func TestRecord_SaveFailure(t *testing.T) {
	rec := &Recorder{Path: filepath.Join(t.TempDir(), "missing", DictionaryFile)}
	ed := newFakeEditor(0, ".card")

	_, err := rec.Record(context.Background(), ed)
	require.Error(t, err)
	assert.Equal(t, MsgStorageFailure, UserMessage(err))
	assert.Empty(t, ed.infos, "nothing is announced when the write fails")
}
