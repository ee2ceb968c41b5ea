package nvimhost

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/neovim/go-client/nvim"
	"github.com/neovim/go-client/nvim/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/csscribe"
)

// newNvim starts an embedded headless Neovim with the given buffer lines and
// the cursor on row (1-based).
func newNvim(t *testing.T, lines []string, row int) *nvim.Nvim {
	t.Helper()
	if _, err := exec.LookPath("nvim"); err != nil {
		t.Skip("nvim not found in PATH")
	}

	v, err := nvim.NewChildProcess(
		nvim.ChildProcessArgs("-u", "NONE", "-n", "--embed", "--headless"),
		nvim.ChildProcessServe(true),
		nvim.ChildProcessLogf(t.Logf),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = v.Close()
	})

	buf, err := v.CurrentBuffer()
	require.NoError(t, err)
	replacement := make([][]byte, len(lines))
	for i, l := range lines {
		replacement[i] = []byte(l)
	}
	require.NoError(t, v.SetBufferLines(buf, 0, -1, true, replacement))

	win, err := v.CurrentWindow()
	require.NoError(t, err)
	require.NoError(t, v.SetWindowCursor(win, [2]int{row, 0}))
	return v
}

func bufferLines(t *testing.T, v *nvim.Nvim) []string {
	t.Helper()
	buf, err := v.CurrentBuffer()
	require.NoError(t, err)
	raw, err := v.BufferLines(buf, 0, -1, true)
	require.NoError(t, err)
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(l)
	}
	return lines
}

func staticSettings(s csscribe.TransformSettings) csscribe.SettingsFunc {
	return func(context.Context) csscribe.TransformSettings {
		return s
	}
}

func TestRegister_Manifest(t *testing.T) {
	h := &Host{Session: &csscribe.Session{}, Recorder: csscribe.NewRecorder(t.TempDir())}
	p := plugin.New(nil)
	require.NoError(t, h.Register(p))

	manifest := string(p.Manifest("csscribe"))
	assert.Contains(t, manifest, "call remote#host#RegisterPlugin('csscribe'")
	for _, name := range []string{CommandToggle, CommandRecord, CommandTransform} {
		assert.Contains(t, manifest, "'name': '"+name+"'")
	}
}

func TestRun_ReportedErrorsAreSwallowed(t *testing.T) {
	h := &Host{}
	reported := func(*csscribe.Actions, context.Context) error {
		return &csscribe.ReportedError{Err: csscribe.ErrMissingCredential}
	}
	require.NoError(t, h.run(nil, reported))

	boom := errors.New("boom")
	failing := func(*csscribe.Actions, context.Context) error {
		return boom
	}
	require.ErrorIs(t, h.run(nil, failing), boom)
}

func TestEditor_ActiveLineAndReplace(t *testing.T) {
	v := newNvim(t, []string{".a {", "中央揃え", "}"}, 2)
	ed := &Editor{v: v}

	line, err := ed.ActiveLine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csscribe.Line{Index: 1, Text: "中央揃え"}, line)

	require.NoError(t, ed.ReplaceLine(context.Background(), line, "  text-align: center;\n  margin: 0 auto;"))
	assert.Equal(t, []string{".a {", "  text-align: center;", "  margin: 0 auto;", "}"}, bufferLines(t, v))
}

func TestSettingsFor_GlobalsOverrideDefaults(t *testing.T) {
	v := newNvim(t, []string{""}, 1)
	h := &Host{Settings: staticSettings(csscribe.TransformSettings{
		APIKey:  "sk-config",
		Prompt:  "config prompt",
		BaseURL: "http://localhost:8080/v1",
	})}

	got := h.settingsFor(v)(context.Background())
	assert.Equal(t, "sk-config", got.APIKey)
	assert.Equal(t, "config prompt", got.Prompt)

	require.NoError(t, v.SetVar(VarAPIKey, "sk-nvim"))
	require.NoError(t, v.SetVar(VarPrompt, "nvim prompt"))

	got = h.settingsFor(v)(context.Background())
	assert.Equal(t, "sk-nvim", got.APIKey)
	assert.Equal(t, "nvim prompt", got.Prompt)
	assert.Equal(t, "http://localhost:8080/v1", got.BaseURL)
}

func TestRun_RecordCursorLine(t *testing.T) {
	v := newNvim(t, []string{"body {}", ".card { --gap: 8px; }"}, 2)
	storage := t.TempDir()
	h := &Host{Session: &csscribe.Session{}, Recorder: csscribe.NewRecorder(storage)}

	require.NoError(t, h.run(v, (*csscribe.Actions).Record))

	d, err := csscribe.LoadDictionary(csscribe.DictionaryPath(storage))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"--gap": "8px"}, d.Variables)
	assert.Equal(t, []string{".card"}, d.Classes)
}

func TestRun_TransformWithoutKeyLeavesBuffer(t *testing.T) {
	v := newNvim(t, []string{"赤い背景"}, 1)
	h := &Host{Settings: staticSettings(csscribe.TransformSettings{})}

	require.NoError(t, h.run(v, (*csscribe.Actions).Transform))
	assert.Equal(t, []string{"赤い背景"}, bufferLines(t, v))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single line", text: "color: red;", want: []string{"color: red;"}},
		{name: "block", text: ".card {\n  gap: 8px;\n}", want: []string{".card {", "  gap: 8px;", "}"}},
		{name: "crlf", text: "a\r\nb", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.text)
			lines := make([]string, len(got))
			for i, l := range got {
				lines[i] = string(l)
			}
			assert.Equal(t, tt.want, lines)
		})
	}
}
