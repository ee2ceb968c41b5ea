// Package nvimhost runs csscribe's actions as a Neovim remote plugin.
package nvimhost

import (
	"context"
	"fmt"
	"strings"

	"github.com/neovim/go-client/nvim"
	"github.com/neovim/go-client/nvim/plugin"
	"github.com/yacobolo/csscribe"
	"github.com/yacobolo/csscribe/internal/logger"
)

// Command names registered with Neovim.
const (
	CommandToggle    = "CssToggleRegistration"
	CommandRecord    = "CssRecord"
	CommandTransform = "CssTransform"
)

// Global variables consulted on every :CssTransform.
const (
	VarAPIKey = "csscribe_api_key"
	VarPrompt = "csscribe_prompt"
)

// Host owns the state shared by every command invocation of one Neovim
// session.
type Host struct {
	Session  *csscribe.Session
	Recorder *csscribe.Recorder
	// Settings returns the configured defaults; g:csscribe_api_key and
	// g:csscribe_prompt override them per call.
	Settings csscribe.SettingsFunc
}

// Register installs the three commands on p.
func (h *Host) Register(p *plugin.Plugin) error {
	p.HandleCommand(&plugin.CommandOptions{Name: CommandToggle}, func(v *nvim.Nvim) error {
		return h.run(v, (*csscribe.Actions).ToggleRegistrationMode)
	})
	p.HandleCommand(&plugin.CommandOptions{Name: CommandRecord}, func(v *nvim.Nvim) error {
		return h.run(v, (*csscribe.Actions).Record)
	})
	p.HandleCommand(&plugin.CommandOptions{Name: CommandTransform}, func(v *nvim.Nvim) error {
		return h.run(v, (*csscribe.Actions).Transform)
	})
	return nil
}

// Main serves the plugin over stdin/stdout until Neovim disconnects.
func (h *Host) Main() {
	plugin.Main(h.Register)
}

func (h *Host) run(v *nvim.Nvim, action func(*csscribe.Actions, context.Context) error) error {
	ctx := context.Background()
	ed := &Editor{v: v}
	actions := &csscribe.Actions{
		Editor:     ed,
		Session:    h.Session,
		Recorder:   h.Recorder,
		Dispatcher: csscribe.NewDispatcher(h.settingsFor(v)),
	}

	if err := action(actions, ctx); err != nil {
		logger.G(ctx).WithError(err).Warn("nvim command failed")
		if csscribe.IsReported(err) {
			return nil
		}
		return err
	}
	return nil
}

func (h *Host) settingsFor(v *nvim.Nvim) csscribe.SettingsFunc {
	return func(ctx context.Context) csscribe.TransformSettings {
		var s csscribe.TransformSettings
		if h.Settings != nil {
			s = h.Settings(ctx)
		}
		if key := globalString(v, VarAPIKey); key != "" {
			s.APIKey = key
		}
		if prompt := globalString(v, VarPrompt); prompt != "" {
			s.Prompt = prompt
		}
		return s
	}
}

// globalString reads g:name, returning "" when it is unset.
func globalString(v *nvim.Nvim, name string) string {
	var value string
	if err := v.Var(name, &value); err != nil {
		return ""
	}
	return value
}

// Editor adapts the current Neovim window to csscribe.Editor.
type Editor struct {
	v   *nvim.Nvim
	buf nvim.Buffer
}

// ActiveLine returns the cursor line of the current window.
func (e *Editor) ActiveLine(_ context.Context) (csscribe.Line, error) {
	win, err := e.v.CurrentWindow()
	if err != nil {
		return csscribe.Line{}, csscribe.ErrNoActiveLine
	}
	buf, err := e.v.WindowBuffer(win)
	if err != nil {
		return csscribe.Line{}, csscribe.ErrNoActiveLine
	}
	cursor, err := e.v.WindowCursor(win)
	if err != nil {
		return csscribe.Line{}, csscribe.ErrNoActiveLine
	}
	row := cursor[0] - 1
	lines, err := e.v.BufferLines(buf, row, row+1, true)
	if err != nil || len(lines) == 0 {
		return csscribe.Line{}, csscribe.ErrNoActiveLine
	}

	e.buf = buf
	return csscribe.Line{Index: row, Text: string(lines[0])}, nil
}

// ReplaceLine replaces line in the buffer it was read from. Neovim lines
// cannot hold newlines, so multi-line text becomes several lines.
func (e *Editor) ReplaceLine(_ context.Context, line csscribe.Line, text string) error {
	if err := e.v.SetBufferLines(e.buf, line.Index, line.Index+1, true, SplitLines(text)); err != nil {
		return fmt.Errorf("set buffer lines: %w", err)
	}
	return nil
}

// ShowInfo echoes msg in the message area.
func (e *Editor) ShowInfo(msg string) {
	_ = e.v.WriteOut(msg + "\n")
}

// ShowError echoes msg as an error.
func (e *Editor) ShowError(msg string) {
	_ = e.v.WritelnErr(msg)
}

// SplitLines converts text into buffer lines, dropping carriage returns.
func SplitLines(text string) [][]byte {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = []byte(p)
	}
	return lines
}
