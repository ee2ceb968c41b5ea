package csscribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/yacobolo/csscribe/internal/completion"
	"github.com/yacobolo/csscribe/internal/logger"
)

// TransformSettings are consulted on every Transform call.
type TransformSettings struct {
	APIKey  string // Required bearer credential
	Prompt  string // Instruction template override; blank uses DefaultPrompt
	BaseURL string // OpenAI-compatible endpoint; blank uses the public API
}

// SettingsFunc returns the current transform settings.
type SettingsFunc func(ctx context.Context) TransformSettings

// Completer sends one system+user exchange and returns the trimmed content of
// the top choice.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Dispatcher replaces the active line with the completion service's output.
type Dispatcher struct {
	settings  SettingsFunc
	newClient func(s TransformSettings) Completer
}

// NewDispatcher returns a Dispatcher backed by the go-openai client.
func NewDispatcher(settings SettingsFunc) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		newClient: func(s TransformSettings) Completer {
			return completion.New(s.APIKey, completion.WithBaseURL(s.BaseURL))
		},
	}
}

// Transform sends the active line to the completion service and replaces it
// with the result. The document is changed only on success.
func (d *Dispatcher) Transform(ctx context.Context, ed Editor) error {
	line, err := ed.ActiveLine(ctx)
	if err != nil {
		return err
	}

	settings := d.settings(ctx)
	if strings.TrimSpace(settings.APIKey) == "" {
		return ErrMissingCredential
	}

	log := logger.G(ctx).WithField("line", line.Index)
	log.Debug("sending line to completion service")

	client := d.newClient(settings)
	text, err := client.Complete(ctx, resolvePrompt(settings.Prompt), line.Text)
	if err != nil {
		log.WithError(err).Error("completion request failed")
		return fmt.Errorf("%w: %w", ErrServiceFailure, err)
	}

	if err := ed.ReplaceLine(ctx, line, text); err != nil {
		return fmt.Errorf("replace line %d: %w", line.Index+1, err)
	}

	log.WithField("chars", len(text)).Info("line transformed")
	return nil
}
