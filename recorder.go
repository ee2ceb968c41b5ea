package csscribe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yacobolo/csscribe/internal/logger"
)

var (
	// "--name: value" up to (not including) the next semicolon
	variablePattern = regexp.MustCompile(`--([\p{L}\p{N}_-]+)\s*:\s*([^;]+)`)
	// ".name"; the stored token keeps the leading period
	classPattern = regexp.MustCompile(`\.[\p{L}\p{N}_-]+`)
)

// RecordResult is the outcome of one Record call.
type RecordResult struct {
	Line   Line
	Path   string
	Merged MergeResult
}

// Recorder extracts CSS variables and class names from the active line and
// merges them into the dictionary file.
type Recorder struct {
	Path string // Full path of user-dictionary.json
}

// NewRecorder returns a Recorder storing its dictionary in storageDir.
func NewRecorder(storageDir string) *Recorder {
	return &Recorder{Path: DictionaryPath(storageDir)}
}

// ExtractEntries finds variable declarations and class tokens in a line.
// A variable declared more than once keeps its first position and its last
// value; repeated classes are reported once.
func ExtractEntries(text string) Entries {
	var e Entries

	positions := make(map[string]int)
	for _, m := range variablePattern.FindAllStringSubmatch(text, -1) {
		name := "--" + m[1]
		value := strings.TrimSpace(m[2])
		if i, seen := positions[name]; seen {
			e.Variables[i].Value = value
			continue
		}
		positions[name] = len(e.Variables)
		e.Variables = append(e.Variables, Variable{Name: name, Value: value})
	}

	seen := make(map[string]bool)
	for _, c := range classPattern.FindAllString(text, -1) {
		if seen[c] {
			continue
		}
		seen[c] = true
		e.Classes = append(e.Classes, c)
	}

	return e
}

// Record merges the active line into the dictionary and notifies ed once per
// newly added variable or class. It returns ErrNoActiveLine without touching
// the file when the editor has no line.
func (r *Recorder) Record(ctx context.Context, ed Editor) (*RecordResult, error) {
	line, err := ed.ActiveLine(ctx)
	if err != nil {
		return nil, err
	}

	merged, err := r.RecordText(ctx, line.Text)
	if err != nil {
		return nil, err
	}

	for _, v := range merged.AddedVariables {
		ed.ShowInfo(fmt.Sprintf("Registered variable %s: %s", v.Name, v.Value))
	}
	for _, c := range merged.AddedClasses {
		ed.ShowInfo(fmt.Sprintf("Registered class %s", c))
	}

	return &RecordResult{Line: line, Path: r.Path, Merged: merged}, nil
}

// RecordText merges the entries found in text into the dictionary file. The
// file is rewritten even when nothing matched.
func (r *Recorder) RecordText(ctx context.Context, text string) (MergeResult, error) {
	d := r.load(ctx)
	merged := d.Merge(ExtractEntries(text))

	if err := d.Save(r.Path); err != nil {
		return MergeResult{}, err
	}

	logger.G(ctx).
		WithField("path", r.Path).
		WithField("variables_added", len(merged.AddedVariables)).
		WithField("variables_updated", len(merged.UpdatedVariables)).
		WithField("classes_added", len(merged.AddedClasses)).
		Debug("dictionary updated")

	return merged, nil
}

// load reads the dictionary, falling back to an empty one when the file is
// unreadable or corrupt.
func (r *Recorder) load(ctx context.Context) *Dictionary {
	d, err := LoadDictionary(r.Path)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("path", r.Path).
			Warn("dictionary unreadable, starting from an empty one")
		return NewDictionary()
	}
	return d
}
