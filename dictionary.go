package csscribe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// DictionaryFile is the file name of the dictionary inside the storage directory.
const DictionaryFile = "user-dictionary.json"

var errSaveDictionary = errors.New("save dictionary")

// Dictionary is the persisted record of known CSS variables and class names.
type Dictionary struct {
	Variables map[string]string `json:"variables"` // "--main-color" -> "#ff0000"
	Classes   []string          `json:"classes"`   // [".btn", ".card"], insertion order
}

// Variable is a single "--name: value" declaration.
type Variable struct {
	Name  string
	Value string
}

// Entries are the variables and classes extracted from some CSS text, in
// first-occurrence order.
type Entries struct {
	Variables []Variable
	Classes   []string
}

// MergeResult describes what a merge changed.
type MergeResult struct {
	AddedVariables   []Variable // Names not present before
	UpdatedVariables []Variable // Existing names whose value changed
	AddedClasses     []string
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		Variables: make(map[string]string),
		Classes:   []string{},
	}
}

// DictionaryPath returns the dictionary location inside storageDir.
func DictionaryPath(storageDir string) string {
	return filepath.Join(storageDir, DictionaryFile)
}

// EnsureStorageDir creates the storage directory. Hosts call it once at
// startup; recording never creates directories.
func EnsureStorageDir(storageDir string) error {
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		return fmt.Errorf("create storage dir %s: %w", storageDir, err)
	}
	return nil
}

// LoadDictionary reads the dictionary at path. A missing file yields an empty
// dictionary and no error.
func LoadDictionary(path string) (*Dictionary, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewDictionary(), nil
		}
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}
	d.normalize()
	return &d, nil
}

// Save overwrites path with the full dictionary. The directory must exist.
func (d *Dictionary) Save(path string) error {
	d.normalize()

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("%w: encode: %w", errSaveDictionary, err)
	}

	// Write to a temp file in the same directory, then rename over the target.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".dictionary-*.json")
	if err != nil {
		return fmt.Errorf("%w: %w", errSaveDictionary, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write: %w", errSaveDictionary, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", errSaveDictionary, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: rename: %w", errSaveDictionary, err)
	}
	return nil
}

// Merge applies entries: variables overwrite by name, classes are appended
// only when absent.
func (d *Dictionary) Merge(e Entries) MergeResult {
	d.normalize()
	var result MergeResult

	for _, v := range e.Variables {
		old, exists := d.Variables[v.Name]
		d.Variables[v.Name] = v.Value
		switch {
		case !exists:
			result.AddedVariables = append(result.AddedVariables, v)
		case old != v.Value:
			result.UpdatedVariables = append(result.UpdatedVariables, v)
		}
	}

	for _, c := range e.Classes {
		if slices.Contains(d.Classes, c) {
			continue
		}
		d.Classes = append(d.Classes, c)
		result.AddedClasses = append(result.AddedClasses, c)
	}

	return result
}

// Empty reports whether the merge added nothing new.
func (r MergeResult) Empty() bool {
	return len(r.AddedVariables) == 0 && len(r.UpdatedVariables) == 0 && len(r.AddedClasses) == 0
}

func (d *Dictionary) normalize() {
	if d.Variables == nil {
		d.Variables = make(map[string]string)
	}
	if d.Classes == nil {
		d.Classes = []string{}
	}
}
