package csscribe

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput is the "csscribe show --format json" schema.
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Variables []JSONVariable `json:"variables"`
	Classes   []string       `json:"classes"`
}

// JSONSummary contains entry counts
type JSONSummary struct {
	Variables int `json:"variables"`
	Classes   int `json:"classes"`
}

// JSONVariable is one recorded custom property
type JSONVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// WriteJSON writes the dictionary report as JSON
func WriteJSON(w io.Writer, d *Dictionary) error {
	output := buildJSONOutput(d, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func buildJSONOutput(d *Dictionary, now time.Time) JSONOutput {
	d.normalize()

	variables := make([]JSONVariable, 0, len(d.Variables))
	for _, name := range sortedNames(d.Variables) {
		variables = append(variables, JSONVariable{Name: name, Value: d.Variables[name]})
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			Variables: len(d.Variables),
			Classes:   len(d.Classes),
		},
		Variables: variables,
		Classes:   d.Classes,
	}
}
