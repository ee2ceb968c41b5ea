package csscribe

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/yacobolo/csscribe/internal/termui"
)

// ReportFormat selects how the dictionary is rendered by "csscribe show".
type ReportFormat string

const (
	ReportText     ReportFormat = "text"
	ReportJSON     ReportFormat = "json"
	ReportMarkdown ReportFormat = "markdown"
)

// ParseReportFormat maps a --format value to a ReportFormat. An empty value
// selects text.
func ParseReportFormat(s string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return ReportText, nil
	case "json":
		return ReportJSON, nil
	case "markdown", "md":
		return ReportMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", s)
	}
}

// WriteReport writes d to w in format. Variables are listed by name; classes
// keep their recorded order.
func WriteReport(w io.Writer, d *Dictionary, format ReportFormat, useColors bool) error {
	d.normalize()

	switch format {
	case ReportJSON:
		return WriteJSON(w, d)
	case ReportMarkdown:
		return writeMarkdown(w, d)
	default:
		return writeText(w, d, useColors)
	}
}

func writeText(w io.Writer, d *Dictionary, useColors bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", termui.RenderStyle(termui.StyleCyan, "Variables", useColors),
		termui.Pluralize(len(d.Variables), "entry", "entries"))
	for _, name := range sortedNames(d.Variables) {
		fmt.Fprintf(&b, "  %s: %s\n", termui.RenderStyle(termui.StyleGreen, name, useColors),
			termui.RenderStyle(termui.StyleGray, d.Variables[name], useColors))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s (%s)\n", termui.RenderStyle(termui.StyleCyan, "Classes", useColors),
		termui.Pluralize(len(d.Classes), "entry", "entries"))
	for _, class := range d.Classes {
		fmt.Fprintf(&b, "  %s\n", termui.RenderStyle(termui.StyleGreen, class, useColors))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdown(w io.Writer, d *Dictionary) error {
	var b strings.Builder

	b.WriteString("# CSS Dictionary\n\n")
	b.WriteString("## Variables\n\n")
	if len(d.Variables) == 0 {
		b.WriteString("_None recorded._\n")
	} else {
		b.WriteString("| Name | Value |\n")
		b.WriteString("|------|-------|\n")
		for _, name := range sortedNames(d.Variables) {
			fmt.Fprintf(&b, "| `%s` | `%s` |\n", name, escapeTableCell(d.Variables[name]))
		}
	}

	b.WriteString("\n## Classes\n\n")
	if len(d.Classes) == 0 {
		b.WriteString("_None recorded._\n")
	} else {
		for _, class := range d.Classes {
			fmt.Fprintf(&b, "- `%s`\n", class)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func sortedNames(m map[string]string) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func escapeTableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
