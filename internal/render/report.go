package render

import (
	"encoding/json"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"scheduling-simulator/internal/responses"
	"strings"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Report writes every response in the requested format.
func Report(w io.Writer, format string, reports []responses.ScheduleResponse) error {
	switch format {
	case FormatText, "":
		for _, r := range reports {
			fmt.Fprintf(w, "=== %s ===\n", r.Title)
			Gantt(w, r.Timeline)
			Table(w, r)
			fmt.Fprintln(w)
		}
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		return encoder.Encode(reports)
	default:
		return fmt.Errorf("unknown output format %q, want one of %s", format, strings.Join(Formats, ", "))
	}
}
