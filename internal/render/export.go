package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/marcus/jotter/internal/note"
)

// Export formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the formats Export accepts.
var Formats = []string{FormatHTML, FormatJSON, FormatYAML}

// Export writes list to w in format. JSON and YAML use the stored record
// shape; HTML is a full Page under theme.
func Export(w io.Writer, list []note.Note, format, theme string, opts Options) error {
	if list == nil {
		list = []note.Note{}
	}
	switch format {
	case FormatHTML, "":
		return Page(w, list, theme, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}
