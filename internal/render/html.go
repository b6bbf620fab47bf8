package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/marcus/jotter/internal/note"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// HTML renders note lists as an HTML fragment. Each Render replaces the
// previous output.
type HTML struct {
	opts Options
	out  string
}

// NewHTML returns an HTML renderer.
func NewHTML(opts Options) *HTML {
	return &HTML{opts: opts}
}

// Render replaces the current output with the fragment for list.
func (h *HTML) Render(list []note.Note) {
	h.out = Fragment(Project(list, h.opts))
}

// String returns the most recent output.
func (h *HTML) String() string {
	return h.out
}

// Fragment renders the empty-state placeholder and the note list for v. The
// placeholder is hidden whenever there are cards, and the list is empty
// whenever the placeholder is shown.
func Fragment(v View) string {
	var b strings.Builder

	if v.Empty {
		fmt.Fprintf(&b, "<p id=\"emptyState\">%s</p>\n", Escape(EmptyText))
		b.WriteString("<ul id=\"notes\"></ul>\n")
		return b.String()
	}

	fmt.Fprintf(&b, "<p id=\"emptyState\" hidden>%s</p>\n", Escape(EmptyText))
	b.WriteString("<ul id=\"notes\">\n")
	for _, c := range v.Cards {
		fmt.Fprintf(&b, "<li class=\"note\" data-id=\"%s\">\n", Escape(c.ID))
		fmt.Fprintf(&b, "  <h3>%s</h3>\n", Escape(c.Title))
		fmt.Fprintf(&b, "  <p>%s</p>\n", Escape(c.Content))
		fmt.Fprintf(&b, "  <div class=\"meta\">%s</div>\n", Escape(c.Created))
		b.WriteString("  <div class=\"actions\">\n")
		b.WriteString("    <button class=\"copy\">Copy</button>\n")
		b.WriteString("    <button class=\"delete\">Delete</button>\n")
		b.WriteString("  </div>\n")
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
	return b.String()
}

type pageData struct {
	Title string
	Light bool
	Notes template.HTML
	Count int
}

// Page writes a standalone HTML document listing notes under the given theme.
func Page(w io.Writer, list []note.Note, theme string, opts Options) error {
	data := pageData{
		Title: "Mini Notes",
		Light: theme == "light",
		// Fragment escapes all user text itself.
		Notes: template.HTML(Fragment(Project(list, opts))),
		Count: len(list),
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
