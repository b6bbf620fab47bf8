package render

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/marcus/jotter/internal/clipboard"
	"github.com/marcus/jotter/internal/note"
)

var utc = Options{Location: time.UTC}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a & b", "a &amp; b"},
		{"<b>", "&lt;b&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
		{"it's", "it&#39;s"},
		{"&lt;", "&amp;lt;"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProject(t *testing.T) {
	list := []note.Note{
		{ID: "1", Title: "a", Content: "b", Created: time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC).UnixMilli()},
	}
	v := Project(list, utc)
	if v.Empty || len(v.Cards) != 1 {
		t.Fatalf("Project = %+v", v)
	}
	if v.Cards[0].Created != "Mar 5, 2024 2:07 PM" {
		t.Errorf("Created = %q", v.Cards[0].Created)
	}

	if v := Project(nil, utc); !v.Empty || len(v.Cards) != 0 {
		t.Errorf("Project(nil) = %+v, want empty", v)
	}

	custom := Project(list, Options{DateLayout: "2006-01-02", Location: time.UTC})
	if custom.Cards[0].Created != "2024-03-05" {
		t.Errorf("custom layout Created = %q", custom.Cards[0].Created)
	}
}

func TestHTML_EscapesUserText(t *testing.T) {
	h := NewHTML(utc)
	h.Render([]note.Note{{ID: "x", Title: "<script>alert(1)</script>", Content: `"quoted" & 'single'`}})
	out := h.String()

	if strings.Contains(out, "<script>") {
		t.Fatalf("raw markup leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "<h3>&lt;script&gt;alert(1)&lt;/script&gt;</h3>") {
		t.Errorf("escaped title missing:\n%s", out)
	}
	if !strings.Contains(out, "<p>&quot;quoted&quot; &amp; &#39;single&#39;</p>") {
		t.Errorf("escaped content missing:\n%s", out)
	}
}

func TestHTML_EmptyState(t *testing.T) {
	h := NewHTML(utc)
	h.Render(nil)
	out := h.String()

	if !strings.Contains(out, `<p id="emptyState">`) {
		t.Errorf("placeholder not shown:\n%s", out)
	}
	if strings.Count(out, `class="note"`) != 0 {
		t.Errorf("empty list rendered cards:\n%s", out)
	}

	h.Render([]note.Note{{ID: "1", Title: "t", Content: "c"}, {ID: "2", Title: "t", Content: "c"}})
	out = h.String()
	if !strings.Contains(out, `<p id="emptyState" hidden>`) {
		t.Errorf("placeholder not hidden:\n%s", out)
	}
	if n := strings.Count(out, `class="note"`); n != 2 {
		t.Errorf("rendered %d cards, want 2", n)
	}
	for _, want := range []string{`data-id="1"`, `class="copy"`, `class="delete"`, `class="meta"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s in card output", want)
		}
	}
}

func TestHTML_RenderReplacesOutput(t *testing.T) {
	h := NewHTML(utc)
	list := []note.Note{{ID: "1", Title: "first", Content: "c"}}

	h.Render(list)
	first := h.String()
	h.Render(list)
	if h.String() != first {
		t.Error("rendering the same list twice produced different output")
	}

	h.Render([]note.Note{{ID: "2", Title: "second", Content: "c"}})
	if strings.Contains(h.String(), "first") {
		t.Error("previous output not replaced")
	}
}

func TestPage(t *testing.T) {
	list := []note.Note{{ID: "1", Title: "<i>x</i>", Content: "c"}}

	var light bytes.Buffer
	if err := Page(&light, list, "light", utc); err != nil {
		t.Fatalf("Page: %v", err)
	}
	if !strings.Contains(light.String(), `<body class="light">`) {
		t.Errorf("light page missing body class:\n%s", light.String())
	}
	if strings.Contains(light.String(), "<i>x</i>") {
		t.Error("page leaked raw markup")
	}
	if !strings.Contains(light.String(), "1 note<") {
		t.Errorf("count missing:\n%s", light.String())
	}

	var dark bytes.Buffer
	Page(&dark, nil, "dark", utc)
	if strings.Contains(dark.String(), `class="light"`) {
		t.Error("dark page has light class")
	}
	if !strings.Contains(dark.String(), "0 notes") {
		t.Errorf("empty count missing:\n%s", dark.String())
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"bell\a", "bell"},
		{"two\nlines", "two\nlines"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTerminal(t *testing.T) {
	term := NewTerminal(utc)
	if !strings.Contains(term.Draw(60, 0, 0), EmptyText) {
		t.Error("initial draw should show placeholder")
	}

	term.Render([]note.Note{
		{ID: "1", Title: "Groceries", Content: "eggs"},
		{ID: "2", Title: "\x1b[2JWipe", Content: "x"},
	})
	if term.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", term.Len())
	}
	out := term.Draw(60, 0, 0)
	if strings.Contains(out, EmptyText) {
		t.Error("placeholder shown with notes")
	}
	if !strings.Contains(out, "Groceries") || !strings.Contains(out, "eggs") {
		t.Errorf("card text missing:\n%s", out)
	}
	if strings.Contains(out, "\x1b[2J") {
		t.Error("escape sequence from note text reached the terminal")
	}

	if c, ok := term.Card(1); !ok || c.ID != "2" {
		t.Errorf("Card(1) = %+v, %v", c, ok)
	}
	if _, ok := term.Card(5); ok {
		t.Error("Card(5) should be out of range")
	}
}

func TestCards_ClipKeepsSelection(t *testing.T) {
	var list []note.Note
	for _, title := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		list = append(list, note.Note{ID: title, Title: title, Content: "c"})
	}
	v := Project(list, utc)

	// Each card is 4 lines; 8 lines fit two cards.
	out := Cards(v, 40, 8, 4)
	if !strings.Contains(out, "echo") {
		t.Errorf("selected card clipped:\n%s", out)
	}
	if strings.Contains(out, "alpha") {
		t.Errorf("cards far from selection should be clipped:\n%s", out)
	}
}

func TestCopy(t *testing.T) {
	n := note.Note{Content: "secret"}

	var got string
	res := Copy(clipboard.Func(func(s string) error { got = s; return nil }), n)
	if !res.OK || res.Message != CopiedText || got != "secret" {
		t.Errorf("Copy success = %+v, clipboard %q", res, got)
	}

	denied := errors.New("denied")
	res = Copy(clipboard.Func(func(string) error { return denied }), n)
	if res.OK || res.Message != CopyFailedText || !errors.Is(res.Err, denied) {
		t.Errorf("Copy failure = %+v", res)
	}

	res = Copy(nil, n)
	if res.OK || res.Message != CopyFailedText {
		t.Errorf("Copy(nil) = %+v", res)
	}

	res = Copy(clipboard.Func(func(string) error { panic("boom") }), n)
	if res.OK || res.Message != CopyFailedText {
		t.Errorf("Copy with panicking clipboard = %+v", res)
	}
}

func TestExport(t *testing.T) {
	list := []note.Note{{ID: "a", Title: "t", Content: "body", Created: 1700000000000}}

	tests := []struct {
		format string
		want   []string
	}{
		{FormatHTML, []string{"<!DOCTYPE html>", `data-id="a"`}},
		{FormatJSON, []string{`"id": "a"`, `"content": "body"`, `"created": 1700000000000`}},
		{FormatYAML, []string{"- id: a", "content: body", "created: 1700000000000"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var b strings.Builder
			if err := Export(&b, list, tt.format, "dark", Options{}); err != nil {
				t.Fatalf("Export: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(b.String(), want) {
					t.Errorf("output missing %q:\n%s", want, b.String())
				}
			}
		})
	}
}

func TestExportEmptyJSON(t *testing.T) {
	var b strings.Builder
	if err := Export(&b, nil, FormatJSON, "dark", Options{}); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Errorf("got %q, want []", b.String())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if err := Export(io.Discard, nil, "csv", "dark", Options{}); err == nil {
		t.Error("expected error for unknown format")
	}
}
