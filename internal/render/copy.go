package render

import (
	"github.com/marcus/jotter/internal/clipboard"
	"github.com/marcus/jotter/internal/note"
)

// Notification texts for the copy action.
const (
	CopiedText     = "Copied!"
	CopyFailedText = "Copy failed"
)

// CopyResult is the user notification produced by Copy.
type CopyResult struct {
	OK      bool
	Message string
	Err     error
}

// Copy places n's content on the clipboard and reports the outcome. It never
// panics; a nil writer counts as an unavailable clipboard.
func Copy(w clipboard.Writer, n note.Note) (res CopyResult) {
	defer func() {
		if r := recover(); r != nil {
			res = CopyResult{Message: CopyFailedText}
		}
	}()

	if w == nil {
		return CopyResult{Message: CopyFailedText, Err: clipboard.ErrUnsupported}
	}
	if err := w.WriteAll(n.Content); err != nil {
		return CopyResult{Message: CopyFailedText, Err: err}
	}
	return CopyResult{OK: true, Message: CopiedText}
}
