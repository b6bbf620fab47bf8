package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/marcus/jotter/internal/clipboard"
	"github.com/marcus/jotter/internal/note"
	"github.com/marcus/jotter/internal/notes"
	"github.com/marcus/jotter/internal/render"
)

// clip is the clipboard used by the copy command. Tests replace it.
var clip clipboard.Writer = clipboard.System{}

// withEnv opens the environment for a one-shot command, runs fn and closes it.
func withEnv(cmd *cobra.Command, f *flags, fn func(e *env) error) error {
	e, err := openEnv(f, newLogger(cmd.ErrOrStderr(), f.debug), nil)
	if err != nil {
		return err
	}
	defer e.Close()
	return fn(e)
}

func newAddCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "add TITLE CONTENT",
		Short: "Add a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				n, ok, err := e.notes.AddNote(args[0], args[1])
				if err != nil {
					return err
				}
				if !ok {
					return errors.New("title and content must not be empty")
				}
				fmt.Fprintln(cmd.OutOrStdout(), n.ID)
				return nil
			})
		},
	}
}

func newListCmd(f *flags) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				e.notes.SetRenderer(newPrinter(cmd.OutOrStdout(), e.renderOptions()))
				e.notes.Filter(query)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&query, "search", "s", "", "only show notes whose title or content contains this text")
	return cmd
}

func newRemoveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				return e.notes.RemoveNote(args[0])
			})
		},
	}
}

func newCopyCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "copy ID",
		Short: "Copy a note's content to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				n, ok := find(e.notes.Notes(), args[0])
				if !ok {
					return fmt.Errorf("no note with id %q", args[0])
				}
				res := render.Copy(clip, n)
				if !res.OK {
					if res.Err != nil {
						return fmt.Errorf("%s: %w", res.Message, res.Err)
					}
					return errors.New(res.Message)
				}
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), res.Message)
				return nil
			})
		},
	}
}

func newClearCmd(f *flags) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				var confirm notes.Confirmer = promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
				if yes {
					confirm = notes.ConfirmFunc(func(string) bool { return true })
				}
				cleared, err := e.notes.ClearAll(confirm)
				if err != nil {
					return err
				}
				if !cleared {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newThemeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [toggle]",
		Short:     "Show or toggle the color theme",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				mode := e.theme.Current()
				if len(args) == 1 {
					var err error
					if mode, err = e.theme.Toggle(); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), mode)
				return nil
			})
		},
	}
}

func newExportCmd(f *flags) *cobra.Command {
	var out, format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the notes as an HTML page, JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, f, func(e *env) error {
				list, mode := e.notes.Notes(), string(e.theme.Current())
				if out == "" || out == "-" {
					return render.Export(cmd.OutOrStdout(), list, format, mode, e.renderOptions())
				}
				return exportFile(out, list, format, mode, e.renderOptions())
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatHTML, "one of "+strings.Join(render.Formats, ", "))
	return cmd
}

// exportFile writes the export to path. A failed close is reported since it
// can hide a short write.
func exportFile(path string, list []note.Note, format, mode string, opts render.Options) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return render.Export(file, list, format, mode, opts)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jotter %s\n", effectiveVersion(Version))
		},
	}
}

// promptConfirmer asks on out and reads a y/yes answer from in.
func promptConfirmer(in io.Reader, out io.Writer) notes.Confirmer {
	return notes.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}

func find(list []note.Note, id string) (note.Note, bool) {
	for _, n := range list {
		if n.ID == id {
			return n, true
		}
	}
	return note.Note{}, false
}

// printer renders note lists as plain terminal text.
type printer struct {
	w    io.Writer
	opts render.Options

	title *color.Color
	meta  *color.Color
}

func newPrinter(w io.Writer, opts render.Options) *printer {
	return &printer{
		w:     w,
		opts:  opts,
		title: color.New(color.Bold),
		meta:  color.New(color.Faint),
	}
}

func (p *printer) Render(list []note.Note) {
	v := render.Project(list, p.opts)
	if v.Empty {
		p.meta.Fprintln(p.w, render.EmptyText)
		return
	}
	for i, c := range v.Cards {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.title.Fprintln(p.w, render.Sanitize(c.Title))
		fmt.Fprintln(p.w, render.Sanitize(c.Content))
		p.meta.Fprintf(p.w, "%s  %s\n", c.Created, c.ID)
	}
}
