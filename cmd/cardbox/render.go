package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cardbox-app/cardbox/pkg/core"
	"gopkg.in/yaml.v3"
)

// views is the render payload for structured output.
type views struct {
	Pinned []core.Note `json:"pinned" yaml:"pinned"`
	Others []core.Note `json:"others" yaml:"others"`
}

// renderViews prints the two partitions. The pinned section is hidden
// when empty; the section labels only appear when both sections show.
func renderViews(w io.Writer, pinned, others []core.Note) {
	if len(pinned) == 0 && len(others) == 0 {
		fmt.Fprintln(w, "No notes.")
		return
	}

	if len(pinned) > 0 {
		fmt.Fprintln(w, "PINNED")
		for _, n := range pinned {
			renderNote(w, n)
		}
		fmt.Fprintln(w, "OTHERS")
	}
	for _, n := range others {
		renderNote(w, n)
	}
}

func renderNote(w io.Writer, n core.Note) {
	title := n.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "%s  [%s]  %s\n", n.ID, n.Color, title)

	if n.Checklist {
		for _, item := range n.ChecklistItems() {
			mark := " "
			if item.Checked {
				mark = "x"
			}
			fmt.Fprintf(w, "    [%s] %s\n", mark, item.Text)
		}
		return
	}
	if body := n.Body(); body != "" {
		for _, line := range strings.Split(body, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

// encodeViews writes structured output in the requested format.
func encodeViews(w io.Writer, format string, pinned, others []core.Note) error {
	v := views{Pinned: pinned, Others: others}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// filterByTitleGlob keeps notes whose lower-cased title matches the
// doublestar pattern.
func filterByTitleGlob(notes []core.Note, pattern string) ([]core.Note, error) {
	pattern = strings.ToLower(pattern)
	out := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		ok, err := doublestar.Match(pattern, strings.ToLower(n.Title))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}
