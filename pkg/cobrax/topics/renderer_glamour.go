package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// GlamourRenderer renders markdown topics with glamour. Other extensions
// pass through unchanged.
type GlamourRenderer struct {
	// Style is a glamour style name ("dark", "light", "notty"), a style
	// file path, or "auto" to follow the terminal background
	Style string
	// Width wraps output at this column; 0 keeps glamour's default
	Width int
}

// NewGlamourRenderer picks the auto style when out is a terminal and the
// unstyled "notty" one otherwise, so piped help stays free of escapes
func NewGlamourRenderer(out *os.File) *GlamourRenderer {
	style := "notty"
	if out != nil && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		style = "auto"
	}
	return &GlamourRenderer{Style: style}
}

// Render formats markdown content, falling back to the raw text on error
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style == "" || r.Style == "auto" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	tr, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
