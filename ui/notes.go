package ui

import (
	"html/template"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderNotes converts the embedded processing notes to HTML for the
// upload page sidebar.
func renderNotes() (template.HTML, error) {
	src, err := embeddedFiles.ReadFile("notes.md")
	if err != nil {
		return "", err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return template.HTML(markdown.ToHTML(src, p, renderer)), nil
}
