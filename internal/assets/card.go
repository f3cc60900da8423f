package assets

import (
	_ "embed"
	"fmt"
	"io"
	"time"
)

const cardNotebookTemplateName = "card-notebook.md.go.tmpl"

//go:embed templates/card-notebook.md.go.tmpl
var fallbackCardNotebookTemplate string

// CardNotebookTemplate is the top-level data structure for card notebook templates
type CardNotebookTemplate struct {
	Title string
	Date  time.Time
	Cards []CardTemplate
}

// CardTemplate is one flash card. Front and Back are printed on separate pages.
type CardTemplate struct {
	Front      string
	Annotation string
	Back       string
}

func WriteCardNotebook(output io.Writer, templatePath string, templateData CardNotebookTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, cardNotebookTemplateName, fallbackCardNotebookTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
