// Package pdf renders Markdown card notebooks as printable PDFs.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// Layout is the page setup of a generated PDF.
type Layout struct {
	Orientation string
	PageSize    string

	// NewPageOnRule starts a new page at every horizontal rule.
	NewPageOnRule bool
}

// CardLayout prints one card side per A6 landscape page.
var CardLayout = Layout{Orientation: "L", PageSize: "A6", NewPageOnRule: true}

// Umlauts and ß are outside the core PDF fonts and need the cp1252 code page.
const unicodeTranslator = "cp1252"

// ConvertMarkdownToPDF renders a .md file with CardLayout into a .pdf next to it
// and returns the absolute path of the PDF.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	return Convert(markdownPath, CardLayout)
}

// Convert renders a .md file with layout into a .pdf next to it.
func Convert(markdownPath string, layout Layout) (string, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	options := []mdtopdf.RenderOption{
		mdtopdf.WithUnicodeTranslator(unicodeTranslator),
	}
	if layout.NewPageOnRule {
		options = append(options, mdtopdf.IsHorizontalRuleNewPage(true))
	}

	renderer := mdtopdf.NewPdfRenderer(layout.Orientation, layout.PageSize, pdfPath, "", options, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process(%s) > %w", markdownPath, err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return "", fmt.Errorf("filepath.Abs(%s) > %w", pdfPath, err)
	}
	return absPath, nil
}
