package cards

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/at-ishikawa/flashcardgen/internal/assets"
	"github.com/at-ishikawa/flashcardgen/internal/pdf"
)

type Writer struct {
	templatePath string
	generatePDF  bool
	now          func() time.Time
}

func NewWriter(templatePath string, generatePDF bool) *Writer {
	return &Writer{
		templatePath: templatePath,
		generatePDF:  generatePDF,
		now:          time.Now,
	}
}

// Write renders cards into <outputDirectory>/<title>.md, and into a PDF next to it when enabled.
// It returns the paths of the written files.
func (w *Writer) Write(title string, cards []Card, outputDirectory string) ([]string, error) {
	if err := os.MkdirAll(outputDirectory, 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
	}

	outputFilename := filepath.Join(outputDirectory, FileName(title)+".md")
	output, err := os.Create(outputFilename)
	if err != nil {
		return nil, fmt.Errorf("os.Create(%s) > %w", outputFilename, err)
	}
	defer func() {
		_ = output.Close()
	}()

	templateData := assets.CardNotebookTemplate{
		Title: title,
		Date:  w.now(),
		Cards: make([]assets.CardTemplate, len(cards)),
	}
	for i, card := range cards {
		templateData.Cards[i] = assets.CardTemplate{
			Front:      card.Front,
			Annotation: card.Annotation,
			Back:       card.Back,
		}
	}
	if err := assets.WriteCardNotebook(output, w.templatePath, templateData); err != nil {
		return nil, fmt.Errorf("assets.WriteCardNotebook(%s, %s) > %w", outputFilename, w.templatePath, err)
	}
	if err := output.Close(); err != nil {
		return nil, fmt.Errorf("output.Close() > %w", err)
	}

	paths := []string{outputFilename}
	if !w.generatePDF {
		return paths, nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(outputFilename)
	if err != nil {
		return paths, fmt.Errorf("ConvertMarkdownToPDF(%s) > %w", outputFilename, err)
	}
	return append(paths, pdfPath), nil
}

// FileName turns a title into a file name without extension.
func FileName(title string) string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return r == ' ' || r == '/' || r == '\\' || r == '\t'
	})
	if len(fields) == 0 {
		return "cards"
	}
	return strings.Join(fields, "-")
}
