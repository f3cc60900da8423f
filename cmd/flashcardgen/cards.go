package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashcardgen/internal/cards"
)

func newCardsCommand() *cobra.Command {
	var wordFile string
	var title string
	var outputDirectory string
	var generatePDF bool

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Generate flash cards for the words of a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			words, err := cards.ReadWordFile(wordFile)
			if err != nil {
				return fmt.Errorf("cards.ReadWordFile() > %w", err)
			}
			table, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("loadTable() > %w", err)
			}

			generated, missing, err := cards.NewGenerator(table, slog.Default()).Generate(words)
			if err != nil {
				return fmt.Errorf("generator.Generate() > %w", err)
			}
			if len(generated) == 0 {
				return fmt.Errorf("none of the %d words in %s were found", len(words), wordFile)
			}

			if outputDirectory == "" {
				outputDirectory = cfg.Outputs.CardDirectory
			}
			paths, err := cards.NewWriter(cfg.Templates.CardNotebookTemplate, generatePDF).Write(title, generated, outputDirectory)
			if err != nil {
				return fmt.Errorf("writer.Write() > %w", err)
			}

			out := cmd.OutOrStdout()
			for _, path := range paths {
				fmt.Fprintf(out, "Cards written to: %s\n", path)
			}
			fmt.Fprintf(out, "%d cards, %d words not found\n", len(generated), len(missing))
			for _, word := range missing {
				fmt.Fprintf(out, "  [MISSING]  %s\n", word)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wordFile, "word-file", "", "File with one word per line")
	cmd.Flags().StringVar(&title, "title", "flashcards", "Title of the card notebook")
	cmd.Flags().StringVar(&outputDirectory, "output-dir", "", "Output directory. Defaults to outputs.card_directory")
	cmd.Flags().BoolVar(&generatePDF, "pdf", false, "Also generate a PDF")
	_ = cmd.MarkFlagRequired("word-file")
	return cmd
}
