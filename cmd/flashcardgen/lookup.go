package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashcardgen/internal/cli"
	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up a word in the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("loadTable() > %w", err)
			}

			printer := cli.NewEntryPrinter(cmd.OutOrStdout())
			pair, err := table.Lookup(args[0])
			var notFound *dictionary.WordNotFoundError
			if errors.As(err, &notFound) {
				if err := printer.PrintNotFound(notFound); err != nil {
					return err
				}
				return fmt.Errorf("table.Lookup(%s) > %w", args[0], err)
			}
			if err != nil {
				return fmt.Errorf("table.Lookup(%s) > %w", args[0], err)
			}
			return printer.PrintPair(pair)
		},
	}
}
