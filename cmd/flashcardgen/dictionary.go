package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashcardgen/internal/cli"
	"github.com/at-ishikawa/flashcardgen/internal/database"
	"github.com/at-ishikawa/flashcardgen/internal/datasync"
	"github.com/at-ishikawa/flashcardgen/internal/dictionary"
	"github.com/at-ishikawa/flashcardgen/internal/dictionary/beolingus"
)

func newDictionaryCommand() *cobra.Command {
	dictionaryCmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Dictionary source commands",
	}

	dictionaryCmd.AddCommand(
		newDictionaryDownloadCommand(),
		newDictionaryBuildCommand(),
		newDictionaryExportCommand(),
		newDictionaryImportDBCommand(),
		newDictionaryMigrateCommand(),
	)
	return dictionaryCmd
}

func newDictionaryDownloadCommand() *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the dictionary source file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if url == "" {
				url = cfg.Dictionary.DownloadURL
			}

			downloader := beolingus.NewDownloader(cfg.Dictionary.DownloadRetries, slog.Default())
			defer func() {
				_ = downloader.Close()
			}()
			size, err := downloader.Download(cmd.Context(), url, cfg.Dictionary.SourceFile)
			if err != nil {
				return fmt.Errorf("downloader.Download() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dictionary written to: %s (%d bytes)\n", cfg.Dictionary.SourceFile, size)
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Source URL. Defaults to dictionary.download_url")
	return cmd
}

func newDictionaryBuildCommand() *cobra.Command {
	var showFailures bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Parse the dictionary source and refresh the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			policy, err := resolveUntypedPolicy(cfg)
			if err != nil {
				return err
			}

			builder := dictionary.NewBuilder(dictionary.NewParser(policy), slog.Default())
			table, report, err := builder.BuildFile(cfg.Dictionary.SourceFile)
			if err != nil {
				return fmt.Errorf("builder.BuildFile() > %w", err)
			}
			cache := dictionary.NewTableCache(cfg.Dictionary.CacheDirectory)
			if err := cache.Store(cfg.Dictionary.CacheName(string(policy)), table); err != nil {
				return fmt.Errorf("cache.Store() > %w", err)
			}

			out := cmd.OutOrStdout()
			if err := cli.PrintReport(out, report, table.Len()); err != nil {
				return err
			}
			if showFailures {
				printFailures(out, report)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showFailures, "show-failures", false, "Print every line that could not be imported")
	return cmd
}

func printFailures(out io.Writer, report dictionary.Report) {
	for _, failure := range report.Failures {
		fmt.Fprintf(out, "  [FAIL]  line %d: %v\n", failure.LineNumber, failure.Err)
	}
	for _, duplicate := range report.Duplicates {
		fmt.Fprintf(out, "  [DUPLICATE]  line %d: %s (first on line %d)\n", duplicate.LineNumber, duplicate.Word, duplicate.FirstLineNumber)
	}
}

func newDictionaryExportCommand() *cobra.Command {
	var fromDB bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export parsed dictionary entries as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if fromDB {
				db, err := database.Open(cfg.Database)
				if err != nil {
					return fmt.Errorf("database.Open() > %w", err)
				}
				defer func() {
					_ = db.Close()
				}()
				exporter := datasync.NewExporter(dictionary.NewDBEntryRepository(db))
				if err := exporter.ExportYAML(cmd.Context(), cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("exporter.ExportYAML() > %w", err)
				}
				return nil
			}

			table, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("loadTable() > %w", err)
			}
			if err := datasync.WriteRecordsYAML(cmd.OutOrStdout(), table.Records()); err != nil {
				return fmt.Errorf("datasync.WriteRecordsYAML() > %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "Export the entries stored in the database")
	return cmd
}

func newDictionaryImportDBCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   "import-db",
		Short: "Import the parsed dictionary into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			table, err := loadTable(cfg)
			if err != nil {
				return fmt.Errorf("loadTable() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(dictionary.NewDBEntryRepository(db), out)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			result, err := importer.ImportTable(cmd.Context(), table, opts)
			if err != nil {
				return fmt.Errorf("importer.ImportTable() > %w", err)
			}

			fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			fmt.Fprintf(out, "  Dictionary entries: %d new, %d skipped, %d updated\n", result.New, result.Skipped, result.Updated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing records with new data")
	return cmd
}

func newDictionaryMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if err := database.Migrate(cmd.Context(), db.DB, slog.Default()); err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			return nil
		},
	}
}
