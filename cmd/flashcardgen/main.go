package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile    string
	untypedPolicy UntypedPolicyFlag
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	os.Exit(0)
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	var logFile string
	var logCloser io.Closer

	rootCommand := &cobra.Command{
		Use:           "flashcardgen",
		Short:         "Look up German words and generate flash cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := setupLogger(debugMode, logFile)
			if err != nil {
				return fmt.Errorf("setupLogger() > %w", err)
			}
			logCloser = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser == nil {
				return nil
			}
			return logCloser.Close()
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.StringVar(&logFile, "log-file", "", "Append logs to this file instead of stdout")
	untypedPolicy = ""
	flags.Var(&untypedPolicy, "untyped", fmt.Sprintf("How to treat original words without a type marker. Possible values are %v", allUntypedPolicies))

	rootCommand.AddCommand(
		newLookupCommand(),
		newCardsCommand(),
		newDictionaryCommand(),
	)
	return rootCommand
}

// setupLogger configures the default logger based on debug mode.
// With a log file the logs are appended to it and the returned closer closes it.
func setupLogger(debugMode bool, logFile string) (io.Closer, error) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	var output io.Writer = os.Stdout
	var closer io.Closer
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("os.OpenFile(%s) > %w", logFile, err)
		}
		output = file
		closer = file
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
	return closer, nil
}
