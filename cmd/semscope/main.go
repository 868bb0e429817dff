// Package main provides the semscope binary entry point.
// Semscope inspects a single resource known to the desktop metadata index:
// it shows every triple describing it, lists incoming references, and can
// export or copy the table.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/semscope/config"
	"github.com/c360studio/semscope/export"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "semscope"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	rawURI     bool
	debug      bool
	logLevel   string
	wide       bool
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "semscope [flags] <file-or-URI>",
		Short: "Inspect metadata of a file or node",
		Long: `Semscope shows every predicate/value pair the desktop metadata index
knows about a file or abstract node.

A filesystem path argument is converted to its canonical file:// URI
before querying; pass --uri to use the argument as a literal identifier.
Values that reference other resources can be followed with further
describe calls, and 'semscope backlinks' lists everything that
references the resource instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *App) error {
				return app.Describe(ctx, resolveIdentifier(args[0], flags.rawURI))
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().BoolVarP(&flags.rawURI, "uri", "u", false, "Treat the argument as a literal identifier, not a path")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Shorthand for --log-level debug")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.wide, "wide", false, "Do not truncate displayed values")

	cmd.AddCommand(backlinksCmd(flags))
	cmd.AddCommand(exportCmd(flags))
	cmd.AddCommand(copyCmd(flags))
	cmd.AddCommand(commentCmd(flags))
	cmd.AddCommand(openCmd(flags))

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func backlinksCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "backlinks <file-or-URI>",
		Short: "List triples that reference the resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *App) error {
				return app.Backlinks(ctx, resolveIdentifier(args[0], flags.rawURI))
			})
		},
	}
}

func exportCmd(flags *rootFlags) *cobra.Command {
	var (
		formatName string
		outputPath string
		toClip     bool
	)

	cmd := &cobra.Command{
		Use:   "export <file-or-URI>",
		Short: "Export the metadata table",
		Long: `Export writes the full presentation table, one row per value, with the
fixed header "Display Predicate, Native Predicate, Display Value,
Native Value". Native fields are verbatim store output apart from the
quoting the chosen format requires.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *App) error {
				return app.Export(ctx, resolveIdentifier(args[0], flags.rawURI), format, outputPath, toClip)
			})
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatCSV), "Export format (csv, tsv, json, html)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&toClip, "copy", false, "Place the export on the system clipboard")
	return cmd
}

func copyCmd(flags *rootFlags) *cobra.Command {
	var (
		display   bool
		predicate bool
	)

	cmd := &cobra.Command{
		Use:   "copy <file-or-URI> <row>",
		Short: "Copy one table cell to the clipboard",
		Long: `Copy places a single cell on the system clipboard. The row number is
the cell's position in the table, counting from 0; row 0 is the
synthetic Identifier row. The exact native form is copied unless
--display asks for the derived form, and --predicate selects the
predicate column instead of the value column.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("row must be a number, got %q", args[1])
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *App) error {
				return app.CopyCell(ctx, resolveIdentifier(args[0], flags.rawURI), index, display, predicate)
			})
		},
	}

	cmd.Flags().BoolVar(&display, "display", false, "Copy the display form instead of the native form")
	cmd.Flags().BoolVar(&predicate, "predicate", false, "Copy the predicate column instead of the value column")
	return cmd
}

func commentCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <predicate-IRI>",
		Short: "Show the ontology's description of a predicate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *App) error {
				return app.Comment(ctx, args[0])
			})
		},
	}
}

func openCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "open <file-or-URI>",
		Short: "Open the resource with its default application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *App) error {
				return app.Open(ctx, resolveIdentifier(args[0], flags.rawURI))
			})
		},
	}
}

// withApp loads config, starts the app, runs fn, and shuts down.
func withApp(ctx context.Context, flags *rootFlags, fn func(context.Context, *App) error) error {
	logger := newLogger(flags)

	cfg, err := loadConfig(flags.configPath, logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	signalCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := NewApp(cfg, logger)
	app.wide = flags.wide
	if err := app.Start(signalCtx); err != nil {
		return err
	}
	defer app.Shutdown()

	return fn(signalCtx, app)
}

func newLogger(flags *rootFlags) *slog.Logger {
	level := slog.LevelInfo
	if flags.debug {
		level = slog.LevelDebug
	} else {
		switch strings.ToLower(flags.logLevel) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}
