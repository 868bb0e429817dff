package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/semscope/clipboard"
	"github.com/c360studio/semscope/config"
	"github.com/c360studio/semscope/export"
	"github.com/c360studio/semscope/graph"
	"github.com/c360studio/semscope/graph/query"
	"github.com/c360studio/semscope/handler"
	"github.com/c360studio/semscope/inspect"
	"github.com/c360studio/semscope/metric"
)

// App is the application that wires together all components.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	// NATS
	embeddedServer *server.Server
	conn           *nats.Conn

	// Pipeline
	store    query.Service
	agg      *inspect.Aggregator
	checker  *handler.Checker
	launcher handler.Launcher
	clip     clipboard.Writer

	// wide disables value truncation in table rendering.
	wide bool
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		cfg:      cfg,
		logger:   logger,
		launcher: handler.XDGLauncher{},
		clip:     clipboard.System{},
	}
}

// Start connects to the store and builds the pipeline.
func (a *App) Start(ctx context.Context) error {
	if err := a.connectNATS(ctx); err != nil {
		return err
	}

	metrics := metric.NewMetrics()
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		a.logger.Warn("Failed to register metrics", "error", err)
	}

	store, err := query.NewNATSService(a.conn, query.Config{
		SubjectPrefix:  a.cfg.Store.SubjectPrefix,
		RequestTimeout: a.cfg.Store.RequestTimeout,
	}, query.WithMetrics(metrics), query.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("create query client: %w", err)
	}
	a.store = store

	a.agg = inspect.NewAggregator(store, inspect.Options{
		TypePredicate: a.cfg.Ontology.TypePredicate,
		DateType:      a.cfg.Ontology.DateType,
		FileType:      a.cfg.Ontology.FileType,
		Logger:        a.logger,
	})

	a.checker = &handler.Checker{
		Resolver: &handler.IndexResolver{
			Store:                  store,
			MimePredicate:          a.cfg.Ontology.MimePredicate,
			InterpretedAsPredicate: a.cfg.Ontology.InterpretedAsPredicate,
		},
		Registry: handler.XDGRegistry{},
	}

	return nil
}

func (a *App) connectNATS(ctx context.Context) error {
	// A configured URL always means an external store, whatever the
	// embedded flag says.
	if a.cfg.Store.URL != "" {
		a.logger.Debug("Connecting to store", "url", a.cfg.Store.URL)
		conn, err := nats.Connect(a.cfg.Store.URL)
		if err != nil {
			return fmt.Errorf("connect to store at %s: %w: %v", a.cfg.Store.URL, graph.ErrConnection, err)
		}
		a.conn = conn
		return nil
	}

	// Start an embedded server. Useful for development against a local
	// index service started in the same process group.
	a.logger.Debug("Starting embedded NATS server")
	opts := &server.Options{
		Port:      -1, // Random available port
		JetStream: false,
		NoLog:     true,
		NoSigs:    true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return fmt.Errorf("create embedded NATS server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		return fmt.Errorf("embedded NATS server failed to start: %w", graph.ErrConnection)
	}
	a.embeddedServer = ns

	conn, err := nats.Connect(ns.ClientURL())
	if err != nil {
		ns.Shutdown()
		return fmt.Errorf("connect to embedded NATS: %w: %v", graph.ErrConnection, err)
	}
	a.conn = conn
	return nil
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() {
	if a.store != nil {
		_ = a.store.Close()
	}
	if a.conn != nil {
		a.conn.Close()
	}
	if a.embeddedServer != nil {
		a.embeddedServer.Shutdown()
		a.embeddedServer.WaitForShutdown()
	}
}

// Describe runs a fresh inspection context for the identifier and renders
// the table.
func (a *App) Describe(ctx context.Context, identifier string) error {
	session := inspect.NewSession(a.agg, identifier)
	desc, err := session.Describe(ctx)
	if err != nil {
		return surfaceQueryError(err)
	}

	maxChars := a.cfg.Display.TooltipMaxChars
	if a.wide {
		maxChars = 0
	}
	renderDescription(os.Stdout, desc, maxChars)

	// The bottom-bar Open affordance only appears when the capability
	// check passes; the check never errors out the view.
	if err := a.checker.HasHandler(ctx, identifier); err == nil {
		fmt.Fprintf(os.Stdout, "\nOpenable with the default application (semscope open %q).\n", identifier)
	}
	return nil
}

// Backlinks lists everything referencing the identifier.
func (a *App) Backlinks(ctx context.Context, identifier string) error {
	session := inspect.NewSession(a.agg, identifier)
	rows, err := session.Backlinks(ctx)
	if err != nil {
		return surfaceQueryError(err)
	}

	renderBacklinks(os.Stdout, identifier, rows)
	return nil
}

// Export encodes the table and writes it to stdout, a file, or the
// clipboard.
func (a *App) Export(ctx context.Context, identifier string, format export.Format, outputPath string, toClipboard bool) error {
	session := inspect.NewSession(a.agg, identifier)
	desc, err := session.Describe(ctx)
	if err != nil {
		return surfaceQueryError(err)
	}

	text, err := export.Encode(desc.Rows, format)
	if err != nil {
		return err
	}

	if toClipboard {
		if err := a.clip.WriteText(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Copied %d rows to clipboard.\n", len(desc.Rows))
		return nil
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(text), 0644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d rows to %s.\n", len(desc.Rows), outputPath)
		return nil
	}

	fmt.Fprint(os.Stdout, text)
	return nil
}

// CopyCell places one cell of the table on the clipboard. The index is the
// row's position in the table (and in every export), the Identifier row
// being row 0. The native form is the default; display copies the derived
// form instead.
func (a *App) CopyCell(ctx context.Context, identifier string, index int, display, predicate bool) error {
	session := inspect.NewSession(a.agg, identifier)
	desc, err := session.Describe(ctx)
	if err != nil {
		return surfaceQueryError(err)
	}

	if index < 0 || index >= len(desc.Rows) {
		return fmt.Errorf("row %d out of range (table has %d rows)", index, len(desc.Rows))
	}
	row := desc.Rows[index]

	var text string
	switch {
	case predicate && display:
		text = row.DisplayPredicate
	case predicate:
		text = row.NativePredicate
	case display:
		text = row.DisplayValue
	default:
		text = row.NativeValue
	}

	if err := a.clip.WriteText(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Copied %q.\n", text)
	return nil
}

// Comment prints the description the ontology carries for a predicate,
// bounded to the configured comment length.
func (a *App) Comment(ctx context.Context, predicate string) error {
	comment, err := a.agg.Comment(ctx, predicate)
	if err != nil {
		return surfaceQueryError(err)
	}
	if comment == "" {
		fmt.Fprintf(os.Stdout, "No description recorded for %s.\n", predicate)
		return nil
	}
	fmt.Fprintln(os.Stdout, inspect.Ellipsize(comment, a.cfg.Display.CommentMaxChars))
	return nil
}

// Open launches the default application for the identifier. A missing
// handler is explained, not raised; a failed launch is informational.
func (a *App) Open(ctx context.Context, identifier string) error {
	if err := a.checker.HasHandler(ctx, identifier); err != nil {
		var unavailable *handler.UnavailableError
		if errors.As(err, &unavailable) {
			fmt.Fprintln(os.Stdout, unavailable.Error())
			return nil
		}
		return err
	}

	if err := a.launcher.Open(identifier); err != nil {
		fmt.Fprintf(os.Stdout, "Could not open %s: %v\n", identifier, err)
	}
	return nil
}

// surfaceQueryError converts the two query failure kinds into messages the
// user can act on. Neither is retried.
func surfaceQueryError(err error) error {
	switch {
	case graph.IsConnectionError(err):
		return fmt.Errorf("failed to connect to the metadata store: %w", err)
	case graph.IsQueryError(err):
		return fmt.Errorf("the metadata store rejected the query: %w", err)
	}
	return err
}

// resolveIdentifier converts a filesystem path argument to its canonical
// file:// URI; with rawURI the argument enters the pipeline untouched.
func resolveIdentifier(arg string, rawURI bool) string {
	if rawURI {
		return arg
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return arg
	}
	u := url.URL{Scheme: "file", Path: abs}
	return u.String()
}

// renderDescription prints the grouped table. The predicate label appears
// only on the first row of its block; grouping is a rendering fold over the
// row sequence, which itself carries the label on every row. Single-line
// values are bounded to maxChars code points; maxChars <= 0 disables the
// bound. Exports are never truncated, only this view.
func renderDescription(w io.Writer, desc *inspect.Description, maxChars int) {
	title := desc.Title()
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", len(title)))
	fmt.Fprintln(w)

	width := 0
	for _, r := range desc.Rows {
		if l := len(r.DisplayPredicate); l > width {
			width = l
		}
	}

	prev := ""
	for i, r := range desc.Rows {
		label := r.DisplayPredicate
		// Row 0 is the synthetic Identifier row and always its own block;
		// row 1 starts the first real block even when a store predicate
		// spells the same string. Within the rest of the sequence, adjacent
		// blocks never share a predicate by construction of the grouping.
		if i > 1 && r.NativePredicate == prev {
			label = ""
		}
		prev = r.NativePredicate

		if r.Kind == inspect.KindMultilineLiteral {
			fmt.Fprintf(w, "%-*s\n", width, label)
			for _, line := range strings.Split(r.DisplayValue, "\n") {
				fmt.Fprintf(w, "%-*s  | %s\n", width, "", line)
			}
			continue
		}
		value := r.DisplayValue
		if maxChars > 0 {
			value = inspect.Ellipsize(value, maxChars)
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, label, value)
	}
}

// renderBacklinks prints one line per referencing triple, in arrival order.
func renderBacklinks(w io.Writer, identifier string, rows []inspect.BacklinkRow) {
	fmt.Fprintln(w, "Backlinks")
	fmt.Fprintln(w, "=========")
	fmt.Fprintln(w)

	if len(rows) == 0 {
		fmt.Fprintf(w, "Nothing references %s.\n", identifier)
		return
	}

	width := 0
	for _, r := range rows {
		if l := len(r.DisplayPredicate); l > width {
			width = l
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s  %s\n", width, r.DisplayPredicate, r.Subject)
	}
}
