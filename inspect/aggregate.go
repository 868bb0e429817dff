package inspect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/semscope/graph"
	"github.com/c360studio/semscope/graph/query"
	"github.com/c360studio/semscope/handler"
	"github.com/c360studio/semscope/vocabulary/desktop"
)

// Options configures an Aggregator. Zero fields fall back to the desktop
// vocabulary constants.
type Options struct {
	// TypePredicate is the predicate marking a resource's class.
	TypePredicate string

	// DateType is the datatype IRI whose values are date-formatted.
	DateType string

	// FileType is the class IRI marking file-like resources.
	FileType string

	Logger *slog.Logger
}

// Aggregator runs the describe and backlink queries for one store and
// builds presentation rows. It holds no per-subject state: every call is a
// full rebuild from a fresh query.
type Aggregator struct {
	store         query.Service
	classifier    Classifier
	typePredicate string
	fileType      string
	logger        *slog.Logger
}

// NewAggregator creates an Aggregator over the given query service.
func NewAggregator(store query.Service, opts Options) *Aggregator {
	if opts.TypePredicate == "" {
		opts.TypePredicate = desktop.RDFType
	}
	if opts.DateType == "" {
		opts.DateType = desktop.XSDDateType
	}
	if opts.FileType == "" {
		opts.FileType = desktop.NFOFileDataObject
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Aggregator{
		store:         store,
		classifier:    Classifier{DateType: opts.DateType},
		typePredicate: opts.TypePredicate,
		fileType:      opts.FileType,
		logger:        opts.Logger,
	}
}

// Description is the full result of inspecting one subject.
type Description struct {
	Subject string

	// IsFileLike reports whether the subject carries an rdf:type triple
	// with the distinguished file-object class. It only changes the view
	// title, never the row set.
	IsFileLike bool

	// Rows always starts with the synthetic Identifier row. Rows sharing
	// a predicate are adjacent, in first-occurrence order of predicates;
	// values keep arrival order within each block.
	Rows []Row
}

// Title returns the view title for the description.
func (d *Description) Title() string {
	if d.IsFileLike {
		return "File Information"
	}
	return "Node Information"
}

// Describe queries all triples with the given subject and builds the
// presentation rows. A subject with no triples still yields exactly one row
// (the Identifier row). Failures carry the graph error kinds so the caller
// can tell an unreachable store from a failed query; no partial rows are
// returned.
func (a *Aggregator) Describe(ctx context.Context, subject string) (*Description, error) {
	a.logger.Debug("describing subject", "subject", subject)

	triples, err := a.store.Describe(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", subject, err)
	}

	// Order-preserving grouping: an explicit order list plus a
	// predicate-to-triples map, so block order is exactly first-occurrence
	// order for a fixed input stream.
	order := make([]string, 0, len(triples))
	grouped := make(map[string][]graph.Triple)
	isFileLike := false

	for _, t := range triples {
		if _, seen := grouped[t.Predicate]; !seen {
			order = append(order, t.Predicate)
		}
		grouped[t.Predicate] = append(grouped[t.Predicate], t)

		if t.Predicate == a.typePredicate && t.Value == a.fileType {
			isFileLike = true
		}
	}

	rows := make([]Row, 0, len(triples)+1)
	rows = append(rows, Row{
		DisplayPredicate: IdentifierLabel,
		NativePredicate:  IdentifierLabel,
		DisplayValue:     subject,
		NativeValue:      subject,
		Kind:             KindLink,
	})

	for _, pred := range order {
		label := Label(pred)
		for _, t := range grouped[pred] {
			cls := a.classifier.Classify(t.Value, t.Datatype)
			rows = append(rows, Row{
				DisplayPredicate: label,
				NativePredicate:  pred,
				DisplayValue:     cls.Display,
				NativeValue:      t.Value,
				Kind:             cls.Kind,
			})
		}
	}

	a.logger.Debug("describe complete",
		"subject", subject,
		"rows", len(rows)-1,
		"file_like", isFileLike)

	return &Description{Subject: subject, IsFileLike: isFileLike, Rows: rows}, nil
}

// Backlinks queries all triples whose object is the given identifier and
// returns one row per result in arrival order, without grouping.
func (a *Aggregator) Backlinks(ctx context.Context, object string) ([]BacklinkRow, error) {
	a.logger.Debug("fetching backlinks", "object", object)

	links, err := a.store.Backlinks(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("backlinks %s: %w", object, err)
	}

	rows := make([]BacklinkRow, 0, len(links))
	for _, l := range links {
		rows = append(rows, BacklinkRow{
			Subject:          l.Subject,
			Predicate:        l.Predicate,
			DisplayPredicate: Label(l.Predicate),
			SubjectIsLink:    handler.LooksLikeURI(l.Subject),
		})
	}

	a.logger.Debug("backlinks complete", "object", object, "rows", len(rows))
	return rows, nil
}

// Comment fetches the rdfs:comment describing a predicate, for explanatory
// tooltips. An ontology without a comment yields "", nil.
func (a *Aggregator) Comment(ctx context.Context, predicate string) (string, error) {
	comment, err := a.store.Comment(ctx, predicate)
	if err != nil {
		return "", fmt.Errorf("comment %s: %w", predicate, err)
	}
	return comment, nil
}
