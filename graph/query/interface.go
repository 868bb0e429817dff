// Package query provides the read-only client boundary to the metadata
// index. The index is an opaque collaborator: the only operations are
// describing a fixed subject, listing references to a fixed object, and
// fetching a predicate's description.
package query

import (
	"context"

	"github.com/c360studio/semscope/graph"
)

// Service defines the read operations the inspection pipeline needs.
// Implementations must be safe for concurrent use; every call is independent
// and results are never cached by the pipeline.
type Service interface {
	// Describe returns all triples whose subject is the given identifier,
	// in the order the store produced them.
	Describe(ctx context.Context, subject string) ([]graph.Triple, error)

	// Backlinks returns all (subject, predicate) pairs of triples whose
	// object is the given identifier, in arrival order.
	Backlinks(ctx context.Context, object string) ([]graph.Backlink, error)

	// Comment returns the rdfs:comment of a predicate, if the ontology
	// carries one. An absent comment is ("", nil), not an error.
	Comment(ctx context.Context, predicate string) (string, error)

	// Close releases the connection to the service.
	Close() error
}
