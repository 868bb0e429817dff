package handler

import (
	"context"

	"github.com/gabriel-vasile/mimetype"

	gquery "github.com/c360studio/semscope/graph/query"
	"github.com/c360studio/semscope/vocabulary/desktop"
)

// IndexResolver resolves content types index-first: the MIME type the index
// recorded for the file's interpretation wins over any local guess, since
// the index has seen the full content. Local detection via mimetype is the
// fallback when the identifier is unknown to the index.
type IndexResolver struct {
	Store gquery.Service

	// MimePredicate and InterpretedAsPredicate default to the desktop
	// vocabulary when empty.
	MimePredicate          string
	InterpretedAsPredicate string
}

// IndexedContentType looks up the MIME type the index recorded for the
// identifier. A file data object carries the type either directly or on the
// information element it is interpreted as; one extra hop covers the latter.
func (r *IndexResolver) IndexedContentType(ctx context.Context, identifier string) (string, bool) {
	if r.Store == nil {
		return "", false
	}
	mimePred := r.MimePredicate
	if mimePred == "" {
		mimePred = desktop.NIEMimeType
	}
	interpPred := r.InterpretedAsPredicate
	if interpPred == "" {
		interpPred = desktop.NIEInterpretedAs
	}

	triples, err := r.Store.Describe(ctx, identifier)
	if err != nil {
		return "", false
	}

	interpretation := ""
	for _, t := range triples {
		switch t.Predicate {
		case mimePred:
			return t.Value, true
		case interpPred:
			interpretation = t.Value
		}
	}

	if interpretation == "" {
		return "", false
	}
	triples, err = r.Store.Describe(ctx, interpretation)
	if err != nil {
		return "", false
	}
	for _, t := range triples {
		if t.Predicate == mimePred {
			return t.Value, true
		}
	}
	return "", false
}

// GuessContentType detects a MIME type from the file's name and content.
func (r *IndexResolver) GuessContentType(path string) (string, bool) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	return mt.String(), true
}
