// Package handler decides whether an identifier can be opened with an
// external application. The desktop facilities it depends on (content-type
// lookup, application registry, launching) are modeled as collaborator
// interfaces so the check itself stays testable and deterministic.
package handler

import (
	"context"
	"fmt"
	"net/url"
)

// Unavailable kinds: what the registry had no application for.
const (
	KindType   = "type"
	KindScheme = "scheme"
)

// UnavailableError reports that no application is registered for a content
// type or URI scheme. It is a normal negative result consumed by the UI to
// hide or disable "open" affordances, not an exceptional condition.
type UnavailableError struct {
	Kind   string
	Target string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("No application available for %s %q.", e.Kind, e.Target)
}

// ContentTypeResolver reports MIME types for identifiers and paths.
type ContentTypeResolver interface {
	// IndexedContentType returns the MIME type the metadata index
	// recorded for the identifier, if any.
	IndexedContentType(ctx context.Context, identifier string) (string, bool)

	// GuessContentType returns a local best-guess MIME type for a
	// filesystem path.
	GuessContentType(path string) (string, bool)
}

// Registry reports whether a default application is registered for a MIME
// type or URI scheme.
type Registry interface {
	HasTypeHandler(mimeType string) bool
	HasSchemeHandler(scheme string) bool
}

// Launcher invokes the default application for a URI.
type Launcher interface {
	Open(uri string) error
}

// LooksLikeURI reports whether s is a syntactically valid absolute URI.
// This is the single syntactic check used for both link rendering and
// capability gating; a string can pass it and still have no handler.
func LooksLikeURI(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs()
}

// Checker implements the capability check gating every "open" affordance.
// Both the context-menu item and the bottom-bar button consult exactly this
// check so the two surfaces never disagree.
type Checker struct {
	Resolver ContentTypeResolver
	Registry Registry
}

// HasHandler reports whether the identifier can be opened externally.
// A string that is not a URI succeeds trivially: it is not actionable, but
// that is not an error. For file URIs the content type is resolved index
// first, local guess second; for every other scheme the registry is
// consulted for the scheme directly.
func (c *Checker) HasHandler(ctx context.Context, identifier string) error {
	u, err := url.Parse(identifier)
	if err != nil || !u.IsAbs() {
		return nil
	}

	if u.Scheme == "file" {
		mimeType, ok := c.Resolver.IndexedContentType(ctx, identifier)
		if !ok {
			mimeType, ok = c.Resolver.GuessContentType(u.Path)
		}
		if !ok {
			mimeType = "application/octet-stream"
		}
		if !c.Registry.HasTypeHandler(mimeType) {
			return &UnavailableError{Kind: KindType, Target: mimeType}
		}
		return nil
	}

	if !c.Registry.HasSchemeHandler(u.Scheme) {
		return &UnavailableError{Kind: KindScheme, Target: u.Scheme}
	}
	return nil
}
