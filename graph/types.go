// Package graph provides the shared triple types and error definitions for
// the metadata query boundary.
package graph

// Triple is one fact about a fixed subject, exactly as returned by the query
// service. An empty Datatype means Value is itself a resource identifier
// rather than a literal.
type Triple struct {
	Predicate string `json:"predicate"`
	Value     string `json:"value"`
	Datatype  string `json:"datatype,omitempty"`
}

// IsResource reports whether the triple's value is a resource reference.
func (t Triple) IsResource() bool {
	return t.Datatype == ""
}

// Backlink is a (subject, predicate) pair from a triple whose object is the
// identifier being inspected. Backlink subjects are always resource
// identifiers by construction of the query.
type Backlink struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
}
