// Package inspect builds presentation rows from the triples describing a
// single resource. It turns the unordered stream the store returns into a
// stable, navigable, exportable table, tracking both the human-friendly
// display form and the exact native form of every cell.
package inspect

// IdentifierLabel is the synthetic predicate of the first row in every
// subject view. Both the display and native forms of that row's predicate
// use this label, and both value forms are the subject identifier itself.
const IdentifierLabel = "Identifier"

// Kind is the closed classification of a value, produced once by the
// classifier and consumed by rendering. It is never re-derived downstream.
type Kind int

const (
	// KindLink marks a resource reference, rendered as a navigable link.
	KindLink Kind = iota

	// KindMultilineLiteral marks a literal containing line breaks,
	// rendered as a multi-line text area rather than inline.
	KindMultilineLiteral

	// KindLiteral marks a plain literal.
	KindLiteral
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindLink:
		return "link"
	case KindMultilineLiteral:
		return "multiline"
	case KindLiteral:
		return "literal"
	}
	return "unknown"
}

// Row is one presentation row of a subject view. The native fields are
// verbatim store output and must survive export byte-for-byte; re-querying
// (for example when a link is activated) always uses the native value. The
// display fields are derived, possibly lossy, forms.
type Row struct {
	DisplayPredicate string `json:"display_predicate"`
	NativePredicate  string `json:"native_predicate"`
	DisplayValue     string `json:"display_value"`
	NativeValue      string `json:"native_value"`

	// Kind classifies the value for rendering. It is not part of the
	// exported table.
	Kind Kind `json:"-"`
}

// BacklinkRow is one (subject, predicate) pair referencing the inspected
// identifier. Backlinks are not grouped; one row per result in arrival
// order.
type BacklinkRow struct {
	Subject          string `json:"subject"`
	Predicate        string `json:"predicate"`
	DisplayPredicate string `json:"display_predicate"`

	// SubjectIsLink reports whether the subject passed the syntactic URI
	// check and should be rendered as a navigable link. This is distinct
	// from the handler capability check, which only gates the "open
	// externally" affordance.
	SubjectIsLink bool `json:"-"`
}
