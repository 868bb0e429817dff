package desktop

// Namespace prefixes for the ontologies the index speaks.
const (
	// RDFNamespace is the base IRI for the core RDF vocabulary.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the base IRI for the RDF Schema vocabulary.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespace is the base IRI for XML Schema datatypes.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// NFONamespace is the base IRI for the file ontology (nfo).
	NFONamespace = "http://tracker.api.gnome.org/ontology/v3/nfo#"

	// NIENamespace is the base IRI for the information element ontology (nie).
	NIENamespace = "http://tracker.api.gnome.org/ontology/v3/nie#"
)

// Predicate IRIs.
const (
	// RDFType is the standard predicate linking a resource to its class.
	RDFType = RDFNamespace + "type"

	// RDFSComment is the predicate carrying a human-readable description
	// of an ontology term.
	RDFSComment = RDFSNamespace + "comment"

	// NIEMimeType is the indexed MIME type of an information element.
	NIEMimeType = NIENamespace + "mimeType"

	// NIEInterpretedAs links a file data object to the information
	// element that interprets its content.
	NIEInterpretedAs = NIENamespace + "interpretedAs"
)

// Datatype IRIs.
const (
	// XSDDateType identifies date-valued literals as emitted by the
	// index. The index emits "#dateType" rather than the standard
	// "#dateTime"; the literal spelling is intentional.
	XSDDateType = XSDNamespace + "dateType"
)

// Class IRIs.
const (
	// NFOFileDataObject is the class the index assigns to file nodes.
	// A subject carrying an rdf:type triple with this value is file-like.
	NFOFileDataObject = NFONamespace + "FileDataObject"
)
