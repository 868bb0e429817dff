// Package desktop provides IRI constants for the desktop metadata ontology.
//
// The desktop index describes files and abstract nodes using the standard
// RDF/RDFS/XSD namespaces plus the NEPOMUK file ontologies (nfo, nie) as
// published by the index service. The constants here are the exact strings
// the query service emits; matching is always by string equality.
//
// Note on XSDDateType: the index emits "#dateType" (not the standard
// "#dateTime") as the datatype of date-valued literals. The constant keeps
// that literal spelling, and the value is also surfaced through the Ontology
// section of the configuration so deployments against an index that emits a
// different datatype IRI can override it without a rebuild.
package desktop
