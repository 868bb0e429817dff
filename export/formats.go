// Package export encodes presentation rows for copy and export actions.
// CSV is the normative delimited-text encoding; the other formats are
// supplementary renderings of the same four-field rows.
package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format identifies an export encoding.
type Format string

const (
	// FormatCSV is comma-separated values with a fixed header row.
	FormatCSV Format = "csv"

	// FormatTSV is tab-separated values with the same header.
	FormatTSV Format = "tsv"

	// FormatJSON is a JSON array of row objects.
	FormatJSON Format = "json"

	// FormatHTML is an HTML table with escaped cells.
	FormatHTML Format = "html"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatCSV: {
		Name:        FormatCSV,
		MIMEType:    "text/csv",
		Extension:   ".csv",
		Description: "Comma-separated values (spreadsheet-friendly)",
	},
	FormatTSV: {
		Name:        FormatTSV,
		MIMEType:    "text/tab-separated-values",
		Extension:   ".tsv",
		Description: "Tab-separated values",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON array of row objects",
	},
	FormatHTML: {
		Name:        FormatHTML,
		MIMEType:    "text/html",
		Extension:   ".html",
		Description: "HTML table",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := FormatRegistry[f]; !ok {
		names := make([]string, 0, len(FormatRegistry))
		for k := range FormatRegistry {
			names = append(names, string(k))
		}
		sort.Strings(names)
		return "", fmt.Errorf("unknown format %q (supported: %s)", name, strings.Join(names, ", "))
	}
	return f, nil
}
