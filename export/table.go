package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/c360studio/semscope/inspect"
)

// Header is the fixed header row of every delimited export. Field order
// matches the Row field order; native fields round-trip byte-for-byte apart
// from the quoting the format itself requires.
var Header = []string{"Display Predicate", "Native Predicate", "Display Value", "Native Value"}

// DelimitedText encodes rows as CSV with the fixed header. The synthetic
// Identifier row is exported like any other row. Fields containing the
// delimiter, a quote, or a line break are quote-escaped per RFC 4180.
func DelimitedText(rows []inspect.Row) (string, error) {
	return delimited(rows, ',')
}

// Encode renders rows in the requested format.
func Encode(rows []inspect.Row, format Format) (string, error) {
	switch format {
	case FormatCSV:
		return delimited(rows, ',')
	case FormatTSV:
		return delimited(rows, '\t')
	case FormatJSON:
		return jsonText(rows)
	case FormatHTML:
		return htmlText(rows)
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func delimited(rows []inspect.Row, comma rune) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = comma

	if err := w.Write(Header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.DisplayPredicate, r.NativePredicate, r.DisplayValue, r.NativeValue}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush: %w", err)
	}
	return sb.String(), nil
}

func jsonText(rows []inspect.Row) (string, error) {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal rows: %w", err)
	}
	return string(data) + "\n", nil
}

// htmlText renders an HTML table. Every cell is escaped before it reaches
// markup; link values additionally become anchors whose href is the native
// value.
func htmlText(rows []inspect.Row) (string, error) {
	var sb strings.Builder
	sb.WriteString("<table>\n  <thead>\n    <tr>")
	for _, h := range Header {
		sb.WriteString("<th>")
		sb.WriteString(html.EscapeString(h))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr>\n  </thead>\n  <tbody>\n")

	for _, r := range rows {
		sb.WriteString("    <tr>")
		writeCell(&sb, r.DisplayPredicate)
		writeCell(&sb, r.NativePredicate)
		if r.Kind == inspect.KindLink {
			sb.WriteString(`<td><a href="`)
			sb.WriteString(html.EscapeString(r.NativeValue))
			sb.WriteString(`">`)
			sb.WriteString(html.EscapeString(r.DisplayValue))
			sb.WriteString("</a></td>")
		} else {
			writeCell(&sb, r.DisplayValue)
		}
		writeCell(&sb, r.NativeValue)
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("  </tbody>\n</table>\n")
	return sb.String(), nil
}

func writeCell(sb *strings.Builder, s string) {
	sb.WriteString("<td>")
	sb.WriteString(html.EscapeString(s))
	sb.WriteString("</td>")
}
