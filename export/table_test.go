package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscope/inspect"
)

func sampleRows() []inspect.Row {
	return []inspect.Row{
		{
			DisplayPredicate: inspect.IdentifierLabel,
			NativePredicate:  inspect.IdentifierLabel,
			DisplayValue:     "file:///tmp/a.txt",
			NativeValue:      "file:///tmp/a.txt",
			Kind:             inspect.KindLink,
		},
		{
			DisplayPredicate: "Comment",
			NativePredicate:  "https://example.com/ontology#comment",
			DisplayValue:     "has \"quotes\", commas,\nand a line break",
			NativeValue:      "has \"quotes\", commas,\nand a line break",
			Kind:             inspect.KindMultilineLiteral,
		},
	}
}

func TestDelimitedTextRoundTrip(t *testing.T) {
	out, err := DelimitedText(sampleRows())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, "file:///tmp/a.txt", records[1][3])
	// Native text survives the quoting byte-for-byte once decoded.
	assert.Equal(t, "has \"quotes\", commas,\nand a line break", records[2][3])
}

func TestEncodeTSV(t *testing.T) {
	out, err := Encode(sampleRows(), FormatTSV)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(out))
	r.Comma = '\t'
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Header, records[0])
}

func TestEncodeJSON(t *testing.T) {
	out, err := Encode(sampleRows(), FormatJSON)
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "https://example.com/ontology#comment", decoded[1]["native_predicate"])
	assert.NotContains(t, decoded[0], "Kind", "classification is not part of the export")
}

func TestEncodeHTMLEscapes(t *testing.T) {
	rows := []inspect.Row{{
		DisplayPredicate: "Title",
		NativePredicate:  "https://example.com/ontology#title",
		DisplayValue:     `<script>alert("x")</script>`,
		NativeValue:      `<script>alert("x")</script>`,
		Kind:             inspect.KindLiteral,
	}}

	out, err := Encode(rows, FormatHTML)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestEncodeHTMLLinkAnchor(t *testing.T) {
	rows := []inspect.Row{{
		DisplayPredicate: "Related",
		NativePredicate:  "https://example.com/ontology#related",
		DisplayValue:     "Other File",
		NativeValue:      "file:///tmp/other.txt",
		Kind:             inspect.KindLink,
	}}

	out, err := Encode(rows, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, out, `<a href="file:///tmp/other.txt">Other File</a>`)
}

func TestEncodeEmptyTable(t *testing.T) {
	out, err := DelimitedText(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
	assert.Equal(t, Header, records[0])
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"TSV", FormatTSV, false},
		{"json", FormatJSON, false},
		{"html", FormatHTML, false},
		{"xlsx", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
