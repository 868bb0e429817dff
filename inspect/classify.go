package inspect

import (
	"strings"

	"github.com/araddon/dateparse"

	"github.com/c360studio/semscope/vocabulary/desktop"
)

// dateDisplayFormat is how date-valued literals are shown: local time,
// seconds precision.
const dateDisplayFormat = "2006-01-02 15:04:05"

// Classification is the result of classifying one value: its closed kind
// and the string to display for it.
type Classification struct {
	Kind    Kind
	Display string
}

// Classifier decides the presentation category and display string of a
// value from its datatype tag. The zero value uses the desktop vocabulary's
// date type; deployments whose index emits a different datatype IRI set
// DateType from configuration.
type Classifier struct {
	// DateType is the datatype IRI whose values are formatted as dates.
	// Matching is exact string equality with what the store emits.
	DateType string
}

// Classify is pure and total: it never fails, and unrecognized datatypes
// degrade to verbatim display. It is idempotent — reclassifying a display
// value with the same datatype yields the same result.
//
// Rules, in priority order:
//  1. empty datatype: the value is a resource reference, shown verbatim
//  2. date datatype: best-effort parse, formatted in local time; a value
//     that does not parse is shown unchanged
//  3. value contains a line break: multi-line literal, shown unchanged
//  4. otherwise: plain literal, shown unchanged
func (c Classifier) Classify(value, datatype string) Classification {
	if datatype == "" {
		return Classification{Kind: KindLink, Display: value}
	}

	dateType := c.DateType
	if dateType == "" {
		dateType = desktop.XSDDateType
	}
	if datatype == dateType {
		if t, err := dateparse.ParseLocal(value); err == nil {
			return Classification{Kind: KindLiteral, Display: t.Local().Format(dateDisplayFormat)}
		}
	}

	if strings.ContainsRune(value, '\n') {
		return Classification{Kind: KindMultilineLiteral, Display: value}
	}

	return Classification{Kind: KindLiteral, Display: value}
}
