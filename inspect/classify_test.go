package inspect

import (
	"strings"
	"testing"

	"github.com/araddon/dateparse"

	"github.com/c360studio/semscope/vocabulary/desktop"
)

func TestClassifyResourceReference(t *testing.T) {
	c := Classifier{}

	cls := c.Classify("file:///home/user/notes.txt", "")
	if cls.Kind != KindLink {
		t.Errorf("expected link, got %s", cls.Kind)
	}
	if cls.Display != "file:///home/user/notes.txt" {
		t.Errorf("link display must be verbatim, got %q", cls.Display)
	}
}

func TestClassifyDateValue(t *testing.T) {
	c := Classifier{}
	raw := "2024-06-04T12:34:56Z"

	cls := c.Classify(raw, desktop.XSDDateType)
	if cls.Kind != KindLiteral {
		t.Fatalf("expected literal, got %s", cls.Kind)
	}

	want, err := dateparse.ParseLocal(raw)
	if err != nil {
		t.Fatalf("reference parse: %v", err)
	}
	if got := want.Local().Format(dateDisplayFormat); cls.Display != got {
		t.Errorf("display = %q, want %q", cls.Display, got)
	}
}

func TestClassifyDateIdempotent(t *testing.T) {
	c := Classifier{}

	first := c.Classify("2024-06-04T12:34:56Z", desktop.XSDDateType)
	second := c.Classify(first.Display, desktop.XSDDateType)
	if second != first {
		t.Errorf("reclassification changed result: %+v vs %+v", second, first)
	}
}

func TestClassifyUnparseableDate(t *testing.T) {
	c := Classifier{}

	cls := c.Classify("not a date at all", desktop.XSDDateType)
	if cls.Kind != KindLiteral {
		t.Errorf("expected literal, got %s", cls.Kind)
	}
	if cls.Display != "not a date at all" {
		t.Errorf("unparseable date must be shown unchanged, got %q", cls.Display)
	}
}

func TestClassifyCustomDateType(t *testing.T) {
	c := Classifier{DateType: "https://example.com/types#timestamp"}

	// The configured type formats; the default type no longer does.
	if cls := c.Classify("2024-06-04T12:34:56Z", "https://example.com/types#timestamp"); cls.Display == "2024-06-04T12:34:56Z" {
		t.Error("configured date type was not formatted")
	}
	if cls := c.Classify("2024-06-04T12:34:56Z", desktop.XSDDateType); cls.Display != "2024-06-04T12:34:56Z" {
		t.Errorf("non-date datatype must be verbatim, got %q", cls.Display)
	}
}

func TestClassifyMultiline(t *testing.T) {
	c := Classifier{}
	value := "first line\nsecond line"

	cls := c.Classify(value, "https://example.com/types#string")
	if cls.Kind != KindMultilineLiteral {
		t.Errorf("expected multiline, got %s", cls.Kind)
	}
	if cls.Display != value {
		t.Errorf("multiline display must be verbatim, got %q", cls.Display)
	}
}

func TestClassifyPlainLiteral(t *testing.T) {
	c := Classifier{}

	tests := []struct {
		name     string
		value    string
		datatype string
	}{
		{"string", "hello world", "https://example.com/types#string"},
		{"integer", "42", "https://example.com/types#integer"},
		{"unknown datatype", "anything", "urn:no-such-type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := c.Classify(tt.value, tt.datatype)
			if cls.Kind != KindLiteral {
				t.Errorf("expected literal, got %s", cls.Kind)
			}
			if cls.Display != tt.value {
				t.Errorf("display = %q, want verbatim %q", cls.Display, tt.value)
			}
		})
	}
}

func TestClassifyNeverPanics(t *testing.T) {
	c := Classifier{}
	for _, value := range []string{"", "\n", strings.Repeat("x", 10000), "\x00\xff"} {
		for _, datatype := range []string{"", desktop.XSDDateType, "junk"} {
			c.Classify(value, datatype)
		}
	}
}
