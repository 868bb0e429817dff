package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveIdentifierPath(t *testing.T) {
	got := resolveIdentifier("/tmp/some file.txt", false)
	if got != "file:///tmp/some%20file.txt" {
		t.Errorf("resolveIdentifier() = %q", got)
	}
}

func TestResolveIdentifierRelativePath(t *testing.T) {
	got := resolveIdentifier("notes.txt", false)
	if !strings.HasPrefix(got, "file:///") {
		t.Errorf("expected file URI, got %q", got)
	}

	abs, err := filepath.Abs("notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(abs, "notes.txt") || !strings.Contains(got, "notes.txt") {
		t.Errorf("got %q for %q", got, abs)
	}
}

func TestResolveIdentifierRawURI(t *testing.T) {
	for _, raw := range []string{"urn:contact:42", "https://example.com/page", "not a uri"} {
		if got := resolveIdentifier(raw, true); got != raw {
			t.Errorf("raw identifier must pass untouched, got %q", got)
		}
	}
}
