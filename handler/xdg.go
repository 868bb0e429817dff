package handler

import (
	"fmt"
	"os/exec"
	"strings"
)

// XDGRegistry consults the freedesktop MIME database for default
// applications via xdg-mime. Scheme handlers are looked up through the
// x-scheme-handler pseudo-type, which is how the desktop registers them.
type XDGRegistry struct{}

// HasTypeHandler reports whether a default application is registered for
// the MIME type.
func (XDGRegistry) HasTypeHandler(mimeType string) bool {
	return xdgDefaultFor(mimeType) != ""
}

// HasSchemeHandler reports whether a default application is registered for
// the URI scheme.
func (XDGRegistry) HasSchemeHandler(scheme string) bool {
	return xdgDefaultFor("x-scheme-handler/"+scheme) != ""
}

func xdgDefaultFor(target string) string {
	out, err := exec.Command("xdg-mime", "query", "default", target).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// XDGLauncher opens URIs with the desktop's default application.
type XDGLauncher struct{}

// Open invokes xdg-open for the URI. A failed invocation is reported to the
// caller as an informational condition; it never aborts the inspection
// context.
func (XDGLauncher) Open(uri string) error {
	if err := exec.Command("xdg-open", uri).Run(); err != nil {
		return fmt.Errorf("launch handler for %s: %w", uri, err)
	}
	return nil
}
