// Package clipboard abstracts the system clipboard behind a small interface
// so copy actions stay testable without a display server.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(s string) error
}

// System writes to the desktop clipboard.
type System struct{}

// WriteText places s on the system clipboard.
func (System) WriteText(s string) error {
	return clipboard.WriteAll(s)
}

// Memory is an in-process Writer used in tests and headless environments.
type Memory struct {
	mu   sync.Mutex
	last string
}

// WriteText records s as the clipboard content.
func (m *Memory) WriteText(s string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = s
	return nil
}

// Text returns the most recently written content.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
