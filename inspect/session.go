package inspect

import (
	"context"

	"github.com/google/uuid"
)

// NavigateCommand asks the controller layer to open a new inspection
// context for a target identifier. Navigation is a message, not a direct
// recursive call: the layer that owns views decides whether to spawn,
// reuse, or queue one, and the pipeline stays testable without any
// rendering surface.
type NavigateCommand struct {
	// Target is the native identifier to inspect. Display forms are never
	// used for navigation.
	Target string
}

// Session is one inspection context. Each session owns its own row set and
// shares nothing with the session it was opened from beyond the identifier
// string; revisiting an identifier re-runs the full pipeline, since the
// index can change between navigations.
type Session struct {
	ID      uuid.UUID
	Subject string

	agg *Aggregator
}

// NewSession creates a fresh inspection context for a subject.
func NewSession(agg *Aggregator, subject string) *Session {
	return &Session{
		ID:      uuid.New(),
		Subject: subject,
		agg:     agg,
	}
}

// Describe runs the full describe pipeline for this session's subject.
func (s *Session) Describe(ctx context.Context) (*Description, error) {
	return s.agg.Describe(ctx, s.Subject)
}

// Backlinks lists the triples referencing this session's subject.
func (s *Session) Backlinks(ctx context.Context) ([]BacklinkRow, error) {
	return s.agg.Backlinks(ctx, s.Subject)
}

// ActivateValue turns a link activation into a navigation command. Rows
// that are not links produce no command.
func (s *Session) ActivateValue(row Row) (*NavigateCommand, bool) {
	if row.Kind != KindLink {
		return nil, false
	}
	return &NavigateCommand{Target: row.NativeValue}, true
}

// ActivateBacklink turns a backlink subject activation into a navigation
// command. Subjects that do not look like URIs produce no command.
func (s *Session) ActivateBacklink(row BacklinkRow) (*NavigateCommand, bool) {
	if !row.SubjectIsLink {
		return nil, false
	}
	return &NavigateCommand{Target: row.Subject}, true
}

// Navigate opens a fresh session for the command's target. The new session
// re-queries everything; nothing is memoized or pooled.
func (s *Session) Navigate(cmd *NavigateCommand) *Session {
	return NewSession(s.agg, cmd.Target)
}
