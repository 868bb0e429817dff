package graph

import "errors"

// Sentinel errors for query operations. Callers distinguish the two failure
// kinds to decide how to surface them; neither is retried automatically.
var (
	// ErrConnection indicates the query service is unreachable.
	ErrConnection = errors.New("query service unreachable")

	// ErrQuery indicates the service is reachable but rejected or failed
	// the query.
	ErrQuery = errors.New("query failed")
)

// IsConnectionError reports whether err wraps ErrConnection.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsQueryError reports whether err wraps ErrQuery.
func IsQueryError(err error) bool {
	return errors.Is(err, ErrQuery)
}
