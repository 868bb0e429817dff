package query

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/semscope/graph"
	"github.com/c360studio/semscope/metric"
)

// Request subjects, relative to the configured prefix.
const (
	subjectDescribe  = "describe"
	subjectBacklinks = "backlinks"
	subjectComment   = "comment"
)

// Config contains configuration for the NATS query client.
type Config struct {
	// SubjectPrefix is the request subject prefix the index service
	// listens on.
	SubjectPrefix string `yaml:"subject_prefix"`

	// RequestTimeout bounds a single request round trip.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		SubjectPrefix:  "metadata.query",
		RequestTimeout: 10 * time.Second,
	}
}

// Wire types for the request-reply protocol. The reply carries either the
// result or a store-reported error string, never both.
type describeRequest struct {
	Subject string `json:"subject"`
}

type describeReply struct {
	Triples []graph.Triple `json:"triples"`
	Error   string         `json:"error,omitempty"`
}

type backlinksRequest struct {
	Object string `json:"object"`
}

type backlinksReply struct {
	Backlinks []graph.Backlink `json:"backlinks"`
	Error     string           `json:"error,omitempty"`
}

type commentRequest struct {
	Predicate string `json:"predicate"`
}

type commentReply struct {
	Comment string `json:"comment,omitempty"`
	Error   string `json:"error,omitempty"`
}

// natsService implements Service over NATS request-reply.
type natsService struct {
	conn    *nats.Conn
	config  Config
	metrics *metric.Metrics
	logger  *slog.Logger
}

// Option configures the NATS query client.
type Option func(*natsService)

// WithMetrics attaches query metrics to the client.
func WithMetrics(m *metric.Metrics) Option {
	return func(s *natsService) { s.metrics = m }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *natsService) { s.logger = logger }
}

// NewNATSService creates a query Service speaking the index's request-reply
// protocol over an established NATS connection. The client does not own the
// connection lifecycle beyond Close.
func NewNATSService(conn *nats.Conn, config Config, opts ...Option) (Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("nats connection cannot be nil")
	}
	if config.SubjectPrefix == "" {
		config.SubjectPrefix = DefaultConfig().SubjectPrefix
	}
	if config.RequestTimeout <= 0 {
		config.RequestTimeout = DefaultConfig().RequestTimeout
	}

	svc := &natsService{
		conn:   conn,
		config: config,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Describe returns all triples with the given subject.
func (s *natsService) Describe(ctx context.Context, subject string) ([]graph.Triple, error) {
	var reply describeReply
	if err := s.request(ctx, subjectDescribe, describeRequest{Subject: subject}, &reply); err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, fmt.Errorf("describe %s: %w: %s", subject, graph.ErrQuery, reply.Error)
	}
	s.logger.Debug("describe query complete", "subject", subject, "triples", len(reply.Triples))
	return reply.Triples, nil
}

// Backlinks returns all (subject, predicate) pairs referencing the object.
func (s *natsService) Backlinks(ctx context.Context, object string) ([]graph.Backlink, error) {
	var reply backlinksReply
	if err := s.request(ctx, subjectBacklinks, backlinksRequest{Object: object}, &reply); err != nil {
		return nil, err
	}
	if reply.Error != "" {
		return nil, fmt.Errorf("backlinks %s: %w: %s", object, graph.ErrQuery, reply.Error)
	}
	s.logger.Debug("backlinks query complete", "object", object, "rows", len(reply.Backlinks))
	return reply.Backlinks, nil
}

// Comment returns the rdfs:comment of a predicate, or "" when none exists.
func (s *natsService) Comment(ctx context.Context, predicate string) (string, error) {
	var reply commentReply
	if err := s.request(ctx, subjectComment, commentRequest{Predicate: predicate}, &reply); err != nil {
		return "", err
	}
	if reply.Error != "" {
		return "", fmt.Errorf("comment %s: %w: %s", predicate, graph.ErrQuery, reply.Error)
	}
	return reply.Comment, nil
}

// Close is a no-op for the shared connection; the owner closes it.
func (s *natsService) Close() error {
	return nil
}

// request performs one request-reply round trip and decodes the reply.
// Transport failures map to graph.ErrConnection; malformed replies map to
// graph.ErrQuery.
func (s *natsService) request(ctx context.Context, op string, req, reply any) error {
	start := time.Now()
	errKind := ""
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveQuery(op, start, errKind)
		}
	}()

	payload, err := json.Marshal(req)
	if err != nil {
		errKind = "encode"
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.config.RequestTimeout)
	defer cancel()

	subject := s.config.SubjectPrefix + "." + op
	msg, err := s.conn.RequestWithContext(reqCtx, subject, payload)
	if err != nil {
		errKind = "connection"
		return fmt.Errorf("%s request on %s: %w: %v", op, subject, graph.ErrConnection, err)
	}

	if err := json.Unmarshal(msg.Data, reply); err != nil {
		errKind = "query"
		return fmt.Errorf("decode %s reply: %w: %v", op, graph.ErrQuery, err)
	}

	if hasReplyError(reply) {
		errKind = "query"
	}
	return nil
}

// hasReplyError inspects the decoded reply's error field for metrics.
func hasReplyError(reply any) bool {
	switch r := reply.(type) {
	case *describeReply:
		return r.Error != ""
	case *backlinksReply:
		return r.Error != ""
	case *commentReply:
		return r.Error != ""
	}
	return false
}
