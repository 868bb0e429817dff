package query

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semscope/graph"
)

func startTestNATS(t *testing.T) *nats.Conn {
	t.Helper()

	opts := &server.Options{
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	}
	ns, err := server.NewServer(opts)
	require.NoError(t, err)

	go ns.Start()
	require.True(t, ns.ReadyForConnections(5*time.Second), "server did not start")
	t.Cleanup(ns.Shutdown)

	conn, err := nats.Connect(ns.ClientURL())
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	return conn
}

func TestNewNATSServiceRequiresConnection(t *testing.T) {
	_, err := NewNATSService(nil, Config{})
	require.Error(t, err)
}

func TestDescribeRoundTrip(t *testing.T) {
	conn := startTestNATS(t)

	sub, err := conn.Subscribe("test.query.describe", func(msg *nats.Msg) {
		var req describeRequest
		require.NoError(t, json.Unmarshal(msg.Data, &req))
		assert.Equal(t, "file:///tmp/a.txt", req.Subject)

		reply, _ := json.Marshal(describeReply{Triples: []graph.Triple{
			{Predicate: "https://example.com/ontology#fileName", Value: "a.txt", Datatype: "https://example.com/types#string"},
			{Predicate: "https://example.com/ontology#relatedTo", Value: "file:///tmp/b.txt"},
		}})
		_ = msg.Respond(reply)
	})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	svc, err := NewNATSService(conn, Config{SubjectPrefix: "test.query", RequestTimeout: 2 * time.Second})
	require.NoError(t, err)

	triples, err := svc.Describe(context.Background(), "file:///tmp/a.txt")
	require.NoError(t, err)
	require.Len(t, triples, 2)
	assert.Equal(t, "a.txt", triples[0].Value)
	assert.True(t, triples[1].IsResource())
}

func TestDescribeStoreError(t *testing.T) {
	conn := startTestNATS(t)

	sub, err := conn.Subscribe("test.query.describe", func(msg *nats.Msg) {
		reply, _ := json.Marshal(describeReply{Error: "malformed pattern"})
		_ = msg.Respond(reply)
	})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	svc, err := NewNATSService(conn, Config{SubjectPrefix: "test.query", RequestTimeout: 2 * time.Second})
	require.NoError(t, err)

	_, err = svc.Describe(context.Background(), "urn:x")
	require.Error(t, err)
	assert.True(t, graph.IsQueryError(err))
	assert.False(t, graph.IsConnectionError(err))
	assert.Contains(t, err.Error(), "malformed pattern")
}

func TestDescribeNoResponder(t *testing.T) {
	conn := startTestNATS(t)

	svc, err := NewNATSService(conn, Config{SubjectPrefix: "test.query", RequestTimeout: 500 * time.Millisecond})
	require.NoError(t, err)

	_, err = svc.Describe(context.Background(), "urn:x")
	require.Error(t, err)
	assert.True(t, graph.IsConnectionError(err))
	assert.False(t, graph.IsQueryError(err))
}

func TestBacklinksRoundTrip(t *testing.T) {
	conn := startTestNATS(t)

	sub, err := conn.Subscribe("test.query.backlinks", func(msg *nats.Msg) {
		var req backlinksRequest
		require.NoError(t, json.Unmarshal(msg.Data, &req))

		reply, _ := json.Marshal(backlinksReply{Backlinks: []graph.Backlink{
			{Subject: "file:///tmp/album", Predicate: "https://example.com/ontology#hasPart"},
		}})
		_ = msg.Respond(reply)
	})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	svc, err := NewNATSService(conn, Config{SubjectPrefix: "test.query", RequestTimeout: 2 * time.Second})
	require.NoError(t, err)

	links, err := svc.Backlinks(context.Background(), "file:///tmp/photo.jpg")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "file:///tmp/album", links[0].Subject)
}

func TestCommentRoundTrip(t *testing.T) {
	conn := startTestNATS(t)

	sub, err := conn.Subscribe("test.query.comment", func(msg *nats.Msg) {
		reply, _ := json.Marshal(commentReply{Comment: "The name of the file."})
		_ = msg.Respond(reply)
	})
	require.NoError(t, err)
	defer func() { _ = sub.Unsubscribe() }()

	svc, err := NewNATSService(conn, Config{SubjectPrefix: "test.query", RequestTimeout: 2 * time.Second})
	require.NoError(t, err)

	comment, err := svc.Comment(context.Background(), "https://example.com/ontology#fileName")
	require.NoError(t, err)
	assert.Equal(t, "The name of the file.", comment)
}

func TestRequestHonorsContext(t *testing.T) {
	conn := startTestNATS(t)

	svc, err := NewNATSService(conn, Config{SubjectPrefix: "test.query", RequestTimeout: 30 * time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Describe(ctx, "urn:x")
	require.Error(t, err)
	assert.True(t, graph.IsConnectionError(err))
}
