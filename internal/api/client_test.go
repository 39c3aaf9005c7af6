package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSONHeaders(t *testing.T) {
	var gotAccept, gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"status":"ok","sovereignty":"backend","frontend_read_only":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, WithAuthToken("secret"))
	status, err := client.Handshake(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.True(t, status.Verified())
}

func TestHandshakeRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Handshake(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "/system/handshake", statusErr.Endpoint)
	assert.Equal(t, int32(handshakeRetries+1), calls.Load())
}

func TestHandshakeRecoversMidCycle(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 4 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"sovereignty":"backend","frontend_read_only":true,"version":"2.1.0"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, err := client.Handshake(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", status.Version)
	assert.Equal(t, int32(4), calls.Load())
}

func TestHandshakeHonorsContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.Handshake(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKeywords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/keywords", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"keywords":[
			{"id":"kw-1","text":"running shoes","match_type":"broad","current_bid":1.25},
			{"id":"kw-2","text":"trail boots","match_type":"exact","current_bid":0.45}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	keywords, err := client.Keywords(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, keywords, 2)
	assert.Equal(t, "running shoes", keywords[0].Text)
	assert.Equal(t, 0.45, keywords[1].CurrentBid)
}

func TestKeywordsNoRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Keywords(context.Background(), 50)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestUnifiedLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shadow/logs/unified", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"count":2,"logs":[
			{"id":"1","timestamp":"2026-08-24T12:00:00","type":"THOUGHT","payload":{"agent":"scout"}},
			{"id":"2","timestamp":"2026-08-24T12:00:01","type":"BID","payload":{"keyword":"shoes"}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	count, entries, err := client.UnifiedLogs(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, entries, 2)
	require.NotNil(t, entries[0].Thought)
	assert.Equal(t, "scout", entries[0].Thought.Agent)
	require.NotNil(t, entries[1].Bid)
}

func TestMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"keywords": [`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Keywords(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}
