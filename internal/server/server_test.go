package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reel_fetcher/internal/domain"
	"reel_fetcher/internal/progress"
)

type stubPipeline struct {
	result     *domain.RunResult
	gotInput   domain.RunInput
	gotSession string
}

func (p *stubPipeline) Run(_ context.Context, input domain.RunInput, sessionID string) *domain.RunResult {
	p.gotInput = input
	p.gotSession = sessionID
	return p.result
}

func newTestServer(t *testing.T, pipeline Pipeline, bus *progress.Bus) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	srv := New(pipeline, bus, nil, nil, nil, nil, logger)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleFetchReels(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	pipeline := &stubPipeline{
		result: &domain.RunResult{
			Success:        true,
			Message:        "Successfully processed 2 reels for Blue Bottle Cafe",
			ProcessedReels: 2,
		},
	}
	ts := newTestServer(t, pipeline, progress.NewBus(logger))

	body := `{"locationName": "Blue Bottle Cafe", "reelCount": 2, "sessionId": "session-1"}`
	resp, err := http.Post(ts.URL+"/api/reels/fetch", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.RunResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.ProcessedReels)
	assert.Equal(t, domain.RunInput{Location: "Blue Bottle Cafe", ReelCount: 2}, pipeline.gotInput)
	assert.Equal(t, "session-1", pipeline.gotSession)
}

func TestHandleFetchReels_MissingSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ts := newTestServer(t, &stubPipeline{}, progress.NewBus(logger))

	body := `{"locationName": "Blue Bottle Cafe", "reelCount": 2}`
	resp, err := http.Post(ts.URL+"/api/reels/fetch", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleReelEvents_StreamsBusEvents(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	bus := progress.NewBus(logger)
	ts := newTestServer(t, &stubPipeline{}, bus)

	resp, err := http.Get(ts.URL + "/api/reels/events/session-1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// The subscription registers when the handler runs; keep publishing
	// until the stream yields an event.
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(10 * time.Millisecond):
				bus.Publish("session-1", domain.NewProgress(42, "halfway"))
			}
		}
	}()

	reader := bufio.NewReader(resp.Body)
	var eventLine, dataLine string
	deadline := time.After(5 * time.Second)
	for dataLine == "" {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for SSE event")
		default:
		}

		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "event: ") {
			eventLine = strings.TrimPrefix(line, "event: ")
		}
		if strings.HasPrefix(line, "data: ") {
			dataLine = strings.TrimPrefix(line, "data: ")
		}
	}

	assert.Equal(t, "progress", eventLine)

	var event domain.ProgressEvent
	require.NoError(t, json.Unmarshal([]byte(dataLine), &event))
	assert.Equal(t, domain.EventProgress, event.Type)
	assert.Equal(t, "halfway", event.Message)
	require.NotNil(t, event.Progress)
	assert.Equal(t, 42, *event.Progress)
}
