package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/quartz"
)

func TestServerHealth(t *testing.T) {
	t.Parallel()
	sessions := NewSessionManager(testBanks(), testLogger(), quartz.NewMock(t), nil, time.Hour, nil)
	srv := NewServer("localhost:0", testLogger(), sessions)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.handleHealth(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestServerSessionsAccessor(t *testing.T) {
	t.Parallel()
	sessions := NewSessionManager(testBanks(), testLogger(), quartz.NewMock(t), nil, time.Hour, nil)
	srv := NewServer("localhost:0", testLogger(), sessions)

	if srv.Sessions() != sessions {
		t.Error("expected server to expose its session manager")
	}
	if got := srv.SessionWatchers("nope"); got != 0 {
		t.Errorf("expected 0 watchers for unknown session, got %d", got)
	}
}
