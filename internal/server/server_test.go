package server

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linkboard/linkboard/internal/build"
	"github.com/linkboard/linkboard/internal/config"
	"github.com/linkboard/linkboard/internal/logger"
)

func newBuiltServer(t *testing.T) *Server {
	t.Helper()

	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "projects.yaml")
	yamlContent := `
projects:
  P:
    links:
      L: https://example.com
`
	if err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	pipeline := build.New(build.Options{
		ConfigPath:     yamlPath,
		Explicit:       true,
		FaviconService: config.DefaultFaviconService,
	}, logger.Nop())
	if _, err := pipeline.Run(); err != nil {
		t.Fatalf("pipeline.Run() error = %v", err)
	}

	return New(":0", pipeline, logger.Nop())
}

func TestHandleIndexInjectsReloadScript(t *testing.T) {
	s := newBuiltServer(t)

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()

	if !strings.Contains(body, ">P</h2>") {
		t.Error("served page missing generated content")
	}
	if !strings.Contains(body, `new WebSocket("ws://"`) {
		t.Error("served page missing injected live-reload script")
	}
	if strings.Index(body, "new WebSocket") > strings.Index(body, "</body>") {
		t.Error("reload script should be injected before </body>")
	}
}

func TestHandleIndexMissingOutput(t *testing.T) {
	pipeline := build.New(build.Options{
		ConfigPath: filepath.Join(t.TempDir(), "projects.yaml"),
	}, logger.Nop())
	s := New(":0", pipeline, logger.Nop())

	rec := httptest.NewRecorder()
	s.handleIndex(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != 500 {
		t.Errorf("status = %d, want 500 when nothing is built", rec.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	s := newBuiltServer(t)

	rec := httptest.NewRecorder()
	s.handleHealthz(rec, httptest.NewRequest("GET", "/healthz", nil))

	var resp healthzResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode healthz response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}
