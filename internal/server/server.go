// Package server runs the local preview server for `linkboard serve`.
// It serves the generated document, watches the config file, rebuilds
// on change, and pushes a reload message to connected browsers.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/linkboard/linkboard/internal/build"
	"github.com/linkboard/linkboard/internal/logger"
	"github.com/linkboard/linkboard/internal/version"
)

const rebuildDebounce = 500 * time.Millisecond

// Server wraps the preview HTTP server, the config watcher, and the
// live-reload hub.
type Server struct {
	addr     string
	pipeline *build.Pipeline
	log      logger.Logger
	hub      *hub
	started  time.Time
}

// New builds a preview server around an existing build pipeline.
func New(addr string, pipeline *build.Pipeline, log logger.Logger) *Server {
	return &Server{
		addr:     addr,
		pipeline: pipeline,
		log:      log,
		hub:      newHub(log),
		started:  time.Now(),
	}
}

// Run builds once, then serves until ctx is canceled. The initial
// build must succeed; later rebuild failures are logged and the last
// good output keeps being served.
func (s *Server) Run(ctx context.Context) error {
	out, err := s.pipeline.Run()
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	s.log.Infof("✅ built %s", out)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory, not the file: editors that replace
	// the file on save would otherwise drop the watch.
	configPath := s.pipeline.ConfigPath()
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(configPath), err)
	}
	go s.watch(ctx, watcher, filepath.Base(configPath))

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("🔍 preview server listening on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("⏳ shutting down preview server...")
	case err := <-errCh:
		return fmt.Errorf("preview server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(accessLog(s.log))

	r.Get("/healthz", s.handleHealthz)
	r.Get("/ws", s.handleWS)
	r.Get("/", s.handleIndex)
	r.Get("/index.html", s.handleIndex)
	return r
}

// watch rebuilds when the config file changes and tells connected
// browsers to reload. Events for other files in the directory, the
// generated index.html included, are ignored.
func (s *Server) watch(ctx context.Context, watcher *fsnotify.Watcher, configBase string) {
	var lastBuild time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != configBase {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if time.Since(lastBuild) < rebuildDebounce {
				continue
			}
			lastBuild = time.Now()

			s.log.Info("config changed, rebuilding", logger.String("file", event.Name))
			if _, err := s.pipeline.Run(); err != nil {
				s.log.Error("rebuild failed", logger.Error(err))
				continue
			}
			s.hub.broadcast([]byte("reload"))

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.log.Warn("config watcher error", logger.Error(err))
		}
	}
}

// handleIndex serves the generated document with the live-reload
// script injected before the closing body tag.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.pipeline.OutputPath())
	if err != nil {
		s.log.Error("failed to read generated document", logger.Error(err))
		http.Error(w, "document not built yet", http.StatusInternalServerError)
		return
	}

	page := bytes.Replace(data, []byte("</body>"), []byte(reloadScript+"</body>"), 1)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(page)
}

type healthzResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version,omitempty"`
	GoVersion     string  `json:"go_version,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(healthzResponse{
		Status:        "ok",
		UptimeSeconds: time.Since(s.started).Seconds(),
		Version:       version.Version,
		GoVersion:     version.GoVersion,
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.hub.serve(w, r)
}

const reloadScript = `
<script>
  (function() {
    var socket = new WebSocket("ws://" + window.location.host + "/ws");
    socket.onmessage = function(event) {
      if (event.data === "reload") {
        window.location.reload();
      }
    };
  })();
</script>
`
