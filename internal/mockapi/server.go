// Package mockapi implements a mock of the slice of a CI control-plane
// API needed to drive runner-registration flows: token issuance, runner
// listing, release metadata, and health/reset. Everything is served from
// memory; nothing survives a restart.
package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/runnerops/mockplane/internal/log"
)

// apiVersion is stamped on every response, matching the header real
// clients expect from the control plane.
const apiVersion = "2022-11-28"

// docsURL fills the documentation_url field of 404 bodies.
const docsURL = "https://docs.github.com/rest"

// latestRelease is the payload served for the runner-release route.
// Static by design; the download URLs do not resolve.
var latestRelease = ReleaseResponse{
	TagName: "v2.311.0",
	Name:    "v2.311.0",
	Assets: []ReleaseAsset{
		{
			Name:               "actions-runner-win-x64-2.311.0.zip",
			BrowserDownloadURL: "https://mock.local/releases/actions-runner-win-x64-2.311.0.zip",
			Size:               104857600,
		},
		{
			Name:               "actions-runner-linux-x64-2.311.0.tar.gz",
			BrowserDownloadURL: "https://mock.local/releases/actions-runner-linux-x64-2.311.0.tar.gz",
			Size:               83886080,
		},
	},
}

// Server is the mock control-plane HTTP service. It owns the listener,
// the route table, and the in-memory State. Multiple servers can run in
// one process, each with independent state.
type Server struct {
	port     int
	state    *State
	auth     Authorizer
	routes   []route
	server   *http.Server
	listener net.Listener
}

// NewServer creates a mock control-plane server that will listen on the
// loopback interface at the given port. Port 0 picks a free port; use
// Addr after Start to discover it.
func NewServer(port int, authEnabled bool) *Server {
	s := &Server{
		port:  port,
		state: NewState(),
		auth:  Authorizer{Enabled: authEnabled},
	}
	s.routes = routeTable(s)
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// State returns the server's in-memory state.
func (s *Server) State() *State { return s.state }

// Addr returns the bound listen address. Only valid after Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start binds the listener and begins serving in the background. A bind
// failure (port taken, permission denied) is returned immediately so the
// caller can exit non-zero before any request is accepted.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("binding mock API listener: %w", err)
	}
	s.listener = listener
	go func() { _ = s.server.Serve(listener) }()
	return nil
}

// Stop gracefully shuts the server down: the listener stops accepting new
// connections and in-flight requests run to completion, bounded by ctx.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ServeHTTP dispatches one request through the route table. The request
// counter ticks exactly once per request, before routing, so 401s, 404s,
// and 500s all count. A panicking handler is converted to a 500 response;
// nothing a client sends can take the listener down.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.state.CountRequest()

	rw := &responseWriter{ResponseWriter: w}
	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-GitHub-Api-Version", apiVersion)

	defer func() {
		if rec := recover(); rec != nil {
			writeJSON(rw, http.StatusInternalServerError, MessageResponse{
				Message: "Internal server error",
				Error:   fmt.Sprint(rec),
			})
			s.logRequest(r, rw)
		}
	}()

	rt, params := match(s.routes, r.Method, r.URL.Path)
	switch {
	case rt == nil:
		writeJSON(rw, http.StatusNotFound, MessageResponse{
			Message:          "Not Found",
			DocumentationURL: docsURL,
		})
	case rt.protected && !s.auth.Authorize(r.Header.Get("Authorization")):
		writeJSON(rw, http.StatusUnauthorized, MessageResponse{Message: "Requires authentication"})
	default:
		rt.handler(rw, r, params)
	}
	s.logRequest(r, rw)
}

// logRequest emits the one log line every handled request produces.
func (s *Server) logRequest(r *http.Request, rw *responseWriter) {
	args := []any{"method", r.Method, "path", r.URL.Path, "status", rw.status, "bytes", rw.bytes}
	switch {
	case rw.status >= http.StatusInternalServerError:
		log.Error("request failed", args...)
	case rw.status == http.StatusUnauthorized:
		log.Warn("request unauthorized", args...)
	default:
		log.Info("request handled", args...)
	}
}

// handleLatestRelease serves the static release payload.
func (s *Server) handleLatestRelease(w http.ResponseWriter, _ *http.Request, _ []string) {
	writeJSON(w, http.StatusOK, latestRelease)
}

// handleRegistrationToken serves both the org- and repo-scoped token
// routes. The scope params only shape the URL; issued tokens are identical
// and nothing about them is stored.
func (s *Server) handleRegistrationToken(w http.ResponseWriter, _ *http.Request, _ []string) {
	token, expiresAt := NewToken()
	writeJSON(w, http.StatusOK, RegistrationTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// handleListRunners serves both runner-listing routes from the shared
// registry; the org/repo params do not partition anything.
func (s *Server) handleListRunners(w http.ResponseWriter, _ *http.Request, _ []string) {
	count, runners := s.state.List()
	writeJSON(w, http.StatusOK, RunnerListResponse{TotalCount: count, Runners: runners})
}

// handleHealth reports service health. Never requires authorization.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request, _ []string) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:            "healthy",
		Uptime:            s.state.Uptime().Round(time.Second).String(),
		RequestCount:      s.state.RequestCount(),
		RegisteredRunners: s.state.RunnerCount(),
	})
}

// handleReset clears the registry and the request counter.
func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request, _ []string) {
	s.state.Reset()
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Mock data reset successfully"})
}

// responseWriter records the status code and body size for the request log.
type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// writeJSON marshals v as JSON and writes it to w with the given status
// code. Content-Type is already set at dispatch.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
