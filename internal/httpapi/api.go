// Package httpapi exposes an optional REST surface next to the MCP one:
// health, tool discovery, tool execution and Prometheus metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/samuelgursky/resolve-tools-mcp/internal/logging"
	"github.com/samuelgursky/resolve-tools-mcp/internal/server"
)

// API serves the REST surface.
type API struct {
	srv *server.Server
	log *logging.Logger
}

// New creates the API over a server.
func New(srv *server.Server, log *logging.Logger) *API {
	return &API{srv: srv, log: log}
}

// Router builds the route table.
func (a *API) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(a.requestIDMiddleware)
	r.HandleFunc("/health", a.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tools", a.handleListTools).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/tools/{name}", a.handleExecuteTool).Methods(http.MethodPost)
	if m := a.srv.Metrics(); m != nil {
		r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	}
	return r
}

// Serve runs the HTTP server until the context is cancelled.
func (a *API) Serve(ctx context.Context, listen string) error {
	httpServer := &http.Server{
		Addr:         listen,
		Handler:      a.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	a.log.Info("http api listening", map[string]interface{}{"address": listen})
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (a *API) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, connected := a.srv.Session().App(r.Context())
	validation := a.srv.Validation()
	status := http.StatusOK
	state := "healthy"
	if !connected {
		status = http.StatusServiceUnavailable
		state = "host unavailable"
	}
	writeJSON(w, status, map[string]interface{}{
		"status":         state,
		"host_connected": connected,
		"tools":          validation.Tools,
		"validation": map[string]interface{}{
			"errors":   validation.Errors,
			"warnings": validation.Warnings,
			"clean":    validation.Clean(),
		},
	})
}

func (a *API) handleListTools(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	component := r.URL.Query().Get("component")
	writeJSON(w, http.StatusOK, a.srv.Search(query, component))
}

func (a *API) handleExecuteTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	var args map[string]interface{}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil && err.Error() != "EOF" {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success": false,
				"error":   "Invalid JSON body: " + err.Error(),
			})
			return
		}
	}
	result := a.srv.Dispatch(r.Context(), name, args)
	// Envelope failures are application outcomes, not transport errors.
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
