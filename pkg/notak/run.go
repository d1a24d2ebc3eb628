package notak

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Handler builds the complete HTTP handler for the API server.
//
// Routes, all JSON:
//
//	GET    /api/health        - service health status
//	GET    /api/notes         - list all notes, newest first
//	POST   /api/notes         - create a note
//	GET    /api/notes/{id}    - get a note by ID
//	PUT    /api/notes/{id}    - update title and content
//	DELETE /api/notes/{id}    - delete a note
//
// The health check is also reachable at /health for monitoring setups
// that probe outside the API prefix.
//
// Every handler is stateless; no cross-request state exists outside the
// store. The router is wrapped with request logging and a permissive
// CORS policy so a browser-hosted client on another origin can call the
// API. Exposed separately from Run so tests can drive the exact
// production routing through httptest.
func (a *App) Handler() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", a.handleHealth).Methods("GET")
	api.HandleFunc("/notes", a.handleListNotes).Methods("GET")
	api.HandleFunc("/notes", a.handleCreateNote).Methods("POST")
	api.HandleFunc("/notes/{id}", a.handleGetNote).Methods("GET")
	api.HandleFunc("/notes/{id}", a.handleUpdateNote).Methods("PUT")
	api.HandleFunc("/notes/{id}", a.handleDeleteNote).Methods("DELETE")

	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete,
		}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	return cors(a.requestLogger(router))
}

// Run starts the HTTP server and blocks until the context is cancelled
// or a fatal server error occurs. On cancellation, in-flight requests
// get up to 5 seconds to complete before the listener is torn down.
func (a *App) Run(ctx context.Context, cmd *RunCommand) error {
	addr := fmt.Sprintf(":%s", a.config.ServerPort)
	a.logger.Info().Str("addr", addr).Bool("read_only", a.readOnly).Msg("starting notak server")

	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger tags each request with a generated ID, echoes it in the
// X-Request-ID header and logs method, path, status and elapsed time.
func (a *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		a.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
