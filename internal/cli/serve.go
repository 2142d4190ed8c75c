package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	dzerrors "github.com/mklettner/dropzone/pkg/errors"
	"github.com/mklettner/dropzone/pkg/hover"
)

// serveCommand creates the serve command exposing the classifier over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr         string
		matricesPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the classifier as a JSON endpoint",
		Long: `Expose the classifier as a JSON endpoint.

The serve command starts an HTTP server for integration harnesses that want
to exercise the classifier without linking the Go packages. One engine is
shared across requests behind a lock; the server is a test fixture, not a
production surface.

Endpoints:

  GET  /healthz       liveness probe
  GET  /v1/matrices   registered matrix names
  POST /v1/classify   classify one hover event`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := c.newEngine(matricesPath)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), addr, engine)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&matricesPath, "matrices", "", "TOML file with custom zone matrices")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, engine *hover.Engine) error {
	s := &classifyServer{engine: engine}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/v1/matrices", s.handleMatrices)
	r.Post("/v1/classify", s.handleClassify)

	base := withLogger(ctx, c.Logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return base },
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("serving classifier", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// =============================================================================
// Handlers
// =============================================================================

// classifyServer wraps the engine for HTTP access. The engine itself is
// single-goroutine; the mutex serializes concurrent requests.
type classifyServer struct {
	mu     sync.Mutex
	engine *hover.Engine
}

// classifyRequest is the JSON body of POST /v1/classify.
type classifyRequest struct {
	Drag   hover.Node   `json:"drag"`
	Hover  hover.Node   `json:"hover"`
	Room   hover.Room   `json:"room"`
	Mouse  hover.Vector `json:"mouse"`
	Matrix string       `json:"matrix,omitempty"`
}

// classifyResponse reports the decided action, mirroring the CLI output.
type classifyResponse struct {
	Action string `json:"action"`
	Level  *int   `json:"level,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *classifyServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *classifyServer) handleMatrices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"matrices": s.engine.MatrixNames()})
}

func (s *classifyServer) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, dzerrors.ErrCodeInvalidRequest, "decode request: "+err.Error())
		return
	}
	if req.Room.IsDegenerate() {
		writeError(w, http.StatusBadRequest, dzerrors.ErrCodeInvalidRoom, "room must have positive dimensions")
		return
	}
	if req.Matrix != "" {
		if _, ok := s.engine.Matrix(req.Matrix); !ok {
			writeError(w, http.StatusBadRequest, dzerrors.ErrCodeMatrixNotFound, "unknown matrix "+req.Matrix)
			return
		}
	}

	// A fresh recorder per request keeps duplicate suppression from hiding
	// decisions between unrelated clients.
	rec := &recorder{}
	s.mu.Lock()
	s.engine.Hover(req.Drag, req.Hover, rec, hover.Request{
		Room:   req.Room,
		Mouse:  req.Mouse,
		Matrix: req.Matrix,
	})
	s.mu.Unlock()

	resp := classifyResponse{Action: "none"}
	if rec.fired {
		resp.Action = rec.op
		if rec.level >= 0 {
			level := rec.level
			resp.Level = &level
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// logRequests logs each request at debug level using the logger attached
// to the server's base context.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		loggerFromContext(r.Context()).Debug("request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code dzerrors.Code, msg string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: string(code), Message: msg}})
}
