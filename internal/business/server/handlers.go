package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	slogctx "github.com/veqryn/slog-context"

	"github.com/paymesh/session-gate/internal/gate"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status        string `json:"status"`
	BusinessID    string `json:"business_id"`
	EmailVerified bool   `json:"email_verified"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func newRouter(g *gate.Gate) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestIDMiddleware)

	r.Get("/ping", pingHandler)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Get("/evaluate", evaluateHandler(g))
		v1.Post("/invalidate", invalidateHandler(g))
		v1.Post("/login", loginHandler(g))
	})

	return r
}

// requestIDMiddleware attaches a request id to the context so it is
// propagated through all log records of this request.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := slogctx.With(r.Context(), "request_id", uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func evaluateHandler(g *gate.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetPath := r.URL.Query().Get("path")
		if targetPath == "" {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{
				Status: "error",
				Error:  "path query parameter is required",
			})
			return
		}

		start := time.Now()
		decision := g.Evaluate(r.Context(), targetPath)
		recordDecision(r.Context(), decision, time.Since(start))

		writeJSON(r.Context(), w, http.StatusOK, decision)
	}
}

func invalidateHandler(g *gate.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g.Invalidate(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}

func loginHandler(g *gate.Gate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{
				Status: "error",
				Error:  "invalid request body",
			})
			return
		}

		result, err := g.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			slogctx.Info(r.Context(), "Login failed", "error", err)
			writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{
				Status: "error",
				Error:  "invalid credentials",
			})
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, loginResponse{
			Status:        "success",
			BusinessID:    result.BusinessID,
			EmailVerified: result.EmailVerified,
		})
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slogctx.Error(ctx, "Failed to encode response", "error", err)
	}
}

func recordDecision(ctx context.Context, decision gate.Decision, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("decision", string(decision.Action)),
	)

	decisionCounter.Add(ctx, 1, attrs)
	durationHist.Record(ctx, elapsed.Milliseconds(), attrs)
}
