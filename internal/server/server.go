// Package server exposes plan computation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/loan-revolver/internal/planner"
	"github.com/iwvelando/loan-revolver/pkg/revolver"
	"github.com/iwvelando/loan-revolver/pkg/validation"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request identifier in responses.
const RequestIDHeader = "X-Request-ID"

type handler struct {
	logger         *zap.Logger
	planner        *planner.Planner
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the plan API.
func NewHandler(logger *zap.Logger, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		planner:        planner.New(logger),
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/plan", h.handlePlan)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)
	return mux
}

type planRequest struct {
	Mode       string  `json:"mode"`
	TotalDebt  int64   `json:"total_debt"`
	AnnualRate float64 `json:"annual_rate"`
	Value      int64   `json:"value"`
}

type planResponse struct {
	RequestID string         `json:"request_id"`
	Duration  string         `json:"duration"`
	Plan      *revolver.Plan `json:"plan"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePlan"

	start := time.Now()
	requestID := uuid.NewString()
	w.Header().Set(RequestIDHeader, requestID)
	logger := h.logger.With(zap.String("requestId", requestID))

	var (
		req revolver.Request
		err error
	)
	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req, err = requestFromQuery(q.Get("mode"), q.Get("debt"), q.Get("rate"), q.Get("value"))
	case http.MethodPost:
		req, err = h.requestFromBody(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if err != nil {
		h.respondError(w, logger, requestID, err, op)
		return
	}

	plan, err := h.planner.Plan(req)
	if err != nil {
		h.respondError(w, logger, requestID, err, op)
		return
	}

	duration := time.Since(start)
	logger.Debug("plan request served",
		zap.String("op", op),
		zap.Duration("duration", duration),
	)
	h.writeJSON(w, http.StatusOK, planResponse{
		RequestID: requestID,
		Duration:  duration.String(),
		Plan:      plan,
	})
}

func requestFromQuery(mode, debt, rate, value string) (revolver.Request, error) {
	m, err := revolver.ParseMode(mode)
	if err != nil {
		return revolver.Request{}, err
	}
	return validation.BuildRequest(m, debt, rate, value)
}

func (h *handler) requestFromBody(w http.ResponseWriter, r *http.Request) (revolver.Request, error) {
	const op = "server.requestFromBody"

	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var body planRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return revolver.Request{}, errRequestTooLarge
		}
		return revolver.Request{}, &revolver.Error{
			Kind: revolver.KindInvalidInput,
			Op:   op,
			Msg:  "malformed request body",
			Err:  err,
		}
	}

	mode, err := revolver.ParseMode(body.Mode)
	if err != nil {
		return revolver.Request{}, err
	}
	req := revolver.Request{Mode: mode, TotalDebt: body.TotalDebt, AnnualRate: body.AnnualRate, Value: body.Value}
	if err := validation.ValidateRequest(req); err != nil {
		return revolver.Request{}, err
	}
	return req, nil
}

var errRequestTooLarge = errors.New("request body too large")

func statusFor(err error) int {
	if errors.Is(err, errRequestTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch revolver.KindOf(err) {
	case revolver.KindInsufficientPayment:
		return http.StatusUnprocessableEntity
	case revolver.KindInvalidInput, revolver.KindUnsupportedMode:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondError(w http.ResponseWriter, logger *zap.Logger, requestID string, err error, op string) {
	status := statusFor(err)
	resp := errorResponse{RequestID: requestID, Error: err.Error()}
	if kind := revolver.KindOf(err); kind != revolver.KindUnknown {
		resp.Kind = kind.String()
	}

	logger.Warn("plan request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, resp)
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// Run serves the API on cfg.Address until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func Run(ctx context.Context, logger *zap.Logger, cfg *Config, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           NewHandler(logger, cfg.RequestSizeBytes(), version),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "server.Run"),
			zap.String("address", cfg.Address),
			zap.String("version", version),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeoutDuration())
	defer cancel()

	logger.Info("shutting down server",
		zap.String("op", "server.Run"),
		zap.Duration("timeout", cfg.ShutdownTimeoutDuration()),
	)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
