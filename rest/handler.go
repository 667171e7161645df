package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Gthulhu/priosim/domain"
	"github.com/Gthulhu/priosim/errs"
	"github.com/Gthulhu/priosim/pkg/logger"
	"go.uber.org/fx"
)

// Version is overridden at build time with -ldflags "-X github.com/Gthulhu/priosim/rest.Version=...".
var Version = "dev"

const serviceName = "Priority Scheduling Simulator API"

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SuccessResponse represents the success response structure
type SuccessResponse[T any] struct {
	Success   bool   `json:"success"`
	Data      *T     `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

// EmptyResponse is the data of a success response that carries nothing.
type EmptyResponse struct{}

func NewSuccessResponse[T any](data *T) SuccessResponse[T] {
	return SuccessResponse[T]{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

type Params struct {
	fx.In
	Svc domain.Service
}

func NewHandler(params Params) (*Handler, error) {
	return &Handler{
		Svc: params.Svc,
	}, nil
}

type Handler struct {
	Svc domain.Service
}

func (h *Handler) JSONResponse(ctx context.Context, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logger.Logger(ctx).Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
	}
}

func (h *Handler) JSONBind(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// ErrorResponse writes an error envelope. err is logged but never sent to the client.
func (h *Handler) ErrorResponse(ctx context.Context, w http.ResponseWriter, status int, errMsg string, err error) {
	if err != nil {
		logger.Logger(ctx).Warn().Err(err).Int("status", status).Msg(errMsg)
	}
	resp := ErrorResponse{
		Success: false,
		Error:   errMsg,
	}
	h.JSONResponse(ctx, w, status, resp)
}

// HandleError answers with the status carried by an errs.HTTPStatusError, or 500 for anything else.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	httpErr, ok := errs.IsHTTPStatusError(err)
	if !ok {
		logger.Logger(ctx).Error().Err(err).Msg("unhandled error")
		h.ErrorResponse(ctx, w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	msg := httpErr.Message
	if httpErr.OriginalErr != nil && httpErr.StatusCode < http.StatusInternalServerError {
		msg += ": " + httpErr.OriginalErr.Error()
	}
	h.ErrorResponse(ctx, w, httpErr.StatusCode, msg, nil)
}

type VersionResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Auth    bool   `json:"auth"`
}

// Version godoc
// @Summary Build information
// @Tags System
// @Produce json
// @Success 200 {object} VersionResponse
// @Router /version [get]
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	response := VersionResponse{
		Message: serviceName,
		Version: Version,
		Auth:    h.Svc.AuthEnabled(),
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}

// HealthCheck godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	}
	h.JSONResponse(r.Context(), w, http.StatusOK, response)
}
