package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/tuhmez/sports-stats-web-service/external/statsapi"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

// errorEnvelope is the single error shape every failure maps to.
type errorEnvelope struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

// writeRawJSON forwards an upstream payload without re-encoding it.
func writeRawJSON(ctx context.Context, w http.ResponseWriter, status int, raw json.RawMessage) {
	ctx, span := startSpan(ctx, "httpapi.writeRawJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func writePNG(ctx context.Context, w http.ResponseWriter, data []byte) {
	ctx, span := startSpan(ctx, "httpapi.writePNG")
	defer span.End()

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeSVG(ctx context.Context, w http.ResponseWriter, data []byte) {
	ctx, span := startSpan(ctx, "httpapi.writeSVG")
	defer span.End()

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := statusForError(err)
	writeJSON(ctx, w, status, errorEnvelope{
		Message:    err.Error(),
		StatusCode: status,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, errorEnvelope{
		Message:    "internal server error",
		StatusCode: http.StatusInternalServerError,
	})
}

// statusForError maps service failures onto response codes. Business
// not-found is a client error in this API, not a 404; upstream rejections
// forward the provider's own status.
func statusForError(err error) int {
	var providerErr *statsapi.ProviderStatusError
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrNotFound):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrConversion):
		return http.StatusInternalServerError
	case errors.As(err, &providerErr):
		return providerErr.StatusCode
	default:
		return http.StatusInternalServerError
	}
}
