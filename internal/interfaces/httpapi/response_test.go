package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/tuhmez/sports-stats-web-service/external/statsapi"
	"github.com/tuhmez/sports-stats-web-service/internal/usecase"
)

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("%w: date must be MM/DD/YYYY", usecase.ErrInvalidInput))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var body errorEnvelope
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected statusCode 400 in body, got %d", body.StatusCode)
	}
	if body.Message == "" {
		t.Fatal("expected message in error envelope")
	}
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("%w: bad date", usecase.ErrInvalidInput), http.StatusBadRequest},
		{"not found is a client error", fmt.Errorf("%w: no team", usecase.ErrNotFound), http.StatusBadRequest},
		{"dependency unavailable", fmt.Errorf("%w: circuit open", usecase.ErrDependencyUnavailable), http.StatusServiceUnavailable},
		{"conversion", fmt.Errorf("%w: decode png", usecase.ErrConversion), http.StatusInternalServerError},
		{"provider status forwarded", fmt.Errorf("fetch: %w", &statsapi.ProviderStatusError{StatusCode: http.StatusBadGateway}), http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := statusForError(tc.err); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestWriteRawJSONForwardsPayloadUnchanged(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := []byte(`{"teams":[{"id":121}]}`)
	writeRawJSON(context.Background(), rec, http.StatusOK, payload)

	if rec.Body.String() != string(payload) {
		t.Fatalf("payload reshaped: %s", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
}
