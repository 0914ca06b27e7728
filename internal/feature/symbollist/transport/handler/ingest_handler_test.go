package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	extractdomain "schedule_backend/internal/feature/symbolextract/domain"
	"schedule_backend/internal/feature/symbollist/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockIngestUsecase struct {
	IngestFunc func(ctx context.Context) (usecase.IngestResult, error)
}

func (m *mockIngestUsecase) Ingest(ctx context.Context) (usecase.IngestResult, error) {
	if m.IngestFunc != nil {
		return m.IngestFunc(ctx)
	}
	return usecase.IngestResult{}, nil
}

// TestIngestHandler_Ingest は再取り込み結果とエラー時のステータスコードを検証します。
func TestIngestHandler_Ingest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockIngest     func(ctx context.Context) (usecase.IngestResult, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: returns counters",
			mockIngest: func(ctx context.Context) (usecase.IngestResult, error) {
				return usecase.IngestResult{Matches: 412, Symbols: 17, Deactivated: 2}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"matches":412,"symbols":17,"deactivated":2}`,
		},
		{
			name: "failure: missing page returns 503",
			mockIngest: func(ctx context.Context) (usecase.IngestResult, error) {
				return usecase.IngestResult{}, fmt.Errorf("failed to scan schedule: %w", extractdomain.ErrSourceNotFound)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"failed to scan schedule: schedule source not found"}`,
		},
		{
			name: "failure: storage error returns 500",
			mockIngest: func(ctx context.Context) (usecase.IngestResult, error) {
				return usecase.IngestResult{}, errors.New("database connection failed")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"database connection failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewIngestHandler(&mockIngestUsecase{IngestFunc: tt.mockIngest})

			router := gin.New()
			router.POST("/admin/ingest", handler.Ingest)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/admin/ingest", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
