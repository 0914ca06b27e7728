package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	extractdomain "schedule_backend/internal/feature/symbolextract/domain"
	"schedule_backend/internal/feature/symbollist/transport/http/dto"
	"schedule_backend/internal/feature/symbollist/usecase"

	"github.com/gin-gonic/gin"
)

// IngestUsecase は時刻表ページからの再取り込みを実行するユースケースです。
type IngestUsecase interface {
	Ingest(ctx context.Context) (usecase.IngestResult, error)
}

// IngestHandler は管理者向けの再取り込みリクエストを処理します。
type IngestHandler struct {
	uc IngestUsecase
}

// NewIngestHandler は新しい IngestHandler を作成します。
func NewIngestHandler(uc IngestUsecase) *IngestHandler {
	return &IngestHandler{uc: uc}
}

// Ingest は保存済みページを再走査してカタログを更新します。
// ページが存在しない場合は503、それ以外のエラーは500を返します。
func (h *IngestHandler) Ingest(c *gin.Context) {
	res, err := h.uc.Ingest(c.Request.Context())
	if err != nil {
		slog.Error("ingest failed", "error", err)
		if errors.Is(err, extractdomain.ErrSourceNotFound) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.IngestResponse{
		Matches:     res.Matches,
		Symbols:     res.Symbols,
		Deactivated: res.Deactivated,
	})
}
