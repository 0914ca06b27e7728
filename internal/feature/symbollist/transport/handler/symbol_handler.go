// Package handler はsymbollistフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"schedule_backend/internal/feature/symbollist/domain"
	"schedule_backend/internal/feature/symbollist/domain/entity"
	"schedule_backend/internal/feature/symbollist/transport/http/dto"

	"github.com/gin-gonic/gin"
)

// SymbolUsecase はシンボル情報に関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error)
	GetSymbol(ctx context.Context, code string) (*entity.SymbolDetail, error)
}

// SymbolHandler はシンボル情報に関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は有効なシンボルの一覧を取得するAPIです。
// Usecaseでエラーが発生した場合は500 Internal Server Errorを返します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListActiveSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]dto.SymbolItem, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, dto.SymbolItem{
			Code:           s.Code,
			DaysFilter:     splitDays(s.DaysFilter),
			FirstDeparture: s.FirstDeparture,
			Occurrences:    s.Occurrences,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Get は1件のシンボルとレジェンドの説明を返すAPIです。
//
// エンドポイント例:
// GET /symbols/DU~W
func (h *SymbolHandler) Get(c *gin.Context) {
	detail, err := h.uc.GetSymbol(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, domain.ErrSymbolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s := detail.Symbol
	markings := make([]dto.MarkingItem, 0, len(detail.Markings))
	for _, m := range detail.Markings {
		markings = append(markings, dto.MarkingItem{Code: m.Code, Description: m.Description})
	}
	c.JSON(http.StatusOK, dto.SymbolDetail{
		Code:           s.Code,
		DayCodes:       s.DayCodes,
		Marks:          s.Marks,
		DaysFilter:     splitDays(s.DaysFilter),
		FirstDeparture: s.FirstDeparture,
		Occurrences:    s.Occurrences,
		Markings:       markings,
	})
}

func splitDays(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
