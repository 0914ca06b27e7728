package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	extractentity "schedule_backend/internal/feature/symbolextract/domain/entity"
	extractusecase "schedule_backend/internal/feature/symbolextract/usecase"
	legendentity "schedule_backend/internal/feature/symbollegend/domain/entity"
	"schedule_backend/internal/feature/symbollist/domain/entity"
)

// MatchSource は時刻セルとシンボルセルのペアを提供するインターフェースです。
type MatchSource interface {
	Matches(ctx context.Context) ([]extractentity.Match, error)
}

// SymbolDecoder はシンボル文字列を曜日部分・特記部分・運行日に分解します。
type SymbolDecoder interface {
	Split(code string) (days, marks string)
	DaysFilter(code string) []legendentity.DayType
}

// SymbolWriter はシンボルカタログの書き込み側を抽象化します。
// ReplaceActive はsymbolsを有効なシンボルとして保存し、それ以外を無効化した件数を返します。
// 失敗した場合、カタログは呼び出し前の状態のままです。
type SymbolWriter interface {
	ReplaceActive(ctx context.Context, symbols []entity.Symbol) (int64, error)
}

// IngestResult は1回の取り込み結果の集計です。
type IngestResult struct {
	Matches     int   // ページ内で見つかったセルペアの数
	Symbols     int   // 登録・更新されたシンボルの数
	Deactivated int64 // ページから消えたため無効化されたシンボルの数
}

// IngestUsecase は保存済みの時刻表ページからシンボルカタログを再構築します。
type IngestUsecase struct {
	source  MatchSource
	decoder SymbolDecoder
	writer  SymbolWriter
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(source MatchSource, decoder SymbolDecoder, writer SymbolWriter) *IngestUsecase {
	return &IngestUsecase{source: source, decoder: decoder, writer: writer}
}

// Ingest はページを走査し、シンボルごとに出現回数と最も早い発車時刻を集計して永続化します。
// ページに存在しなくなったシンボルは無効化されます。
func (u *IngestUsecase) Ingest(ctx context.Context) (IngestResult, error) {
	matches, err := u.source.Matches(ctx)
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to scan schedule: %w", err)
	}

	codes := extractusecase.Collect(matches).Sorted()
	byCode := make(map[string]*entity.Symbol, len(codes))
	for _, code := range codes {
		days, marks := u.decoder.Split(code)
		byCode[code] = &entity.Symbol{
			Code:       code,
			DayCodes:   days,
			Marks:      marks,
			DaysFilter: joinDays(u.decoder.DaysFilter(code)),
			IsActive:   true,
		}
	}

	for _, m := range matches {
		s, ok := byCode[m.Symbol]
		if !ok {
			continue
		}
		s.Occurrences++
		if s.FirstDeparture == "" || m.Time < s.FirstDeparture {
			s.FirstDeparture = m.Time
		}
	}

	symbols := make([]entity.Symbol, 0, len(codes))
	for _, code := range codes {
		symbols = append(symbols, *byCode[code])
	}

	deactivated, err := u.writer.ReplaceActive(ctx, symbols)
	if err != nil {
		return IngestResult{}, fmt.Errorf("failed to replace catalogue: %w", err)
	}

	res := IngestResult{Matches: len(matches), Symbols: len(symbols), Deactivated: deactivated}
	slog.Info("schedule ingested", "matches", res.Matches, "symbols", res.Symbols, "deactivated", res.Deactivated)
	return res, nil
}

func joinDays(days []legendentity.DayType) string {
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, string(d))
	}
	return strings.Join(parts, ",")
}
