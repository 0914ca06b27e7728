// Package usecase implements symbol extraction from a saved schedule page.
package usecase

import (
	"context"

	"schedule_backend/internal/feature/symbolextract/domain/entity"
)

// SourceReader abstracts where the decoded schedule page comes from.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SourceReader interface {
	ReadText(ctx context.Context) (string, error)
}

// ExtractUsecase scans a schedule page for symbol cells.
type ExtractUsecase struct {
	src SourceReader
}

// NewExtractUsecase creates a new ExtractUsecase reading from src.
func NewExtractUsecase(src SourceReader) *ExtractUsecase {
	return &ExtractUsecase{src: src}
}

// Matches reads the whole page and returns every (time, symbol) pair in document order.
// Errors from the source are returned unchanged.
func (u *ExtractUsecase) Matches(ctx context.Context) ([]entity.Match, error) {
	text, err := u.src.ReadText(ctx)
	if err != nil {
		return nil, err
	}
	return Scan(text), nil
}

// UniqueSymbols returns the distinct qualifying symbols sorted ascending.
func (u *ExtractUsecase) UniqueSymbols(ctx context.Context) ([]string, error) {
	matches, err := u.Matches(ctx)
	if err != nil {
		return nil, err
	}
	return Collect(matches).Sorted(), nil
}
