// Package usecase implements the business logic for the symbol catalogue.
package usecase

import (
	"context"

	legendentity "schedule_backend/internal/feature/symbollegend/domain/entity"
	"schedule_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the read side of the symbol catalogue.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
	FindByCode(ctx context.Context, code string) (*entity.Symbol, error)
}

// MarkingDescriber turns a symbol string into legend markings.
type MarkingDescriber interface {
	Describe(code string) []legendentity.Marking
}

// SymbolUsecase provides business logic for symbol lookups.
type SymbolUsecase struct {
	repo   SymbolRepository
	legend MarkingDescriber
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository and legend.
func NewSymbolUsecase(r SymbolRepository, legend MarkingDescriber) *SymbolUsecase {
	return &SymbolUsecase{repo: r, legend: legend}
}

// ListActiveSymbols returns all active symbols from the repository.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// GetSymbol returns one active symbol with its legend markings.
// domain.ErrSymbolNotFound is returned unchanged when the code is unknown.
func (u *SymbolUsecase) GetSymbol(ctx context.Context, code string) (*entity.SymbolDetail, error) {
	s, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return &entity.SymbolDetail{
		Symbol:   *s,
		Markings: u.legend.Describe(s.Code),
	}, nil
}
