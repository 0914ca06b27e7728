// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"

	"schedule_backend/internal/feature/symbollist/domain"
	"schedule_backend/internal/feature/symbollist/domain/entity"
	"schedule_backend/internal/feature/symbollist/usecase"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// symbolGorm はSymbolRepositoryとSymbolWriterのGORM実装です（SQLite/PostgreSQL共通）。
type symbolGorm struct {
	db *gorm.DB
}

var (
	_ usecase.SymbolRepository = (*symbolGorm)(nil)
	_ usecase.SymbolWriter     = (*symbolGorm)(nil)
)

// NewSymbolRepository は指定されたDB接続でsymbolGormリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

// ListActive はコード順にすべてのアクティブなシンボルを返します。
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("code ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes はコード順にアクティブなシンボルのコードのみを返します。
func (r *symbolGorm) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("code ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// FindByCode はコードが一致するアクティブなシンボルを返します。
// 見つからない場合は domain.ErrSymbolNotFound を返します。
func (r *symbolGorm) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	var s entity.Symbol
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSymbolNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpsertBatch はシンボルを一括で挿入し、既存のコードは集計値を上書きして再度有効化します。
func (r *symbolGorm) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"day_codes", "marks", "days_filter", "first_departure", "occurrences", "is_active", "updated_at",
		}),
	}).Create(&symbols).Error
}

// DeactivateExcept はcodesに含まれないアクティブなシンボルを無効化し、その件数を返します。
func (r *symbolGorm) DeactivateExcept(ctx context.Context, codes []string) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true)
	// NOT IN () は空リストで何もマッチしないため、空の場合は全件を対象にする
	if len(codes) > 0 {
		q = q.Where("code NOT IN ?", codes)
	}
	res := q.Update("is_active", false)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ReplaceActive はsymbolsを書き込み、それ以外のシンボルを無効化します。
// 両方を1つのトランザクションで実行し、途中で失敗した場合は何も反映しません。
func (r *symbolGorm) ReplaceActive(ctx context.Context, symbols []entity.Symbol) (int64, error) {
	codes := make([]string, 0, len(symbols))
	for _, s := range symbols {
		codes = append(codes, s.Code)
	}

	var deactivated int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &symbolGorm{db: tx}
		if err := txRepo.UpsertBatch(ctx, symbols); err != nil {
			return fmt.Errorf("failed to store symbols: %w", err)
		}
		n, err := txRepo.DeactivateExcept(ctx, codes)
		if err != nil {
			return fmt.Errorf("failed to deactivate stale symbols: %w", err)
		}
		deactivated = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deactivated, nil
}
