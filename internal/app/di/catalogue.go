// Package di provides dependency injection factories for creating application components.
package di

import (
	extractadapters "schedule_backend/internal/feature/symbolextract/adapters"
	extractusecase "schedule_backend/internal/feature/symbolextract/usecase"
	legendusecase "schedule_backend/internal/feature/symbollegend/usecase"
	symbollistadapters "schedule_backend/internal/feature/symbollist/adapters"
	symbollistusecase "schedule_backend/internal/feature/symbollist/usecase"
	"schedule_backend/internal/platform/cache"
	infrahttp "schedule_backend/internal/platform/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewSymbolStore creates the catalogue store.
// If Redis is available, reads are cached until the next nightly refresh;
// otherwise the cache layer passes every call through to the database.
func NewSymbolStore(rdb *redis.Client, db *gorm.DB) cache.SymbolStore {
	return cache.NewCachingSymbolRepository(rdb, 0, symbollistadapters.NewSymbolRepository(db), "symbols")
}

// NewSymbolUsecase creates the read-side usecase with the legend attached.
func NewSymbolUsecase(store cache.SymbolStore) *symbollistusecase.SymbolUsecase {
	return symbollistusecase.NewSymbolUsecase(store, legendusecase.NewLegendUsecase())
}

// NewScheduleSource returns the page reader for ingest.
// SCHEDULE_HTML_URL takes precedence over SCHEDULE_HTML_PATH.
func NewScheduleSource(cfg extractadapters.Config) extractusecase.SourceReader {
	if cfg.URL != "" {
		return extractadapters.NewHTTPPage(cfg.URL, infrahttp.NewHTTPClient(cfg.Timeout))
	}
	return extractadapters.NewLatin1File(cfg.Path)
}

// NewIngestUsecase creates an ingest usecase reading the configured schedule page.
func NewIngestUsecase(store cache.SymbolStore) *symbollistusecase.IngestUsecase {
	source := extractusecase.NewExtractUsecase(NewScheduleSource(extractadapters.LoadConfig()))
	return symbollistusecase.NewIngestUsecase(source, legendusecase.NewLegendUsecase(), store)
}
