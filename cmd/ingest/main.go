package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"schedule_backend/internal/app/di"
	"schedule_backend/internal/feature/symbollist/usecase"
	infradb "schedule_backend/internal/platform/db"
	infraredis "schedule_backend/internal/platform/redis"
)

const ingestTimeout = 5 * time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not loaded:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	res, err := run(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("ingest ok: matches=%d symbols=%d deactivated=%d", res.Matches, res.Symbols, res.Deactivated)
}

// run は1回分の取り込みを行います。接続はエラー時も含めて閉じてから戻ります。
func run(ctx context.Context) (usecase.IngestResult, error) {
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		return usecase.IngestResult{}, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return usecase.IngestResult{}, err
	}
	defer func() { _ = sqlDB.Close() }()

	// サーバーのキャッシュを無効化するためRedisがあれば使う
	var rdb *redisv9.Client
	if cfg := infraredis.LoadConfig(); cfg.Enabled() {
		if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
			log.Println("[WARN] Redis unavailable. Server cache will not be invalidated.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	return di.NewIngestUsecase(di.NewSymbolStore(rdb, db)).Ingest(ctx)
}
