package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"schedule_backend/internal/app/di"
	"schedule_backend/internal/app/router"
	symbollisthandler "schedule_backend/internal/feature/symbollist/transport/handler"
	infradb "schedule_backend/internal/platform/db"
	platformhandler "schedule_backend/internal/platform/http/handler"
	infraredis "schedule_backend/internal/platform/redis"
)

func main() {
	// .env は任意（本番では環境変数を直接設定する）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not loaded:", err)
	}

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = sqlDB.Close() }()

	// Redis
	var rdb *redisv9.Client
	redisCfg := infraredis.LoadConfig()
	if !redisCfg.Enabled() {
		log.Println("[WARN] REDIS_HOST is not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(redisCfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository（Redisキャッシュでラップ）
	store := di.NewSymbolStore(rdb, db)

	// Handler
	healthH := platformhandler.NewHealthHandler("schedule-api", sqlDB)
	symbolH := symbollisthandler.NewSymbolHandler(di.NewSymbolUsecase(store))
	ingestH := symbollisthandler.NewIngestHandler(di.NewIngestUsecase(store))

	// ルータ生成
	r := router.NewRouter(healthH, symbolH, ingestH)

	// JWT_SECRETチェック（未設定だと /admin/ingest は常に500になる）
	if os.Getenv("JWT_SECRET") == "" {
		log.Println("[WARN] JWT_SECRET is not set. /admin/ingest is disabled.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
