package router

import (
	symbollisthandler "schedule_backend/internal/feature/symbollist/transport/handler"
	platformhandler "schedule_backend/internal/platform/http/handler"
	jwtmw "schedule_backend/internal/platform/jwt"

	"github.com/gin-gonic/gin"
)

func NewRouter(health *platformhandler.HealthHandler, symbol *symbollisthandler.SymbolHandler,
	ingest *symbollisthandler.IngestHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)
	r.OPTIONS("/healthz", health.Health)
	// シンボル一覧・詳細
	r.GET("/symbols", symbol.List)
	r.GET("/symbols/:code", symbol.Get)

	// 管理者用ルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → admin スコープ付きの JWT が必要になる
	admin := r.Group("/admin")
	admin.Use(jwtmw.AuthRequired())
	{
		admin.POST("/ingest", ingest.Ingest)
	}

	return r
}
