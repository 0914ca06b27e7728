package cache

import (
	"time"
	_ "time/tzdata"
)

const (
	refreshHour     = 3
	refreshLocation = "Europe/Warsaw"
)

// TimeUntilNextRefresh は次の午前3時（ワルシャワ時間）までの期間を返します。
// 時刻表の更新は夜間に行われるため、キャッシュはその時点で失効させます。
func TimeUntilNextRefresh() time.Duration {
	loc, err := time.LoadLocation(refreshLocation)
	if err != nil {
		loc = time.UTC
	}
	return timeUntilNext(time.Now(), refreshHour, loc)
}

// timeUntilNext は now から loc における次の hour 時までの期間を返します。
// 日付の加算は time.Date で行うため夏時間の切り替え日も正しく扱えます。
func timeUntilNext(now time.Time, hour int, loc *time.Location) time.Duration {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, 0, 0, 0, loc)
	}
	return next.Sub(now)
}
