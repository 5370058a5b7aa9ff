package usecase

import "time"

// ID採番。prefix ごとに一意な識別子を返す。
// 時計の分解能に依存しない実装であること（連続呼び出しで衝突しない）。
type IDGenerator interface {
	NewID(prefix string) string
}

// 現在時刻。テストで差し替える。
type Clock interface {
	Now() time.Time
}
