// Package idgen は prefix 付きの一意な識別子を採番する。
// 時刻ベースのIDは連続呼び出しで衝突するのでUUIDv4を使う。
package idgen

import "github.com/google/uuid"

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID は prefix + UUIDv4 を返す。
// 同じ prefix で同じ値が返ることはない。
func (g *UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}
