package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/make10/internal/board"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a 128-bit PCG seed from HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) (hi, lo uint64) {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), binary.BigEndian.Uint64(sum[8:16])
}

// Source returns the digit source for a date. Every player asking for the
// same date and salt draws the same digits in the same order.
func Source(date time.Time, salt string) *board.SeededSource {
	return board.NewSeededSource(Seed(date, salt))
}
