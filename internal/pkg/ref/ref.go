package ref

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// BookingNumber returns a customer-facing reference like "ME-MB3K2F-7QX1":
// a shop prefix, the creation time in base36 and a short random suffix.
func BookingNumber(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return "ME-" + ts + "-" + randomCode(4)
}

// TrackingCode returns the 8-character code customers use on the track page.
func TrackingCode() string {
	return randomCode(8)
}

func randomCode(n int) string {
	max := big.NewInt(int64(len(alphabet)))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken
			sb.WriteByte(alphabet[time.Now().UnixNano()%int64(len(alphabet))])
			continue
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}
	return sb.String()
}
