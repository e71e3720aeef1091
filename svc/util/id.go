package util

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const suffixLen = 8

// NewEntryID builds a history entry id from the creation instant plus a
// random suffix, so two entries created within the same millisecond still
// get distinct ids.
func NewEntryID(t time.Time) (string, error) {
	suffix, err := randBase62(suffixLen)
	if err != nil {
		return "", errors.Wrap(err, "rand fail")
	}
	return strconv.FormatInt(t.UnixMilli(), 10) + "-" + suffix, nil
}

func randBase62(n int) (string, error) {
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b [8]byte
		if _, err := rand.Read(b[:]); err != nil {
			return "", err
		}
		v := binary.BigEndian.Uint64(b[:])
		out[i] = base62Chars[v%uint64(len(base62Chars))]
	}
	return string(out), nil
}
