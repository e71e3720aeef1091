package gen

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"passmint/pkg/domain"
	"passmint/svc/util"
)

// Generate draws one password from the alphabet selected by opts. The
// length is clamped to the allowed range, and at least one character
// class must be enabled. Each character is an independent uniform draw
// with replacement: a 64-bit random value reduced modulo the alphabet
// size, wide enough that no further bias correction is needed.
//
// crypto/rand is the preferred source. If a read fails the draw falls
// back to math/rand for that draw only; the fallback is not suitable for
// high-entropy output and is logged as a warning.
func Generate(opts domain.Options) (string, error) {
	alphabet := opts.Alphabet()
	if len(alphabet) == 0 {
		return "", domain.ErrNoClassSelected
	}
	length := domain.ClampLength(opts.Length)
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		out[i] = alphabet[randIndex(len(alphabet))]
	}
	return string(out), nil
}

// randIndex picks a uniform index in [0, n). The strong source is probed
// on every draw, never cached, so a transient failure does not pin the
// process to the weak source.
func randIndex(n int) int {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		util.Warn().Err(err).Msg("strong random source unavailable, using math/rand fallback")
		return int(mathrand.Uint64N(uint64(n)))
	}
	return int(binary.BigEndian.Uint64(b[:]) % uint64(n))
}
