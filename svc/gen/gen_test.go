package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passmint/pkg/domain"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	cases := []struct {
		name string
		opts domain.Options
	}{
		{"all classes", domain.Options{Upper: true, Lower: true, Digits: true, Symbols: true, Length: 16}},
		{"upper only", domain.Options{Upper: true, Length: 8}},
		{"digits only", domain.Options{Digits: true, Length: 4}},
		{"symbols only", domain.Options{Symbols: true, Length: 64}},
		{"lower and digits", domain.Options{Lower: true, Digits: true, Length: 32}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := Generate(tc.opts)
			require.NoError(t, err)
			assert.Len(t, value, tc.opts.Length)
			alphabet := tc.opts.Alphabet()
			for _, r := range value {
				assert.True(t, strings.ContainsRune(alphabet, r),
					"character %q not in enabled alphabet", r)
			}
		})
	}
}

func TestGenerateNoClassSelected(t *testing.T) {
	for _, length := range []int{0, 4, 16, 64, 100} {
		_, err := Generate(domain.Options{Length: length})
		assert.ErrorIs(t, err, domain.ErrNoClassSelected)
	}
}

func TestGenerateClampsLength(t *testing.T) {
	value, err := Generate(domain.Options{Lower: true, Length: 0})
	require.NoError(t, err)
	assert.Len(t, value, domain.MinLength)

	value, err = Generate(domain.Options{Lower: true, Length: 1000})
	require.NoError(t, err)
	assert.Len(t, value, domain.MaxLength)
}

func TestGenerateUppercaseOnlyIsUppercase(t *testing.T) {
	value, err := Generate(domain.Options{Upper: true, Length: 8})
	require.NoError(t, err)
	require.Len(t, value, 8)
	for _, r := range value {
		assert.True(t, r >= 'A' && r <= 'Z')
	}
}

func TestGenerateDrawsVary(t *testing.T) {
	// 64 draws over the full alphabet colliding completely is not a thing.
	a, err := Generate(domain.Options{Upper: true, Lower: true, Digits: true, Symbols: true, Length: 64})
	require.NoError(t, err)
	b, err := Generate(domain.Options{Upper: true, Lower: true, Digits: true, Symbols: true, Length: 64})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
