package domain

// Class alphabets, concatenated in this fixed order when building the
// usable alphabet for a draw.
const (
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	DigitChars  = "0123456789"
	SymbolChars = "!@#$%^&*()_+[]{}|;:,.<>?"
)

const (
	MinLength     = 4
	MaxLength     = 64
	DefaultLength = 16
)

// Options selects the character classes and target length for one
// generation. Options are ephemeral and never persisted.
type Options struct {
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
	Length  int
}

func DefaultOptions() Options {
	return Options{
		Upper:   true,
		Lower:   true,
		Digits:  true,
		Symbols: true,
		Length:  DefaultLength,
	}
}

// ClampLength forces l into the inclusive [MinLength, MaxLength] range.
func ClampLength(l int) int {
	if l < MinLength {
		return MinLength
	}
	if l > MaxLength {
		return MaxLength
	}
	return l
}

// Alphabet returns the usable alphabet in canonical class order. Empty
// when no class is enabled, which is a validation failure upstream.
func (o Options) Alphabet() string {
	alphabet := ""
	if o.Upper {
		alphabet += UpperChars
	}
	if o.Lower {
		alphabet += LowerChars
	}
	if o.Digits {
		alphabet += DigitChars
	}
	if o.Symbols {
		alphabet += SymbolChars
	}
	return alphabet
}
