package password

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

const (
	MinLength = 4
	MaxLength = 128

	// maxRedraws bounds the no-adjacent-repeat redraw loop. With at least two
	// usable characters the chance of exhausting it is below 2^-64.
	maxRedraws = 64
)

var (
	ErrLengthTooShort   = errors.New("password length must be at least 4")
	ErrLengthTooLong    = errors.New("password length must be at most 128")
	ErrNoCharacterTypes = errors.New("at least one character type must be selected")
	ErrEmptyCharset     = errors.New("selected character types and exclusions leave no usable characters")
	ErrRepeatImpossible = errors.New("preventing repeats needs at least two distinct characters")

	errRedrawsExhausted = errors.New("redraw limit exceeded")
)

// Options configures one password generation.
type Options struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeSimilar   bool
	PreventRepeating bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Generator draws passwords from a cryptographically secure random source.
// The zero value is not usable; construct via NewGenerator or
// NewGeneratorWithSource.
type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator backed by crypto/rand. Production callers
// use this; there is no code path through a non-cryptographic source.
func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// NewGeneratorWithSource returns a Generator reading random bytes from r.
// Intended for deterministic tests.
func NewGeneratorWithSource(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a random password according to opts. Validation happens
// before any randomness is consumed; constraints are never silently relaxed.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}
	if !opts.Uppercase && !opts.Lowercase && !opts.Numbers && !opts.Symbols {
		return "", ErrNoCharacterTypes
	}

	charset := BuildCharset(Classes{
		Uppercase: opts.Uppercase,
		Lowercase: opts.Lowercase,
		Numbers:   opts.Numbers,
		Symbols:   opts.Symbols,
	}, opts.ExcludeSimilar)

	return g.GenerateFrom(charset, opts.Length, opts.PreventRepeating)
}

// GenerateFrom draws length characters from an explicit charset. Callers with
// a custom alphabet can use it directly; Generate routes through it after
// building the charset from class flags.
func (g *Generator) GenerateFrom(charset string, length int, preventRepeating bool) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}
	if length > MaxLength {
		return "", ErrLengthTooLong
	}
	if len(charset) == 0 {
		return "", ErrEmptyCharset
	}
	if preventRepeating && distinctBytes(charset) == 1 && length > 1 {
		return "", ErrRepeatImpossible
	}

	result := make([]byte, length)
	for i := range result {
		ch, err := g.randChar(charset)
		if err != nil {
			return "", err
		}
		if preventRepeating && i > 0 && ch == result[i-1] {
			ch, err = g.redraw(charset, result[i-1])
			if err != nil {
				return "", err
			}
		}
		result[i] = ch
	}

	return string(result), nil
}

// Generate creates a password from opts using the crypto/rand backed
// default generator.
func Generate(opts Options) (string, error) {
	return NewGenerator().Generate(opts)
}

// randChar picks a uniformly random character from charset. rand.Int rejects
// out-of-range draws internally, so the mapping carries no modulo bias.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.rand, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// redraw retries until it draws a character different from prev. Each retry is
// a fresh uniform draw over the whole charset, so accepted characters stay
// equiprobable over the alphabet minus prev; substituting a fixed fallback
// would skew the distribution.
func (g *Generator) redraw(charset string, prev byte) (byte, error) {
	for attempt := 0; attempt < maxRedraws; attempt++ {
		ch, err := g.randChar(charset)
		if err != nil {
			return 0, err
		}
		if ch != prev {
			return ch, nil
		}
	}
	return 0, errRedrawsExhausted
}

func distinctBytes(s string) int {
	var seen [256]bool
	n := 0
	for i := 0; i < len(s); i++ {
		if !seen[s[i]] {
			seen[s[i]] = true
			n++
		}
	}
	return n
}
