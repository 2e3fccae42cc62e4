package textcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedMode is returned by Render for alphabet-based modes and
// unknown mode values.
var ErrUnsupportedMode = errors.New("textcodec: unsupported render mode")

// Mode selects how Render turns text into a digit string.
type Mode int

const (
	// NaiveBinary renders UTF-16LE bytes with BinaryDigits (no zero padding).
	NaiveBinary Mode = iota
	// AlphabetChars would render characters through an encoding alphabet.
	AlphabetChars
	// AlphabetBits would render alphabet-coded bits.
	AlphabetBits
	// ByteBits renders UTF-16LE bytes as fixed 8-digit groups.
	ByteBits
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case NaiveBinary:
		return "naive"
	case AlphabetChars:
		return "alpha-chars"
	case AlphabetBits:
		return "alpha-bits"
	case ByteBits:
		return "bytes"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode maps a Mode name (see Mode.String) back to its value.
func ParseMode(s string) (Mode, error) {
	for m := NaiveBinary; m <= ByteBits; m++ {
		if m.String() == s {
			return m, nil
		}
	}

	return 0, fmt.Errorf("textcodec.ParseMode(%q): %w", s, ErrUnsupportedMode)
}

// ConcatDecimal joins the decimal form of every element with no separator,
// e.g. [0 -1 4] -> "0-14".
func ConcatDecimal(sig []int) string {
	var sb strings.Builder
	for _, v := range sig {
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// BinaryDigits concatenates the base-2 form of every byte without padding.
func BinaryDigits(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteString(strconv.FormatUint(uint64(v), 2))
	}

	return sb.String()
}

// PaddedBinaryDigits concatenates every byte as exactly width base-2 digits,
// most significant bit first. width is clamped to [1, 8].
func PaddedBinaryDigits(b []byte, width int) string {
	if width < 1 {
		width = 1
	}
	if width > 8 {
		width = 8
	}
	var sb strings.Builder
	sb.Grow(len(b) * width)
	for _, v := range b {
		for bit := width - 1; bit >= 0; bit-- {
			if v&(1<<uint(bit)) != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}

	return sb.String()
}

// UTF16LE returns s encoded as little-endian UTF-16 without a byte order mark.
func UTF16LE(s string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("textcodec.UTF16LE: %w", err)
	}

	return b, nil
}

// Chars splits s into its characters.
func Chars(s string) []rune { return []rune(s) }

// Render converts s into a digit string according to mode.
//
// Errors:
//   - ErrUnsupportedMode for AlphabetChars, AlphabetBits and unknown modes.
func Render(s string, mode Mode) (string, error) {
	switch mode {
	case NaiveBinary, ByteBits:
		b, err := UTF16LE(s)
		if err != nil {
			return "", err
		}
		if mode == ByteBits {
			return PaddedBinaryDigits(b, 8), nil
		}
		return BinaryDigits(b), nil
	default:
		return "", fmt.Errorf("textcodec.Render(%s): %w", mode, ErrUnsupportedMode)
	}
}
