package decimal

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

var bigTen = big.NewInt(10)

// ReadText consumes a decimal literal from the stream and returns its mantissa
// at exactly the given scale. The literal is an optional sign, integer digits,
// and an optional '.' followed by fraction digits. Fraction digits beyond the
// scale are an error, never silently dropped; fewer are zero-padded. A literal
// whose significant integer digits plus scale exceed the precision fails.
//
// In CSV mode the literal may be wrapped in double quotes. The first byte that
// does not belong to the literal is unread and left for the caller.
func ReadText(r io.ByteScanner, width Width, precision, scale int32, csv bool) (Value, error) {
	mantissa := new(big.Int)

	var (
		negative     bool
		sawDigit     bool
		intDigits    int32
		fracDigits   int32
		quoted       bool
		afterDot     bool
		leadingZeros = true
	)

	b, err := r.ReadByte()
	if err != nil {
		return Value{}, NewParseError("cannot parse decimal: empty input")
	}

	if csv && b == '"' {
		quoted = true
		b, err = r.ReadByte()
		if err != nil {
			return Value{}, NewParseError("cannot parse decimal: unterminated quote")
		}
	}

	if b == '+' || b == '-' {
		negative = b == '-'
		b, err = r.ReadByte()
		if err != nil {
			return Value{}, NewParseError("cannot parse decimal: sign without digits")
		}
	}

	digit := big.NewInt(0)
	for {
		switch {
		case b >= '0' && b <= '9':
			sawDigit = true
			if afterDot {
				if fracDigits == scale {
					return Value{}, NewParseError(fmt.Sprintf("too many digits after the decimal point for scale %d", scale))
				}

				fracDigits++
			} else {
				if b != '0' {
					leadingZeros = false
				}

				if !leadingZeros {
					intDigits++
				}
			}

			mantissa.Mul(mantissa, bigTen)
			mantissa.Add(mantissa, digit.SetInt64(int64(b-'0')))
		case b == '.' && !afterDot:
			afterDot = true
		case quoted && b == '"':
			quoted = false
			goto done
		default:
			if err := r.UnreadByte(); err != nil {
				return Value{}, err
			}

			goto done
		}

		b, err = r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				goto done
			}

			return Value{}, err
		}
	}

done:
	if !sawDigit {
		return Value{}, NewParseError("cannot parse decimal: no digits")
	}

	if quoted {
		return Value{}, NewParseError("cannot parse decimal: unterminated quote")
	}

	if intDigits+scale > precision {
		return Value{}, NewParseError(fmt.Sprintf("value with %d integer digits does not fit precision %d at scale %d", intDigits, precision, scale))
	}

	if fracDigits < scale {
		mantissa.Mul(mantissa, bigPow10(scale-fracDigits))
	}

	if negative {
		mantissa.Neg(mantissa)
	}

	// The precision check already bounds the mantissa whenever the caller's
	// precision respects the width; this guards direct static calls.
	if !fitsWidth(mantissa, width) {
		return Value{}, NewOverflowError(width, "")
	}

	return valueFromBigInt(width, mantissa), nil
}

// TryReadText is the non-raising probe form of [ReadText] for best-effort
// callers such as schema inference.
func TryReadText(r io.ByteScanner, width Width, precision, scale int32) (Value, bool) {
	value, err := ReadText(r, width, precision, scale, false)
	return value, err == nil
}

// ParseFromString parses an entire string with no trailing garbage allowed.
func ParseFromString(value string, details Details) (Value, error) {
	reader := strings.NewReader(value)

	parsed, err := details.ReadText(reader, false)
	if err != nil {
		return Value{}, err
	}

	if reader.Len() != 0 {
		return Value{}, NewParseError(fmt.Sprintf("unexpected trailing characters in %q", value))
	}

	return parsed, nil
}
