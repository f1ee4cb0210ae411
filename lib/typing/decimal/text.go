package decimal

import "strings"

// AppendText renders mantissa / 10^scale onto dst: sign, integer digits, and
// exactly scale fraction digits. Round-trips with [ReadText].
func AppendText(dst []byte, value Value, scale int32) []byte {
	mantissa := value.BigInt()
	if mantissa.Sign() < 0 {
		dst = append(dst, '-')
		mantissa.Neg(mantissa)
	}

	digits := mantissa.String()
	if scale == 0 {
		return append(dst, digits...)
	}

	if pad := int(scale) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	split := len(digits) - int(scale)
	dst = append(dst, digits[:split]...)
	dst = append(dst, '.')
	return append(dst, digits[split:]...)
}

// Text renders the value as a string at the given scale.
func (v Value) Text(scale int32) string {
	return string(AppendText(nil, v, scale))
}
