package decimal

import (
	"math"
	"math/big"
)

// pow10Int64 covers every power of ten an int64 mantissa can hold.
var pow10Int64 = [19]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

type widthBounds struct {
	min *big.Int
	max *big.Int
}

// signedBounds holds the exact signed min/max per width, indexed by [Width].
// floatSignedBounds is the float64 rendering of the same bounds, used to
// range-check float conversions before any integer cast.
var (
	signedBounds      [4]widthBounds
	floatSignedBounds [4]floatBounds
)

func init() {
	for _, width := range Widths {
		max := new(big.Int).Lsh(big.NewInt(1), uint(width.Bits()-1))
		min := new(big.Int).Neg(max)
		max.Sub(max, big.NewInt(1))
		signedBounds[width] = widthBounds{min: min, max: max}

		minFloat, _ := new(big.Float).SetInt(min).Float64()
		maxFloat, _ := new(big.Float).SetInt(max).Float64()
		floatSignedBounds[width] = floatBounds{min: minFloat, max: maxFloat}
	}
}

func fitsWidth(mantissa *big.Int, width Width) bool {
	bounds := signedBounds[width]
	return mantissa.Cmp(bounds.min) >= 0 && mantissa.Cmp(bounds.max) <= 0
}

func bigPow10(n int32) *big.Int {
	if n >= 0 && int(n) < len(pow10Int64) {
		return big.NewInt(pow10Int64[n])
	}

	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func mulInt64Checked(a, b int64) (int64, bool) {
	if a == 0 {
		return 0, true
	}

	product := a * b
	if product/a != b {
		return 0, false
	}

	return product, true
}

// Convert rescales a decimal mantissa from scaleFrom to scaleTo and moves it
// to the destination width, detecting overflow exactly.
//
// Scaling up multiplies by 10^(scaleTo-scaleFrom) with overflow-checked
// arithmetic in the wider of the two widths; scaling down divides with
// truncation toward zero and never overflows on its own. When the destination
// is narrower than the source, the result is range-checked against the
// destination's signed bounds. Both scales must be non-negative.
func Convert(value Value, scaleFrom int32, toWidth Width, scaleTo int32) (Value, error) {
	if value.Width().Bits() <= 64 && toWidth.Bits() <= 64 {
		return convertSmall(value, scaleFrom, toWidth, scaleTo)
	}

	return convertBig(value, scaleFrom, toWidth, scaleTo)
}

// ConvertTo converts into a destination descriptor's width and scale.
func ConvertTo(value Value, scaleFrom int32, to Details) (Value, error) {
	return Convert(value, scaleFrom, to.Width(), to.Scale())
}

// convertSmall handles conversions whose working width fits native int64.
func convertSmall(value Value, scaleFrom int32, toWidth Width, scaleTo int32) (Value, error) {
	mantissa := value.Int64()

	switch {
	case scaleTo > scaleFrom:
		delta := scaleTo - scaleFrom
		if int(delta) >= len(pow10Int64) {
			return Value{}, NewOverflowError(toWidth, "")
		}

		product, ok := mulInt64Checked(mantissa, pow10Int64[delta])
		if !ok {
			return Value{}, NewOverflowError(toWidth, "")
		}

		mantissa = product
	case scaleTo < scaleFrom:
		delta := scaleFrom - scaleTo
		if int(delta) >= len(pow10Int64) {
			// The divisor exceeds any int64 mantissa, quotient truncates to zero.
			mantissa = 0
		} else {
			mantissa /= pow10Int64[delta]
		}
	}

	if toWidth == Width32 && (mantissa < math.MinInt32 || mantissa > math.MaxInt32) {
		return Value{}, NewOverflowError(toWidth, "")
	}

	if toWidth == Width32 {
		return NewValue32(int32(mantissa)), nil
	}

	return NewValue64(mantissa), nil
}

func convertBig(value Value, scaleFrom int32, toWidth Width, scaleTo int32) (Value, error) {
	mantissa := value.BigInt()

	switch {
	case scaleTo > scaleFrom:
		mantissa.Mul(mantissa, bigPow10(scaleTo-scaleFrom))
	case scaleTo < scaleFrom:
		// [big.Int.Quo] truncates toward zero.
		mantissa.Quo(mantissa, bigPow10(scaleFrom-scaleTo))
	}

	if !fitsWidth(mantissa, toWidth) {
		return Value{}, NewOverflowError(toWidth, "")
	}

	return valueFromBigInt(toWidth, mantissa), nil
}
