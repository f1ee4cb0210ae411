package decimal

import (
	"math"
	"math/big"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/decimal256"
)

type floatBounds struct {
	min float64
	max float64
}

// FromFloat64 converts a floating value into a mantissa at the given scale.
// Non-finite inputs and values outside the destination's signed range fail
// with [OverflowError]; the fractional remainder truncates toward zero.
func FromFloat64(value float64, toWidth Width, scale int32) (Value, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Value{}, NewOverflowError(toWidth, "cannot convert infinity or NaN")
	}

	out := value * math.Pow10(int(scale))

	// The comparison stays in the float domain so it cannot itself overflow.
	bounds := floatSignedBounds[toWidth]
	if out <= bounds.min || out >= bounds.max {
		return Value{}, NewOverflowError(toWidth, "float is out of decimal range")
	}

	if toWidth.Bits() <= 64 {
		mantissa := int64(out)
		if toWidth == Width32 {
			return NewValue32(int32(mantissa)), nil
		}

		return NewValue64(mantissa), nil
	}

	// [big.Float.Int] truncates toward zero.
	mantissa, _ := big.NewFloat(out).Int(nil)
	return valueFromBigInt(toWidth, mantissa), nil
}

// FromInt64 converts a native signed integer into a mantissa at the given
// scale, reusing the overflow-checked conversion path.
func FromInt64(value int64, toWidth Width, scale int32) (Value, error) {
	return Convert(NewValue64(value), 0, toWidth, scale)
}

// FromUint64 widens through 128 bits first since the top half of uint64 does
// not fit a signed 64-bit mantissa.
func FromUint64(value uint64, toWidth Width, scale int32) (Value, error) {
	return Convert(NewValue128(decimal128.FromU64(value)), 0, toWidth, scale)
}

// FromBigInt converts an arbitrary integer through the widest storage kind.
func FromBigInt(value *big.Int, toWidth Width, scale int32) (Value, error) {
	if !fitsWidth(value, Width256) {
		return Value{}, NewOverflowError(toWidth, "")
	}

	return Convert(NewValue256(decimal256.FromBigInt(value)), 0, toWidth, scale)
}

// ToFloat64 returns mantissa / 10^scale as a floating value.
func ToFloat64(value Value, scale int32) float64 {
	return value.Decimal256().ToFloat64(scale)
}

// ToInt64 truncates the fractional part. The caller owns the target range;
// wider sources should be narrowed through [Convert] first.
func ToInt64(value Value, scale int32) int64 {
	if value.Width().Bits() <= 64 {
		mantissa := value.Int64()
		if scale == 0 {
			return mantissa
		}

		if int(scale) >= len(pow10Int64) {
			return 0
		}

		return mantissa / pow10Int64[scale]
	}

	mantissa := value.BigInt()
	return mantissa.Quo(mantissa, bigPow10(scale)).Int64()
}
