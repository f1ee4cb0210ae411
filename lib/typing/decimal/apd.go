package decimal

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/vireodata/columnar/lib/numbers"
)

// APD returns the value as an [apd.Decimal], the interchange representation
// for decimals crossing the engine boundary (drivers, change feeds).
func (v Value) APD(scale int32) *apd.Decimal {
	mantissa := v.BigInt()
	negative := mantissa.Sign() < 0
	if negative {
		mantissa.Neg(mantissa)
	}

	var coeff apd.BigInt
	coeff.SetMathBigInt(mantissa)

	return &apd.Decimal{
		Negative: negative,
		Exponent: -scale,
		Coeff:    coeff,
	}
}

// FromAPD converts an [apd.Decimal] into a value of the destination
// descriptor. Extra fractional digits truncate toward zero; a coefficient that
// does not fit the destination width fails with [OverflowError].
func FromAPD(value *apd.Decimal, to Details) (Value, error) {
	if value.Form != apd.Finite {
		return Value{}, NewOverflowError(to.Width(), "cannot convert infinity or NaN")
	}

	rescaled := numbers.DecimalWithNewExponent(value, -to.Scale())

	mantissa := new(big.Int).Set(rescaled.Coeff.MathBigInt())
	if rescaled.Negative {
		mantissa.Neg(mantissa)
	}

	if !fitsWidth(mantissa, to.Width()) {
		return Value{}, NewOverflowError(to.Width(), "")
	}

	return valueFromBigInt(to.Width(), mantissa), nil
}
