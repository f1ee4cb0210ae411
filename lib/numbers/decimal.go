package numbers

import "github.com/cockroachdb/apd/v3"

// MustParseDecimal parses a string to an [apd.Decimal] or panics -- used for tests.
func MustParseDecimal(value string) *apd.Decimal {
	decimal, _, err := apd.NewFromString(value)
	if err != nil {
		panic(err)
	}
	return decimal
}

func powerOfTen(exponent int64) *apd.BigInt {
	return new(apd.BigInt).Exp(apd.NewBigInt(10), apd.NewBigInt(exponent), nil)
}

// DecimalWithNewExponent returns a copy of the decimal moved to the given
// exponent. Extra digits at a coarser exponent are truncated, never rounded.
func DecimalWithNewExponent(decimal *apd.Decimal, newExponent int32) *apd.Decimal {
	exponentDelta := newExponent - decimal.Exponent // Exponent is negative.

	if exponentDelta == 0 {
		return new(apd.Decimal).Set(decimal)
	}

	coefficient := new(apd.BigInt).Set(&decimal.Coeff)

	if exponentDelta < 0 {
		coefficient.Mul(coefficient, powerOfTen(int64(-exponentDelta)))
	} else {
		// The coefficient is an absolute value, so this truncates toward zero.
		coefficient.Div(coefficient, powerOfTen(int64(exponentDelta)))
	}

	return &apd.Decimal{
		Form:     decimal.Form,
		Negative: decimal.Negative,
		Exponent: newExponent,
		Coeff:    *coefficient,
	}
}
