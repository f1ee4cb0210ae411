package decimal

import (
	"math"
	"math/big"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/decimal256"
	"github.com/stretchr/testify/assert"
)

func TestConvert_Rescale(t *testing.T) {
	{
		// Scaling up multiplies the mantissa.
		value, err := Convert(NewValue64(12345), 2, Width64, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(12345000), value.Int64())
	}
	{
		// Scaling down truncates toward zero, -1.25 at scale 2 -> scale 0 is -1.
		value, err := Convert(NewValue64(-125), 2, Width64, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(-1), value.Int64())
	}
	{
		// Same scale is the identity on the mantissa.
		value, err := Convert(NewValue32(987), 3, Width32, 3)
		assert.NoError(t, err)
		assert.Equal(t, int32(987), value.Int32())
	}
	{
		// Scaling down by more digits than the mantissa holds yields zero.
		value, err := Convert(NewValue64(math.MaxInt64), 0, Width64, 0)
		assert.NoError(t, err)
		value, err = Convert(value, 19, Width64, 0)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), value.Int64())
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	{
		// Up then back down reproduces the mantissa exactly.
		up, err := Convert(NewValue64(12345), 2, Width64, 7)
		assert.NoError(t, err)
		down, err := Convert(up, 7, Width64, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(12345), down.Int64())
	}
	{
		// Down then back up must not recover truncated digits.
		down, err := Convert(NewValue64(-125), 2, Width64, 0)
		assert.NoError(t, err)
		up, err := Convert(down, 0, Width64, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(-100), up.Int64())
	}
}

func TestConvert_OverflowBoundary(t *testing.T) {
	{
		// Exactly at the destination maximum succeeds.
		value, err := Convert(NewValue64(math.MaxInt32), 0, Width32, 0)
		assert.NoError(t, err)
		assert.Equal(t, int32(math.MaxInt32), value.Int32())
	}
	{
		// One past the destination maximum fails.
		_, err := Convert(NewValue64(math.MaxInt32+1), 0, Width32, 0)
		assert.ErrorContains(t, err, "Decimal32 convert overflow")
		assert.True(t, IsOverflowError(err))
	}
	{
		// Rescaling right up to the signed max succeeds, one digit further fails.
		value, err := Convert(NewValue32(214748364), 0, Width32, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(2147483640), value.Int32())

		_, err = Convert(NewValue32(214748365), 0, Width32, 1)
		assert.True(t, IsOverflowError(err))
	}
	{
		// The multiply is checked in the 64-bit working type too.
		_, err := Convert(NewValue64(922337203685477581), 0, Width64, 1)
		assert.True(t, IsOverflowError(err))
	}
	{
		// A rescale that cannot be represented even in the working type fails.
		_, err := Convert(NewValue64(1), 0, Width64, 19)
		assert.True(t, IsOverflowError(err))
	}
}

func TestConvert_MixedWidths(t *testing.T) {
	{
		// Narrowing from 128 bits keeps values that fit.
		value, err := Convert(NewValue128(decimal128.FromI64(123456)), 2, Width32, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(123456), value.Int32())
	}
	{
		// Narrowing a mantissa outside the destination range fails and names
		// the destination family.
		_, err := Convert(NewValue128(decimal128.FromI64(math.MaxInt64)), 0, Width32, 0)
		assert.ErrorContains(t, err, "Decimal32 convert overflow")
	}
	{
		// Widening never needs a narrowing check.
		value, err := Convert(NewValue32(-42), 0, Width256, 3)
		assert.NoError(t, err)
		assert.Equal(t, "-42000", value.BigInt().String())
	}
	{
		// 256-bit mantissas survive conversion between wide kinds.
		mantissa := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)
		value, err := Convert(NewValue256(decimal256.FromBigInt(mantissa)), 0, Width256, 2)
		assert.NoError(t, err)
		assert.Equal(t, mantissa.String()+"00", value.BigInt().String())

		// But 10^40 does not fit 128 bits.
		_, err = Convert(NewValue256(decimal256.FromBigInt(mantissa)), 0, Width128, 0)
		assert.ErrorContains(t, err, "Decimal128 convert overflow")
	}
}

func TestConvertTo(t *testing.T) {
	value, err := ConvertTo(NewValue64(12345), 2, MustNewDetails(Width128, 20, 6))
	assert.NoError(t, err)
	assert.Equal(t, Width128, value.Width())
	assert.Equal(t, "123450000", value.BigInt().String())
}

func TestConvert_Decimal128Accessor(t *testing.T) {
	value, err := Convert(NewValue64(-9876543210), 0, Width128, 5)
	assert.NoError(t, err)

	num := value.Decimal128()
	assert.Equal(t, "-987654321000000", num.BigInt().String())
}
