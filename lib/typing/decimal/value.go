package decimal

import (
	"math/big"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/decimal256"
)

// Value is a decimal mantissa tagged with its storage width. The represented
// number is mantissa / 10^scale, where scale lives on the owning [Details] and
// is never stored here.
//
// The mantissa is kept sign-extended in a 256-bit two's complement integer so
// that one representation serves all four widths; the width tag bounds the
// range the mantissa is allowed to occupy. Value is a plain value type and is
// safe to copy and to read from any number of goroutines.
type Value struct {
	width Width
	num   decimal256.Num
}

func NewValue32(mantissa int32) Value {
	return Value{width: Width32, num: decimal256.FromI64(int64(mantissa))}
}

func NewValue64(mantissa int64) Value {
	return Value{width: Width64, num: decimal256.FromI64(mantissa)}
}

func NewValue128(mantissa decimal128.Num) Value {
	return Value{width: Width128, num: decimal256.FromDecimal128(mantissa)}
}

func NewValue256(mantissa decimal256.Num) Value {
	return Value{width: Width256, num: mantissa}
}

func (v Value) Width() Width {
	return v.width
}

// Int32 returns the mantissa of a [Width32] value. The width invariant
// guarantees the low word is the whole number.
func (v Value) Int32() int32 {
	return int32(v.Int64())
}

func (v Value) Int64() int64 {
	return int64(v.num.LowBits())
}

func (v Value) Decimal128() decimal128.Num {
	arr := v.num.Array()
	return decimal128.New(int64(arr[1]), arr[0])
}

func (v Value) Decimal256() decimal256.Num {
	return v.num
}

// BigInt returns the mantissa as a freshly allocated [big.Int].
func (v Value) BigInt() *big.Int {
	return v.num.BigInt()
}

func (v Value) Sign() int {
	return v.num.Sign()
}

// valueFromBigInt packs a mantissa known to fit the width's signed range.
func valueFromBigInt(width Width, mantissa *big.Int) Value {
	return Value{width: width, num: decimal256.FromBigInt(mantissa)}
}
