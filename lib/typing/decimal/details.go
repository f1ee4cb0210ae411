package decimal

import (
	"fmt"
	"io"

	"github.com/vireodata/columnar/lib/numbers"
)

// Details is a decimal type descriptor: storage width plus declared precision
// and scale. It is constructed once per column instantiation, is immutable,
// and is shared read-only by every value of that column.
type Details struct {
	width     Width
	precision int32
	scale     int32
}

// NewDetails validates 1 <= precision <= width.MaxPrecision() and
// 0 <= scale <= precision.
func NewDetails(width Width, precision, scale int32) (Details, error) {
	if !numbers.BetweenEq(int32(1), width.MaxPrecision(), precision) {
		return Details{}, fmt.Errorf("precision %d is out of range [1, %d] for %s", precision, width.MaxPrecision(), width)
	}

	if !numbers.BetweenEq(int32(0), precision, scale) {
		return Details{}, fmt.Errorf("scale %d is out of range [0, %d] for %s", scale, precision, width)
	}

	return Details{width: width, precision: precision, scale: scale}, nil
}

// MustNewDetails is [NewDetails] for descriptors known to be valid, e.g. fixed
// literals and tests.
func MustNewDetails(width Width, precision, scale int32) Details {
	details, err := NewDetails(width, precision, scale)
	if err != nil {
		panic(err)
	}

	return details
}

// MaxPrecisionDetails builds a descriptor at the width's maximum precision for
// a given scale. Used when the result width is fixed by context, e.g. promotion.
func MaxPrecisionDetails(width Width, scale int32) (Details, error) {
	return NewDetails(width, width.MaxPrecision(), scale)
}

func (d Details) Width() Width {
	return d.width
}

func (d Details) Precision() int32 {
	return d.precision
}

func (d Details) Scale() int32 {
	return d.scale
}

func (d Details) String() string {
	return fmt.Sprintf("Decimal(%d, %d)", d.precision, d.scale)
}

// ReadText consumes a decimal literal from the stream at this descriptor's
// precision and scale.
func (d Details) ReadText(r io.ByteScanner, csv bool) (Value, error) {
	return ReadText(r, d.width, d.precision, d.scale, csv)
}
