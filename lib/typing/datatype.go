package typing

import (
	"math"

	"github.com/vireodata/columnar/lib/typing/decimal"
)

// ScaleUnknown is returned by [GetDecimalScale] when the probed type is not a
// decimal of any width.
const ScaleUnknown int32 = math.MaxInt32

// DecimalFamilyName is the family tag used in diagnostics for every decimal
// width.
const DecimalFamilyName = "Decimal"

// DataType is a runtime type descriptor. Implementations are immutable after
// construction and may be read concurrently without synchronization.
type DataType interface {
	Name() string
	Equal(other DataType) bool
}

// DecimalType is the descriptor for Decimal(P, S) columns of any storage width.
type DecimalType struct {
	details decimal.Details
}

func NewDecimalType(width decimal.Width, precision, scale int32) (DecimalType, error) {
	details, err := decimal.NewDetails(width, precision, scale)
	if err != nil {
		return DecimalType{}, err
	}

	return DecimalType{details: details}, nil
}

func NewDecimalTypeFromDetails(details decimal.Details) DecimalType {
	return DecimalType{details: details}
}

func (d DecimalType) Name() string {
	return d.details.String()
}

func (d DecimalType) FamilyName() string {
	return DecimalFamilyName
}

func (d DecimalType) Equal(other DataType) bool {
	otherDecimal, ok := other.(DecimalType)
	return ok && otherDecimal.details == d.details
}

func (d DecimalType) Details() decimal.Details {
	return d.details
}

// Promote returns the numeric promotion of this type: at least 128-bit storage
// at the width's maximum precision, keeping the scale. Used to pick a type
// that can safely hold operation results.
func (d DecimalType) Promote() DecimalType {
	width := d.details.Width()
	if width.Bits() < 128 {
		width = decimal.Width128
	}

	// Scale <= precision <= MaxPrecision already holds, so this cannot fail.
	details, err := decimal.MaxPrecisionDetails(width, d.details.Scale())
	if err != nil {
		panic(err)
	}

	return DecimalType{details: details}
}

// CreateDecimalMaxPrecision builds a decimal type at the width's maximum
// precision for the given scale.
func CreateDecimalMaxPrecision(width decimal.Width, scale int32) (DecimalType, error) {
	details, err := decimal.MaxPrecisionDetails(width, scale)
	if err != nil {
		return DecimalType{}, err
	}

	return DecimalType{details: details}, nil
}

// decimalCapable is the capability probe interface: any descriptor that can
// report decimal details counts, without branching on a stored kind tag.
type decimalCapable interface {
	Details() decimal.Details
}

// CheckDecimal reports whether the descriptor is a decimal of the given width,
// returning its details when it is.
func CheckDecimal(dataType DataType, width decimal.Width) (decimal.Details, bool) {
	capable, ok := dataType.(decimalCapable)
	if !ok {
		return decimal.Details{}, false
	}

	details := capable.Details()
	if details.Width() != width {
		return decimal.Details{}, false
	}

	return details, true
}

// GetDecimalPrecision returns the precision of a decimal descriptor of any
// width, or 0 when the type is not a decimal.
func GetDecimalPrecision(dataType DataType) int32 {
	for _, width := range decimal.Widths {
		if details, ok := CheckDecimal(dataType, width); ok {
			return details.Precision()
		}
	}

	return 0
}

// GetDecimalScale returns the scale of a decimal descriptor of any width, or
// [ScaleUnknown] when the type is not a decimal.
func GetDecimalScale(dataType DataType) int32 {
	for _, width := range decimal.Widths {
		if details, ok := CheckDecimal(dataType, width); ok {
			return details.Scale()
		}
	}

	return ScaleUnknown
}

// DecimalResultType derives the descriptor for the result of a binary
// operation between two decimals. The result scale is the larger operand
// scale; each operand's natural precision requirement is its precision plus
// the digits needed to rescale it to the result scale, and the result width is
// the narrowest kind covering both operand widths and the larger requirement.
// When even the widest kind cannot carry it, precision is clamped to the
// maximum and the second return is true so the caller can surface the loss.
func DecimalResultType(lhs, rhs decimal.Details) (decimal.Details, bool) {
	scale := max(lhs.Scale(), rhs.Scale())
	natural := max(
		lhs.Precision()+(scale-lhs.Scale()),
		rhs.Precision()+(scale-rhs.Scale()),
	)

	width := lhs.Width()
	if rhs.Width().Bits() > width.Bits() {
		width = rhs.Width()
	}

	for width != decimal.Width256 && natural > width.MaxPrecision() {
		width++
	}

	var precisionLoss bool
	if natural > width.MaxPrecision() {
		natural = width.MaxPrecision()
		precisionLoss = true
		if scale > natural {
			scale = natural
		}
	}

	return decimal.MustNewDetails(width, natural, scale), precisionLoss
}
