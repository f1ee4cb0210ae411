package typing

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/vireodata/columnar/lib/typing/decimal"
)

// ArrowType maps the decimal descriptor onto the columnar schema type that
// carries it. Widths up to 128 bits ride a 128-bit physical layout; only
// 256-bit decimals need the wider one.
func (d DecimalType) ArrowType() arrow.DataType {
	switch d.details.Width() {
	case decimal.Width256:
		return &arrow.Decimal256Type{Precision: d.details.Precision(), Scale: d.details.Scale()}
	default:
		return &arrow.Decimal128Type{Precision: d.details.Precision(), Scale: d.details.Scale()}
	}
}
