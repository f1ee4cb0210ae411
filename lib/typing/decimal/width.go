package decimal

import "fmt"

// Width denotes which signed integer size backs a decimal mantissa.
type Width int

const (
	Width32 Width = iota
	Width64
	Width128
	Width256
)

// Widths lists every storage width from narrowest to widest.
var Widths = []Width{Width32, Width64, Width128, Width256}

func (w Width) Bits() int {
	switch w {
	case Width32:
		return 32
	case Width64:
		return 64
	case Width128:
		return 128
	case Width256:
		return 256
	default:
		panic(fmt.Sprintf("unexpected decimal width: %d", int(w)))
	}
}

// MaxPrecision returns the most significant digits the width can hold.
// Int32 9, Int64 18, Int128 38, Int256 76.
func (w Width) MaxPrecision() int32 {
	switch w {
	case Width32:
		return 9
	case Width64:
		return 18
	case Width128:
		return 38
	case Width256:
		return 76
	default:
		panic(fmt.Sprintf("unexpected decimal width: %d", int(w)))
	}
}

func (w Width) String() string {
	switch w {
	case Width32:
		return "Decimal32"
	case Width64:
		return "Decimal64"
	case Width128:
		return "Decimal128"
	case Width256:
		return "Decimal256"
	default:
		return fmt.Sprintf("Decimal(width=%d)", int(w))
	}
}
