package entities

import (
	"math"
	"strconv"
	"strings"
)

// Centavos is a monetary amount in integer minor units (1 peso = 100 centavos).
//
// Amounts are kept as fixed-point integers end to end; conversion to and from
// decimal numbers happens only at the JSON boundary.

type Centavos int64

// CentavosFromFloat converts a decimal peso amount to centavos, rounding half
// away from zero.
func CentavosFromFloat(v float64) Centavos {
	return Centavos(math.Round(v * 100))
}

// Float returns the decimal peso value of the amount.
func (c Centavos) Float() float64 {
	return float64(c) / 100
}

// Format renders the amount for receipts and tables: thousands separators on
// the integer part, fractional centavos only when present (1,500 not 1,500.00;
// 1,500.5 keeps its fraction).
func (c Centavos) Format() string {
	v := int64(c)
	negative := v < 0
	if negative {
		v = -v
	}

	whole := v / 100
	frac := v % 100

	out := groupThousands(strconv.FormatInt(whole, 10))
	if frac != 0 {
		dec := strconv.FormatInt(frac, 10)
		if frac < 10 {
			dec = "0" + dec
		}
		dec = strings.TrimRight(dec, "0")
		out += "." + dec
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupThousands inserts commas every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}
