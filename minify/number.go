package minify

import (
	"strings"

	"github.com/andrewstuart/csstok/token"
)

// safeZeroUnits are length units for which a zero value may drop its unit
// entirely ("0px" -> "0"), since a bare zero length is unambiguous in CSS
// regardless of which length unit it would otherwise carry. Angle, time,
// resolution, and frequency units are deliberately excluded: "0deg" and
// "0s" are not generally interchangeable with a bare "0" in property
// contexts that accept only those unit families.
var safeZeroUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "vh": true, "vw": true,
	"pt": true, "pc": true, "in": true, "cm": true, "mm": true,
	"ex": true, "ch": true, "q": true,
}

// rewriteNumber trims a NUMBER/PERCENTAGE/DIMENSION token's numeric text:
// drop a leading zero before the decimal point, drop trailing zeros after
// it (and the point itself if nothing remains), and for DIMENSION tokens
// whose trimmed value is exactly "0" in a safeZeroUnits unit, drop the unit
// too (scenario S2).
func rewriteNumber(t *token.Token) {
	switch t.Kind {
	case token.Number:
		if trimmed := trimDigits(string(t.Data)); trimmed != string(t.Data) {
			t.SetUser([]byte(trimmed))
		}

	case token.Percentage:
		numText := string(t.Data[:len(t.Data)-len(t.Info)])
		trimmed := trimDigits(numText) + string(t.Info)
		if trimmed != string(t.Data) {
			t.SetUser([]byte(trimmed))
		}

	case token.Dimension:
		numText := string(t.Data[:len(t.Data)-len(t.Info)])
		unit := string(t.Info)
		trimmed := trimDigits(numText)
		if trimmed == "0" && safeZeroUnits[strings.ToLower(unit)] {
			t.SetUser([]byte("0"))
			return
		}
		out := trimmed + unit
		if out != string(t.Data) {
			t.SetUser([]byte(out))
		}
	}
}

// trimDigits implements the leading/trailing zero trimming shared by all
// three numeric kinds, operating on the numeric text alone (sign and digits,
// no unit or percent sign). An exponent part is carried over unchanged.
func trimDigits(s string) string {
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = s[:1]
		}
		s = s[1:]
	}
	exp := ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s, exp = s[:i], s[i:]
	}

	intPart, fracPart, hasFrac := s, "", false
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart, hasFrac = s[:i], s[i+1:], true
	}
	if hasFrac {
		fracPart = strings.TrimRight(fracPart, "0")
	}
	intPart = strings.TrimLeft(intPart, "0")

	out := sign + intPart
	if hasFrac && fracPart != "" {
		out += "." + fracPart
	}
	if out == sign {
		out = sign + "0"
	}
	return out + exp
}
