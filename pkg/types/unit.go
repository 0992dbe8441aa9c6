package types

import "strings"

// Unit is a bitmask of measurement units carried by numeric property values.
// A concrete value has exactly one bit set; masks with several bits select
// families of units (all lengths, all viewport-relative lengths, ...).
type Unit uint32

const (
	UnitNone    Unit = 0
	UnitNumber  Unit = 1 << iota // unitless number
	UnitPercent                  // %
	UnitPx                       // px
	UnitDp                       // dp (density independent pixel)
	UnitEm                       // em
	UnitRem                      // rem
	UnitVw                       // vw
	UnitVh                       // vh
	UnitVmin                     // vmin
	UnitVmax                     // vmax
	UnitIn                       // in
	UnitCm                       // cm
	UnitMm                       // mm
	UnitPt                       // pt
	UnitPc                       // pc
	UnitDeg                      // deg
	UnitRad                      // rad
	UnitS                        // s
	UnitMs                       // ms
)

// Unit families.
const (
	UnitViewport     = UnitVw | UnitVh | UnitVmin | UnitVmax
	UnitFontRelative = UnitEm | UnitRem
	UnitAbsolute     = UnitPx | UnitDp | UnitIn | UnitCm | UnitMm | UnitPt | UnitPc
	UnitLength       = UnitAbsolute | UnitFontRelative | UnitViewport
	UnitLengthPct    = UnitLength | UnitPercent
	UnitAngle        = UnitDeg | UnitRad
	UnitTime         = UnitS | UnitMs
)

var unitSuffixes = []struct {
	unit   Unit
	suffix string
}{
	// Longer suffixes first so "vmin" is not read as "in".
	{UnitVmin, "vmin"},
	{UnitVmax, "vmax"},
	{UnitRem, "rem"},
	{UnitDeg, "deg"},
	{UnitRad, "rad"},
	{UnitPx, "px"},
	{UnitDp, "dp"},
	{UnitEm, "em"},
	{UnitVw, "vw"},
	{UnitVh, "vh"},
	{UnitIn, "in"},
	{UnitCm, "cm"},
	{UnitMm, "mm"},
	{UnitPt, "pt"},
	{UnitPc, "pc"},
	{UnitMs, "ms"},
	{UnitS, "s"},
	{UnitPercent, "%"},
}

// Has reports whether every bit of o is set in u.
func (u Unit) Has(o Unit) bool {
	return o != 0 && u&o == o
}

// In reports whether u belongs to the family mask.
func (u Unit) In(mask Unit) bool {
	return u != 0 && u&mask == u
}

// String returns the CSS suffix for single units, or a "|"-joined list for masks.
func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "none"
	case UnitNumber:
		return "number"
	}
	var parts []string
	for _, us := range unitSuffixes {
		if u&us.unit != 0 {
			parts = append(parts, us.suffix)
		}
	}
	if u&UnitNumber != 0 {
		parts = append(parts, "number")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// SplitUnit splits a CSS numeric literal such as "12.5px" into its number
// text and unit. A literal without suffix is UnitNumber. The returned ok is
// false when the suffix is not a known unit.
func SplitUnit(s string) (number string, unit Unit, ok bool) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, us := range unitSuffixes {
		if strings.HasSuffix(lower, us.suffix) {
			return s[:len(s)-len(us.suffix)], us.unit, true
		}
	}
	if s == "" {
		return "", UnitNone, false
	}
	last := s[len(s)-1]
	if (last >= '0' && last <= '9') || last == '.' {
		return s, UnitNumber, true
	}
	return s, UnitNone, false
}
