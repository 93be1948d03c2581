package fallback

import (
	"fmt"
	"math"
	"strings"
)

// FontFace renders an Automatic result into a CSS @font-face rule declaring
// the scoped fallback family backed by the local system font, with metric
// override descriptors if the result carries an adjustment. Override values
// are percentages rounded to two decimals; CSS requires them non-negative, so
// the descent override loses its sign here.
//
// Manual and Unavailable results render to the empty string — a manual list
// goes into the font-family chain (see FamilyList), not into an @font-face
// rule.
func (res Result) FontFace() string {
	if res.Kind != Automatic {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("@font-face {\n")
	fmt.Fprintf(&sb, "  font-family: '%s';\n", res.ScopedFamilyName)
	fmt.Fprintf(&sb, "  src: local(\"%s\");\n", res.LocalFamilyName)
	if adj := res.Adjustment; adj != nil {
		fmt.Fprintf(&sb, "  ascent-override: %s;\n", percent(adj.Ascent))
		fmt.Fprintf(&sb, "  descent-override: %s;\n", percent(adj.Descent))
		fmt.Fprintf(&sb, "  line-gap-override: %s;\n", percent(adj.LineGap))
		fmt.Fprintf(&sb, "  size-adjust: %s;\n", percent(adj.SizeAdjust))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// FamilyList renders the font-family chain contributed by this result: the
// scoped fallback family for Automatic results, the user's list for Manual
// ones, empty for Unavailable. Names containing spaces are quoted.
func (res Result) FamilyList() string {
	switch res.Kind {
	case Automatic:
		return quoteFamily(res.ScopedFamilyName)
	case Manual:
		quoted := make([]string, len(res.Families))
		for i, fam := range res.Families {
			quoted[i] = quoteFamily(fam)
		}
		return strings.Join(quoted, ", ")
	}
	return ""
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", math.Abs(v*100))
}

func quoteFamily(family string) string {
	if strings.ContainsAny(family, " \t") {
		return "'" + family + "'"
	}
	return family
}
