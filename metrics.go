package webfont

// FontCategory classifies a font family, following the categories used by the
// Google Fonts catalog ("serif", "sans-serif", "display", "handwriting",
// "monospace").
type FontCategory string

// Categories relevant for fallback selection. Only CategorySerif influences
// the choice of fallback target; every other category value selects the
// sans-serif fallback.
const (
	CategorySerif     FontCategory = "serif"
	CategorySansSerif FontCategory = "sans-serif"
)

// IsSerif is true for the literal "serif" category tag only.
func (c FontCategory) IsSerif() bool {
	return c == CategorySerif
}

// FontMetrics holds the numeric descriptors of one font family, in font
// design units. The field names and JSON tags follow the capsize metrics
// resource format.
//
// FamilyName, CapHeight and XHeight are carried through from the resource but
// do not participate in the override computation.
type FontMetrics struct {
	FamilyName string       `json:"familyName"`
	Category   FontCategory `json:"category"`
	CapHeight  int32        `json:"capHeight"`
	Ascent     int32        `json:"ascent"`
	Descent    int32        `json:"descent"`
	LineGap    uint32       `json:"lineGap"`
	UnitsPerEm uint32       `json:"unitsPerEm"`
	XHeight    int32        `json:"xHeight"`
	XWidthAvg  float64      `json:"xWidthAvg"`
}

// MetricsTable maps normalized (camelCase) font-family keys to metrics.
// Tables are read-only once constructed; callers share them freely between
// goroutines.
type MetricsTable map[string]FontMetrics

// FallbackFont is a locally installed system font usable as a fallback
// target, together with its metrics.
type FallbackFont struct {
	Name    string
	Metrics FontMetrics
}

// The two generic fallback targets. Their XWidthAvg values are
// frequency-weighted average glyph advances over a-z (not the raw OS/2
// xAvgCharWidth); the override computation depends on these exact values.
// Process-wide constants, never mutated.
var (
	DefaultSerifFont = FallbackFont{
		Name: "Times New Roman",
		Metrics: FontMetrics{
			FamilyName: "Times New Roman",
			Category:   CategorySerif,
			CapHeight:  1341,
			Ascent:     1825,
			Descent:    -443,
			LineGap:    87,
			UnitsPerEm: 2048,
			XHeight:    916,
			XWidthAvg:  854.3953488372093,
		},
	}
	DefaultSansSerifFont = FallbackFont{
		Name: "Arial",
		Metrics: FontMetrics{
			FamilyName: "Arial",
			Category:   CategorySansSerif,
			CapHeight:  1467,
			Ascent:     1854,
			Descent:    -434,
			LineGap:    67,
			UnitsPerEm: 2048,
			XHeight:    1062,
			XWidthAvg:  934.5116279069767,
		},
	}
)
