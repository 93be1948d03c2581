/*
Package fallback selects a system fallback font for a requested web font and
derives the CSS metric override values that make the fallback's rendering
approximate the requested font.

The entry point is GetFallback. The building blocks — FamilyKey, Resolve and
ComputeAdjustment — are exported for clients that manage the metrics table
themselves.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fallback

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webfont"
)

// tracer writes to trace with key 'webfont.fallback'
func tracer() tracing.Trace {
	return tracing.Select("webfont.fallback")
}

// ErrFontNotFound flags a font family without an entry in the metrics table.
var ErrFontNotFound = errors.New("font not found in metrics table")

// Resolve looks up a font family in a metrics table and selects the fallback
// target for it: Times New Roman for serif families, Arial for everything
// else. The family name is normalized with FamilyKey before the lookup.
//
// Returns ErrFontNotFound (wrapped) if the normalized name has no table
// entry.
func Resolve(family string, table webfont.MetricsTable) (webfont.FontMetrics, webfont.FallbackFont, error) {
	key := FamilyKey(family)
	metrics, ok := table[key]
	if !ok {
		tracer().Debugf("no metrics entry %q for font family %q", key, family)
		return webfont.FontMetrics{}, webfont.FallbackFont{}, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	fb := webfont.DefaultSansSerifFont
	if metrics.Category.IsSerif() {
		fb = webfont.DefaultSerifFont
	}
	return metrics, fb, nil
}

// FontAdjustment holds CSS metric override values for a fallback font.
// Ascent, Descent and LineGap are fractions of an em; Descent keeps the sign
// of the underlying metric and is usually negative. SizeAdjust is a unitless
// scale factor.
type FontAdjustment struct {
	Ascent     float64
	Descent    float64
	LineGap    float64
	SizeAdjust float64
}

// ComputeAdjustment derives the override values that scale a fallback font to
// the proportions of the requested font. SizeAdjust matches the two fonts'
// average glyph widths; the vertical metrics of the requested font are then
// expressed as em fractions at the adjusted size.
//
// This is the raw formula: a zero fallback XWidthAvg or a zero UnitsPerEm
// propagates as ±Inf or NaN. Use FontAdjustment.IsValid to screen results
// when the inputs are not trusted; GetFallback does.
func ComputeAdjustment(requested, fallback webfont.FontMetrics) FontAdjustment {
	mainAvgWidth := requested.XWidthAvg / float64(requested.UnitsPerEm)
	fallbackAvgWidth := fallback.XWidthAvg / float64(fallback.UnitsPerEm)
	sizeAdjust := mainAvgWidth / fallbackAvgWidth
	scale := float64(requested.UnitsPerEm) * sizeAdjust
	return FontAdjustment{
		Ascent:     float64(requested.Ascent) / scale,
		Descent:    float64(requested.Descent) / scale,
		LineGap:    float64(requested.LineGap) / scale,
		SizeAdjust: sizeAdjust,
	}
}

// IsValid reports whether all override values are finite and the size
// adjustment is positive, i.e. whether the adjustment is usable in a CSS
// @font-face rule.
func (adj FontAdjustment) IsValid() bool {
	for _, v := range []float64{adj.Ascent, adj.Descent, adj.LineGap, adj.SizeAdjust} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return adj.SizeAdjust > 0
}
