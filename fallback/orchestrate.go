package fallback

import (
	"fmt"

	"github.com/npillmayer/webfont"
)

// Options configure fallback computation for one requested web font.
type Options struct {
	// FontFamily is the human-readable family name, e.g. "Roboto Slab".
	FontFamily string
	// Fallback, if non-empty, is a manual fallback list supplied by the user.
	// It bypasses all computation.
	Fallback []string
	// AdjustFontFallback enables derivation of the metric override values.
	// When false an automatic result carries no adjustment.
	AdjustFontFallback bool
	// Path is the context reported with issues, typically the stylesheet or
	// configuration file the font request came from. May be empty.
	Path string
}

// TableLoader obtains the font metrics table. Loading may involve I/O and is
// allowed to fail; GetFallback treats any error as "no metrics available".
// Package capsize provides implementations.
type TableLoader interface {
	Table() (webfont.MetricsTable, error)
}

// LoaderFunc adapts a plain function to the TableLoader interface.
type LoaderFunc func() (webfont.MetricsTable, error)

// Table calls f.
func (f LoaderFunc) Table() (webfont.MetricsTable, error) {
	return f()
}

// ResultKind discriminates the three outcomes of a fallback computation.
type ResultKind int

const (
	// Unavailable: no fallback could be computed. The caller proceeds
	// without one.
	Unavailable ResultKind = iota
	// Manual: the user supplied an explicit fallback list.
	Manual
	// Automatic: a fallback was selected and described by this package.
	Automatic
)

// Result is the outcome of a fallback computation. Kind selects which of the
// remaining fields are meaningful: Families for Manual; ScopedFamilyName,
// LocalFamilyName and Adjustment for Automatic; none for Unavailable.
type Result struct {
	Kind             ResultKind
	Families         []string        // manual fallback list, in user order
	ScopedFamilyName string          // generated CSS family name for the fallback
	LocalFamilyName  string          // name of the local system font, e.g. "Arial"
	Adjustment       *FontAdjustment // nil unless Options.AdjustFontFallback
}

// GetFallback computes the fallback descriptor for one web font request.
//
// A non-empty manual fallback list in opts wins unconditionally. Otherwise
// the metrics table is obtained from loader and the requested family resolved
// against it; failure to load the table, a missing family, or degenerate
// metrics all degrade to an Unavailable result — GetFallback never returns an
// error. A missing family and degenerate metrics are additionally reported
// through the issue sink with warning severity.
//
// scoped may be nil, in which case ScopedFamilyName is used; issues may be
// nil, in which case diagnostics go to the package tracer.
func GetFallback(opts Options, loader TableLoader, requestHash uint32,
	scoped ScopedNameFunc, issues IssueSink) Result {
	//
	if scoped == nil {
		scoped = ScopedFamilyName
	}
	if issues == nil {
		issues = TraceSink{}
	}
	if len(opts.Fallback) > 0 {
		families := make([]string, len(opts.Fallback))
		copy(families, opts.Fallback)
		return Result{Kind: Manual, Families: families}
	}
	table, err := loader.Table()
	if err != nil {
		tracer().Infof("font metrics table unavailable: %v", err)
		return Result{Kind: Unavailable}
	}
	metrics, fb, err := Resolve(opts.FontFamily, table)
	if err != nil {
		issues.Report(Issue{
			Path:        opts.Path,
			Title:       fmt.Sprintf("Failed to find font override values for font `%s`", opts.FontFamily),
			Description: "Skipping generating a fallback font.",
			Severity:    SeverityWarning,
		})
		return Result{Kind: Unavailable}
	}
	var adjustment *FontAdjustment
	if opts.AdjustFontFallback {
		adj := ComputeAdjustment(metrics, fb.Metrics)
		if !adj.IsValid() {
			issues.Report(Issue{
				Path:        opts.Path,
				Title:       fmt.Sprintf("Failed to find font override values for font `%s`", opts.FontFamily),
				Description: "Font metrics yield degenerate override values. Skipping generating a fallback font.",
				Severity:    SeverityWarning,
			})
			return Result{Kind: Unavailable}
		}
		adjustment = &adj
	}
	return Result{
		Kind:             Automatic,
		ScopedFamilyName: scoped(FallbackFamily, opts.FontFamily, requestHash),
		LocalFamilyName:  fb.Name,
		Adjustment:       adjustment,
	}
}
