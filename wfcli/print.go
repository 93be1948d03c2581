package main

import (
	"fmt"
	"sort"

	"github.com/npillmayer/webfont"
	"github.com/npillmayer/webfont/fallback"
	"github.com/pterm/pterm"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func printFamilyList(table webfont.MetricsTable) {
	entries := make([]webfont.FontMetrics, 0, len(table))
	for _, m := range table {
		entries = append(entries, m)
	}
	coll := collate.New(language.English)
	sort.Slice(entries, func(i, j int) bool {
		return coll.CompareString(entries[i].FamilyName, entries[j].FamilyName) < 0
	})
	data := [][]string{
		{"Family", "Category", "UnitsPerEm"},
	}
	for _, m := range entries {
		data = append(data, []string{m.FamilyName, string(m.Category), fmt.Sprintf("%d", m.UnitsPerEm)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printMetrics(table webfont.MetricsTable, family string) {
	key := fallback.FamilyKey(family)
	m, ok := table[key]
	if !ok {
		pterm.Error.Printf("no metrics entry for '%s' (key '%s')\n", family, key)
		return
	}
	data := [][]string{
		{"Metric", "Value"},
		{"familyName", m.FamilyName},
		{"category", string(m.Category)},
		{"capHeight", fmt.Sprintf("%d", m.CapHeight)},
		{"ascent", fmt.Sprintf("%d", m.Ascent)},
		{"descent", fmt.Sprintf("%d", m.Descent)},
		{"lineGap", fmt.Sprintf("%d", m.LineGap)},
		{"unitsPerEm", fmt.Sprintf("%d", m.UnitsPerEm)},
		{"xHeight", fmt.Sprintf("%d", m.XHeight)},
		{"xWidthAvg", fmt.Sprintf("%g", m.XWidthAvg)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printFallback(res fallback.Result, adjust bool) {
	switch res.Kind {
	case fallback.Unavailable:
		pterm.Println("no fallback available")
		return
	case fallback.Manual:
		pterm.Printf("manual fallback: %s\n", res.FamilyList())
		return
	}
	pterm.Printf("fallback font:  %s\n", res.LocalFamilyName)
	pterm.Printf("scoped family:  %s\n", res.ScopedFamilyName)
	if res.Adjustment == nil {
		if adjust {
			pterm.Println("no adjustment computed")
		}
		return
	}
	adj := res.Adjustment
	data := [][]string{
		{"Override", "Value"},
		{"ascent-override", fmt.Sprintf("%.6f", adj.Ascent)},
		{"descent-override", fmt.Sprintf("%.6f", adj.Descent)},
		{"line-gap-override", fmt.Sprintf("%.6f", adj.LineGap)},
		{"size-adjust", fmt.Sprintf("%.6f", adj.SizeAdjust)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printCSS(res fallback.Result) {
	css := res.FontFace()
	if css == "" {
		pterm.Println("no @font-face rule for this result")
		return
	}
	pterm.Println(css)
}
