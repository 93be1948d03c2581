package capsize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webfont"
)

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.capsize")
	defer teardown()
	//
	table, err := Parse([]byte(`{
		"inter": {
			"familyName": "Inter",
			"category": "sans-serif",
			"capHeight": 2048,
			"ascent": 2728,
			"descent": -680,
			"lineGap": 0,
			"unitsPerEm": 2816,
			"xHeight": 1536,
			"xWidthAvg": 1335
		}
	}`))
	if err != nil {
		t.Fatalf("expected metrics to parse, got %v", err)
	}
	entry, ok := table["inter"]
	if !ok {
		t.Fatal("expected table to contain key 'inter'")
	}
	if entry.FamilyName != "Inter" || entry.Ascent != 2728 || entry.Descent != -680 {
		t.Errorf("unexpected entry for 'inter': %+v", entry)
	}
	if entry.Category.IsSerif() {
		t.Errorf("expected 'inter' not to be serif, category is %q", entry.Category)
	}
}

func TestParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.capsize")
	defer teardown()
	//
	_, err := Parse([]byte(`{ not json`))
	if !errors.Is(err, ErrMetricsUnavailable) {
		t.Errorf("expected parse failure to wrap ErrMetricsUnavailable, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.capsize")
	defer teardown()
	//
	_, err := LoadFile(filepath.Join(t.TempDir(), "no-such-metrics.json"))
	if !errors.Is(err, ErrMetricsUnavailable) {
		t.Errorf("expected missing file to wrap ErrMetricsUnavailable, got %v", err)
	}
}

func TestFileLoader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.capsize")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "metrics.json")
	if err := os.WriteFile(path, builtinJSON, 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := FileLoader{Path: path}.Table()
	if err != nil {
		t.Fatalf("expected file loader to succeed, got %v", err)
	}
	if _, ok := table["robotoSlab"]; !ok {
		t.Error("expected loaded table to contain key 'robotoSlab'")
	}
}

func TestCachedLoaderLoadsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.capsize")
	defer teardown()
	//
	calls := 0
	loader := NewCachedLoader(LoaderFunc(func() (webfont.MetricsTable, error) {
		calls++
		return Parse(builtinJSON)
	}))
	for i := 0; i < 3; i++ {
		if _, err := loader.Table(); err != nil {
			t.Fatalf("expected cached loader to succeed, got %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected inner loader to run once, ran %d times", calls)
	}
}

func TestBuiltinTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.capsize")
	defer teardown()
	//
	table, err := Builtin()
	if err != nil {
		t.Fatalf("expected builtin table to load, got %v", err)
	}
	for _, key := range []string{"inter", "robotoSlab", "openSans"} {
		if _, ok := table[key]; !ok {
			t.Errorf("expected builtin table to contain key %q", key)
		}
	}
	if !table["robotoSlab"].Category.IsSerif() {
		t.Error("expected Roboto Slab to be categorized as serif")
	}
}
