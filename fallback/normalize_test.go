package fallback

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFamilyKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.fallback")
	defer teardown()
	//
	cases := []struct {
		family string
		key    string
	}{
		{"Inter", "inter"},
		{"Roboto Slab", "robotoSlab"},
		{"Roboto", "roboto"},
		{"open sans", "openSans"},
		{"Open Sans", "openSans"},
		{"Playfair Display", "playfairDisplay"},
		{"IBM Plex Sans", "iBMPlexSans"},
		{"PT Serif", "pTSerif"},
		{"robotoSlab", "robotoSlab"},
		{"", ""},
	}
	for _, c := range cases {
		if key := FamilyKey(c.family); key != c.key {
			t.Errorf("expected key for %q to be %q, is %q", c.family, c.key, key)
		}
	}
}

func TestFamilyKeyStripsWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.fallback")
	defer teardown()
	//
	inputs := []string{"Roboto Slab", "a b c d", " leading", "trailing ", "tab\tseparated"}
	for _, input := range inputs {
		key := FamilyKey(input)
		if strings.ContainsAny(key, " \t\n") {
			t.Errorf("expected key for %q to contain no whitespace, is %q", input, key)
		}
	}
}
