package fallback

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFontFaceRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.fallback")
	defer teardown()
	//
	res := Result{
		Kind:             Automatic,
		ScopedFamilyName: "__Inter_Fallback_deadbe",
		LocalFamilyName:  "Arial",
		Adjustment: &FontAdjustment{
			Ascent:     0.9324334770490376,
			Descent:    -0.23242476700635833,
			LineGap:    0.0,
			SizeAdjust: 1.0389481114147647,
		},
	}
	css := res.FontFace()
	expected := "@font-face {\n" +
		"  font-family: '__Inter_Fallback_deadbe';\n" +
		"  src: local(\"Arial\");\n" +
		"  ascent-override: 93.24%;\n" +
		"  descent-override: 23.24%;\n" +
		"  line-gap-override: 0.00%;\n" +
		"  size-adjust: 103.89%;\n" +
		"}\n"
	if css != expected {
		t.Errorf("unexpected @font-face rule:\n%s", css)
	}
}

func TestFontFaceRuleWithoutAdjustment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.fallback")
	defer teardown()
	//
	res := Result{
		Kind:             Automatic,
		ScopedFamilyName: "__Inter_Fallback_deadbe",
		LocalFamilyName:  "Arial",
	}
	css := res.FontFace()
	if strings.Contains(css, "override") || strings.Contains(css, "size-adjust") {
		t.Errorf("expected no override descriptors without an adjustment, got:\n%s", css)
	}
	if !strings.Contains(css, `src: local("Arial");`) {
		t.Errorf("expected a local() source, got:\n%s", css)
	}
}

func TestFontFaceRuleNonAutomatic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.fallback")
	defer teardown()
	//
	if css := (Result{Kind: Unavailable}).FontFace(); css != "" {
		t.Errorf("expected empty rule for unavailable result, got %q", css)
	}
	if css := (Result{Kind: Manual, Families: []string{"Arial"}}).FontFace(); css != "" {
		t.Errorf("expected empty rule for manual result, got %q", css)
	}
}

func TestFamilyList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webfont.fallback")
	defer teardown()
	//
	cases := []struct {
		res  Result
		list string
	}{
		{Result{Kind: Manual, Families: []string{"Segoe UI", "Arial"}}, "'Segoe UI', Arial"},
		{Result{Kind: Automatic, ScopedFamilyName: "__Inter_Fallback_deadbe"}, "__Inter_Fallback_deadbe"},
		{Result{Kind: Unavailable}, ""},
	}
	for _, c := range cases {
		if list := c.res.FamilyList(); list != c.list {
			t.Errorf("expected family list %q, is %q", c.list, list)
		}
	}
}
