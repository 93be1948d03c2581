package fallback

import (
	"fmt"
	"strings"
)

// FamilyKind distinguishes the two CSS family names generated per font
// request: the web font itself and its fallback.
type FamilyKind int

const (
	// WebFontFamily names the requested web font.
	WebFontFamily FamilyKind = iota
	// FallbackFamily names the generated fallback for a web font.
	FallbackFamily
)

// ScopedNameFunc generates the scoped CSS font-family name for one request.
// The request hash scopes the name to a single declaration site so that two
// requests for the same family with different options do not collide.
type ScopedNameFunc func(kind FamilyKind, family string, requestHash uint32) string

// ScopedFamilyName is the default ScopedNameFunc. It produces names of the
// form "__Roboto_Slab_Fallback_3c7a41": spaces replaced by underscores, a
// "_Fallback" marker for fallback families, and the request hash as lowercase
// hex truncated to six characters.
func ScopedFamilyName(kind FamilyKind, family string, requestHash uint32) string {
	hash := fmt.Sprintf("%x", requestHash)
	if len(hash) > 6 {
		hash = hash[:6]
	}
	base := strings.ReplaceAll(family, " ", "_")
	if kind == FallbackFamily {
		base += "_Fallback"
	}
	return fmt.Sprintf("__%s_%s", base, hash)
}
