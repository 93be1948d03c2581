/*
Package webfont computes fallback font descriptors for web fonts.

When a page requests a web font, browsers render text with a locally
installed fallback font until the web font has been fetched. If the two
fonts differ in their proportions, the switch shifts layout. CSS lets
clients counteract this with metric override descriptors (ascent-override,
descent-override, line-gap-override, size-adjust) on an @font-face rule for
the fallback. This module selects a generic system fallback (serif or
sans-serif) for a requested family and derives the override values that make
the fallback's rendered metrics approximate the requested font.

Font metrics are consumed from a "capsize" style metrics table, a JSON
resource keyed by camelCase family identifiers; see package capsize. The
fallback computation itself lives in package fallback.

# Status

Only the two generic system fallbacks (Times New Roman and Arial) are
supported as override targets. Per-platform fallback catalogs may be added
later.

# Links

CSS font metrics override descriptors:
https://drafts.csswg.org/css-fonts-5/

Capsize font metrics:
https://github.com/seek-oss/capsize

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package webfont
