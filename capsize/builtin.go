package capsize

import (
	_ "embed"

	"github.com/npillmayer/webfont"
)

//go:embed capsize-font-metrics.json
var builtinJSON []byte

// Builtin returns the metrics table shipped with this module, covering a
// selection of common Google font families. The embedded resource is parsed
// once; subsequent calls return the same table. Callers must treat it as
// read-only.
func Builtin() (webfont.MetricsTable, error) {
	return builtinLoader.Table()
}

var builtinLoader = NewCachedLoader(LoaderFunc(func() (webfont.MetricsTable, error) {
	return Parse(builtinJSON)
}))
